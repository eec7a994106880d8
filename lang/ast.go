package lang

import "fmt"

// ExprType enumerates the expression categories a script can produce.
type ExprType int

const (
	ExprFloat ExprType = iota
	ExprNumber
	ExprSize
	ExprQuery
	ExprVariable
	ExprMath
)

// Expression is one node of an expression tree. Trees are immutable once
// built; evaluation never mutates them.
type Expression struct {
	Type    ExprType
	payload interface{}
}

// Query reads a live turtle field wherever an expression is expected.
type Query int

const (
	QueryXCor Query = iota
	QueryYCor
	QueryHeading
	QueryColor
)

// MathOp enumerates the prefix binary operators.
type MathOp int

const (
	OpAdd MathOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpLt
	OpGt
	OpNe
	OpAnd
	OpOr
)

// Math applies a binary operator over two sub-expressions. There is no
// precedence: every operator is fully prefix and strictly binary.
type Math struct {
	Op          MathOp
	Left, Right Expression
}

// FloatExpr constructs a floating-point literal.
func FloatExpr(v float32) Expression {
	return Expression{Type: ExprFloat, payload: v}
}

// NumberExpr constructs an integer literal.
func NumberExpr(v int) Expression {
	return Expression{Type: ExprNumber, payload: v}
}

// SizeExpr constructs a size/index literal.
func SizeExpr(v int) Expression {
	return Expression{Type: ExprSize, payload: v}
}

// QueryExpr constructs a turtle-state query.
func QueryExpr(q Query) Expression {
	return Expression{Type: ExprQuery, payload: q}
}

// VariableExpr constructs a variable reference, resolved at evaluation time.
func VariableExpr(name string) Expression {
	return Expression{Type: ExprVariable, payload: name}
}

// MathExpr constructs a binary math expression.
func MathExpr(op MathOp, left, right Expression) Expression {
	return Expression{Type: ExprMath, payload: &Math{Op: op, Left: left, Right: right}}
}

func (e Expression) Float() float32 {
	if v, ok := e.payload.(float32); ok {
		return v
	}
	return 0
}

func (e Expression) Number() int {
	if v, ok := e.payload.(int); ok {
		return v
	}
	return 0
}

func (e Expression) Size() int {
	if v, ok := e.payload.(int); ok {
		return v
	}
	return 0
}

func (e Expression) Query() Query {
	if q, ok := e.payload.(Query); ok {
		return q
	}
	return 0
}

func (e Expression) Name() string {
	if s, ok := e.payload.(string); ok {
		return s
	}
	return ""
}

func (e Expression) Math() *Math {
	if m, ok := e.payload.(*Math); ok {
		return m
	}
	return nil
}

// Numeric returns the concrete value of a literal expression. Queries,
// variables, and math expressions are not literals and report false.
func (e Expression) Numeric() (float32, bool) {
	switch e.Type {
	case ExprFloat:
		return e.Float(), true
	case ExprNumber:
		return float32(e.Number()), true
	case ExprSize:
		return float32(e.Size()), true
	default:
		return 0, false
	}
}

func (e Expression) String() string {
	switch e.Type {
	case ExprFloat:
		return fmt.Sprintf("%g", e.Float())
	case ExprNumber:
		return fmt.Sprintf("%d", e.Number())
	case ExprSize:
		return fmt.Sprintf("%d", e.Size())
	case ExprQuery:
		return e.Query().String()
	case ExprVariable:
		return ":" + e.Name()
	case ExprMath:
		m := e.Math()
		return fmt.Sprintf("(%s %s %s)", m.Op, m.Left, m.Right)
	default:
		return "<unknown>"
	}
}

func (q Query) String() string {
	switch q {
	case QueryXCor:
		return "XCOR"
	case QueryYCor:
		return "YCOR"
	case QueryHeading:
		return "HEADING"
	case QueryColor:
		return "COLOR"
	default:
		return "<unknown>"
	}
}

func (op MathOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "EQ"
	case OpLt:
		return "LT"
	case OpGt:
		return "GT"
	case OpNe:
		return "NE"
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return "<unknown>"
	}
}

// Node is a statement in a parsed program: a command or a control-flow
// block. Statement order is execution order.
type Node interface {
	nodeTag()
}

// CommandKind enumerates the imperative commands.
type CommandKind int

const (
	CmdForward CommandKind = iota
	CmdBack
	CmdLeft
	CmdRight
	CmdPenUp
	CmdPenDown
	CmdSetPenColor
	CmdTurn
	CmdSetHeading
	CmdSetX
	CmdSetY
	CmdMake
	CmdAddAssign
)

// Command is a single statement. Name is set for MAKE and ADDASSIGN; Arg is
// unused for PENUP and PENDOWN.
type Command struct {
	Kind CommandKind
	Name string
	Arg  Expression
}

func (*Command) nodeTag() {}

// CondKind enumerates the comparators usable in an IF/WHILE header.
type CondKind int

const (
	CondEquals CondKind = iota
	CondLessThan
	CondGreaterThan
	CondAnd
	CondOr
)

// Condition compares two expressions. A bare expression in a header is
// sugar for Equals(expr, 1.0).
type Condition struct {
	Kind        CondKind
	Left, Right Expression
}

// If executes Block once when Cond holds. There is no else branch.
type If struct {
	Cond  Condition
	Block []Node
}

func (*If) nodeTag() {}

// While re-evaluates Cond before every iteration of Block.
type While struct {
	Cond  Condition
	Block []Node
}

func (*While) nodeTag() {}

func (k CommandKind) String() string {
	switch k {
	case CmdForward:
		return "FORWARD"
	case CmdBack:
		return "BACK"
	case CmdLeft:
		return "LEFT"
	case CmdRight:
		return "RIGHT"
	case CmdPenUp:
		return "PENUP"
	case CmdPenDown:
		return "PENDOWN"
	case CmdSetPenColor:
		return "SETPENCOLOR"
	case CmdTurn:
		return "TURN"
	case CmdSetHeading:
		return "SETHEADING"
	case CmdSetX:
		return "SETX"
	case CmdSetY:
		return "SETY"
	case CmdMake:
		return "MAKE"
	case CmdAddAssign:
		return "ADDASSIGN"
	default:
		return "<unknown>"
	}
}
