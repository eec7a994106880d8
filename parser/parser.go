package parser

import (
	"strconv"
	"strings"

	"github.com/Sheeplet1/gologo/lang"
)

// Parse consumes the whole token sequence and returns the program AST. The
// parser carries the environment so that variable references and ADDASSIGN
// targets fail before any execution, and so MAKE bindings are visible to
// the remainder of the same single pass.
func Parse(tokens []string, env *lang.Env) ([]lang.Node, error) {
	p := &parser{tokens: tokens, env: env}
	nodes, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, invalidSyntax("unexpected %q outside a block", tok)
	}
	return nodes, nil
}

// parser holds the shared cursor every parse routine advances. Nested block
// parsing recurses through parseSequence with the same cursor, which is
// what lets it resume the caller's position after a closing bracket.
type parser struct {
	tokens []string
	pos    int
	env    *lang.Env
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// parseSequence accumulates statements until end of input or a closing
// bracket. The bracket is left unconsumed for the caller.
func (p *parser) parseSequence() ([]lang.Node, error) {
	var nodes []lang.Node
	for {
		tok, ok := p.peek()
		if !ok || tok == "]" {
			return nodes, nil
		}
		node, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

func (p *parser) parseStatement() (lang.Node, error) {
	tok, _ := p.next()
	switch tok {
	case "PENUP":
		return &lang.Command{Kind: lang.CmdPenUp}, nil
	case "PENDOWN":
		return &lang.Command{Kind: lang.CmdPenDown}, nil
	case "FORWARD":
		return p.parseUnaryCommand(lang.CmdForward)
	case "BACK":
		return p.parseUnaryCommand(lang.CmdBack)
	case "LEFT":
		return p.parseUnaryCommand(lang.CmdLeft)
	case "RIGHT":
		return p.parseUnaryCommand(lang.CmdRight)
	case "SETPENCOLOR":
		return p.parseUnaryCommand(lang.CmdSetPenColor)
	case "TURN":
		return p.parseUnaryCommand(lang.CmdTurn)
	case "SETHEADING":
		return p.parseUnaryCommand(lang.CmdSetHeading)
	case "SETX":
		return p.parseUnaryCommand(lang.CmdSetX)
	case "SETY":
		return p.parseUnaryCommand(lang.CmdSetY)
	case "MAKE":
		return p.parseMake()
	case "ADDASSIGN":
		return p.parseAddAssign()
	case "IF":
		return p.parseControlFlow(false)
	case "WHILE":
		return p.parseControlFlow(true)
	default:
		return nil, unexpectedToken(tok)
	}
}

func (p *parser) parseUnaryCommand(kind lang.CommandKind) (lang.Node, error) {
	expr, err := p.resolveExpression()
	if err != nil {
		return nil, err
	}
	return &lang.Command{Kind: kind, Arg: expr}, nil
}

func (p *parser) parseMake() (lang.Node, error) {
	nameTok, ok := p.next()
	if !ok {
		return nil, invalidSyntax("MAKE requires a variable name")
	}
	name := strings.TrimPrefix(nameTok, "\"")
	expr, err := p.resolveExpression()
	if err != nil {
		return nil, err
	}
	// The binding becomes visible immediately so later statements in the
	// same pass can reference it.
	p.env.Define(name, expr)
	return &lang.Command{Kind: lang.CmdMake, Name: name, Arg: expr}, nil
}

func (p *parser) parseAddAssign() (lang.Node, error) {
	nameTok, ok := p.next()
	if !ok {
		return nil, invalidSyntax("ADDASSIGN requires a variable name")
	}
	if !strings.HasPrefix(nameTok, "\"") {
		return nil, invalidSyntax("ADDASSIGN target must start with '\"', found %q", nameTok)
	}
	name := strings.TrimPrefix(nameTok, "\"")
	if !p.env.Has(name) {
		return nil, variableNotFound(name)
	}
	expr, err := p.resolveExpression()
	if err != nil {
		return nil, err
	}
	return &lang.Command{Kind: lang.CmdAddAssign, Name: name, Arg: expr}, nil
}

func (p *parser) parseControlFlow(loop bool) (lang.Node, error) {
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if loop {
		return &lang.While{Cond: cond, Block: block}, nil
	}
	return &lang.If{Cond: cond, Block: block}, nil
}

// parseCondition handles an explicit comparator keyword, or desugars a bare
// expression into Equals(expr, 1.0): non-zero means true.
func (p *parser) parseCondition() (lang.Condition, error) {
	tok, ok := p.peek()
	if !ok {
		return lang.Condition{}, invalidSyntax("missing condition")
	}
	kind, explicit := conditionKind(tok)
	if !explicit {
		expr, err := p.resolveExpression()
		if err != nil {
			return lang.Condition{}, err
		}
		return lang.Condition{Kind: lang.CondEquals, Left: expr, Right: lang.FloatExpr(1.0)}, nil
	}
	p.pos++
	left, err := p.resolveExpression()
	if err != nil {
		return lang.Condition{}, err
	}
	right, err := p.resolveExpression()
	if err != nil {
		return lang.Condition{}, err
	}
	return lang.Condition{Kind: kind, Left: left, Right: right}, nil
}

func conditionKind(tok string) (lang.CondKind, bool) {
	switch tok {
	case "EQ":
		return lang.CondEquals, true
	case "LT":
		return lang.CondLessThan, true
	case "GT":
		return lang.CondGreaterThan, true
	case "AND":
		return lang.CondAnd, true
	case "OR":
		return lang.CondOr, true
	default:
		return 0, false
	}
}

// parseBlock consumes a bracketed statement sequence. parseSequence stops
// at the closing bracket without consuming it, so nesting restores the
// cursor correctly for every level.
func (p *parser) parseBlock() ([]lang.Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, incompleteInput("expected '[' to open a block")
	}
	if tok != "[" {
		return nil, invalidSyntax("expected '[' to open a block, found %q", tok)
	}
	block, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	if _, ok := p.next(); !ok {
		return nil, incompleteInput("unclosed block: expected ']'")
	}
	return block, nil
}

// resolveExpression is the shared expression resolver: quoted literals,
// variable references, queries, and prefix math.
func (p *parser) resolveExpression() (lang.Expression, error) {
	tok, ok := p.next()
	if !ok {
		return lang.Expression{}, invalidSyntax("missing expression")
	}
	switch {
	case strings.HasPrefix(tok, "\""):
		return parseLiteral(tok)
	case strings.HasPrefix(tok, ":"):
		name := strings.TrimPrefix(tok, ":")
		if !p.env.Has(name) {
			return lang.Expression{}, variableNotFound(name)
		}
		return lang.VariableExpr(name), nil
	}
	if op, ok := mathOp(tok); ok {
		return p.parseMath(op)
	}
	return parseQuery(tok)
}

func parseLiteral(tok string) (lang.Expression, error) {
	body := strings.TrimPrefix(tok, "\"")
	switch body {
	case "TRUE":
		return lang.FloatExpr(1.0), nil
	case "FALSE":
		return lang.FloatExpr(0.0), nil
	}
	v, err := strconv.ParseFloat(body, 32)
	if err != nil {
		return lang.Expression{}, invalidSyntax("cannot parse %q as a number", body)
	}
	return lang.FloatExpr(float32(v)), nil
}

func parseQuery(tok string) (lang.Expression, error) {
	switch tok {
	case "XCOR":
		return lang.QueryExpr(lang.QueryXCor), nil
	case "YCOR":
		return lang.QueryExpr(lang.QueryYCor), nil
	case "HEADING":
		return lang.QueryExpr(lang.QueryHeading), nil
	case "COLOR":
		return lang.QueryExpr(lang.QueryColor), nil
	default:
		return lang.Expression{}, invalidSyntax("cannot parse %q as an expression", tok)
	}
}

func mathOp(tok string) (lang.MathOp, bool) {
	switch tok {
	case "+":
		return lang.OpAdd, true
	case "-":
		return lang.OpSub, true
	case "*":
		return lang.OpMul, true
	case "/":
		return lang.OpDiv, true
	case "EQ":
		return lang.OpEq, true
	case "LT":
		return lang.OpLt, true
	case "GT":
		return lang.OpGt, true
	case "NE":
		return lang.OpNe, true
	case "AND":
		return lang.OpAnd, true
	case "OR":
		return lang.OpOr, true
	default:
		return 0, false
	}
}

// parseMath parses operator-operand-operand form. Operands recurse through
// the shared resolver, so nested operators need no precedence handling.
func (p *parser) parseMath(op lang.MathOp) (lang.Expression, error) {
	left, err := p.resolveExpression()
	if err != nil {
		return lang.Expression{}, err
	}
	right, err := p.resolveExpression()
	if err != nil {
		return lang.Expression{}, err
	}
	return lang.MathExpr(op, left, right), nil
}
