package interp

import "github.com/Sheeplet1/gologo/lang"

// eval resolves an expression to a float against the live turtle state and
// environment. It mirrors the parser's resolver, except queries read the
// turtle instead of producing nodes.
func (ex *Executor) eval(expr lang.Expression) (float32, error) {
	switch expr.Type {
	case lang.ExprFloat, lang.ExprNumber, lang.ExprSize:
		v, _ := expr.Numeric()
		return v, nil
	case lang.ExprQuery:
		return ex.query(expr.Query()), nil
	case lang.ExprVariable:
		stored, ok := ex.Env.Get(expr.Name())
		if !ok {
			return 0, variableNotFound(expr.Name())
		}
		// A binding that has only been seen by the parser can still hold a
		// query or math expression; evaluating it here resolves against
		// live turtle state. A stored variable reference is refused to
		// keep lookup from chasing chains.
		if stored.Type == lang.ExprVariable {
			return 0, variableNotFound(expr.Name())
		}
		return ex.eval(stored)
	case lang.ExprMath:
		return ex.evalMath(expr.Math())
	default:
		return 0, typeError("a numeric expression")
	}
}

func (ex *Executor) query(q lang.Query) float32 {
	switch q {
	case lang.QueryXCor:
		return ex.Turtle.X
	case lang.QueryYCor:
		return ex.Turtle.Y
	case lang.QueryHeading:
		return float32(ex.Turtle.Heading)
	default:
		return float32(ex.Turtle.PenColor)
	}
}

// evalMath applies a binary operator. Comparison and logical operators
// produce 1.0 or 0.0, keeping everything in one numeric domain.
func (ex *Executor) evalMath(m *lang.Math) (float32, error) {
	left, err := ex.eval(m.Left)
	if err != nil {
		return 0, err
	}
	right, err := ex.eval(m.Right)
	if err != nil {
		return 0, err
	}
	switch m.Op {
	case lang.OpAdd:
		return left + right, nil
	case lang.OpSub:
		return left - right, nil
	case lang.OpMul:
		return left * right, nil
	case lang.OpDiv:
		// checked before dividing, not caught after
		if right == 0 {
			return 0, divisionByZero()
		}
		return left / right, nil
	case lang.OpEq:
		return boolValue(left == right), nil
	case lang.OpLt:
		return boolValue(left < right), nil
	case lang.OpGt:
		return boolValue(left > right), nil
	case lang.OpNe:
		return boolValue(left != right), nil
	case lang.OpAnd:
		return boolValue(left != 0 && right != 0), nil
	default:
		return boolValue(left != 0 || right != 0), nil
	}
}

func boolValue(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
