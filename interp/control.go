package interp

import "github.com/Sheeplet1/gologo/lang"

// holds evaluates a condition against the live state.
func (ex *Executor) holds(cond lang.Condition) (bool, error) {
	left, err := ex.eval(cond.Left)
	if err != nil {
		return false, err
	}
	right, err := ex.eval(cond.Right)
	if err != nil {
		return false, err
	}
	switch cond.Kind {
	case lang.CondEquals:
		return left == right, nil
	case lang.CondLessThan:
		return left < right, nil
	case lang.CondGreaterThan:
		return left > right, nil
	case lang.CondAnd:
		return left != 0 && right != 0, nil
	default:
		return left != 0 || right != 0, nil
	}
}

// execIf evaluates the condition once and executes the block at most once.
func (ex *Executor) execIf(node *lang.If) error {
	ok, err := ex.holds(node.Cond)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return ex.Execute(node.Block)
}

// execWhile re-evaluates the condition before every iteration. A condition
// that never turns false loops until the process is killed; bounding the
// loop is the script author's responsibility.
func (ex *Executor) execWhile(node *lang.While) error {
	for {
		ok, err := ex.holds(node.Cond)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := ex.Execute(node.Block); err != nil {
			return err
		}
	}
}
