// Package interp walks a parsed turtle program, dispatching commands to the
// turtle and the variable environment.
package interp

import (
	"fmt"
	"log/slog"

	"github.com/Sheeplet1/gologo/lang"
	"github.com/Sheeplet1/gologo/turtle"
)

// Executor runs a program against one turtle and one environment, both
// created at program start and owned for the whole run.
type Executor struct {
	Turtle *turtle.Turtle
	Env    *lang.Env
}

// New creates an executor over the given turtle and environment.
func New(t *turtle.Turtle, env *lang.Env) *Executor {
	return &Executor{Turtle: t, Env: env}
}

// Execute runs the node sequence strictly in program order. The first error
// stops execution and propagates; draw requests already issued are not
// undone.
func (ex *Executor) Execute(nodes []lang.Node) error {
	for _, node := range nodes {
		var err error
		switch n := node.(type) {
		case *lang.Command:
			err = ex.command(n)
		case *lang.If:
			err = ex.execIf(n)
		case *lang.While:
			err = ex.execWhile(n)
		default:
			err = fmt.Errorf("unknown AST node %T", node)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (ex *Executor) command(cmd *lang.Command) error {
	slog.Debug("execute", "command", cmd.Kind.String())
	switch cmd.Kind {
	case lang.CmdPenUp:
		ex.Turtle.PenUp()
		return nil
	case lang.CmdPenDown:
		ex.Turtle.PenDown()
		return nil
	case lang.CmdMake:
		return ex.makeVar(cmd)
	case lang.CmdAddAssign:
		return ex.addAssign(cmd)
	}

	val, err := ex.eval(cmd.Arg)
	if err != nil {
		return err
	}
	switch cmd.Kind {
	case lang.CmdForward:
		return ex.Turtle.Forward(val)
	case lang.CmdBack:
		return ex.Turtle.Back(val)
	case lang.CmdLeft:
		return ex.Turtle.Left(val)
	case lang.CmdRight:
		return ex.Turtle.Right(val)
	case lang.CmdTurn:
		ex.Turtle.Turn(int(val)) // truncates toward zero
		return nil
	case lang.CmdSetHeading:
		ex.Turtle.SetHeading(int(val))
		return nil
	case lang.CmdSetX:
		ex.Turtle.SetX(val)
		return nil
	case lang.CmdSetY:
		ex.Turtle.SetY(val)
		return nil
	case lang.CmdSetPenColor:
		if err := ex.Turtle.SetPenColor(int(val)); err != nil {
			return colorOutOfRange()
		}
		return nil
	default:
		return fmt.Errorf("unknown command %v", cmd.Kind)
	}
}

// makeVar binds a variable. Queries snapshot the current turtle value with
// its native type; everything else resolves to a float. Rebinding silently
// overwrites.
func (ex *Executor) makeVar(cmd *lang.Command) error {
	switch cmd.Arg.Type {
	case lang.ExprQuery:
		switch cmd.Arg.Query() {
		case lang.QueryXCor:
			ex.Env.Define(cmd.Name, lang.FloatExpr(ex.Turtle.X))
		case lang.QueryYCor:
			ex.Env.Define(cmd.Name, lang.FloatExpr(ex.Turtle.Y))
		case lang.QueryHeading:
			ex.Env.Define(cmd.Name, lang.NumberExpr(ex.Turtle.Heading))
		case lang.QueryColor:
			ex.Env.Define(cmd.Name, lang.SizeExpr(ex.Turtle.PenColor))
		}
		return nil
	case lang.ExprFloat, lang.ExprNumber, lang.ExprSize, lang.ExprVariable, lang.ExprMath:
		val, err := ex.eval(cmd.Arg)
		if err != nil {
			return err
		}
		ex.Env.Define(cmd.Name, lang.FloatExpr(val))
		return nil
	default:
		return typeError("a number, query, or mathematical expression")
	}
}

// addAssign adds the resolved value onto an existing numeric binding.
func (ex *Executor) addAssign(cmd *lang.Command) error {
	val, err := ex.eval(cmd.Arg)
	if err != nil {
		return err
	}
	curr, ok := ex.Env.Get(cmd.Name)
	if !ok {
		return variableNotFound(cmd.Name)
	}
	old, ok := curr.Numeric()
	if !ok {
		return variableNotFound(cmd.Name)
	}
	ex.Env.Define(cmd.Name, lang.FloatExpr(old+val))
	return nil
}
