package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/Sheeplet1/gologo/canvas"
	"github.com/Sheeplet1/gologo/lang"
	"github.com/Sheeplet1/gologo/parser"
	"github.com/Sheeplet1/gologo/turtle"
)

// runScript parses and executes src against a fresh 100x100 canvas and
// returns the executor and the image for inspection.
func runScript(t *testing.T, src string) (*Executor, *canvas.Image, error) {
	t.Helper()
	im := canvas.NewImage(100, 100)
	env := lang.NewEnv()
	ex := New(turtle.New(im), env)
	nodes, err := parser.ParseString(src, env)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return ex, im, ex.Execute(nodes)
}

func mustRun(t *testing.T, src string) (*Executor, *canvas.Image) {
	t.Helper()
	ex, im, err := runScript(t, src)
	if err != nil {
		t.Fatalf("execution failed: %v", err)
	}
	return ex, im
}

func execErrorKind(t *testing.T, src string) ErrorKind {
	t.Helper()
	_, _, err := runScript(t, src)
	if err == nil {
		t.Fatalf("expected execution error for %q", src)
	}
	var xerr *ExecutionError
	if !errors.As(err, &xerr) {
		t.Fatalf("expected *ExecutionError, got %T: %v", err, err)
	}
	return xerr.Kind
}

func envValue(t *testing.T, ex *Executor, name string) float32 {
	t.Helper()
	expr, ok := ex.Env.Get(name)
	if !ok {
		t.Fatalf("expected %q to be bound", name)
	}
	v, ok := expr.Numeric()
	if !ok {
		t.Fatalf("expected %q to hold a number, got %s", name, expr)
	}
	return v
}

func near(t *testing.T, got, want float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > 1e-3 {
		t.Errorf("expected %g, got %g", want, got)
	}
}

func TestMakeThenAddAssign(t *testing.T) {
	ex, _ := mustRun(t, "MAKE \"x \"5\nADDASSIGN \"x \"5")
	if v := envValue(t, ex, "x"); v != 10.0 {
		t.Errorf("expected x = 10.0, got %g", v)
	}
}

func TestAddAssignWithExpression(t *testing.T) {
	ex, _ := mustRun(t, "MAKE \"x \"1\nADDASSIGN \"x * \"2 \"3")
	if v := envValue(t, ex, "x"); v != 7.0 {
		t.Errorf("expected x = 7.0, got %g", v)
	}
}

func TestMakeResolvesVariableArgument(t *testing.T) {
	ex, _ := mustRun(t, "MAKE \"a \"5\nMAKE \"b :a\nMAKE \"a \"9")
	if v := envValue(t, ex, "b"); v != 5.0 {
		t.Errorf("rebinding a must not change b, got %g", v)
	}
}

func TestMakeQuerySnapshots(t *testing.T) {
	ex, _ := mustRun(t, "MAKE \"sx XCOR\nMAKE \"sh HEADING\nTURN \"90\nFORWARD \"10")
	if v := envValue(t, ex, "sx"); v != 50 {
		t.Errorf("expected snapshot x 50, got %g", v)
	}
	if v := envValue(t, ex, "sh"); v != 0 {
		t.Errorf("expected snapshot heading 0, got %g", v)
	}
	sh, _ := ex.Env.Get("sh")
	if sh.Type != lang.ExprNumber {
		t.Errorf("heading snapshot should keep its integer type, got %v", sh.Type)
	}
}

func TestWhileLoopRunsThreeIterations(t *testing.T) {
	ex, im := mustRun(t,
		"PENDOWN\nMAKE \"counter \"0\nWHILE LT :counter \"3 [\nFORWARD \"5\nADDASSIGN \"counter \"1\n]")
	if v := envValue(t, ex, "counter"); v != 3.0 {
		t.Errorf("expected counter = 3.0, got %g", v)
	}
	if n := len(im.Segments()); n != 3 {
		t.Errorf("expected 3 drawn segments, got %d", n)
	}
}

func TestWhileFalseConditionSkipsBody(t *testing.T) {
	_, im := mustRun(t, "PENDOWN\nMAKE \"i \"3\nWHILE LT :i \"3 [\nFORWARD \"5\n]")
	if n := len(im.Segments()); n != 0 {
		t.Errorf("expected no segments, got %d", n)
	}
}

func TestIfNestedInWhile(t *testing.T) {
	src := "PENDOWN\nMAKE \"i \"0\n" +
		"WHILE LT :i \"4 [\n" +
		"IF EQ :i \"2 [\nFORWARD \"5\n]\n" +
		"ADDASSIGN \"i \"1\n" +
		"]\n" +
		"FORWARD \"5"
	_, im := mustRun(t, src)
	// One segment from inside the conditional plus one after the loop.
	if n := len(im.Segments()); n != 2 {
		t.Errorf("expected 2 segments, got %d", n)
	}
}

func TestIfConditionFalseSkipsBlock(t *testing.T) {
	_, im := mustRun(t, "PENDOWN\nIF \"FALSE [\nFORWARD \"5\n]")
	if n := len(im.Segments()); n != 0 {
		t.Errorf("expected no segments, got %d", n)
	}
}

func TestTurnAccumulatesPast360(t *testing.T) {
	ex, _ := mustRun(t, "TURN \"370\nMAKE \"h HEADING")
	if ex.Turtle.Heading != 370 {
		t.Errorf("expected heading 370, got %d", ex.Turtle.Heading)
	}
	if v := envValue(t, ex, "h"); v != 370 {
		t.Errorf("expected queried heading 370, got %g", v)
	}
}

func TestTurnTruncatesTowardZero(t *testing.T) {
	ex, _ := mustRun(t, "MAKE \"d \"90.9\nTURN :d")
	if ex.Turtle.Heading != 90 {
		t.Errorf("expected heading 90, got %d", ex.Turtle.Heading)
	}
}

func TestSetPenColorRejectsSixteen(t *testing.T) {
	if kind := execErrorKind(t, "SETPENCOLOR \"16"); kind != ColorIndexOutOfRange {
		t.Errorf("expected ColorIndexOutOfRange, got %v", kind)
	}
}

func TestSetPenColorAcceptsFifteen(t *testing.T) {
	_, im := mustRun(t, "SETPENCOLOR \"15\nPENDOWN\nFORWARD \"5")
	segs := im.Segments()
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Color != 15 {
		t.Errorf("expected color 15, got %d", segs[0].Color)
	}
}

func TestDivisionByZero(t *testing.T) {
	if kind := execErrorKind(t, "MAKE \"x / \"10 \"0"); kind != DivisionByZero {
		t.Errorf("expected DivisionByZero, got %v", kind)
	}
}

func TestDivision(t *testing.T) {
	ex, _ := mustRun(t, "MAKE \"x / \"10 \"4")
	if v := envValue(t, ex, "x"); v != 2.5 {
		t.Errorf("expected 2.5, got %g", v)
	}
}

func TestComparisonAndLogicalOperators(t *testing.T) {
	cases := []struct {
		expr string
		want float32
	}{
		{"EQ \"2 \"2", 1},
		{"EQ \"2 \"3", 0},
		{"NE \"2 \"3", 1},
		{"LT \"2 \"3", 1},
		{"GT \"2 \"3", 0},
		{"AND \"2 \"3", 1},
		{"AND \"1 \"0", 0},
		{"OR \"0 \"3", 1},
		{"OR \"0 \"0", 0},
	}
	for _, c := range cases {
		ex, _ := mustRun(t, "MAKE \"r "+c.expr)
		if v := envValue(t, ex, "r"); v != c.want {
			t.Errorf("%s: expected %g, got %g", c.expr, c.want, v)
		}
	}
}

func TestQueriesReadLiveState(t *testing.T) {
	ex, _ := mustRun(t, "SETX \"20\nSETY \"80\nSETX + XCOR \"5\nSETY - YCOR \"10")
	near(t, ex.Turtle.X, 25)
	near(t, ex.Turtle.Y, 70)
}

func TestErrorStopsExecution(t *testing.T) {
	ex, _, err := runScript(t, "PENDOWN\nFORWARD \"10\nSETPENCOLOR \"99\nFORWARD \"10")
	if err == nil {
		t.Fatal("expected execution to fail")
	}
	// The first move happened, the one after the failure did not.
	near(t, ex.Turtle.Y, 40)
}

func TestNestedPrefixMath(t *testing.T) {
	ex, _ := mustRun(t, "MAKE \"x + \"1 * \"2 \"3")
	if v := envValue(t, ex, "x"); v != 7.0 {
		t.Errorf("expected 7.0, got %g", v)
	}
}

func TestVariableBoundToStaleQueryResolvesLive(t *testing.T) {
	// Bind the query expression directly without a MAKE snapshot; each
	// evaluation must then read the current heading.
	im := canvas.NewImage(100, 100)
	env := lang.NewEnv()
	env.Define("h", lang.QueryExpr(lang.QueryHeading))
	ex := New(turtle.New(im), env)
	ex.Turtle.SetHeading(45)
	v, err := ex.eval(lang.VariableExpr("h"))
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if v != 45 {
		t.Errorf("expected live heading 45, got %g", v)
	}
}

func TestVariableChainIsRefused(t *testing.T) {
	im := canvas.NewImage(100, 100)
	env := lang.NewEnv()
	env.Define("a", lang.VariableExpr("b"))
	env.Define("b", lang.FloatExpr(1))
	ex := New(turtle.New(im), env)
	_, err := ex.eval(lang.VariableExpr("a"))
	var xerr *ExecutionError
	if !errors.As(err, &xerr) || xerr.Kind != VariableNotFound {
		t.Errorf("expected VariableNotFound for chained reference, got %v", err)
	}
}
