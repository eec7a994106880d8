package lang

// Env maps variable names to their last-assigned expression values. The
// parser consults it so unknown references fail before any execution; the
// evaluator reads and rebinds it as MAKE and ADDASSIGN run.
type Env struct {
	values map[string]Expression
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{values: make(map[string]Expression)}
}

// Define binds name to val, silently overwriting any previous binding.
func (e *Env) Define(name string, val Expression) {
	e.values[name] = val
}

// Get retrieves a binding.
func (e *Env) Get(name string) (Expression, bool) {
	val, ok := e.values[name]
	return val, ok
}

// Has reports whether name is bound.
func (e *Env) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}
