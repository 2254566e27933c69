package evaluator

// Environment is a name-to-value mapping with an optional enclosing scope.
// Lookup walks outward through the chain; Set always binds in the current
// scope. Block statements never create one of these; only program start
// and function calls do.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates a fresh, empty root environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a fresh, empty environment enclosed by
// outer. Used at each function call: a closure's environment is the one it
// captured at definition time, not the caller's.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get walks the environment chain outward looking for name.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in the current scope only. Re-binding is allowed.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
