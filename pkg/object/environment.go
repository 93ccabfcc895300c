package object

// Environment is a chain of scopes mapping identifiers to values. Lookup
// walks inner to outer; writes land in the innermost scope. One top-level
// environment persists for the lifetime of a session.
type Environment struct {
	store map[string]Object
	outer *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a child scope that shadows the outer one.
// Not exercised by val, which only ever sees the top-level scope, but kept
// for block-scoped extensions.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Object), outer: outer}
}

func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set installs or overwrites a binding in the innermost scope.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}

// Assign rebinds an existing name in whichever scope declared it. It
// reports false when the name was never declared.
func (e *Environment) Assign(name string, val Object) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return false
}
