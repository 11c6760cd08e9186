// Package environment implements the chained lexical scope the interpreter
// evaluates against: a mapping from identifier to runtime value, plus an
// optional link to an enclosing scope. It is a direct, trimmed
// generalization of the teacher's scope.Scope — the const/let/type-tracking
// maps are dropped because this language has no user-defined types or
// typed declarations (spec.md §1 Non-goals), leaving exactly the
// define/get/assign contract spec.md §3 and §4.3 describe.
package environment

// Environment is one link in the scope chain. A nil parent marks the
// global environment.
type Environment struct {
	values map[string]interface{}
	parent *Environment
}

// New creates a fresh environment enclosed by parent. Pass nil to create
// the global environment.
func New(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]interface{}),
		parent: parent,
	}
}

// Define binds name to value in this environment only. Redefinition in the
// same scope silently overwrites, per spec.md §4.3's Var statement
// semantics.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get walks outward from this environment looking for name, returning the
// bound value and true if found at any level, or (nil, false) if the chain
// is exhausted.
func (e *Environment) Get(name string) (interface{}, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks outward from this environment, overwriting name's binding
// in the innermost scope that already defines it. It reports false if no
// scope in the chain defines name — assignment never implicitly declares,
// per spec.md §4.3.
func (e *Environment) Assign(name string, value interface{}) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return true
		}
	}
	return false
}
