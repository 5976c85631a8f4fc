package runtime

import (
	"fmt"
	"sort"
)

// UndefinedVariableError reports a lookup or assignment of an unbound name.
type UndefinedVariableError struct {
	Name string
}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment is one lexical scope frame. Frames chain to their parent up to
// the global frame; a parent never references its children.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a frame, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Define inserts or overwrites a binding in this frame only.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign updates the nearest frame that already binds name.
func (e *Environment) Assign(name string, value Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return nil
		}
	}
	return UndefinedVariableError{Name: name}
}

// Get returns the first binding for name walking outward from this frame.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, UndefinedVariableError{Name: name}
}

// Has reports whether name is bound in this frame, ignoring parents.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Extend returns a new child frame of e.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}

// Binding is one name bound in a frame.
type Binding struct {
	Name  string
	Value Value
}

// Bindings lists this frame's bindings ordered by name.
func (e *Environment) Bindings() []Binding {
	out := make([]Binding, 0, len(e.values))
	for name, value := range e.values {
		out = append(out, Binding{Name: name, Value: value})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}
