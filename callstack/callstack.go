/*
File    : callstack/callstack.go
*/
package callstack

import "github.com/cxxi-lang/cxxi/interperr"

// Frame is one lexical scope's bindings. Name is a debug label only and
// carries no semantic weight; Level is monotonic non-decreasing with
// nesting depth.
type Frame struct {
	Name  string
	Level uint32
	vars  map[string]Value
}

func newFrame(name string, level uint32) *Frame {
	return &Frame{Name: name, Level: level, vars: make(map[string]Value)}
}

// CallStack is an ordered deque of frames, innermost last in the backing
// slice (the "front" of spec terms). Lookup walks from the innermost frame
// outward; declarations always land in the innermost frame.
type CallStack struct {
	frames []*Frame
}

// New returns an empty call stack with no frames pushed.
func New() *CallStack {
	return &CallStack{}
}

// TopLevel returns the nesting level of the innermost frame, or 0 if the
// stack is empty.
func (c *CallStack) TopLevel() uint32 {
	if len(c.frames) == 0 {
		return 0
	}
	return c.frames[len(c.frames)-1].Level
}

// Push installs a new innermost frame named name, one level deeper than the
// current top.
func (c *CallStack) Push(name string) {
	c.frames = append(c.frames, newFrame(name, c.TopLevel()+1))
}

// Pop removes the innermost frame. Callers push and pop in strict LIFO
// order; every evaluator code path that pushes a frame pops it via defer so
// the invariant holds even on early return. The exceptions are the frame
// Register pushes on an empty stack and the persistent REPL frame pushed by
// eval's EvalTopLevel, which stay until the stack is discarded.
func (c *CallStack) Pop() {
	if len(c.frames) == 0 {
		return
	}
	c.frames = c.frames[:len(c.frames)-1]
}

// Lookup walks from the innermost frame outward and returns the first
// binding found for name.
func (c *CallStack) Lookup(name string) (Value, bool) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if v, ok := c.frames[i].vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Register binds name to v in the innermost frame, overwriting any existing
// binding in that same frame. It never shadow-checks outer frames — a
// same-named outer binding is shadowed, not overwritten, matching the
// language's documented declaration semantics.
func (c *CallStack) Register(name string, v Value) {
	if len(c.frames) == 0 {
		c.Push("__global__")
	}
	c.frames[len(c.frames)-1].vars[name] = v
}

// Assign updates an existing binding wherever it is found in the frame
// chain, searching innermost-first. It returns an UndefinedVariable error
// if name has no binding anywhere on the stack.
func (c *CallStack) Assign(name string, v Value) error {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if _, ok := c.frames[i].vars[name]; ok {
			c.frames[i].vars[name] = v
			return nil
		}
	}
	return interperr.New(interperr.UndefinedVariable, "")
}
