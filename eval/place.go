/*
File    : eval/place.go

Place models an lvalue: a location that can be read and written without
re-resolving the identifier or re-walking the array's index path. This
separates lvalue evaluation (Assign, cin targets) from plain value
evaluation, rather than returning raw references merged into a tagged type
the way the original interpreter does.
*/
package eval

import (
	"github.com/cxxi-lang/cxxi/callstack"
	"github.com/cxxi-lang/cxxi/interperr"
)

// Place is satisfied by every lvalue-producing evaluation: a named variable
// or a leaf slot inside an array.
type Place interface {
	Get() (int32, error)
	Set(int32) error
}

// varPlace is a place backed by a call-stack binding, identified by name so
// that Set re-resolves through Assign (which finds the frame currently
// holding the binding, honoring shadowing).
type varPlace struct {
	ev   *Evaluator
	name string
}

func (p *varPlace) Get() (int32, error) {
	v, ok := p.ev.cs.Lookup(p.name)
	if !ok {
		return 0, interperr.New(interperr.UndefinedVariable, "")
	}
	if v.Kind != callstack.KindInt {
		return 0, interperr.New(interperr.InvalidDataType, "")
	}
	return v.Int, nil
}

func (p *varPlace) Set(val int32) error {
	return p.ev.cs.Assign(p.name, callstack.IntValue(val))
}

// arrPlace is a place backed by one leaf slot of an array's integer
// storage.
type arrPlace struct {
	slice []int32
	idx   int
}

func (p *arrPlace) Get() (int32, error) {
	return p.slice[p.idx], nil
}

func (p *arrPlace) Set(val int32) error {
	p.slice[p.idx] = val
	return nil
}
