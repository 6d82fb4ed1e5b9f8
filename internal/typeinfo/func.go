package typeinfo

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
)

// Func describes a declared function which is the target of a directive. It
// holds the signature information that is necessary from the Optargs'
// perspective.
type Func struct {
	Obj    *types.Func
	Params []*types.Var

	// Result is the first result type. It is nil if the function has no
	// results.
	Result types.Type
	HasErr bool
}

// Name returns the name of the function.
func (fn Func) Name() string { return fn.Obj.Name() }

// Pos returns the position where the function is declared.
func (fn Func) Pos() token.Pos { return fn.Obj.Pos() }

// Object returns the function object. Func implements codefmt.Objecter by this
// method.
func (fn Func) Object() types.Object { return fn.Obj }

// Shape is a type constraint for result shapes. It is used in [FuncOf] to
// specify which kind of function signature is expected.
//
//	Shape    | Signature
//	---------+------------------------
//	Proc     | func(params...)
//	Value    | func(params...) R
//	ValueErr | func(params...) (R, error)
type Shape interface {
	Proc | Value | ValueErr
	needResult() (bool, bool)
}

type (
	// Proc is the shape without results.
	Proc struct{}

	// Value is the shape with a single result.
	Value struct{}

	// ValueErr is the shape with a result and an error.
	ValueErr struct{}
)

func (Proc) needResult() (bool, bool)     { return false, false }
func (Value) needResult() (bool, bool)    { return true, false }
func (ValueErr) needResult() (bool, bool) { return true, true }

var (
	// ErrMethod is returned by [FuncOf] for a method.
	ErrMethod = errors.New("cannot be used on methods")

	// ErrGeneric is returned by [FuncOf] for a generic function.
	ErrGeneric = errors.New("cannot be used on generic functions")

	// ErrVariadic is returned by [FuncOf] for a variadic function.
	ErrVariadic = errors.New("cannot be used on variadic functions")
)

// FuncOf inspects the given function and returns a new [Func]. It returns an
// error if obj is not a plain declared function or its results do not match
// with the given shape.
func FuncOf[S Shape](obj types.Object) (Func, error) {
	fn, ok := obj.(*types.Func)
	if !ok {
		return Func{}, fmt.Errorf("not a declared function")
	}

	sig := fn.Signature()
	switch {
	case sig.Recv() != nil:
		return Func{}, ErrMethod
	case sig.TypeParams().Len() != 0:
		return Func{}, ErrGeneric
	case sig.Variadic():
		return Func{}, ErrVariadic
	}

	f := Func{Obj: fn}
	for param := range sig.Params().Variables() {
		f.Params = append(f.Params, param)
	}

	results := sig.Results()
	needResult, needErr := S{}.needResult()
	switch {
	case !needResult && results.Len() == 0:
		// func(...)
		return f, nil

	case needResult && !needErr && results.Len() == 1:
		// func(...) R
		f.Result = results.At(0).Type()
		return f, nil

	case needResult && needErr && results.Len() == 2 && isTypeError(results.At(1).Type()):
		// func(...) (R, error)
		f.Result = results.At(0).Type()
		f.HasErr = true
		return f, nil
	}

	switch {
	case !needResult:
		return Func{}, fmt.Errorf("expected signature: [func(...)]")
	case !needErr:
		return Func{}, fmt.Errorf("expected signature: [func(...) R]")
	default:
		return Func{}, fmt.Errorf("expected signature: [func(...) (R, error)]")
	}
}

// isTypeError reports whether t is the built-in error type.
func isTypeError(t types.Type) bool {
	return t == types.Universe.Lookup("error").Type()
}
