package codefmt

import (
	"errors"
	"go/token"
	"slices"
	"strings"
)

// CodeError is an error in the source code of a package, such as an unknown
// keyword in a call or a function which cannot be a directive. Its message
// begins with its position when the position is valid.
type CodeError struct {
	err      error
	pos, end token.Pos
	fset     *token.FileSet
}

// Unwrap returns the error without the position.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the position of the error. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end of the erroneous node. It is invalid if the error is
// not about a node.
func (e CodeError) End() token.Pos { return e.end }

func (e CodeError) Error() string {
	switch {
	case e.err == nil:
		return ""
	case !e.pos.IsValid() || e.fset == nil:
		return e.err.Error()
	}
	return FormatPosition(e.fset.Position(e.pos)) + ": " + e.err.Error()
}

// Errorf formats a [CodeError] at the position of poser. If poser is an
// [Ender] like ast.Node, the error spans the node. Arguments are formatted by
// [Formatter.Sprintf]. Errors cannot be wrapped by %w.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	if slices.ContainsFunc(args, func(arg any) bool {
		_, ok := arg.(error)
		return ok
	}) {
		panic("CodeError cannot wrap error")
	}

	e := &CodeError{err: errors.New(f.Sprintf(format, args...)), fset: f.Fset}
	if poser != nil {
		e.pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			e.end = ender.End()
		}
	}
	return e
}

// Flatten returns the leaves of errors joined by [errors.Join] in order. It
// returns nil for a nil error.
func Flatten(err error) []error {
	switch err := err.(type) {
	case nil:
		return nil
	case interface{ Unwrap() []error }:
		var leaves []error
		for _, err := range err.Unwrap() {
			leaves = append(leaves, Flatten(err)...)
		}
		return leaves
	}
	return []error{err}
}

// Sort flattens the errors and joins them again sorted by message. Messages
// begin with their positions, so the result is ordered by file and line.
func Sort(err error) error {
	list := Flatten(err)
	slices.SortStableFunc(list, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(list...)
}

// AsCodeErrors separates the [CodeError]s in the joined errors from the
// others. The analyzer reports the former as diagnostics.
func AsCodeErrors(err error) ([]*CodeError, []error) {
	var codeErrs []*CodeError
	var others []error
	for _, err := range Flatten(err) {
		var codeErr *CodeError
		if errors.As(err, &codeErr) {
			codeErrs = append(codeErrs, codeErr)
		} else {
			others = append(others, err)
		}
	}
	return codeErrs, others
}
