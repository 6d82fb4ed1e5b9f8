package shape

import (
	"fmt"
	"strings"
)

// Shape renders labels of n flags as Go code.
type Shape struct {
	// params are the type parameter names for each flag.
	params []string

	// qual is the qualifier of the optargs package in generated code.
	qual string
}

// New creates a [Shape] for len(params) flags. params are the type parameter
// names. They must be unique and must not shadow any name the generated code
// refers to. qual is the name of the imported optargs package.
func New(params []string, qual string) Shape {
	return Shape{params: params, qual: qual}
}

// Len returns the number of flags.
func (s Shape) Len() int { return len(s.params) }

// Param returns the type parameter name of the i-th flag.
func (s Shape) Param(i int) string { return s.params[i] }

func (s Shape) check(l Label) {
	if len(l) != len(s.params) {
		panic(fmt.Sprintf("label %s does not fit in %d flags", l, len(s.params)))
	}
}

// Decl renders the type parameter list declaring the free flags of the label.
// It is empty if no flags are free.
//
//	s.Decl(Positional(3, 1, false)) => "[M0, M2 optargs.Flag]"
func (s Shape) Decl(l Label) string {
	s.check(l)

	free := l.Free()
	if len(free) == 0 {
		return ""
	}

	names := make([]string, len(free))
	for i, pos := range free {
		names[i] = s.params[pos]
	}
	return fmt.Sprintf("[%s %s.Flag]", strings.Join(names, ", "), s.qual)
}

// Args renders the type argument list of a builder type with the label. It
// is empty if there are no flags.
//
//	s.Args(Positional(3, 1, false)) => "[M0, optargs.Unset, M2]"
func (s Shape) Args(l Label) string {
	s.check(l)

	if len(l) == 0 {
		return ""
	}

	args := make([]string, len(l))
	for i, m := range l {
		switch m {
		case Free:
			args[i] = s.params[i]
		case False:
			args[i] = s.qual + ".Unset"
		case True:
			args[i] = s.qual + ".Set"
		}
	}
	return "[" + strings.Join(args, ", ") + "]"
}
