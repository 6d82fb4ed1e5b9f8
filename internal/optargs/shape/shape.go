// Package shape derives the typestate labels of generated builders.
//
// A builder for n required parameters has n type parameters, one flag per
// required parameter. A [Label] describes which flags a builder type fixes to
// Unset or Set and which ones it leaves free. Every generated declaration is
// labeled by one of three kinds of labels:
//
//	Generic          [M0, M1, M2]          optional setters
//	Uniform          [Unset, Unset, Unset] start
//	                 [Set, Set, Set]       finish
//	Positional(1)    [M0, Unset, M2]       required setter, before
//	                 [M0, Set, M2]         required setter, after
//
// [Shape] renders labels as Go type parameter and type argument lists.
package shape

import (
	"fmt"
	"strings"
)

// Mark is a flag in a [Label].
type Mark uint8

const (
	// Free leaves the flag abstract. A free flag admits both Set and Unset.
	Free Mark = iota

	// False fixes the flag to Unset.
	False

	// True fixes the flag to Set.
	True
)

func markOf(b bool) Mark {
	if b {
		return True
	}
	return False
}

func (m Mark) String() string {
	switch m {
	case Free:
		return "_"
	case False:
		return "false"
	case True:
		return "true"
	}
	return fmt.Sprintf("Mark(%d)", m)
}

// Label is a sequence of marks, one per required parameter.
type Label []Mark

// Generic returns the label with every flag free.
func Generic(n int) Label {
	return make(Label, n)
}

// Uniform returns the label with every flag fixed to b.
func Uniform(n int, b bool) Label {
	l := make(Label, n)
	for i := range l {
		l[i] = markOf(b)
	}
	return l
}

// Positional returns the label with only the i-th flag fixed to b.
//
// Panics if i is out of range.
func Positional(n, i int, b bool) Label {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("position %d out of range [0, %d)", i, n))
	}
	l := Generic(n)
	l[i] = markOf(b)
	return l
}

// Free returns the positions of free flags in order.
func (l Label) Free() []int {
	var free []int
	for i, m := range l {
		if m == Free {
			free = append(free, i)
		}
	}
	return free
}

// Admits reports whether a builder in the given concrete state is an instance
// of the label. state[i] is true if the i-th required parameter is given.
func (l Label) Admits(state []bool) bool {
	if len(l) != len(state) {
		return false
	}
	for i, m := range l {
		if m != Free && m != markOf(state[i]) {
			return false
		}
	}
	return true
}

func (l Label) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, m := range l {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Transition is the signature of a generated builder operation: it accepts a
// builder labeled From and returns a builder labeled To. Free flags at the
// same position are the same type parameter, so they are carried over.
type Transition struct {
	From, To Label
}

// Required returns the transition which gives the i-th required parameter.
func Required(n, i int) Transition {
	return Transition{Positional(n, i, false), Positional(n, i, true)}
}

// Optional returns the transition which gives an optional parameter. It keeps
// the state as is.
func Optional(n int) Transition {
	return Transition{Generic(n), Generic(n)}
}

// Start is the label of a new builder.
func Start(n int) Label { return Uniform(n, false) }

// Finish is the only label a builder can be finished with.
func Finish(n int) Label { return Uniform(n, true) }

// Apply applies the transition to a builder in the given concrete state. It
// returns false if the state is not admitted by From, that is, the generated
// code would not compile.
func (t Transition) Apply(state []bool) ([]bool, bool) {
	if !t.From.Admits(state) {
		return nil, false
	}

	next := make([]bool, len(state))
	for i, m := range t.To {
		if m == Free {
			next[i] = state[i]
		} else {
			next[i] = m == True
		}
	}
	return next, true
}
