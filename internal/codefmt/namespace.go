package codefmt

import (
	"fmt"
	"go/types"
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jkelleyrtp/optargs/internal/lcs"
)

// NS is a set of names taken in a scope of generated code. Builders reserve
// their package-level names in the namespace of the package, and their local
// names, like type parameters, in a copy of it.
type NS map[string]struct{}

// NewNS returns a namespace where the names of the scope are taken.
func NewNS(scope *types.Scope) NS {
	ns := make(NS)
	for _, name := range scope.Names() {
		ns.Reserve(name)
	}
	return ns
}

// Reserve takes the name. It returns false if the name is already taken.
func (ns NS) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Name allocates a name in the namespace and returns it. A taken name is
// numbered by [DisambiguateName], e.g. "b" becomes "b2" and "M0" becomes
// "M0_2". A nil namespace allocates nothing and returns the name as is.
//
// Panics if the name is empty.
func (ns NS) Name(name string) string {
	for name := range DisambiguateName(name) {
		if ns == nil || ns.Reserve(name) {
			return name
		}
	}
	panic("unreachable")
}

// ExportName converts a name into an exported name. Words are detected by
// [lcs.SplitWords]. Underscores are dropped and each word gets an upper-cased
// initial. The rest of each word is kept as is.
//
//	ExportName("to_the_moon") => "ToTheMoon"
//	ExportName("userID")      => "UserID"
//
// Panics if the name is empty.
func ExportName(name string) string {
	if name == "" {
		panic("empty name")
	}

	title := cases.Title(language.English, cases.NoLower)

	var b strings.Builder
	for _, word := range lcs.SplitWords(name) {
		if strings.Trim(word, "_") == "" {
			continue
		}
		b.WriteString(title.String(word))
	}

	if b.Len() == 0 {
		// Nothing but underscores
		return name
	}
	return b.String()
}

// DisambiguateName yields the name and then its numbered alternatives, "b",
// "b2", "b3", and so on. A name ending with a digit is numbered after an
// underscore, so "M0" is followed by "M0_2".
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	format := "%s%d"
	if last := name[len(name)-1]; '0' <= last && last <= '9' {
		format = "%s_%d"
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		for i := 2; yield(fmt.Sprintf(format, name, i)); i++ {
		}
	}
}
