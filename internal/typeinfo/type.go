package typeinfo

import (
	"go/types"
)

// NamedOption returns the named type if the type is named "Option", whichever
// package declares it. Aliases are resolved. Pointers are not dereferenced:
// *Option[T] is not an Option.
func NamedOption(t types.Type) (*types.Named, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.Obj().Name() != "Option" {
		return nil, false
	}
	return named, true
}

// StructOf returns the underlying struct of the type. Pointers are not
// dereferenced.
func StructOf(t types.Type) (*types.Struct, bool) {
	st, ok := types.Unalias(t).Underlying().(*types.Struct)
	return st, ok
}
