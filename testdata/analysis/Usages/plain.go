package usages

import "github.com/jkelleyrtp/optargs"

func hodl() {}

var Hodl = optargs.Proc(hodl) // want `optargs.Proc requires "//go:build optargs" constraint in the file`

func plain() string {
	return GoGME() // want `cannot use GoGME in file without "//go:build optargs" constraint; removed at code generation`
}
