//go:build optargs

package conflicts

import "github.com/jkelleyrtp/optargs"

func f(price float64) {}

func FPrice() {}

var F = optargs.Proc(f) // want `cannot generate FPrice for F; already declared`

func g(x int) {}

var GX = optargs.Proc(f)

var G = optargs.Proc(g) // want `cannot generate GX for G; already declared`
