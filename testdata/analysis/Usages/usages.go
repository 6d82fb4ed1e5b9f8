//go:build optargs

package usages

import "github.com/jkelleyrtp/optargs"

func goGME(price float64) string { return "" }

var GoGME = optargs.Func[string](goGME)

var buy = GoGME // want `cannot use GoGME as value; it can only be called with keyword arguments`

var price = optargs.Kw("price", 1.0) // want `optargs.Kw must be an argument of a keyword call`

func local() string {
	f := optargs.Func[string](goGME) // want `optargs.Func must be assigned to a package-level variable`
	return f(price)
}
