//go:build optargs

package lib

import "github.com/jkelleyrtp/optargs"

// GoGME buys GME.
var GoGME = optargs.Func[string](goGME)

// Hold never sells.
func Hold(price float64) string {
	return GoGME(price, optargs.Kw("rocketShips", 0))
}
