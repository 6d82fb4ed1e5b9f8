//go:build optargs

package keywordcalls

import "github.com/jkelleyrtp/optargs"

func goGME(price float64, rocketShips int, toTheMoon optargs.Option[bool]) string { return "" }

func hodl() {}

var (
	GoGME = optargs.Func[string](goGME)
	Hodl  = optargs.Proc(hodl)
)

func calls(s, k string, xs []any) {
	rocketShips := 1

	GoGME(optargs.Kw("price", 1.0), rocketShips)
	GoGME(rocketShips, optargs.Kw("toTheMoon", true), optargs.Kw("price", 1.0))
	GoGME(optargs.Kw("price", 1.0), rocketShips, optargs.Kw("toTheMoon", true), optargs.Kw("toTheMoon", false))
	Hodl()

	const price = 3
	GoGME(optargs.Kw("price", 10), optargs.Kw("rocketShips", 2))
	GoGME(price, rocketShips)

	GoGME(optargs.Kw("prize", 1.0), rocketShips)                           // want `unknown keyword "prize" of GoGME; did you mean "price"\?`
	GoGME(optargs.Kw("price", 1.0))                                        // want `missing required keyword rocketShips in call of GoGME`
	GoGME()                                                                // want `missing required keyword price, rocketShips in call of GoGME`
	GoGME(optargs.Kw("price", 1.0), optargs.Kw("price", 2.0), rocketShips) // want `required keyword "price" of GoGME is given twice`
	GoGME(optargs.Kw("price", s), rocketShips)                             // want `cannot use s \(string\) as float64 for keyword "price" of GoGME`
	GoGME(optargs.Kw(k, 1.0), rocketShips)                                 // want `keyword k is not a constant string`
	GoGME(optargs.Kw("price", 1.0), rocketShips, 1)                        // want `cannot use 1 as keyword argument`
	GoGME(xs...)                                                           // want `cannot spread arguments into keyword call of GoGME`
	Hodl(optargs.Kw("forever", true))                                      // want `unknown keyword "forever"; Hodl takes no keywords`
}
