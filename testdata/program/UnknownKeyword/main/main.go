//go:build optargs

package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

func goGME(price float64, rocketShips int, toTheMoon optargs.Option[bool]) string {
	return "hold"
}

var GoGME = optargs.Func[string](goGME)

func main() {
	fmt.Println(GoGME(optargs.Kw("price", 1.0), optargs.Kw("rocketShips", 1), optargs.Kw("toTheMon", true)))
}
