//go:build optargs

package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

func goGME(price float64, rocketShips int, toTheMoon optargs.Option[bool]) string {
	return fmt.Sprintf("price=%v rocketShips=%d toTheMoon=%v", price, rocketShips, toTheMoon.Or(false))
}

// GoGME buys GME.
var GoGME = optargs.Func[string](goGME)

func main() {
	price := 9.5
	rocketShips := 3
	toTheMoon := true

	fmt.Println(GoGME(price, rocketShips))
	fmt.Println(GoGME(toTheMoon, rocketShips, price))
	fmt.Println(GoGME(rocketShips, optargs.Kw("price", price*2)))
}
