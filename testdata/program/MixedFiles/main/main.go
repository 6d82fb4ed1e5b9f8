//go:build optargs

package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

var (
	// Place places an order.
	Place = optargs.Func[string](place)

	// defaultSymbol is traded when no symbol is given.
	defaultSymbol = "GME"
)

func main() {
	symbol := defaultSymbol
	fmt.Println(Place(symbol, optargs.Kw("side", Buy)))
	fmt.Println(Place(optargs.Kw("side", Sell), optargs.Kw("limit", 420.69), symbol))
}
