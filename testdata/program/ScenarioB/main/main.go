//go:build optargs

package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

func calc(price float64, a optargs.Option[bool], b optargs.Option[uint]) string {
	return fmt.Sprintf("price=%v a=%v b=%v", price, a, b)
}

var Calc = optargs.Func[string](calc)

func main() {
	x := Calc(optargs.Kw("price", 10.0), optargs.Kw("a", true), optargs.Kw("b", uint(7)))
	y := Calc(optargs.Kw("b", uint(7)), optargs.Kw("a", true), optargs.Kw("price", 10.0))

	fmt.Println(x)
	fmt.Println(y)
	fmt.Println(x == y)
}
