//go:build optargs

package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

func calc(price float64, a optargs.Option[bool], b optargs.Option[uint], tags optargs.Option[[]string]) string {
	return fmt.Sprintf("price=%v a=%v b=%v tags=%v", price, a, b, tags.Or([]string{"none"}))
}

var Calc = optargs.Func[string](calc)

const b = 3

func main() {
	fmt.Println(Calc(optargs.Kw("price", 10.0), optargs.Kw("b", 7)))
	fmt.Println(Calc(optargs.Kw("price", 10), optargs.Kw("b", 7)))
	fmt.Println(Calc(optargs.Kw("price", 1<<4), b))
	fmt.Println(Calc(optargs.Kw("tags", nil), optargs.Kw("price", 'a')))
}
