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
	got := Calc(optargs.Kw("price", 10.0), optargs.Kw("b", 7))
	want := calc(10.0, optargs.None[bool](), optargs.Some[uint](7))

	fmt.Println(got)
	fmt.Println(got == want)
}
