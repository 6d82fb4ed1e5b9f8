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
	fmt.Println(Calc(optargs.Kw("a", true)))
}
