//go:build optargs

package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

func add(x int, y int, scale optargs.Option[int]) int {
	return (x + y) * scale.Or(1)
}

var Add = optargs.Func[int](add)

func main() {
	y := 2
	fmt.Println(Add(optargs.Kw("x", Add(optargs.Kw("x", 1), y)), optargs.Kw("y", Add(y, optargs.Kw("x", 3), optargs.Kw("scale", 10)))))
}
