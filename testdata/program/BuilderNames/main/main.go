//go:build optargs

package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

func span(start int, finish int, step optargs.Option[int]) []int {
	var xs []int
	for x := start; x < finish; x += step.Or(1) {
		xs = append(xs, x)
	}
	return xs
}

var Span = optargs.Func[[]int](span)

func main() {
	fmt.Println(Span(optargs.Kw("start", 0), optargs.Kw("finish", 4)))
	fmt.Println(Span(optargs.Kw("finish", 10), optargs.Kw("step", 3), optargs.Kw("start", 1)))
}
