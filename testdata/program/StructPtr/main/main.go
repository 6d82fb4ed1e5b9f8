//go:build optargs

package main

import (
	"fmt"
	"time"

	"github.com/jkelleyrtp/optargs"
)

type Order struct {
	Symbol  string
	Qty     int
	Timeout optargs.Option[time.Duration]
}

var NewOrder = optargs.StructPtr[Order]()

func main() {
	o := NewOrder(optargs.Kw("Qty", 10), optargs.Kw("Symbol", "GME"))
	o.Qty++
	fmt.Println(o.Symbol, o.Qty, o.Timeout)

	p := NewOrder(optargs.Kw("Symbol", "AMC"), optargs.Kw("Qty", 1), optargs.Kw("Timeout", time.Second))
	fmt.Println(p.Symbol, p.Qty, p.Timeout, o != p)
}
