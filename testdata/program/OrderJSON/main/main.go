//go:build optargs

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jkelleyrtp/optargs"
)

type Order struct {
	Symbol string                  `json:"symbol"`
	Qty    int                     `json:"qty"`
	Limit  optargs.Option[float64] `json:"limit"`
	Note   optargs.Option[string]  `json:"note"`
}

var NewOrder = optargs.StructPtr[Order]()

// order builds an order from query values. An order without a limit is a
// market order.
func order(symbol, qty, limit string) (*Order, error) {
	n, err := strconv.Atoi(qty)
	if err != nil {
		return nil, err
	}
	if limit != "" {
		price, err := strconv.ParseFloat(limit, 64)
		if err != nil {
			return nil, err
		}
		return NewOrder(optargs.Kw("Symbol", symbol), optargs.Kw("Qty", n), optargs.Kw("Limit", price)), nil
	}
	return NewOrder(optargs.Kw("Note", "market order"), optargs.Kw("Symbol", symbol), optargs.Kw("Qty", n)), nil
}

func main() {
	for _, q := range [][3]string{{"GME", "10", "420.69"}, {"AMC", "5", ""}} {
		o, err := order(q[0], q[1], q[2])
		if err != nil {
			panic(err)
		}
		data, err := json.Marshal(o)
		if err != nil {
			panic(err)
		}
		fmt.Println(string(data))
	}
}
