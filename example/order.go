package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

// Order is an order to trade a stock. Absent options are encoded as null.
type Order struct {
	Symbol string                  `json:"symbol"`
	Qty    int                     `json:"qty"`
	Limit  optargs.Option[float64] `json:"limit"`
	Note   optargs.Option[string]  `json:"note"`
}

func quote(symbol string, qty int, limit optargs.Option[float64]) string {
	if price, ok := limit.Get(); ok {
		return fmt.Sprintf("buy %d %s at $%.2f", qty, symbol, price)
	}
	return fmt.Sprintf("buy %d %s at market", qty, symbol)
}
