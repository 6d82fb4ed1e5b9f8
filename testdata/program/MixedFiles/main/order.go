package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "sell"
	}
	return "buy"
}

func place(symbol string, side Side, limit optargs.Option[float64]) string {
	if price, ok := limit.Get(); ok {
		return fmt.Sprintf("%s %s limit %.2f", side, symbol, price)
	}
	return fmt.Sprintf("%s %s market", side, symbol)
}
