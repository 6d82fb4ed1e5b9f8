package lib

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

func goGME(price float64, rocketShips int, toTheMoon optargs.Option[bool]) string {
	if toTheMoon.Or(false) {
		return fmt.Sprintf("%d rocket ships to the moon at $%.2f", rocketShips, price)
	}
	return fmt.Sprintf("hold at $%.2f", price)
}
