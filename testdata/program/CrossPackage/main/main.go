package main

import (
	"fmt"

	"example.com/CrossPackage/lib"
)

func main() {
	b := lib.GoGMEStart().ToTheMoon(true)
	b2 := lib.GoGMEPrice(b, 9.5)
	fmt.Println(lib.GoGMEFinish(lib.GoGMERocketShips(b2, 3)))
	fmt.Println(lib.Hold(420.69))
}
