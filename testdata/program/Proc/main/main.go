//go:build optargs

package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

func greet(name string, greeting optargs.Option[string]) {
	fmt.Printf("%s, %s!\n", greeting.Or("Hello"), name)
}

func hodl() {
	fmt.Println("hodl")
}

var (
	Greet = optargs.Proc(greet)
	Hodl  = optargs.Proc(hodl)
)

func main() {
	Greet(optargs.Kw("name", "Gopher"))
	Greet(optargs.Kw("greeting", "Hi"), optargs.Kw("name", "Gopher"))
	Hodl()
}
