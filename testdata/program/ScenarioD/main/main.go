//go:build optargs

package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

type Record struct {
	A int32
	B optargs.Option[string]
}

var NewRecord = optargs.Struct[Record]()

func main() {
	r := NewRecord(optargs.Kw("A", 10))
	fmt.Println(r)
	fmt.Println(r == Record{A: 10, B: optargs.None[string]()})

	r = NewRecord(optargs.Kw("B", "memo"), optargs.Kw("A", -1))
	fmt.Println(r)
}
