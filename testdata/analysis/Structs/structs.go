//go:build optargs

package structs

import "github.com/jkelleyrtp/optargs"

type Order struct {
	Symbol string
	Qty    int
	Note   optargs.Option[string]
}

type Base struct{ ID int }

type Embedded struct {
	Base // want `embedded field Base of Embedded cannot be a keyword`
	Name string
}

type Amount int

var (
	NewOrder    = optargs.Struct[Order]()
	NewOrderPtr = optargs.StructPtr[Order]()
	NewOrder2   = optargs.Struct[Order]()    // want `duplicate optargs.Struct for Order`
	NewPtr      = optargs.Struct[*Order]()   // want `use optargs.StructPtr\[Order\] instead of optargs.Struct\[\*Order\]`
	NewAmount   = optargs.Struct[Amount]()   // want `only structs can be constructed with keywords; Amount is not a struct`
	NewEmbedded = optargs.Struct[Embedded]()
)
