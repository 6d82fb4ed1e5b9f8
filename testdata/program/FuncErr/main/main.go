//go:build optargs

package main

import (
	"fmt"
	"strconv"

	"github.com/jkelleyrtp/optargs"
)

func parseInt(s string, base optargs.Option[int], bitSize optargs.Option[int]) (int64, error) {
	return strconv.ParseInt(s, base.Or(10), bitSize.Or(64))
}

var ParseInt = optargs.FuncErr[int64](parseInt)

func main() {
	fmt.Println(ParseInt(optargs.Kw("s", "42")))
	fmt.Println(ParseInt(optargs.Kw("base", 16), optargs.Kw("s", "ff")))
	fmt.Println(ParseInt(optargs.Kw("s", "300"), optargs.Kw("bitSize", 8)))
}
