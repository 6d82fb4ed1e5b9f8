//go:build optargs

package main

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

func label(text string, color optargs.Option[string]) string {
	return text + ":" + color.Or("none")
}

var Label = optargs.Func[string](label)

func main() {
	fmt.Println(Label(optargs.Kw("color", "red"), optargs.Kw("text", "a"), optargs.Kw("color", "blue")))
}
