//go:build optargs

package directives

import "github.com/jkelleyrtp/optargs"

func goGME(price float64, rocketShips int, toTheMoon optargs.Option[bool]) string { return "" }

func sum(xs ...int) int { return 0 }

func identity[T any](x T) T { return x }

func ordered(a optargs.Option[int], b int) {} // want `non-optional parameter b must precede optional parameters`

func collide(toTheMoon int, ToTheMoon int) {} // want `toTheMoon and ToTheMoon have the same setter name ToTheMoon`

type Wallet struct{}

func (Wallet) Buy(price float64) string { return "" }

var (
	GoGME = optargs.Func[string](goGME)

	Lit      = optargs.Func[string](func(price float64) string { return "" }) // want `cannot use function literal with optargs.Func; need a declared function`
	Sum      = optargs.Func[int](sum)                                         // want `optargs cannot be used on variadic functions`
	Identity = optargs.Func[int](identity[int])                               // want `optargs cannot be used on generic functions`
	Buy      = optargs.Func[string](Wallet{}.Buy)                             // want `optargs cannot be used on methods`
	Wrong    = optargs.Func[int](goGME)                                       // want `cannot use goGME with optargs.Func; it returns string`
	Ordered  = optargs.Proc(ordered)
	Collide  = optargs.Proc(collide)
	_        = optargs.Proc(ordered) // want `cannot assign optargs.Proc to blank identifier`
)
