// Package optargs provides directives for keyword-argument calls whose required
// parameters are checked at compile time.
//
// A function or a struct with many optional parameters is awkward to call in
// Go. Optargs lets such a function be called with named, order-independent
// arguments. Parameters typed [Option] are optional. The others are required,
// and a call that misses one of them does not compile.
//
// To start with Optargs, add a build constraint to files containing Optargs
// directives:
//
//	//go:build optargs
//
// Declare a keyword-callable entry point with a directive, and call it with
// [Kw] items in any order. A bare identifier is a shorthand for the keyword of
// the same name:
//
//	// plain Go:
//	func goGME(price float64, rocketShips int, toTheMoon optargs.Option[bool]) string
//
//	// source:
//	var GoGME = optargs.Func[string](goGME)
//
//	func main() {
//		rocketShips := 3
//		fmt.Println(GoGME(rocketShips, optargs.Kw("price", 9.5)))
//	}
//
// After declaring directives, run the optargs command. It will generate
// optargs_gen.go for your package:
//
//	go run github.com/jkelleyrtp/optargs/cmd/optargs
//
// The generated code contains a typestate builder for every directive, and
// the keyword calls are rewritten into builder chains:
//
//	// generated: (simplified)
//	func main() {
//		rocketShips := 3
//		fmt.Println(GoGMEFinish(GoGMEPrice(GoGMERocketShips(GoGMEStart(), rocketShips), 9.5)))
//	}
//
// # Builders
//
// The builder is generic over one [Flag] per required parameter. A required
// parameter can be given only while its flag is [Unset], and the finish
// function accepts only the builder with every flag [Set]. So a missing or
// repeated required parameter is a compile error. Optional parameters are
// builder methods that keep the flags as they are, and the last value given
// wins.
//
// The builder is plain Go code. It can also be used directly without keyword
// calls:
//
//	b0 := GoGMEStart()             // GoGMEBuilder[Unset, Unset]
//	b1 := GoGMEPrice(b0, 9.5)      // GoGMEBuilder[Set, Unset]
//	b2 := GoGMERocketShips(b1, 3)  // GoGMEBuilder[Set, Set]
//	fmt.Println(GoGMEFinish(b2.ToTheMoon(true)))
//
// # Diagnostics
//
// The optargs command reports unknown keywords, missing or repeated required
// keywords, and ill-formed declarations with their positions in the source
// code. The same diagnostics are available as a [go/analysis] analyzer in
// github.com/jkelleyrtp/optargs/pkg/optargsanalysis.
package optargs

// keyword is an item of a keyword call. It is unexported so there is no way
// to create it other than [Kw].
type keyword *struct{}

// Func directive declares a keyword-callable entry point for fn. fn must be a
// declared function, not a method, a function literal, or a variable. It must
// return exactly one value of type R:
//
//	// source:
//	var Area = optargs.Func[float64](area)
//	var a = Area(optargs.Kw("width", 3.0), optargs.Kw("height", 4.0))
//
// The parameters of fn become the keywords. Parameters of type [Option] are
// optional and must follow all required parameters. The variable holding the
// directive is erased at code generation, and its builder is generated:
//
//	// generated: (simplified)
//	type AreaBuilder[M0, M1 optargs.Flag] struct{ ... }
//	func AreaStart() AreaBuilder[optargs.Unset, optargs.Unset]
//	func AreaWidth[M1 optargs.Flag](b AreaBuilder[optargs.Unset, M1], v float64) AreaBuilder[optargs.Set, M1]
//	func AreaHeight[M0 optargs.Flag](b AreaBuilder[M0, optargs.Unset], v float64) AreaBuilder[M0, optargs.Set]
//	func AreaFinish(b AreaBuilder[optargs.Set, optargs.Set]) float64
//
// The variable can only be called. It cannot be used as a value.
func Func[R any](fn any) func(...any) R {
	panic("optargs: not generated")
}

// FuncErr is the variant of [Func] for functions returning (R, error).
func FuncErr[R any](fn any) func(...any) (R, error) {
	panic("optargs: not generated")
}

// Proc is the variant of [Func] for functions without results.
func Proc(fn any) func(...any) {
	panic("optargs: not generated")
}

// Struct directive declares a keyword-callable constructor for the struct type
// T. The exported fields of T become the keywords, or all fields if T is
// declared in the same package. Fields of type [Option] are optional and must
// follow all required fields:
//
//	// source:
//	var NewPoint = optargs.Struct[Point]()
//	var p = NewPoint(optargs.Kw("X", 1), optargs.Kw("Y", 2))
//
//	// generated: (simplified)
//	func NewPointFinish(b NewPointBuilder[optargs.Set, optargs.Set]) Point {
//		return Point{X: b.arg0.Value(), Y: b.arg1.Value()}
//	}
//
// Embedded fields are not allowed. Blank fields are skipped.
func Struct[T any]() func(...any) T {
	panic("optargs: not generated")
}

// StructPtr is the variant of [Struct] which constructs a shared *T instead of
// a T value.
func StructPtr[T any]() func(...any) *T {
	panic("optargs: not generated")
}

// Kw is a keyword argument of a keyword call. key must be a constant string
// naming a parameter of the callee:
//
//	Area(optargs.Kw("width", 3.0), optargs.Kw("height", 4.0))
//
// Kw is only allowed as an argument of a keyword call. A bare identifier
// argument x is the same as optargs.Kw("x", x).
func Kw(key string, value any) keyword {
	panic("optargs: not generated")
}
