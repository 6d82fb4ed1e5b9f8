package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger    interface{ Pkg() *packages.Package }
	Poser    interface{ Pos() token.Pos }
	Ender    interface{ End() token.Pos }
	Objecter interface{ Object() types.Object }
	Typer    interface{ Type() types.Type }

	// Keyword is a parameter or a struct field which is given by its name in
	// a keyword call. *types.Var and parse.Param are keywords.
	Keyword interface {
		Name() string
		Type() types.Type
	}
)

// List is formatted as its items separated by ", ". Each item is formatted
// with the verb of the list. It renders argument lists and struct literal
// elements of generated code:
//
//	w.Printf("return %o(%c)", fn, List{arg0, arg1}) // return goGME(b.arg0.Value(), b.arg1)
type List []any

// ListOf makes a [List] of the items.
func ListOf[T any](items []T) List {
	list := make(List, len(items))
	for i, item := range items {
		list[i] = item
	}
	return list
}

// wrap wraps an argument of Printf-like functions. Values of go/types and
// go/ast are formatted as code by the verbs of [codeArg].
func (f Formatter) wrap(arg any) any {
	switch arg := arg.(type) {
	case List:
		items := make(listArg, len(arg))
		for i, item := range arg {
			items[i] = f.wrap(item)
		}
		return items
	case token.Pos, token.Position, ast.Expr, types.Object, types.Type:
		return codeArg{arg, f}
	case Poser, Objecter, Typer, Keyword:
		return codeArg{arg, f}
	}
	return arg
}

func (f Formatter) wrapPrintfArgs(args []any) []any {
	wrapped := make([]any, len(args))
	for i, arg := range args {
		wrapped[i] = f.wrap(arg)
	}
	return wrapped
}

type listArg []any

// Format implements fmt.Formatter.
func (l listArg) Format(s fmt.State, verb rune) {
	format := fmt.FormatString(s, verb)
	for i, item := range l {
		if i != 0 {
			_, _ = io.WriteString(s, ", ")
		}
		fmt.Fprintf(s, format, item)
	}
}

type codeArg struct {
	x   any
	fmt Formatter
}

func (a codeArg) object() types.Object {
	switch x := a.x.(type) {
	case types.Object:
		return x
	case Objecter:
		return x.Object()
	}
	if named, ok := a.typ().(*types.Named); ok {
		return named.Obj()
	}
	return nil
}

// typ returns the type without looking up the object or the expression.
func (a codeArg) typ() types.Type {
	switch x := a.x.(type) {
	case types.Type:
		return x
	case Typer:
		return x.Type()
	}
	return nil
}

func (a codeArg) position() (token.Position, bool) {
	switch x := a.x.(type) {
	case token.Position:
		return x, true
	case token.Pos:
		return a.fmt.Fset.Position(x), true
	case Poser:
		return a.fmt.Fset.Position(x.Pos()), true
	}
	if obj := a.object(); obj != nil {
		return a.fmt.Fset.Position(obj.Pos()), true
	}
	return token.Position{}, false
}

// code renders the argument by the verb. It returns false if the argument
// does not support the verb.
func (a codeArg) code(verb rune) (string, bool) {
	switch verb {
	case 'o':
		if obj := a.object(); obj != nil {
			return a.fmt.Obj(obj), true
		}

	case 't':
		if typ := a.typ(); typ != nil {
			return a.fmt.Type(typ), true
		}
		if obj := a.object(); obj != nil {
			return a.fmt.Type(obj.Type()), true
		}
		if expr, ok := a.x.(ast.Expr); ok {
			if typ := a.fmt.TypesInfo.TypeOf(expr); typ != nil {
				return a.fmt.Type(typ), true
			}
		}

	case 'c':
		if expr, ok := a.x.(ast.Expr); ok {
			return a.fmt.Expr(expr), true
		}

	case 'k':
		if kw, ok := a.x.(Keyword); ok {
			return a.fmt.Keyword(kw), true
		}

	case 'b':
		if pos, ok := a.position(); ok {
			return FormatPosition(pos), true
		}
	}
	return "", false
}

// Format implements fmt.Formatter.
//
// Supported verbs:
//
//	%o: types.Object - qualified name, e.g. strconv.Atoi
//	%t: types.Type - qualified type, e.g. optargs.Option[float64]
//	%c: ast.Expr - code form
//	%k: Keyword - name and type, e.g. price float64
//	%b: token.Position - file:line:column form
//
// Other verbs fall back to the default formatting of the fmt package.
func (a codeArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 'o', 't', 'c', 'k', 'b':
		code, ok := a.code(verb)
		if !ok {
			fmt.Fprintf(s, "[%%%c cannot format %T]", verb, a.x)
			return
		}
		_, _ = io.WriteString(s, code)
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.x)
	}
}

func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrapPrintfArgs(args)...)
}

func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, f.wrapPrintfArgs(args)...)
}
