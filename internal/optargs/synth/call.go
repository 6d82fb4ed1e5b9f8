package synth

import (
	"go/ast"
	"go/token"

	"github.com/jkelleyrtp/optargs/internal/optargs/parse"
)

// Call rewrites a keyword call into a chain of builder calls. Arguments are
// given in the written order:
//
//	// source:
//	GoGME(optargs.Kw("price", 9.5), rocketShips, optargs.Kw("toTheMoon", true))
//
//	// rewritten:
//	GoGMEFinish(GoGMERocketShips(GoGMEPrice(GoGMEStart(), 9.5), rocketShips).ToTheMoon(true))
//
// call is the node to rewrite. It may differ from kc.Call if nested keyword
// calls in its arguments have already been rewritten. Argument values are
// taken from call.
func Call(b *Builder, kc parse.KeywordCall, call *ast.CallExpr) ast.Expr {
	pos := call.Pos()

	var expr ast.Expr = &ast.CallExpr{Fun: ident(b.StartName, pos)}
	for _, arg := range kc.Args {
		value := arg.Value(call)

		if !arg.Param.Optional {
			expr = &ast.CallExpr{
				Fun:  ident(b.Setters[arg.Param.Index], pos),
				Args: []ast.Expr{expr, value},
			}
			continue
		}

		expr = &ast.CallExpr{
			Fun: &ast.SelectorExpr{
				X:   expr,
				Sel: ident(arg.Param.Setter, token.NoPos),
			},
			Args: []ast.Expr{value},
		}
	}

	return &ast.CallExpr{
		Fun:    ident(b.FinishName, pos),
		Lparen: call.Lparen,
		Args:   []ast.Expr{expr},
		Rparen: call.Rparen,
	}
}

func ident(name string, pos token.Pos) *ast.Ident {
	return &ast.Ident{NamePos: pos, Name: name}
}
