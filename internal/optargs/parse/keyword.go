package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/jkelleyrtp/optargs/internal/codefmt"
	"github.com/jkelleyrtp/optargs/internal/lcs"
)

// KeywordCall is a call of a directive variable with keyword arguments:
//
//	GoGME(optargs.Kw("price", 10.0), doges)
type KeywordCall struct {
	Directive *Directive
	Call      *ast.CallExpr

	// Args are the keyword arguments in the written order.
	Args []KeywordArg
}

// Pos returns the position of the call. KeywordCall implements
// [codefmt.Poser] by this method.
func (kc KeywordCall) Pos() token.Pos { return kc.Call.Pos() }

// KeywordArg is an item of a keyword call. It is optargs.Kw(key, value) or a
// bare identifier as a shorthand of optargs.Kw("identifier", identifier).
type KeywordArg struct {
	Param Param

	// Index is the position of the item in the call arguments.
	Index int

	// Shorthand indicates that the item is a bare identifier.
	Shorthand bool
}

// Value returns the value expression of the item in the given call. The call
// is taken as an argument because the value may have been rewritten after
// parsing.
func (arg KeywordArg) Value(call *ast.CallExpr) ast.Expr {
	item := call.Args[arg.Index]
	if arg.Shorthand {
		return item
	}
	return item.(*ast.CallExpr).Args[1]
}

// ParseKeywordCalls parses all calls of the directive variables in the files
// with the "//go:build optargs" constraint. The result is indexed by the call
// expressions.
func (p *Parser) ParseKeywordCalls(dirs []*Directive) (map[*ast.CallExpr]KeywordCall, error) {
	byVar := make(map[*types.Var]*Directive)
	for _, dir := range dirs {
		byVar[dir.Var] = dir
	}

	var errs error
	calls := make(map[*ast.CallExpr]KeywordCall)

	for _, file := range p.OptargsGoFiles() {
		ast.Inspect(file, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok {
				return true
			}

			dir, ok := p.keywordCallee(call, byVar)
			if !ok {
				return true
			}

			kc, err := p.parseKeywordCall(dir, call)
			if err != nil {
				errs = errors.Join(errs, err)
			} else {
				calls[call] = kc
			}

			// Keyword calls may be nested in values.
			return true
		})
	}

	if errs != nil {
		return nil, errs
	}
	return calls, nil
}

// keywordCallee returns the directive if the call is a keyword call.
func (p *Parser) keywordCallee(call *ast.CallExpr, byVar map[*types.Var]*Directive) (*Directive, bool) {
	id, ok := call.Fun.(*ast.Ident)
	if !ok {
		return nil, false
	}
	v, ok := p.pkg.TypesInfo.Uses[id].(*types.Var)
	if !ok {
		return nil, false
	}
	dir, ok := byVar[v]
	return dir, ok
}

// parseKeywordCall parses the arguments of a keyword call. It resolves every
// keyword to a parameter and reports unknown keywords, repeated or missing
// required keywords, and values of wrong types.
func (p *Parser) parseKeywordCall(dir *Directive, call *ast.CallExpr) (KeywordCall, error) {
	if call.Ellipsis.IsValid() {
		return KeywordCall{}, codefmt.Errorf(p, call, "cannot spread arguments into keyword call of %s", dir.Name())
	}

	kc := KeywordCall{Directive: dir, Call: call}
	var errs error

	// given indexes required keywords already given by their first items.
	given := linkedhashmap.New()

	for i, item := range call.Args {
		key, keyExpr, shorthand, err := p.parseKeywordItem(item)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		param, ok := dir.Keyword(key)
		if !ok {
			errs = errors.Join(errs, p.unknownKeyword(dir, keyExpr, key))
			continue
		}

		arg := KeywordArg{Param: param, Index: i, Shorthand: shorthand}

		if !param.Optional {
			if prev, ok := given.Get(key); ok {
				err := codefmt.Errorf(p, keyExpr, `required keyword %q of %s is given twice
	previous keyword at %b`, key, dir.Name(), prev.(ast.Expr))
				errs = errors.Join(errs, err)
				continue
			}
			given.Put(key, keyExpr)
		}

		if err := p.checkKeywordValue(dir, param, arg.Value(call)); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		kc.Args = append(kc.Args, arg)
	}

	if errs != nil {
		return KeywordCall{}, errs
	}

	var missing []string
	for _, param := range dir.Sig.Required {
		if _, ok := given.Get(param.Name()); !ok {
			missing = append(missing, param.Name())
		}
	}
	if len(missing) != 0 {
		return KeywordCall{}, codefmt.Errorf(p, call, "missing required keyword %s in call of %s",
			codefmt.ListOf(missing), dir.Name())
	}

	return kc, nil
}

// parseKeywordItem parses an item of a keyword call. It returns the keyword
// and the expression to report errors about the keyword at.
func (p *Parser) parseKeywordItem(item ast.Expr) (string, ast.Expr, bool, error) {
	switch item := item.(type) {
	case *ast.Ident:
		// Shorthand
		return item.Name, item, true, nil

	case *ast.CallExpr:
		if !p.IsDirective(item, "Kw") {
			break
		}
		key, ok := p.evalString(item.Args[0])
		if !ok {
			return "", nil, false, codefmt.Errorf(p, item.Args[0], "keyword %c is not a constant string", item.Args[0])
		}
		return key, item.Args[0], false, nil
	}

	return "", nil, false, codefmt.Errorf(p, item, "cannot use %c as keyword argument; need optargs.Kw(key, value) or an identifier", item)
}

// unknownKeyword reports a keyword which is not a parameter of the directive.
// It suggests the most similar keyword if any.
func (p *Parser) unknownKeyword(dir *Directive, at ast.Expr, key string) error {
	keywords := dir.Keywords()
	if len(keywords) == 0 {
		return codefmt.Errorf(p, at, "unknown keyword %q; %s takes no keywords", key, dir.Name())
	}

	if similar, ok := lcs.Closest(key, keywords); ok {
		return codefmt.Errorf(p, at, `unknown keyword %q of %s; did you mean %q?
	available keywords: %s`, key, dir.Name(), similar, codefmt.ListOf(keywords))
	}
	return codefmt.Errorf(p, at, `unknown keyword %q of %s
	available keywords: %s`, key, dir.Name(), codefmt.ListOf(keywords))
}

// checkKeywordValue reports a value which is not assignable to the parameter.
// Untyped values like constants and nil are left to the compiler because
// their assignability depends on their values.
func (p *Parser) checkKeywordValue(dir *Directive, param Param, value ast.Expr) error {
	// The value of Kw is an interface argument, so an untyped constant is
	// recorded with its default type instead of the parameter type.
	tv, ok := p.pkg.TypesInfo.Types[value]
	if !ok || tv.Type == nil || tv.Value != nil || tv.IsNil() {
		return nil
	}
	typ := tv.Type
	if basic, ok := typ.(*types.Basic); ok && basic.Info()&types.IsUntyped != 0 {
		return nil
	}

	if types.AssignableTo(typ, param.Elem) {
		return nil
	}
	return codefmt.Errorf(p, value, "cannot use %c (%t) as %t for keyword %q of %s", value, typ, param.Elem, param.Name(), dir.Name())
}
