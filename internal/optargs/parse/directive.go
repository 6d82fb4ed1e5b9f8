package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"

	"github.com/jkelleyrtp/optargs/internal/codefmt"
	"github.com/jkelleyrtp/optargs/internal/typeinfo"
)

// Kind is the kind of a directive.
type Kind int

const (
	Func Kind = iota + 1
	FuncErr
	Proc
	Struct
	StructPtr
)

func kindOf(name string) (Kind, bool) {
	switch name {
	case "Func":
		return Func, true
	case "FuncErr":
		return FuncErr, true
	case "Proc":
		return Proc, true
	case "Struct":
		return Struct, true
	case "StructPtr":
		return StructPtr, true
	}
	return 0, false
}

func (k Kind) String() string {
	switch k {
	case Func:
		return "optargs.Func"
	case FuncErr:
		return "optargs.FuncErr"
	case Proc:
		return "optargs.Proc"
	case Struct:
		return "optargs.Struct"
	case StructPtr:
		return "optargs.StructPtr"
	}
	return "optargs.?"
}

// IsStruct reports whether the directive constructs a struct.
func (k Kind) IsStruct() bool { return k == Struct || k == StructPtr }

// Directive is a keyword-callable entry point declared by a directive like
// optargs.Func or optargs.Struct.
type Directive struct {
	Kind Kind

	// Var is the package-level variable holding the directive. It is erased
	// at code generation.
	Var *types.Var

	// Func is the target function. It is set for Func, FuncErr, and Proc.
	Func typeinfo.Func

	// Struct is the target struct type. It is set for Struct and StructPtr.
	Struct types.Type

	// Result is the type of the value a keyword call evaluates to. For FuncErr,
	// the error is not included. It is nil for Proc.
	Result types.Type

	Sig Signature

	Call    *ast.CallExpr
	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup

	pkg *packages.Package

	// keywords indexes parameters by their names in the declaration order.
	keywords *linkedhashmap.Map
}

// Name returns the variable name. Generated names are prefixed with it.
func (d *Directive) Name() string { return d.Var.Name() }

// Pkg returns the package where the directive is declared. Directive
// implements [codefmt.Pkger] by this method.
func (d *Directive) Pkg() *packages.Package { return d.pkg }

// Pos returns the position where the directive is called. Directive implements
// [codefmt.Poser] by this method.
func (d *Directive) Pos() token.Pos { return d.Call.Pos() }

// String returns a string representation of the directive. For example,
// "optargs.Func[string](goGME)".
func (d *Directive) String() string {
	switch d.Kind {
	case Func, FuncErr:
		return codefmt.Sprintf(d, "%s[%t](%o)", d.Kind, d.Result, d.Func)
	case Proc:
		return codefmt.Sprintf(d, "%s(%o)", d.Kind, d.Func)
	default:
		return codefmt.Sprintf(d, "%s[%t]()", d.Kind, d.Struct)
	}
}

// Keyword finds the parameter of the keyword.
func (d *Directive) Keyword(key string) (Param, bool) {
	v, ok := d.keywords.Get(key)
	if !ok {
		return Param{}, false
	}
	return v.(Param), true
}

// Keywords returns all keywords in the declaration order.
func (d *Directive) Keywords() []string {
	keys := make([]string, 0, d.keywords.Size())
	for _, k := range d.keywords.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// ParseDirectives parses all [Directive]s from the files with the
// "//go:build optargs" constraint. The result is ordered by position.
func (p *Parser) ParseDirectives() ([]*Directive, error) {
	var errs error
	var dirs []*Directive

	structs := typeinfo.NewLookup[*Directive]()

	for _, file := range p.OptargsGoFiles() {
		for dir, err := range p.parseDirectivesInFile(file) {
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			if dir.Kind.IsStruct() {
				if prev, ok := structs.Put(dir.Result, dir); !ok {
					err := codefmt.Errorf(p, dir, `duplicate %s for %t
	previous declaration at %b`, dir.Kind, dir.Result, prev)
					errs = errors.Join(errs, err)
					continue
				}
			}

			dirs = append(dirs, dir)
		}
	}

	if errs != nil {
		return nil, errs
	}

	slices.SortFunc(dirs, func(a, b *Directive) int {
		return int(a.Pos() - b.Pos())
	})
	return dirs, nil
}

// parseDirectivesInFile parses and yields [Directive]s in the given file. Only
// package-level variables are inspected. Directives elsewhere are reported by
// [Parser.Validate].
func (p *Parser) parseDirectivesInFile(file *ast.File) iter.Seq2[*Directive, error] {
	return func(yield func(*Directive, error) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				if len(val.Names) != len(val.Values) {
					// Directives return exactly one value. The assignment
					// like this is invalid:
					// var a, b = optargs.Func[int](f)
					continue
				}

				for i := range val.Values {
					call, ok := val.Values[i].(*ast.CallExpr)
					if !ok {
						continue
					}

					name, ok := p.GetDirective(call)
					if !ok {
						continue
					}
					kind, ok := kindOf(name)
					if !ok {
						// optargs.Kw
						continue
					}

					doc := val.Doc
					if doc == nil && len(gen.Specs) == 1 {
						// var X = optargs.Func[int](f) without parentheses
						doc = gen.Doc
					}

					dir, err := p.parseDirective(kind, val.Names[i], call, doc, val.Comment)
					if !yield(dir, err) {
						return
					}
				}
			}
		}
	}
}

// parseDirective parses a [Directive] from the given AST nodes.
func (p *Parser) parseDirective(kind Kind, id *ast.Ident, call *ast.CallExpr, doc, comment *ast.CommentGroup) (*Directive, error) {
	if id.Name == "_" {
		return nil, codefmt.Errorf(p, id, "cannot assign %s to blank identifier", kind)
	}

	v, ok := p.pkg.TypesInfo.Defs[id].(*types.Var)
	if !ok {
		panic(codefmt.Errorf(p, id, "%s is not a variable", id.Name)) // should never happen
	}

	// The directive function returns func(...any) R where R is the result of
	// the keyword call.
	sig, ok := p.pkg.TypesInfo.TypeOf(call).(*types.Signature)
	if !ok {
		panic(codefmt.Errorf(p, call, "%s does not return a function", kind)) // should never happen
	}

	dir := &Directive{
		Kind:    kind,
		Var:     v,
		Call:    call,
		Doc:     doc,
		Comment: comment,
		pkg:     p.pkg,
	}
	if sig.Results().Len() != 0 {
		dir.Result = sig.Results().At(0).Type()
	}

	var err error
	switch kind {
	case Func, FuncErr, Proc:
		err = p.parseFuncDirective(dir)
	case Struct, StructPtr:
		err = p.parseStructDirective(dir)
	}
	if err != nil {
		return nil, err
	}

	dir.keywords = linkedhashmap.New()
	for _, param := range dir.Sig.Params() {
		dir.keywords.Put(param.Name(), param)
	}
	return dir, nil
}

// parseFuncDirective parses the function argument of optargs.Func,
// optargs.FuncErr, or optargs.Proc.
func (p *Parser) parseFuncDirective(dir *Directive) error {
	expr := ast.Unparen(dir.Call.Args[0])

	switch expr.(type) {
	case *ast.FuncLit:
		return codefmt.Errorf(p, expr, "cannot use function literal with %s; need a declared function", dir.Kind)
	case *ast.IndexExpr, *ast.IndexListExpr:
		return codefmt.Errorf(p, expr, "optargs cannot be used on generic functions")
	}

	if sel, ok := expr.(*ast.SelectorExpr); ok {
		if _, ok := p.pkg.TypesInfo.Selections[sel]; ok {
			// Method value or method expression
			return codefmt.Errorf(p, expr, "optargs cannot be used on methods")
		}
	}

	id, ok := tailIdent(expr)
	if !ok {
		return codefmt.Errorf(p, expr, "cannot use %c with %s; need a declared function", expr, dir.Kind)
	}

	obj := p.pkg.TypesInfo.ObjectOf(id)
	if _, ok := obj.(*types.Nil); ok {
		return codefmt.Errorf(p, expr, "cannot use nil with %s; need a declared function", dir.Kind)
	}
	if _, ok := obj.(*types.Func); !ok {
		return codefmt.Errorf(p, expr, "cannot use %c with %s; need a declared function", expr, dir.Kind)
	}

	var fn typeinfo.Func
	var err error
	switch dir.Kind {
	case Func:
		fn, err = typeinfo.FuncOf[typeinfo.Value](obj)
	case FuncErr:
		fn, err = typeinfo.FuncOf[typeinfo.ValueErr](obj)
	case Proc:
		fn, err = typeinfo.FuncOf[typeinfo.Proc](obj)
	}
	switch {
	case errors.Is(err, typeinfo.ErrMethod), errors.Is(err, typeinfo.ErrGeneric), errors.Is(err, typeinfo.ErrVariadic):
		return codefmt.Errorf(p, expr, "optargs %s", err.Error())
	case err != nil:
		return codefmt.Errorf(p, expr, "cannot use %o with %s; %s", obj, dir.Kind, err.Error())
	}
	dir.Func = fn

	if dir.Kind != Proc && !types.AssignableTo(fn.Result, dir.Result) {
		return codefmt.Errorf(p, expr, "cannot use %o with %s; it returns %t", obj, dir.Kind, fn.Result)
	}

	dir.Sig, err = p.ClassifyFunc(dir, fn)
	return err
}

// parseStructDirective parses the type argument of optargs.Struct or
// optargs.StructPtr.
func (p *Parser) parseStructDirective(dir *Directive) error {
	typ := dir.Result
	if dir.Kind == StructPtr {
		typ = dir.Result.(*types.Pointer).Elem()
	}

	if ptr, ok := types.Unalias(typ).(*types.Pointer); ok {
		return codefmt.Errorf(p, dir, "only structs can be constructed with keywords; use %s[%t] instead of %s[%t]",
			StructPtr, ptr.Elem(), dir.Kind, typ)
	}
	dir.Struct = typ

	var err error
	dir.Sig, err = p.ClassifyStruct(dir, typ)
	return err
}
