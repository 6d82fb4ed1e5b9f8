// Package synth synthesizes typestate builders for keyword-callable entry
// points, and rewrites keyword calls into builder chains.
package synth

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/jkelleyrtp/optargs/internal/codefmt"
	"github.com/jkelleyrtp/optargs/internal/optargs/parse"
	"github.com/jkelleyrtp/optargs/internal/optargs/shape"
)

// Builder is a synthesized typestate builder of a [parse.Directive]. It has
// one flag per required parameter.
type Builder struct {
	Dir *parse.Directive

	// TypeName, StartName, and FinishName are the package-level names of the
	// builder type and its start and finish functions.
	TypeName   string
	StartName  string
	FinishName string

	// Setters are the package-level names of the functions giving the
	// required parameters. Optional parameters are given by methods named
	// after their setter names.
	Setters []string
}

// Pkg implements [codefmt.Pkger].
func (b *Builder) Pkg() *packages.Package { return b.Dir.Pkg() }

// Pos implements [codefmt.Poser].
func (b *Builder) Pos() token.Pos { return b.Dir.Pos() }

// Build names a builder for the directive. All package-level names of the
// builder are reserved in ns. It fails if any of them is already used.
func Build(dir *parse.Directive, ns codefmt.NS) (*Builder, error) {
	b := &Builder{
		Dir:        dir,
		TypeName:   dir.Name() + "Builder",
		StartName:  dir.Name() + "Start",
		FinishName: dir.Name() + "Finish",
	}
	b.Setters = setterNames(dir, b.TypeName, b.StartName, b.FinishName)

	var errs error
	for _, name := range b.names() {
		if ns.Reserve(name) {
			continue
		}

		if obj := dir.Pkg().Types.Scope().Lookup(name); obj != nil {
			err := codefmt.Errorf(dir, dir.Var, `cannot generate %s for %s; already declared
	previous declaration at %b`, name, dir.Name(), obj)
			errs = errors.Join(errs, err)
			continue
		}
		err := codefmt.Errorf(dir, dir.Var, "cannot generate %s for %s; already generated for another name", name, dir.Name())
		errs = errors.Join(errs, err)
	}
	if errs != nil {
		return nil, errs
	}
	return b, nil
}

// setterNames names the functions giving the required parameters. A setter
// named like the builder type or its start or finish function, for a
// parameter named start for example, is suffixed with "Arg" until it is
// unique within the builder.
func setterNames(dir *parse.Directive, fixed ...string) []string {
	taken := make(map[string]bool)
	for _, name := range fixed {
		taken[name] = true
	}
	for _, param := range dir.Sig.Required {
		taken[dir.Name()+param.Setter] = true
	}

	var setters []string
	for _, param := range dir.Sig.Required {
		name := dir.Name() + param.Setter
		if slices.Contains(fixed, name) {
			for taken[name] {
				name += "Arg"
			}
			taken[name] = true
		}
		setters = append(setters, name)
	}
	return setters
}

// names returns all package-level names of the builder.
func (b *Builder) names() []string {
	names := []string{b.TypeName, b.StartName}
	names = append(names, b.Setters...)
	return append(names, b.FinishName)
}

// field returns the name of the builder field for the i-th parameter. Fields
// are unexported and setter names are exported, so they never collide.
func field(i int) string { return fmt.Sprintf("arg%d", i) }

// WriteDefineCode writes the declarations of the builder: the type, the start
// function, a function per required parameter, a method per optional
// parameter, and the finish function. w should have a namespace local to the
// builder.
func (b *Builder) WriteDefineCode(w *codefmt.Writer) {
	dir := b.Dir
	n := len(dir.Sig.Required)

	// Package names qualifying types in the generated code must not be
	// shadowed by the local names.
	for _, imp := range dir.Pkg().Types.Imports() {
		w.Reserve(imp.Name())
	}
	qual := w.Import(parse.ImportPath, "optargs")
	w.Reserve(qual)

	params := make([]string, n)
	for i := range params {
		params[i] = w.Name(fmt.Sprintf("M%d", i))
	}
	s := shape.New(params, qual)
	varB := w.Name("b")
	varV := w.Name("v")

	// Builder type
	w.Printf("// %s collects the arguments of %s.\n", b.TypeName, dir.Name())
	if dir.Doc != nil {
		w.Comment("\n" + dir.Doc.Text())
	}
	w.Printf("type %s%s struct {\n", b.TypeName, s.Decl(shape.Generic(n)))
	for _, param := range dir.Sig.Params() {
		w.Printf("%s %s.Option[%t]\n", field(param.Index), qual, param.Elem)
	}
	w.Printf("}\n\n")

	// Start
	start := b.TypeName + s.Args(shape.Start(n))
	w.Printf("// %s returns a new %s without any arguments.\n", b.StartName, b.TypeName)
	w.Printf("func %s() %s {\n", b.StartName, start)
	w.Printf("return %s{}\n", start)
	w.Printf("}\n\n")

	// Required parameters
	for i, param := range dir.Sig.Required {
		t := shape.Required(n, i)
		from := b.TypeName + s.Args(t.From)
		to := b.TypeName + s.Args(t.To)

		w.Printf("// %s gives the required argument %k.\n", b.Setters[i], param)
		w.Printf("func %s%s(%s %s, %s %t) %s {\n", b.Setters[i], s.Decl(t.From), varB, from, varV, param.Elem, to)
		w.Printf("%s.%s = %s.Some(%s)\n", varB, field(param.Index), qual, varV)
		w.Printf("return %s(%s)\n", to, varB)
		w.Printf("}\n\n")
	}

	// Optional parameters
	for _, param := range dir.Sig.Optional {
		recv := b.TypeName + s.Args(shape.Optional(n).From)

		w.Printf("// %s gives the optional argument %k. The last given value wins.\n", param.Setter, param)
		w.Printf("func (%s %s) %s(%s %t) %s {\n", varB, recv, param.Setter, varV, param.Elem, recv)
		w.Printf("%s.%s = %s.Some(%s)\n", varB, field(param.Index), qual, varV)
		w.Printf("return %s\n", varB)
		w.Printf("}\n\n")
	}

	// Finish
	finish := b.TypeName + s.Args(shape.Finish(n))
	switch dir.Kind {
	case parse.Func:
		w.Printf("// %s calls %s with the arguments.\n", b.FinishName, dir.Func.Name())
		w.Printf("func %s(%s %s) %t {\n", b.FinishName, varB, finish, dir.Result)
		w.Printf("return %o(%c)\n", dir.Func, b.args(varB))
	case parse.FuncErr:
		w.Printf("// %s calls %s with the arguments.\n", b.FinishName, dir.Func.Name())
		w.Printf("func %s(%s %s) (%t, error) {\n", b.FinishName, varB, finish, dir.Result)
		w.Printf("return %o(%c)\n", dir.Func, b.args(varB))
	case parse.Proc:
		w.Printf("// %s calls %s with the arguments.\n", b.FinishName, dir.Func.Name())
		w.Printf("func %s(%s %s) {\n", b.FinishName, varB, finish)
		w.Printf("%o(%c)\n", dir.Func, b.args(varB))
	case parse.Struct:
		w.Printf("// %s constructs %t with the arguments.\n", b.FinishName, dir.Struct)
		w.Printf("func %s(%s %s) %t {\n", b.FinishName, varB, finish, dir.Result)
		w.Printf("return %t{%c}\n", dir.Struct, b.fields(varB))
	case parse.StructPtr:
		w.Printf("// %s constructs %t with the arguments.\n", b.FinishName, dir.Result)
		w.Printf("func %s(%s %s) %t {\n", b.FinishName, varB, finish, dir.Result)
		w.Printf("return &%t{%c}\n", dir.Struct, b.fields(varB))
	}
	w.Printf("}\n")
}

// value returns the expression to read the parameter from the builder.
// Required parameters are unwrapped. Optional parameters are passed through as
// Option.
func value(varB string, param parse.Param) ast.Expr {
	var expr ast.Expr = &ast.SelectorExpr{X: ast.NewIdent(varB), Sel: ast.NewIdent(field(param.Index))}
	if param.Optional {
		return expr
	}
	return &ast.CallExpr{Fun: &ast.SelectorExpr{X: expr, Sel: ast.NewIdent("Value")}}
}

// args returns the arguments of the target function.
func (b *Builder) args(varB string) codefmt.List {
	var args codefmt.List
	for _, param := range b.Dir.Sig.Params() {
		args = append(args, value(varB, param))
	}
	return args
}

// fields returns the keyed elements of the struct literal.
func (b *Builder) fields(varB string) codefmt.List {
	var elems codefmt.List
	for _, param := range b.Dir.Sig.Params() {
		elems = append(elems, &ast.KeyValueExpr{Key: ast.NewIdent(param.Name()), Value: value(varB, param)})
	}
	return elems
}
