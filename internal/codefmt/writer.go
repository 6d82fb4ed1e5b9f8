package codefmt

import (
	"go/ast"
	"go/token"
	"go/types"
	"io"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer writes generated code of a package. Packages referred by the
// formatted arguments are collected as imports, and names of local
// declarations are allocated in its namespace.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
	ns      NS
}

// NewWriter creates a new [Writer] without a namespace. Use [Writer.WithNS]
// to allocate names.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
	}
}

// WithNS returns a writer sharing the output and the imports, with its own
// namespace.
func (w *Writer) WithNS(ns NS) *Writer {
	cp := *w
	cp.ns = ns
	return &cp
}

// Printf formats code by [Formatter.Fprintf]. Packages of the arguments are
// imported.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	w.importArgs(args...)
	return w.fmt.Fprintf(w.w, format, args...)
}

// Comment writes the text as a line comment. A blank line of the text is
// written as "//" without a trailing space.
func (w *Writer) Comment(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		_, _ = io.WriteString(w.w, strings.TrimRight("// "+line, " ")+"\n")
	}
}

// Name returns a unique name in the namespace of the writer.
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

// Reserve marks a name as used in the namespace of the writer.
func (w *Writer) Reserve(name string) bool {
	return w.ns.Reserve(name)
}

type Import struct {
	// The package to import. Its name is the name to refer it in the
	// generated file.
	*types.Package

	// HasAlias is true if the name differs from the declared package name.
	HasAlias bool
}

// Imports returns the imports collected by [Writer.Printf],
// [Writer.Import], and [RewriteImports], by their names.
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// Import imports the package at the path and returns the name to refer it.
// The name is the given one, or the declared package name if empty. It is
// numbered if it is taken by another import or a package-level declaration.
//
//	qual := w.Import("github.com/jkelleyrtp/optargs", "optargs")
//	w.Printf("%s.Some(v)", qual)
func (w *Writer) Import(path, name string) string {
	var declared string
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == path {
			declared = imp.Name()
			break
		}
	}
	if name == "" {
		name = declared
	}
	return w.addImport(types.NewPackage(path, name), declared)
}

// addImport finds a name for the package and records it. declared is the
// declared name of the package. The package is renamed to the found name.
func (w *Writer) addImport(pkg *types.Package, declared string) string {
	for name := range DisambiguateName(pkg.Name()) {
		if prev, ok := w.imports[name]; ok {
			if prev.Path() == pkg.Path() {
				return name
			}
			continue
		}
		if w.pkg.Types.Scope().Lookup(name) != nil {
			continue
		}

		pkg.SetName(name)
		w.imports[name] = Import{Package: pkg, HasAlias: name != declared}
		return name
	}
	panic("unreachable")
}

func (w *Writer) importArgs(args ...any) {
	for _, arg := range args {
		switch arg := arg.(type) {
		case List:
			w.importArgs(arg...)
		case ast.Expr:
			w.importAST(arg)
		case types.Object:
			w.importObj(arg)
		case types.Type:
			w.importType(arg)
		case Objecter:
			w.importObj(arg.Object())
		case Typer:
			w.importType(arg.Type())
		}
	}
}

// importAST imports packages of the identifiers in the node. Synthesized
// identifiers without type information are skipped.
func (w *Writer) importAST(node ast.Node) {
	ast.Inspect(node, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			w.importType(w.pkg.TypesInfo.TypeOf(id))
			w.importObj(w.pkg.TypesInfo.ObjectOf(id))
		}
		return true
	})
}

// importType imports packages of the named types in the type.
func (w *Writer) importType(typ types.Type) {
	switch typ := typ.(type) {
	case interface{ Elem() types.Type }:
		// Pointer, slice, array, and channel
		if m, ok := typ.(*types.Map); ok {
			w.importType(m.Key())
		}
		w.importType(typ.Elem())
	case *types.Signature:
		for v := range typ.Params().Variables() {
			w.importType(v.Type())
		}
		for v := range typ.Results().Variables() {
			w.importType(v.Type())
		}
	case *types.Struct:
		for field := range typ.Fields() {
			w.importType(field.Type())
		}
	case *types.Alias:
		w.importObj(typ.Obj())
	case *types.Named:
		w.importObj(typ.Obj())
		for arg := range typ.TypeArgs().Types() {
			w.importType(arg)
		}
	}
}

// importObj imports the package of a package-level object unless it is the
// package being generated or a built-in.
func (w *Writer) importObj(obj types.Object) {
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() == w.pkg.PkgPath {
		return
	}
	pkg := obj.Pkg()
	w.addImport(pkg, pkg.Name())
}

// RewriteImports qualifies the package references in the node by the names
// imported by the writer. It is used to merge declarations of the source
// files into the generated file, where package names may have been
// renumbered.
func RewriteImports[T ast.Node](w *Writer, node T) T {
	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		switch node := c.Node().(type) {
		case *ast.Ident:
			// Dot-imported identifiers
			obj := w.pkg.TypesInfo.ObjectOf(node)
			if obj == nil {
				return false
			}
			pkg := obj.Pkg()
			if pkg == nil || pkg.Path() == w.pkg.PkgPath || obj.Parent() != pkg.Scope() {
				return true
			}
			c.Replace(w.qualified(pkg, node.NamePos, node))
			return false

		case *ast.SelectorExpr:
			x, ok := node.X.(*ast.Ident)
			if !ok {
				return true
			}
			pkgName, ok := w.pkg.TypesInfo.ObjectOf(x).(*types.PkgName)
			if !ok {
				return true
			}
			c.Replace(w.qualified(pkgName.Imported(), x.NamePos, node.Sel))
			return false
		}
		return true
	}, nil).(T)
}

// qualified returns sel qualified by the imported name of the package at pos.
func (w *Writer) qualified(pkg *types.Package, pos token.Pos, sel *ast.Ident) *ast.SelectorExpr {
	name := w.Import(pkg.Path(), pkg.Name())
	return &ast.SelectorExpr{
		X: &ast.Ident{NamePos: pos, Name: name},
		Sel: &ast.Ident{
			NamePos: pos + token.Pos(len(name)+1),
			Name:    sel.Name,
			Obj:     sel.Obj,
		},
	}
}
