package codefmt

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Formatter renders types, objects, expressions, and keywords as Go code seen
// from a package. Names in the package are not qualified.
type Formatter struct {
	PkgPath   string
	Fset      *token.FileSet
	TypesInfo *types.Info
}

func New(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{pkg.PkgPath, pkg.Fset, pkg.TypesInfo}
}

func newByPkger(pkger Pkger) Formatter {
	if pkger == nil {
		return Formatter{}
	}
	return New(pkger.Pkg())
}

// qualifier implements [types.Qualifier].
func (f Formatter) qualifier(pkg *types.Package) string {
	if pkg == nil || pkg.Path() == f.PkgPath {
		return ""
	}
	return pkg.Name()
}

// Type renders a type, e.g. "optargs.Option[float64]".
func (f Formatter) Type(typ types.Type) string {
	return types.TypeString(typ, f.qualifier)
}

// Obj renders a reference to a package-level object, e.g. "strconv.Atoi".
func (f Formatter) Obj(obj types.Object) string {
	if q := f.qualifier(obj.Pkg()); q != "" {
		return q + "." + obj.Name()
	}
	return obj.Name()
}

// Expr renders an expression. The expression may be synthesized without
// positions.
func (f Formatter) Expr(expr ast.Expr) string {
	var b strings.Builder
	if err := format.Node(&b, f.Fset, expr); err != nil {
		// go/printer supports every ast.Expr.
		panic(err)
	}
	return b.String()
}

// Keyword renders a keyword as it is declared, e.g. "price float64".
func (f Formatter) Keyword(kw Keyword) string {
	return kw.Name() + " " + f.Type(kw.Type())
}

// wd is the working directory when the process started.
var wd, _ = os.Getwd()

// FormatPosition renders a position as "file:line:column". The file is
// relative to the working directory when possible, so that errors are short
// and clickable in terminals.
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}
	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}
