package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/constant"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// ImportPath is the import path of the optargs package. Generated code imports
// it for Option and the typestate flags.
const ImportPath = "github.com/jkelleyrtp/optargs"

// BuildTag is the build tag of files containing directives.
const BuildTag = "optargs"

func IsOptargsImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == ImportPath
}

// Parser parses an AST of the underlying package to collect Optargs directives
// and keyword calls.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the name of the Optargs directive function if the call
// expression is an Optargs directive. Otherwise, it returns false.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	if _, ok := callee.(*types.Func); !ok {
		// Function variables like keyword call targets
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsOptargsImport(pkg.Path()) {
		// Not Optargs function
		return "", false
	}

	switch callee.Name() {
	case "Func", "FuncErr", "Proc", "Struct", "StructPtr", "Kw":
		return callee.Name(), true
	}

	// Runtime functions like optargs.Some
	return "", false
}

// IsDirective checks if the call expression is an Optargs directive with the
// given name. If name is empty, it checks if the call is any Optargs directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	if name == "" {
		// Any optargs directive
		return true
	}

	return calleeName == name
}

// OptargsGoFiles returns the Go files that have a "//go:build optargs"
// constraint.
func (p *Parser) OptargsGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildOptargs(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildOptargs checks if the file has a "//go:build optargs" constraint.
func hasGoBuildOptargs(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			// Build constraints must appear before the package clause.
			break
		}
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, err := constraint.Parse(comment.Text)
				if err != nil {
					continue
				}
				expr.Eval(func(tag string) bool {
					if tag == BuildTag {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}

// evalString evaluates a constant string expression. Returns (s, ok) where s
// is the evaluated string value. Named string constants are allowed as well as
// literals.
func (p *Parser) evalString(expr ast.Expr) (string, bool) {
	tv, ok := p.Pkg().TypesInfo.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(tv.Value), true
}

// tailIdent extracts the rightmost [ast.Ident] from the expression.
//
//	foo
//	^^^
//	pkg.Foo
//	    ^^^
//	(T{}).Bar
//	      ^^^
func tailIdent(expr ast.Expr) (*ast.Ident, bool) {
	expr = ast.Unparen(expr)
	switch expr := expr.(type) {
	case *ast.Ident:
		// foo
		// ^^^
		return expr, true
	case *ast.SelectorExpr:
		// foo.bar.baz
		//         ^^^
		return tailIdent(expr.Sel)
	}
	return nil, false
}
