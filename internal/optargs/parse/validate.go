package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/jkelleyrtp/optargs/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Many validation rules are implemented in the expected paths by narrow parsing
// functions. But some rules need to be checked globally. That's what this
// function does.
func (p *Parser) Validate(dirs []*Directive) error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildOptargs(file) {
			errs = errors.Join(errs, p.validatePlacement(file))
		} else {
			errs = errors.Join(errs, p.validateConstraint(file))
		}
	}
	errs = errors.Join(errs, p.validateDirectiveUsages(dirs))
	return errs
}

// validateConstraint checks that directives are called only in files with the
// "//go:build optargs" constraint. Other files may import optargs for Option
// and the generated builders.
func (p *Parser) validateConstraint(file *ast.File) error {
	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		directive, ok := p.GetDirective(call)
		if !ok {
			return true
		}

		err := codefmt.Errorf(p, call, `optargs.%s requires "//go:build optargs" constraint in the file`, directive)
		errs = errors.Join(errs, err)
		return false
	})
	return errs
}

// validatePlacement checks that directives are called at the expected places.
//
// Directive functions like optargs.Func must be values of package-level
// variables. optargs.Kw must be an argument of a keyword call. Otherwise, the
// directive call would remain after code generation and panic at runtime.
func (p *Parser) validatePlacement(file *ast.File) error {
	var errs error
	astutil.Apply(file, func(c *astutil.Cursor) bool {
		call, ok := c.Node().(*ast.CallExpr)
		if !ok {
			return true
		}

		directive, ok := p.GetDirective(call)
		if !ok {
			return true
		}

		if directive == "Kw" {
			if parent, ok := c.Parent().(*ast.CallExpr); ok && c.Name() == "Args" && p.isDirectiveVarCall(parent) {
				// Keyword argument. That's fine.
				return true
			}
			err := codefmt.Errorf(p, call, "optargs.Kw must be an argument of a keyword call")
			errs = errors.Join(errs, err)
			return false
		}

		if spec, ok := c.Parent().(*ast.ValueSpec); ok && c.Name() == "Values" && isPackageLevel(file, spec) {
			// Directive assigned to a package-level variable. That's fine.
			return true
		}

		err := codefmt.Errorf(p, call, "optargs.%s must be assigned to a package-level variable", directive)
		errs = errors.Join(errs, err)
		return false
	}, nil)
	return errs
}

// isDirectiveVarCall reports whether the call calls a variable holding a
// directive.
func (p *Parser) isDirectiveVarCall(call *ast.CallExpr) bool {
	id, ok := call.Fun.(*ast.Ident)
	if !ok {
		return false
	}
	v, ok := p.pkg.TypesInfo.Uses[id].(*types.Var)
	if !ok || v.Parent() != p.pkg.Types.Scope() {
		return false
	}
	return p.isDirectiveVar(v)
}

// isDirectiveVar reports whether the package-level variable is initialized by
// a directive function. It works even if the directive has failed to parse.
func (p *Parser) isDirectiveVar(v *types.Var) bool {
	for _, init := range p.pkg.TypesInfo.InitOrder {
		if len(init.Lhs) != 1 || init.Lhs[0] != v {
			continue
		}
		call, ok := init.Rhs.(*ast.CallExpr)
		if !ok {
			return false
		}
		name, ok := p.GetDirective(call)
		return ok && name != "Kw"
	}
	return false
}

// isPackageLevel reports whether the value spec is declared at the package
// level of the file.
func isPackageLevel(file *ast.File, spec *ast.ValueSpec) bool {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, s := range gen.Specs {
			if s == spec {
				return true
			}
		}
	}
	return false
}

// validateDirectiveUsages checks illegal references to directive variables.
//
// Directive variables are only allowed to be called with keyword arguments in
// files with the "//go:build optargs" constraint. Any other usages are
// illegal, because the variables will be removed at code generation, and any
// remaining references to them will cause compilation errors.
func (p *Parser) validateDirectiveUsages(dirs []*Directive) error {
	vars := make(map[*types.Var]*Directive)
	for _, dir := range dirs {
		vars[dir.Var] = dir
	}

	var errs error
	for _, file := range p.Pkg().Syntax {
		tagged := hasGoBuildOptargs(file)

		astutil.Apply(file, func(c *astutil.Cursor) bool {
			id, ok := c.Node().(*ast.Ident)
			if !ok {
				return true
			}

			v, ok := p.pkg.TypesInfo.Uses[id].(*types.Var)
			if !ok {
				// Declarations and non-variables
				return false
			}

			dir, ok := vars[v]
			if !ok {
				// Not a directive variable. Skip it.
				return false
			}

			if !tagged {
				err := codefmt.Errorf(p, id, `cannot use %s in file without "//go:build optargs" constraint; removed at code generation`, dir.Name())
				errs = errors.Join(errs, err)
				return false
			}

			if call, ok := c.Parent().(*ast.CallExpr); ok && c.Name() == "Fun" && call.Fun == id {
				// Keyword call. That's fine.
				return false
			}

			err := codefmt.Errorf(p, id, "cannot use %s as value; it can only be called with keyword arguments", dir.Name())
			errs = errors.Join(errs, err)
			return false
		}, nil)
	}
	return errs
}
