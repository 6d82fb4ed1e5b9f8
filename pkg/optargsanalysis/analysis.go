// Package optargsanalysis provides an analyzer which reports the Optargs
// diagnostics of a package without generating code. The package must be loaded
// with the "optargs" build tag.
package optargsanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/jkelleyrtp/optargs/internal/codefmt"
	optargsinternal "github.com/jkelleyrtp/optargs/internal/optargs"
)

// Analyzer validates the usage of Optargs in the package.
var Analyzer = &analysis.Analyzer{
	Name: "optargs",
	Doc:  "linter for optargs directives and keyword calls",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	og, err := optargsinternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := og.Build(); err != nil {
		codeErrs, _ := codefmt.AsCodeErrors(err)
		for _, codeErr := range codeErrs {
			pass.Report(analysis.Diagnostic{
				Pos:     codeErr.Pos(),
				End:     codeErr.End(),
				Message: codeErr.Unwrap().Error(),
			})
		}
	}

	return nil, nil
}
