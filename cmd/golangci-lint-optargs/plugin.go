// Package golangcilintoptargs registers the Optargs analyzer as a golangci-lint
// module plugin. Build a custom golangci-lint binary at this directory:
//
//	golangci-lint custom
//
// Packages are loaded by golangci-lint, so the "optargs" build tag must be
// given in its run.build-tags setting.
package golangcilintoptargs

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/jkelleyrtp/optargs/pkg/optargsanalysis"
)

func init() {
	register.Plugin("optargs", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return OptargsLinter{}, nil
}

type OptargsLinter struct{}

func (OptargsLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{optargsanalysis.Analyzer}, nil
}

// GetLoadMode requires type information because keywords are resolved against
// the signatures of the wrapped functions.
func (OptargsLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
