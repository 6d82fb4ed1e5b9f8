// Package optargstest type-checks in-memory packages which import the optargs
// package of this module. It is used by tests of the generator.
package optargstest

import (
	"errors"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const (
	// PkgPath is the import path of the packages type-checked by this package.
	PkgPath = "example.com/p"

	optargsPath = "github.com/jkelleyrtp/optargs"
)

// TaggedSuffix marks files which get the "//go:build optargs" constraint.
const TaggedSuffix = "_optargs.go"

// rootDir returns the directory of the optargs package.
func rootDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..")
}

type optargsImporter struct {
	optargs  *types.Package
	fallback types.Importer
}

func (imp optargsImporter) Import(path string) (*types.Package, error) {
	if path == optargsPath {
		return imp.optargs, nil
	}
	return imp.fallback.Import(path)
}

// Load type-checks the files as the package [PkgPath]. The files are given by
// their names and sources. Files named with [TaggedSuffix] get the
// "//go:build optargs" constraint. The test fails if the package has any
// errors.
func Load(t testing.TB, files map[string]string) *packages.Package {
	t.Helper()
	pkg, err := check(files)
	require.NoError(t, err)
	return pkg
}

// Check type-checks the files like [Load] but returns the errors instead of
// failing the test.
func Check(files map[string]string) error {
	_, err := check(files)
	return err
}

func check(files map[string]string) (*packages.Package, error) {
	fset := token.NewFileSet()
	fallback := importer.ForCompiler(fset, "source", nil)

	var rootFiles []*ast.File
	for _, name := range []string{"optargs.go", "option.go"} {
		src, err := os.ReadFile(filepath.Join(rootDir(), name))
		if err != nil {
			return nil, err
		}
		file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		rootFiles = append(rootFiles, file)
	}
	optargs, err := (&types.Config{Importer: fallback}).Check(optargsPath, fset, rootFiles, nil)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	var syntax []*ast.File
	for _, name := range names {
		src := files[name]
		if strings.HasSuffix(name, TaggedSuffix) {
			src = "//go:build optargs\n\n" + src
		}
		file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		syntax = append(syntax, file)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	var errs error
	conf := &types.Config{
		Importer: optargsImporter{optargs, fallback},
		Error: func(err error) {
			errs = errors.Join(errs, err)
		},
	}
	pkg, _ := conf.Check(PkgPath, fset, syntax, info)
	if errs != nil {
		return nil, errs
	}

	return &packages.Package{
		ID:        PkgPath,
		Name:      pkg.Name(),
		PkgPath:   pkg.Path(),
		Types:     pkg,
		Fset:      fset,
		Syntax:    syntax,
		TypesInfo: info,
	}, nil
}
