package optargsinternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"

	"github.com/jkelleyrtp/optargs/internal/codefmt"
	"github.com/jkelleyrtp/optargs/internal/optargs/parse"
)

var Version string

// Main is the main entry point for Optargs. It is used by the command-line tool
// directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. A [zerolog.Logger] attached to ctx receives progress
// logs. wd is the path of the working directory. env is the environment
// variables to use when running the tool. tags is the build tags to use when
// loading packages. tests indicates whether to include test files. outFile is
// the name of the output file to generate in each package. And patterns are
// the package patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	log := zerolog.Ctx(ctx)

	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("count", len(pkgs)).Strs("patterns", patterns).Msg("loaded packages")

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		if !hasOptargsFiles(pkg) {
			// Packages without optargs files may refer to builders generated
			// for other packages. They cannot be type-checked until the
			// builders are generated, so their errors are ignored.
			log.Debug().Str("pkg", pkg.PkgPath).Msg("no optargs files")
			continue
		}

		if err := pkgErrors(wd, pkg); err != nil {
			errs = errors.Join(errs, err, fmt.Errorf("pkg %q has errors", pkg.Name))
			continue
		}

		og, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := og.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code := og.Generate()

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFile)
		outs[out] = code

		log.Debug().
			Str("pkg", pkg.PkgPath).
			Int("directives", len(og.Directives())).
			Str("out", out).
			Msg("generated")
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, codefmt.Sort(errs)
	}

	return outs, nil
}

// load loads packages with the "optargs" build tag.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + parse.BuildTag},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	return pkgs, nil
}

// hasOptargsFiles reports whether the package has any file with the
// "//go:build optargs" constraint.
func hasOptargsFiles(pkg *packages.Package) bool {
	p, err := parse.New(pkg)
	if err != nil {
		return false
	}
	return len(p.OptargsGoFiles()) != 0
}

// pkgErrors joins the errors of the loaded package. Their positions are made
// relative to wd.
func pkgErrors(wd string, pkg *packages.Package) error {
	var errs error
	for _, err := range pkg.Errors {
		if err.Pos == "" {
			errs = errors.Join(errs, errors.New(err.Msg))
			continue
		}

		path, rowcol, _ := strings.Cut(err.Pos, ":")
		if rel, relErr := filepath.Rel(wd, path); relErr == nil {
			err.Pos = rel + ":" + rowcol
		}
		errs = errors.Join(errs, err)
	}
	return errs
}
