package optargsinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/jkelleyrtp/optargs/internal/codefmt"
	"github.com/jkelleyrtp/optargs/internal/optargs/parse"
	"github.com/jkelleyrtp/optargs/internal/optargs/synth"
)

// Optargs generates builder code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are returned
// by [Build]. Once [Build] succeeds, [Generate] never fails.
type Optargs struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	dirs     []*parse.Directive
	builders map[*parse.Directive]*synth.Builder
	calls    map[*ast.CallExpr]parse.KeywordCall
}

// New creates a new [Optargs] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Optargs, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Optargs{
		p:        parser,
		ns:       codefmt.NewNS(pkg.Types.Scope()),
		buf:      &buf,
		w:        codefmt.NewWriter(&buf, pkg),
		builders: make(map[*parse.Directive]*synth.Builder),
	}, nil
}

// Directives returns the parsed directives. It is empty before [Build].
func (og *Optargs) Directives() []*parse.Directive { return og.dirs }

// Build prepares code generation by parsing directives and keyword calls and
// naming builders. All potential errors are returned by this method. It must
// be called before [Generate].
func (og *Optargs) Build() error {
	dirs, errs := og.p.ParseDirectives()
	errs = errors.Join(errs, og.p.Validate(dirs))

	calls, err := og.p.ParseKeywordCalls(dirs)
	errs = errors.Join(errs, err)

	if errs != nil {
		return errs
	}

	og.dirs = dirs
	og.calls = calls

	for _, dir := range dirs {
		b, err := synth.Build(dir, og.ns)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		og.builders[dir] = b
	}
	return errs
}

// Generate generates code for the package. It must be called after [Build]
// succeeds. It returns nil if the package has no files with the
// "//go:build optargs" constraint.
func (og *Optargs) Generate() []byte {
	if len(og.p.OptargsGoFiles()) == 0 {
		return nil
	}
	og.writeBuilderCode()
	og.mergeCode()
	return og.frameCode()
}

// writeBuilderCode writes declaration code for the builders in the order of
// their directives.
func (og *Optargs) writeBuilderCode() {
	if len(og.dirs) == 0 {
		return
	}

	og.w.Printf("// optargs: builders\n\n")
	for _, dir := range og.dirs {
		local := maps.Clone(og.ns)
		w := og.w.WithNS(local)
		og.builders[dir].WriteDefineCode(w)
		og.w.Printf("\n")
	}
}

// mergeCode copies non-optargs code from the source files tagged with
// "//go:build optargs". Keyword calls are rewritten into builder chains, and
// directive variables are erased.
func (og *Optargs) mergeCode() {
	erased := make(map[token.Pos]bool)
	for _, dir := range og.dirs {
		erased[dir.Pos()] = true
	}

	for _, file := range og.p.OptargsGoFiles() {
		name := filepath.Base(og.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		// Comments of erased directives must not be printed.
		var dropped []*ast.CommentGroup

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			// Rewrite keyword calls. They are visited in post-order so that
			// nested keyword calls in the arguments are rewritten first.
			decl = astutil.Apply(decl, nil, func(c *astutil.Cursor) bool {
				call, ok := c.Node().(*ast.CallExpr)
				if !ok {
					return true
				}
				kc, ok := og.calls[call]
				if !ok {
					return true
				}
				c.Replace(synth.Call(og.builders[kc.Directive], kc, call))
				return true
			}).(ast.Decl)

			// Erase directive variables
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.ValueSpec)
				if !ok {
					return true
				}

				var names []*ast.Ident
				var values []ast.Expr
				for i := range spec.Names {
					if i >= len(spec.Values) {
						names = append(names, spec.Names[i])
						continue
					}

					if !erased[spec.Values[i].Pos()] {
						names = append(names, spec.Names[i])
						values = append(values, spec.Values[i])
					}
				}

				switch {
				case len(names) == len(spec.Names):
					// No directives
				case len(names) == 0:
					// Input:  var ( A = optargs.Func[int](f) )
					// Output: var ()
					dropped = append(dropped, spec.Doc, spec.Comment)
					c.Delete()
				default:
					// Input:  var ( a, B = 42, optargs.Func[int](f) )
					// Output: var ( a = 42 )
					c.Replace(&ast.ValueSpec{
						Doc:     spec.Doc,
						Names:   names,
						Type:    spec.Type,
						Values:  values,
						Comment: spec.Comment,
					})
				}
				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			if first {
				fmt.Fprintf(og.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(og.w, decl)

			comments := slices.DeleteFunc(slices.Clone(file.Comments), func(group *ast.CommentGroup) bool {
				return slices.Contains(dropped, group)
			})

			// Write rewritten declaration code
			printer.Fprint(og.buf, og.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: comments,
			})
			fmt.Fprintf(og.buf, "\n\n")
		}
	}
}

func (og *Optargs) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !%s\n\n", parse.BuildTag)
	fmt.Fprintf(&buf, "// Code generated by %s%s. DO NOT EDIT.\n\n", parse.ImportPath, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", og.p.Pkg().Name)

	imports := og.w.Imports()
	if len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range slices.Sorted(maps.Keys(imports)) {
			imp := imports[alias]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, og.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
