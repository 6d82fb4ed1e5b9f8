package typeinfo_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkelleyrtp/optargs/internal/typeinfo"
)

func parse(code string) (*types.Package, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.AllErrors)
	if err != nil {
		return nil, err
	}
	return (&types.Config{}).Check("pkg", fset, []*ast.File{file}, nil)
}

func lookup(t *testing.T, code, name string) types.Object {
	pkg, err := parse(code)
	require.NoError(t, err)
	obj := pkg.Scope().Lookup(name)
	require.NotNil(t, obj, name)
	return obj
}

func TestFuncOfValue(t *testing.T) {
	obj := lookup(t, `package p; func f(a int, b string) bool { return false }`, "f")

	fn, err := typeinfo.FuncOf[typeinfo.Value](obj)
	require.NoError(t, err)
	assert.Equal(t, "f", fn.Name())
	assert.Len(t, fn.Params, 2)
	assert.Equal(t, "bool", fn.Result.String())
	assert.False(t, fn.HasErr)
}

func TestFuncOfValueErr(t *testing.T) {
	obj := lookup(t, `package p; func f(a int) (string, error) { return "", nil }`, "f")

	fn, err := typeinfo.FuncOf[typeinfo.ValueErr](obj)
	require.NoError(t, err)
	assert.Equal(t, "string", fn.Result.String())
	assert.True(t, fn.HasErr)

	_, err = typeinfo.FuncOf[typeinfo.Value](obj)
	assert.EqualError(t, err, "expected signature: [func(...) R]")
}

func TestFuncOfProc(t *testing.T) {
	obj := lookup(t, `package p; func f() {}`, "f")

	fn, err := typeinfo.FuncOf[typeinfo.Proc](obj)
	require.NoError(t, err)
	assert.Nil(t, fn.Result)
	assert.Empty(t, fn.Params)

	_, err = typeinfo.FuncOf[typeinfo.ValueErr](obj)
	assert.EqualError(t, err, "expected signature: [func(...) (R, error)]")
}

func TestFuncOfRejects(t *testing.T) {
	code := `package p
type T struct{}
func (T) m(a int) int { return a }
func g[X any](x X) X { return x }
func v(xs ...int) int { return 0 }
var f = func() int { return 0 }
var mv = T{}.m
`
	pkg, err := parse(code)
	require.NoError(t, err)

	m, _, _ := types.LookupFieldOrMethod(pkg.Scope().Lookup("T").Type(), false, pkg, "m")
	_, err = typeinfo.FuncOf[typeinfo.Value](m)
	assert.ErrorIs(t, err, typeinfo.ErrMethod)

	_, err = typeinfo.FuncOf[typeinfo.Value](pkg.Scope().Lookup("g"))
	assert.ErrorIs(t, err, typeinfo.ErrGeneric)

	_, err = typeinfo.FuncOf[typeinfo.Value](pkg.Scope().Lookup("v"))
	assert.ErrorIs(t, err, typeinfo.ErrVariadic)

	_, err = typeinfo.FuncOf[typeinfo.Value](pkg.Scope().Lookup("f"))
	assert.EqualError(t, err, "not a declared function")
}

func TestNamedOption(t *testing.T) {
	code := `package p
type Option[T any] struct{ v T }
type O = Option[int]
var (
	a Option[string]
	b O
	c *Option[int]
	d int
)
`
	pkg, err := parse(code)
	require.NoError(t, err)

	for name, want := range map[string]bool{"a": true, "b": true, "c": false, "d": false} {
		_, ok := typeinfo.NamedOption(pkg.Scope().Lookup(name).Type())
		assert.Equal(t, want, ok, name)
	}
}

func TestStructOf(t *testing.T) {
	code := `package p
type S struct{ X int }
var (
	s S
	p *S
	a struct{ Y string }
)
`
	pkg, err := parse(code)
	require.NoError(t, err)

	st, ok := typeinfo.StructOf(pkg.Scope().Lookup("s").Type())
	require.True(t, ok)
	assert.Equal(t, 1, st.NumFields())

	_, ok = typeinfo.StructOf(pkg.Scope().Lookup("p").Type())
	assert.False(t, ok)

	_, ok = typeinfo.StructOf(pkg.Scope().Lookup("a").Type())
	assert.True(t, ok)
}

func TestLookup(t *testing.T) {
	code := `package p
type A[T any] struct{ x T }
var (
	x A[int]
	y A[int]
	z A[string]
)
`
	pkg, err := parse(code)
	require.NoError(t, err)

	l := typeinfo.NewLookup[string]()
	_, ok := l.Put(pkg.Scope().Lookup("x").Type(), "x")
	assert.True(t, ok)

	old, ok := l.Put(pkg.Scope().Lookup("y").Type(), "y")
	assert.False(t, ok)
	assert.Equal(t, "x", old)

	_, ok = l.Put(pkg.Scope().Lookup("z").Type(), "z")
	assert.True(t, ok)
	assert.Equal(t, 2, l.Len())

	v, ok := l.Get(pkg.Scope().Lookup("y").Type())
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
