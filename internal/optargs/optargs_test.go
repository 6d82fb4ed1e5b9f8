package optargsinternal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	optargsinternal "github.com/jkelleyrtp/optargs/internal/optargs"
	"github.com/jkelleyrtp/optargs/internal/optargs/optargstest"
)

const plainSrc = `package p

import "github.com/jkelleyrtp/optargs"

func goGME(price float64, rocketShips int, toTheMoon optargs.Option[bool]) string {
	if toTheMoon.Or(false) {
		return "moon"
	}
	return "hold"
}
`

const taggedSrc = `package p

import (
	"fmt"

	"github.com/jkelleyrtp/optargs"
)

var (
	// GoGME buys GME.
	GoGME = optargs.Func[string](goGME)

	answer = 42
)

func Run() string {
	rocketShips := 3
	inner := GoGME(optargs.Kw("price", 1.0), optargs.Kw("rocketShips", 1))
	return fmt.Sprint(answer, inner, GoGME(optargs.Kw("toTheMoon", true), rocketShips, optargs.Kw("price", 9.5)))
}
`

func generate(t *testing.T, files map[string]string) (string, error) {
	t.Helper()

	og, err := optargsinternal.New(optargstest.Load(t, files))
	require.NoError(t, err)
	if err := og.Build(); err != nil {
		return "", err
	}
	return string(og.Generate()), nil
}

func TestGenerate(t *testing.T) {
	code, err := generate(t, map[string]string{"p.go": plainSrc, "p_optargs.go": taggedSrc})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "//go:build !optargs\n\n// Code generated by github.com/jkelleyrtp/optargs"), code)
	assert.Contains(t, code, "// optargs: builders")
	assert.Contains(t, code, "// p_optargs.go:")

	// Keyword calls are rewritten in the written order.
	assert.Contains(t, code, "inner := GoGMEFinish(GoGMERocketShips(GoGMEPrice(GoGMEStart(), 1.0), 1))")
	assert.Contains(t, code, "GoGMEFinish(GoGMEPrice(GoGMERocketShips(GoGMEStart().ToTheMoon(true), rocketShips), 9.5))")

	// Directive variables are erased with their comments.
	assert.NotContains(t, code, "optargs.Func")
	assert.NotContains(t, code, "optargs.Kw")
	assert.NotContains(t, code, "GoGME = ")
	assert.Equal(t, 1, strings.Count(code, "GoGME buys GME."))
	assert.Contains(t, code, "answer = 42")

	// The generated file replaces the tagged file in a normal build.
	err = optargstest.Check(map[string]string{"p.go": plainSrc, "gen.go": code})
	assert.NoError(t, err)
}

func TestGenerateNestedKeywordCalls(t *testing.T) {
	code, err := generate(t, map[string]string{"p.go": plainSrc, "p_optargs.go": `package p

import "github.com/jkelleyrtp/optargs"

var GoGME = optargs.Func[string](goGME)

func Run() string {
	return GoGME(optargs.Kw("price", float64(len(GoGME(optargs.Kw("price", 1.0), optargs.Kw("rocketShips", 1))))), optargs.Kw("rocketShips", 2))
}
`})
	require.NoError(t, err)

	assert.Contains(t, code, "GoGMEFinish(GoGMERocketShips(GoGMEPrice(GoGMEStart(), float64(len(GoGMEFinish(GoGMERocketShips(GoGMEPrice(GoGMEStart(), 1.0), 1))))), 2))")
	assert.NoError(t, optargstest.Check(map[string]string{"p.go": plainSrc, "gen.go": code}))
}

func TestGenerateWithoutTaggedFiles(t *testing.T) {
	code, err := generate(t, map[string]string{"p.go": plainSrc})
	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestBuildErrors(t *testing.T) {
	_, err := generate(t, map[string]string{"p.go": plainSrc, "p_optargs.go": `package p

import "github.com/jkelleyrtp/optargs"

var GoGME = optargs.Func[string](goGME)

var g = GoGME

func Run() string {
	return GoGME(optargs.Kw("price", 1.0))
}
`})
	assert.ErrorContains(t, err, "cannot use GoGME as value")
	assert.ErrorContains(t, err, "missing required keyword rocketShips in call of GoGME")
}
