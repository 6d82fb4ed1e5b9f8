package parse

import (
	"errors"
	"go/token"
	"go/types"

	"github.com/jkelleyrtp/optargs/internal/codefmt"
	"github.com/jkelleyrtp/optargs/internal/typeinfo"
)

// Param is a parameter of a keyword-callable function, or a field of a
// keyword-constructible struct.
type Param struct {
	Var *types.Var

	// Elem is the type of a value given for the parameter. It is the type
	// argument of Option for an optional parameter. Otherwise, it is the type
	// of the parameter itself.
	Elem types.Type

	Optional bool

	// Index is the position among all classified parameters. Required
	// parameters come first, so for a required parameter, it is also the
	// position of its typestate flag.
	Index int

	// Setter is the exported name derived from the parameter name. Generated
	// transitions are named after it.
	Setter string
}

// Name returns the parameter name. It is the keyword of the parameter.
func (p Param) Name() string { return p.Var.Name() }

// Type returns the declared type of the parameter. Param implements
// [codefmt.Typer] by this method.
func (p Param) Type() types.Type { return p.Var.Type() }

// Pos returns the position where the parameter is declared. Param implements
// [codefmt.Poser] by this method.
func (p Param) Pos() token.Pos { return p.Var.Pos() }

// Signature is a parameter list classified into required and optional
// parameters. Both keep the declaration order, and every required parameter
// precedes every optional parameter in the declaration.
type Signature struct {
	Required []Param
	Optional []Param
}

// Params returns all parameters in the declaration order.
func (s Signature) Params() []Param {
	params := make([]Param, 0, len(s.Required)+len(s.Optional))
	params = append(params, s.Required...)
	params = append(params, s.Optional...)
	return params
}

// Len returns the number of all parameters.
func (s Signature) Len() int { return len(s.Required) + len(s.Optional) }

// ClassifyFunc classifies the parameters of a declared function. Errors are
// located at the parameters if they are declared in the package. Otherwise,
// they are located at the given position.
func (p *Parser) ClassifyFunc(at codefmt.Poser, fn typeinfo.Func) (Signature, error) {
	var errs error
	for i, param := range fn.Params {
		if param.Name() == "" || param.Name() == "_" {
			err := codefmt.Errorf(p, p.anchor(param, at), "parameter #%d of %o must be named to be a keyword", i+1, fn)
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return Signature{}, errs
	}
	return p.classify(at, fn.Params)
}

// ClassifyStruct classifies the fields of a struct type. Blank fields are
// skipped. Embedded fields are not allowed. Unexported fields are allowed only
// if they belong to this package.
func (p *Parser) ClassifyStruct(at codefmt.Poser, typ types.Type) (Signature, error) {
	st, ok := typeinfo.StructOf(typ)
	if !ok {
		return Signature{}, codefmt.Errorf(p, at, "only structs can be constructed with keywords; %t is not a struct", typ)
	}

	var errs error
	var fields []*types.Var
	for field := range st.Fields() {
		switch {
		case field.Name() == "_":
			// Padding
			continue

		case field.Embedded():
			err := codefmt.Errorf(p, p.anchor(field, at), "embedded field %s of %t cannot be a keyword", field.Name(), typ)
			errs = errors.Join(errs, err)
			continue

		case !field.Exported() && field.Pkg() != p.pkg.Types:
			err := codefmt.Errorf(p, at, "cannot set unexported field %s of %t", field.Name(), typ)
			errs = errors.Join(errs, err)
			continue
		}
		fields = append(fields, field)
	}
	if errs != nil {
		return Signature{}, errs
	}
	return p.classify(at, fields)
}

// classify splits the variables into required and optional parameters. A
// variable typed optargs.Option[T] is optional. It reports an error if a
// required parameter follows an optional one, if an Option type cannot be
// unwrapped, or if two setter names collide.
func (p *Parser) classify(at codefmt.Poser, vars []*types.Var) (Signature, error) {
	var sig Signature
	var errs error

	setters := make(map[string]*types.Var)
	parsingOptionals := false

	for _, v := range vars {
		param := Param{
			Var:    v,
			Elem:   v.Type(),
			Index:  sig.Len(),
			Setter: codefmt.ExportName(v.Name()),
		}

		if prev, ok := setters[param.Setter]; ok {
			err := codefmt.Errorf(p, p.anchor(v, at), "%s and %s have the same setter name %s", prev.Name(), v.Name(), param.Setter)
			errs = errors.Join(errs, err)
			continue
		}
		setters[param.Setter] = v

		elem, isOption, ok := unwrapOption(v.Type())
		switch {
		case isOption && !ok:
			err := codefmt.Errorf(p, p.anchor(v, at), "cannot unwrap %t of %s; only optargs.Option[T] is optional", v.Type(), v.Name())
			errs = errors.Join(errs, err)

		case isOption:
			param.Elem = elem
			param.Optional = true
			sig.Optional = append(sig.Optional, param)
			parsingOptionals = true

		case parsingOptionals:
			err := codefmt.Errorf(p, p.anchor(v, at), "non-optional parameter %s must precede optional parameters", v.Name())
			errs = errors.Join(errs, err)

		default:
			sig.Required = append(sig.Required, param)
		}
	}

	if errs != nil {
		return Signature{}, errs
	}
	return sig, nil
}

// unwrapOption extracts T from optargs.Option[T]. isOption reports whether the
// type is named Option at all. ok reports whether T could be extracted.
func unwrapOption(typ types.Type) (elem types.Type, isOption, ok bool) {
	named, isOption := typeinfo.NamedOption(typ)
	if !isOption {
		return nil, false, false
	}

	pkg := named.Obj().Pkg()
	if pkg == nil || !IsOptargsImport(pkg.Path()) {
		return nil, true, false
	}
	if named.TypeArgs().Len() != 1 {
		return nil, true, false
	}
	return named.TypeArgs().At(0), true, true
}

// anchor returns the variable if its position is in this package. Otherwise,
// it returns at.
func (p *Parser) anchor(v *types.Var, at codefmt.Poser) codefmt.Poser {
	if v.Pkg() == p.pkg.Types && v.Pos().IsValid() {
		return v
	}
	return at
}
