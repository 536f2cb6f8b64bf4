package view

import "github.com/iancoleman/strcase"

// Case selects a naming convention CaseTransform rewrites every name into.
type Case int

const (
	CaseCamel Case = iota
	CasePascal
	CaseSnake
)

// CaseTransform renames every namespace, Dto, Rpc, Enum, TypeAlias, and
// Field as reported by the view into a single naming convention, the way a
// target-language generator enforces its own identifier style regardless of
// the source's. It implements every rename-only Transform interface, so one
// value can be registered against all six View.With*Transform methods.
type CaseTransform struct {
	Case Case
}

func (c CaseTransform) convert(name *string) {
	switch c.Case {
	case CasePascal:
		*name = strcase.ToCamel(*name)
	case CaseSnake:
		*name = strcase.ToSnake(*name)
	default:
		*name = strcase.ToLowerCamel(*name)
	}
}

func (c CaseTransform) Name(name *string) { c.convert(name) }
