// Package generator defines the Generator interface (spec §6.4). Three
// implementations live in subpackages: debug (an indented dump) and
// nativegen (a small native round-trip generator), which also back the
// builder's pre-validate print hook, and tsgen (TypeScript). None is part
// of the specified core, which treats generators as an external interface.
package generator

import (
	"github.com/xapi-project/xapi/internal/output"
	"github.com/xapi-project/xapi/internal/view"
)

// Generator renders a View into an Output.
type Generator interface {
	Generate(v *view.View, out output.Output) error
}
