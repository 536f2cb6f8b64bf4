package builder

import (
	"fmt"
	"os"

	"github.com/xapi-project/xapi/internal/generator"
	"github.com/xapi-project/xapi/internal/generator/debug"
	"github.com/xapi-project/xapi/internal/generator/nativegen"
	"github.com/xapi-project/xapi/internal/model"
	"github.com/xapi-project/xapi/internal/output"
	"github.com/xapi-project/xapi/internal/view"
)

// debugPrintNative re-emits the in-progress tree through nativegen,
// writing it to stderr. It runs after merge/qualify but before validate
// (spec §4.3, "optional debug print hook"), so it can reflect a tree that
// would still fail validation.
func (b *Builder) debugPrintNative(root *model.Namespace) {
	b.debugPrint(root, nativegen.Generator{})
}

// debugPrintDebug re-emits the in-progress tree through the indented
// debug.Generator listing.
func (b *Builder) debugPrintDebug(root *model.Namespace) {
	b.debugPrint(root, debug.Generator{})
}

func (b *Builder) debugPrint(root *model.Namespace, gen generator.Generator) {
	m := &model.Model{Root: root}
	v := view.New(m)
	buf := &output.Buffer{}
	if err := gen.Generate(v, buf); err != nil {
		fmt.Fprintf(os.Stderr, "builder: pre-validate print failed: %v\n", err)
		return
	}
	fmt.Fprint(os.Stderr, buf.String())
}
