// Package tsgen renders a View as TypeScript, one file per namespace, via
// an embedded Mustache template. It exercises the View/Transform layer the
// way a real downstream generator would: CaseTransform renames every
// declaration into TypeScript's conventions (PascalCase types, camelCase
// members) and a TypeRefTransform rewrites cross-entity references to
// match. Doc comments are rendered into "/** ... */" blocks by running each
// declaration's Markdown source through parserutil.FormatDocComment rather
// than emitted verbatim.
package tsgen

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/cbroglie/mustache"

	"github.com/xapi-project/xapi/internal/generator"
	"github.com/xapi-project/xapi/internal/model"
	"github.com/xapi-project/xapi/internal/output"
	"github.com/xapi-project/xapi/internal/view"
)

//go:embed templates/namespace.mustache
var namespaceTemplate string

// typeRefCase rewrites a Type_Api reference's path segments to PascalCase,
// matching the CaseTransform applied to the referenced Dto/Enum/TypeAlias's
// own name.
type typeRefCase struct{}

func (typeRefCase) Path(segments *[]string) {
	for i, s := range *segments {
		(*segments)[i] = pascal(s)
	}
}

// Generator renders every namespace in a View to its own ".ts" chunk.
type Generator struct{}

func (Generator) Generate(v *view.View, out output.Output) error {
	styled := v.
		WithDtoTransform(view.CaseTransform{Case: view.CasePascal}).
		WithEnumTransform(view.CaseTransform{Case: view.CasePascal}).
		WithTypeAliasTransform(view.CaseTransform{Case: view.CasePascal}).
		WithRpcTransform(view.CaseTransform{Case: view.CaseCamel}).
		WithFieldTransform(view.CaseTransform{Case: view.CaseCamel}).
		WithTypeRefTransform(typeRefCase{})
	return walkNamespace(styled.Root(), out)
}

func walkNamespace(ns *view.Namespace, out output.Output) error {
	data := buildNamespace(ns)
	if hasContent(data) {
		text, err := mustache.Render(namespaceTemplate, data)
		if err != nil {
			return &generatorError{err}
		}
		relPath := namespaceFilePath(ns)
		meta := &model.ChunkMetadata{RelativeFilePath: relPath}
		out.StartChunk(meta)
		out.WriteString(text)
		out.EndChunk(meta)
	}
	for _, child := range ns.Namespaces() {
		if err := walkNamespace(child, out); err != nil {
			return err
		}
	}
	return nil
}

func namespaceFilePath(ns *view.Namespace) string {
	path := ns.Attributes().EntityID().Path()
	if len(path) == 0 {
		return "index.ts"
	}
	return strings.Join(path, "/") + ".ts"
}

type generatorError struct{ err error }

func (e *generatorError) Error() string { return fmt.Sprintf("tsgen: %v", e.err) }
func (e *generatorError) Unwrap() error { return e.err }
