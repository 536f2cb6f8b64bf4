package input

import (
	"path/filepath"
	"strings"

	"github.com/xapi-project/xapi/internal/model"
)

// deriveRootNamespace turns a slash-separated relative file path into the
// EntityID its parser output should be grafted under, per the convention in
// spec §6.1: an index-style filename maps to its parent directory, every
// other filename contributes its own stem as the final segment.
func deriveRootNamespace(relPath string) model.EntityID {
	relPath = filepath.ToSlash(relPath)
	dir, base := filepath.Split(relPath)
	dir = strings.Trim(dir, "/")

	var names []string
	if dir != "" {
		names = strings.Split(dir, "/")
	}
	if !IsRootNamespaceFile(base) {
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if stem != "" {
			names = append(names, stem)
		}
	}
	return model.NewEntityID(names...)
}
