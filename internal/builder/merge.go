package builder

import (
	"github.com/xapi-project/xapi/internal/apierr"
	"github.com/xapi-project/xapi/internal/model"
)

// merge grafts every appended chunk under its derived root path and unifies
// namespaces depth-first by name (spec §4.2, §4.3 step 2). Conflicting
// non-namespace siblings are recorded as errors and dropped (the first
// contributor wins) so later phases still have a coherent tree to walk.
func (b *Builder) merge() *model.Namespace {
	root := &model.Namespace{}
	owners := map[string]string{}

	for _, c := range b.chunks {
		target := graft(root, c.meta.RootNamespace)
		b.mergeNamespace(target, c.root, c.meta.RelativeFilePath, c.meta.RootNamespace, owners)
	}
	return root
}

// graft walks (creating as needed) the namespace chain named by path,
// starting at root, and returns the namespace at the end of it.
func graft(root *model.Namespace, path model.EntityID) *model.Namespace {
	cur := root
	for _, seg := range path.Segments() {
		child := cur.Namespace(seg.Name)
		if child == nil {
			child = &model.Namespace{Name: seg.Name}
			cur.Namespaces = append(cur.Namespaces, child)
		}
		cur = child
	}
	return cur
}

// mergeNamespace merges src's children into dst in contribution order,
// recursing into like-named nested namespaces and recording a MergeConflict
// for any other kind+name collision. path is dst's fully-qualified path,
// used only for diagnostics; owners tracks which chunk first contributed
// each (path,kind,name).
func (b *Builder) mergeNamespace(dst, src *model.Namespace, chunkLabel string, path model.EntityID, owners map[string]string) {
	dst.Attributes = model.MergeAttributes(dst.Attributes, src.Attributes)

	for _, sns := range src.Namespaces {
		dns := dst.Namespace(sns.Name)
		if dns == nil {
			dns = &model.Namespace{Name: sns.Name}
			dst.Namespaces = append(dst.Namespaces, dns)
		}
		b.mergeNamespace(dns, sns, chunkLabel, path.Child(sns.Name), owners)
	}

	for _, d := range src.Dtos {
		key := childKey(path, model.KindDto, d.Name)
		if owner, ok := owners[key]; ok {
			b.errs = append(b.errs, &apierr.MergeConflict{
				Path: path.String(), KindName: "dto:" + d.Name, ChunkA: owner, ChunkB: chunkLabel,
			})
			continue
		}
		owners[key] = chunkLabel
		dst.Dtos = append(dst.Dtos, d)
	}
	for _, r := range src.Rpcs {
		key := childKey(path, model.KindRpc, r.Name)
		if owner, ok := owners[key]; ok {
			b.errs = append(b.errs, &apierr.MergeConflict{
				Path: path.String(), KindName: "rpc:" + r.Name, ChunkA: owner, ChunkB: chunkLabel,
			})
			continue
		}
		owners[key] = chunkLabel
		dst.Rpcs = append(dst.Rpcs, r)
	}
	for _, e := range src.Enums {
		key := childKey(path, model.KindEnum, e.Name)
		if owner, ok := owners[key]; ok {
			b.errs = append(b.errs, &apierr.MergeConflict{
				Path: path.String(), KindName: "enum:" + e.Name, ChunkA: owner, ChunkB: chunkLabel,
			})
			continue
		}
		owners[key] = chunkLabel
		dst.Enums = append(dst.Enums, e)
	}
	for _, t := range src.TypeAliases {
		key := childKey(path, model.KindTypeAlias, t.Name)
		if owner, ok := owners[key]; ok {
			b.errs = append(b.errs, &apierr.MergeConflict{
				Path: path.String(), KindName: "alias:" + t.Name, ChunkA: owner, ChunkB: chunkLabel,
			})
			continue
		}
		owners[key] = chunkLabel
		dst.TypeAliases = append(dst.TypeAliases, t)
	}
}

func childKey(path model.EntityID, kind model.Kind, name string) string {
	return path.Child(name).Key() + ":" + kind.String()
}
