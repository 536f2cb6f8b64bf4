package model

// Comment is a single source comment, classified as documentation (rendered
// by generators into the target language's doc format) or a regular
// comment (kept in the model; none of the bundled generators emits it).
type Comment struct {
	Text  string
	IsDoc bool
}

// UserAttribute preserves an arbitrary piece of source-level decoration
// (an annotation, a derive, a pragma) whose meaning is opaque to the core
// but that downstream generators may want to inspect or re-emit.
type UserAttribute struct {
	Name string
	// Args are the raw, unparsed arguments, if any, as they appeared in the
	// source, e.g. for `#[serde(rename = "x")]` Name is `serde` and Args
	// is `rename = "x"`.
	Args string
}

// Attributes decorates every entity with source-level metadata that does
// not participate in name resolution.
type Attributes struct {
	Comments []Comment
	User     []UserAttribute
	// EntityID is the entity's own fully-qualified id, filled in by the
	// builder once qualification completes (spec §3.4). Zero value before
	// that point.
	EntityID EntityID
}

// Docs returns only the doc comments, in source order.
func (a Attributes) Docs() []Comment {
	var out []Comment
	for _, c := range a.Comments {
		if c.IsDoc {
			out = append(out, c)
		}
	}
	return out
}

// MergeAttributes concatenates comments and user attributes from two
// Attributes values contributed by different chunks for the same namespace
// (spec §4.2).
func MergeAttributes(a, b Attributes) Attributes {
	out := Attributes{
		Comments: append(append([]Comment{}, a.Comments...), b.Comments...),
		User:     append(append([]UserAttribute{}, a.User...), b.User...),
	}
	return out
}
