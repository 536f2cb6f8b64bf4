// Package apierr defines the closed error taxonomy from spec §7. Every
// error raised by input, parser, or builder code is one of these error
// types so callers can triage with errors.As, the same plain
// fmt.Errorf-wrapping style the teacher's api.Validate and
// api.SkipModelElements use.
package apierr

import "fmt"

// Span locates an error within one input chunk, for diagnostics that (per
// spec §7) "carry file path, span, and human-readable labels suitable for a
// rendering library that understands spans."
type Span struct {
	RelativeFilePath string
	Start, End       int
}

func (s Span) String() string {
	if s.RelativeFilePath == "" {
		return fmt.Sprintf("%d:%d", s.Start, s.End)
	}
	return fmt.Sprintf("%s:%d:%d", s.RelativeFilePath, s.Start, s.End)
}

// InputError is raised by an Input when it cannot read a source.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error reading %q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseError is raised by a Parser for ill-formed source. Carries the file
// and byte range.
type ParseError struct {
	Span    Span
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Span, e.Message)
}

// MergeConflict is raised by the Builder when two chunks contribute
// incompatible siblings (same kind+name, not both namespaces) while merging
// namespaces of identical fully-qualified paths (spec §4.2, invariant 1).
type MergeConflict struct {
	Path    string
	KindName string
	ChunkA, ChunkB string
}

func (e *MergeConflict) Error() string {
	return fmt.Sprintf("merge conflict at %s: %q contributed by both %q and %q", e.Path, e.KindName, e.ChunkA, e.ChunkB)
}

// UnresolvedReference is raised by the Builder when a Type_Api id fails to
// qualify (spec §4.3 step "Qualify").
type UnresolvedReference struct {
	ID      string
	Context string
}

func (e *UnresolvedReference) Error() string {
	return fmt.Sprintf("unresolved reference %q in %s", e.ID, e.Context)
}

// DuplicateEntity is raised when invariant 1 (sibling uniqueness) or
// invariant 6 (global fully-qualified-id uniqueness) is violated.
type DuplicateEntity struct {
	ID string
}

func (e *DuplicateEntity) Error() string {
	return fmt.Sprintf("duplicate entity %q", e.ID)
}

// CyclicValueType is raised when invariant 3 (no value-cycle through Dto
// fields) is violated.
type CyclicValueType struct {
	Cycle []string
}

func (e *CyclicValueType) Error() string {
	return fmt.Sprintf("cyclic value type: %v", e.Cycle)
}

// DuplicateEnumValue is raised when invariant 4 (unique enum value numbers)
// is violated.
type DuplicateEnumValue struct {
	Enum   string
	Number int64
}

func (e *DuplicateEnumValue) Error() string {
	return fmt.Sprintf("duplicate value number %d in enum %q", e.Number, e.Enum)
}

// GeneratorError wraps a target-language-specific generator failure. It is
// fatal only to the generator that produced it, not to sibling generators
// (spec §7).
type GeneratorError struct {
	Generator string
	Err       error
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("generator %q failed: %v", e.Generator, e.Err)
}

func (e *GeneratorError) Unwrap() error { return e.Err }
