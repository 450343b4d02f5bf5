package ucd

import "fmt"

// ParseError reports a malformed or unrecognized field on a single input
// line. The parser that raises it aborts only that entry; whether the
// overall run continues is up to the caller (cmd/ucdgen treats a ParseError
// as fatal, except for UnicodeData.txt lines when -entry-limit is set).
type ParseError struct {
    File  string
    Line  int
    Field string
    Value string
}

func (e *ParseError) Error() string {
    return fmt.Sprintf("%s:%d: invalid %s %q", e.File, e.Line, e.Field, e.Value)
}

// MissingCodepointError is raised when a pass needs a record for a
// codepoint the database has no entry for -- a decomposition, composition or
// special-casing reference to an unparsed or unassigned codepoint -- and by
// the decomposition resolver when it meets a cyclic decomposition. It is
// always a diagnostic, never fatal: decomposition keeps the codepoint as
// itself, composition and special casing skip the entry, and the pass
// continues.
type MissingCodepointError struct {
    Referrer  rune
    Reference rune
    Context   string
}

func (e *MissingCodepointError) Error() string {
    return fmt.Sprintf("codepoint U+%04X (via U+%04X, %s): no record", e.Reference, e.Referrer, e.Context)
}

// CollisionError is raised when two records would occupy the same emitted
// table slot or composition key unexpectedly -- always a diagnostic.
type CollisionError struct {
    Codepoint rune
    Context   string
}

func (e *CollisionError) Error() string {
    return fmt.Sprintf("codepoint U+%04X: collision (%s)", e.Codepoint, e.Context)
}

// IOError wraps a filesystem failure (missing input, unwritable output)
// with the operation that triggered it.
type IOError struct {
    Op   string
    Path string
    Err  error
}

func (e *IOError) Error() string {
    return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
    return e.Err
}
