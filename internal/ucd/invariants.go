package ucd

import (
    "fmt"

    "github.com/Linaro1985/utf8rewind/must"
)

// InvariantError reports a broken programmer invariant: a condition that
// must hold for any well-formed UCD snapshot and that every pass after the
// point of the check is written assuming holds. It is never raised by bad
// input data -- that's a ParseError or MissingCodepointError -- only by a
// pass having been called out of order or by the record set having been
// mutated in a way a later pass doesn't expect.
type InvariantError struct {
    Pass   string
    Detail string
}

func (e *InvariantError) Error() string {
    return fmt.Sprintf("invariant violated in %s: %s", e.Pass, e.Detail)
}

// assertAscending panics with an *InvariantError, via must.Check, if records
// is not sorted in strictly ascending codepoint order. ResolveBlocks' cursor
// sweep silently produces wrong results -- not a crash -- if this doesn't
// hold, so it is checked rather than assumed.
func assertAscending(pass string, records []*Record) {
    for i := 1; i < len(records); i++ {
        if records[i-1].Codepoint >= records[i].Codepoint {
            must.Check(&InvariantError{
                Pass: pass,
                Detail: fmt.Sprintf("records not strictly ascending at index %d: U+%04X >= U+%04X",
                    i, records[i-1].Codepoint, records[i].Codepoint),
            })
        }
    }
}

// assertBlockCoverage panics with an *InvariantError, via must.Check, if any
// record was left without a Block assignment. ResolveBlocks' cursor sweep
// assumes db.Blocks covers the entire codepoint space in ascending, gapless
// order (true of every released Blocks.txt); a record with a nil Block means
// that assumption didn't hold for this input.
func assertBlockCoverage(records []*Record) {
    for _, r := range records {
        if r.Block == nil {
            must.Check(&InvariantError{
                Pass:   "ResolveBlocks",
                Detail: fmt.Sprintf("U+%04X %s: no block assigned", r.Codepoint, r.Name),
            })
        }
    }
}
