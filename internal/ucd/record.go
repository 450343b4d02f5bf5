package ucd

import (
    "sort"

    "github.com/Linaro1985/utf8rewind/ks"
    "github.com/Linaro1985/utf8rewind/operator"
)

// Record is the central entity of the database: one Unicode codepoint and
// everything the compiler knows about it, mirroring spec.md's
// CodepointRecord exactly.
//
// Cross-record references (decomposition lookups, composition pairs) are
// resolved through Database.Lookup by codepoint, never by storing a pointer
// back into another Record's fields directly during parsing -- the parse
// order isn't guaranteed to have resolved every referenced codepoint yet.
type Record struct {
    Codepoint rune
    Name      string

    GeneralCategory          GeneralCategory
    CanonicalCombiningClass  uint8
    BidiClass                BidiClass
    DecompositionType        DecompositionType
    DecompositionCodepoints  []rune

    NumericType  NumericType
    NumericValue Fraction

    BidiMirrored bool

    Uppercase []rune
    Lowercase []rune
    Titlecase []rune

    DecomposedNFD  []rune
    DecomposedNFKD []rune

    // CompositionPairs maps second -> composed, populated only on records
    // that serve as the first element of some canonical pair decomposition.
    CompositionPairs map[rune]rune

    OffsetNFD       uint32
    OffsetNFKD      uint32
    OffsetUppercase uint32
    OffsetLowercase uint32
    OffsetTitlecase uint32

    Block *Block
}

// AddCompositionPair registers Second -> Composed on this record, lazily
// allocating the map on first use.
func (r *Record) AddCompositionPair(second rune, composed rune) {
    r.CompositionPairs = ks.MustMap(r.CompositionPairs)
    r.CompositionPairs[second] = composed
}

// Block is a contiguous, named, inclusive codepoint range, as listed in
// Blocks.txt. Blocks are disjoint and, in file order, cover the whole
// codepoint space.
type Block struct {
    Start rune
    End   rune // inclusive
    Name  string
}

func (b *Block) Contains(cp rune) bool {
    return cp >= b.Start && cp <= b.End
}

// Database owns every pass's working state: the ordered record sequence,
// the codepoint index, the block table, the blob interner, and any
// non-fatal diagnostics accumulated along the way.
type Database struct {
    // Records is kept in parse order until SortRecords is called, and in
    // ascending codepoint order afterwards; ResolveBlocks and every later
    // pass depend on that ordering.
    Records     []*Record
    byCodepoint map[rune]*Record

    Blocks []*Block

    Blob *Blob

    // Verbose records whether the -verbose flag was given. No pass in this
    // package reads it; cmd/ucdgen prints its own timings and counts.
    Verbose bool

    // Diagnostics accumulates non-fatal MissingCodepointError and
    // CollisionError values encountered during resolution and emission.
    Diagnostics []error
}

// NewDatabase returns an empty, ready-to-ingest Database.
func NewDatabase() *Database {
    return &Database{
        byCodepoint: make(map[rune]*Record),
        Blob:        NewBlob(),
    }
}

// Lookup returns the record for a codepoint, and whether one exists. The
// original source's executeQuery treated a missing-key lookup as silently
// returning the zero value; every caller here must check ok explicitly.
func (db *Database) Lookup(cp rune) (*Record, bool) {
    r, ok := db.byCodepoint[cp]
    return r, ok
}

// Insert adds a newly parsed or synthesized record to the database. It is
// the caller's responsibility to call SortRecords afterwards if insertion
// may have broken ascending-codepoint order (ExpandRanges does this once,
// after all insertions for a pass).
func (db *Database) Insert(r *Record) {
    db.Records = append(db.Records, r)
    db.byCodepoint[r.Codepoint] = r
}

// SortRecords restores the ascending-codepoint-order invariant that every
// pass after range expansion depends on.
func (db *Database) SortRecords() {
    sortRecordsByCodepoint(db.Records)
}

func (db *Database) diag(err error) {
    db.Diagnostics = append(db.Diagnostics, err)
}

// ApplyEntryWindow restricts db.Records to a debugging-sized window: skip
// entries before reslicing, then cap the remainder at limit entries (0
// meaning unlimited for either bound). Rebuilds the codepoint index to
// match. Intended for the -entry-skip/-entry-limit CLI flags, never for
// production runs.
func (db *Database) ApplyEntryWindow(skip, limit int) {
    if skip <= 0 && limit <= 0 {
        return
    }

    records := db.Records
    if skip > 0 {
        if skip > len(records) {
            skip = len(records)
        }
        records = records[skip:]
    }
    if limit > 0 && limit < len(records) {
        records = records[:limit]
    }

    db.Records = records
    db.byCodepoint = make(map[rune]*Record, len(records))
    for _, r := range records {
        db.byCodepoint[r.Codepoint] = r
    }
}

func sortRecordsByCodepoint(records []*Record) {
    sort.Slice(records, func(i, j int) bool {
        return operator.LT(records[i].Codepoint, records[j].Codepoint)
    })
}
