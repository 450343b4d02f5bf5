package ucd

import (
    "fmt"
    "sort"
    "strings"

    "github.com/Linaro1985/utf8rewind/iter"
    "github.com/Linaro1985/utf8rewind/operator"
    "gopkg.in/alessio/shellescape.v1"
)

// decompositionTable names the five parallel {codepoint, offset} tables
// emitted by EmitC, in emission order.
type decompositionTable struct {
    name   string
    offset func(*Record) uint32
}

var decompositionTables = []decompositionTable{
    {"NFD", func(r *Record) uint32 { return r.OffsetNFD }},
    {"NFKD", func(r *Record) uint32 { return r.OffsetNFKD }},
    {"Uppercase", func(r *Record) uint32 { return r.OffsetUppercase }},
    {"Lowercase", func(r *Record) uint32 { return r.OffsetLowercase }},
    {"Titlecase", func(r *Record) uint32 { return r.OffsetTitlecase }},
}

// compositionEntry is a flattened (first, second) -> composed triple keyed
// for sorting and collision detection (§4.10 item 4).
type compositionEntry struct {
    key      uint64
    composed rune
}

// EmitC renders the full C source artifact: banner, include, the five
// decomposition tables, the composition table, and the paginated blob
// literal. args is the command-line argument list reported in the banner
// (normally os.Args[1:]); timestamp is caller-supplied so emission stays
// deterministic and test-friendly.
func (db *Database) EmitC(header string, pageSize int, args []string, timestamp string) string {
    var b strings.Builder

    writeBanner(&b, args, timestamp)
    fmt.Fprintf(&b, "#include \"%s\"\n\n", header)

    for _, t := range decompositionTables {
        db.writeDecompositionTable(&b, t)
    }

    db.writeCompositionTable(&b)
    db.writeBlobLiteral(&b, pageSize)

    return b.String()
}

func writeBanner(b *strings.Builder, args []string, timestamp string) {
    quoted := make([]string, 0, len(args))
    for _, a := range args {
        quoted = append(quoted, shellescape.Quote(a))
    }
    fmt.Fprintf(b, "/* Generated %s by ucdgen %s -- do not edit. */\n\n", timestamp, strings.Join(quoted, " "))
}

func (db *Database) writeDecompositionTable(b *strings.Builder, t decompositionTable) {
    fmt.Fprintf(b, "static const DecompositionRecord %sRecords[] = {\n", t.name)

    col := 0
    for _, r := range db.Records {
        offset := t.offset(r)
        if offset == 0 {
            continue
        }
        fmt.Fprintf(b, "{ 0x%08X, %d }, ", uint32(r.Codepoint), offset)
        col++
        if col%4 == 0 {
            b.WriteString("\n")
        }
    }
    if col%4 != 0 {
        b.WriteString("\n")
    }
    fmt.Fprintf(b, "};\n")
    fmt.Fprintf(b, "static const DecompositionRecord *%s = %sRecords;\n\n", t.name, t.name)
}

func (db *Database) writeCompositionTable(b *strings.Builder) {
    var entries []compositionEntry
    seen := make(map[uint64]bool)

    for _, r := range db.Records {
        if len(r.CompositionPairs) == 0 {
            continue
        }
        // iter.FromMap/ToSlice give a stable-enough snapshot of this
        // record's pairs to flatten before the final key sort below --
        // range order over a map is otherwise unspecified.
        pairs := iter.ToSlice(iter.FromMap(r.CompositionPairs))
        for _, p := range pairs {
            second, composed := p.Key, p.Value
            key := (uint64(uint32(r.Codepoint)) << 32) | uint64(uint32(second))
            if seen[key] {
                db.diag(&CollisionError{Codepoint: composed, Context: "composition key collision"})
                continue
            }
            seen[key] = true
            entries = append(entries, compositionEntry{key: key, composed: composed})
        }
    }

    sort.SliceStable(entries, func(i, j int) bool { return operator.LT(entries[i].key, entries[j].key) })

    fmt.Fprintf(b, "static const CompositionRecord CompositionRecords[] = {\n")
    col := 0
    for _, e := range entries {
        fmt.Fprintf(b, "{ 0x%016XULL, 0x%08X }, ", e.key, uint32(e.composed))
        col++
        if col%4 == 0 {
            b.WriteString("\n")
        }
    }
    if col%4 != 0 {
        b.WriteString("\n")
    }
    fmt.Fprintf(b, "};\n\n")
}

func (db *Database) writeBlobLiteral(b *strings.Builder, pageSize int) {
    pages := PaginateBlob(db.Blob.Bytes(), pageSize)

    fmt.Fprintf(b, "static const char DecompositionData[] =\n")
    for i, p := range pages {
        fmt.Fprintf(b, "\t\"%s\"", p)
        if i == len(pages)-1 {
            b.WriteString(";\n")
        } else {
            b.WriteString("\n")
        }
    }
    fmt.Fprintf(b, "\nstatic const size_t DecompositionDataLength = %d;\n", db.Blob.Len())
}
