package ucd

// rangeExpansionBlocks names the six large, sparsely-listed blocks whose
// interior codepoints need synthesized default records so later passes
// never fault looking them up (§4.4). Matched by block name rather than
// hardcoded numeric ranges, since block boundaries have moved across
// Unicode versions but these names haven't.
var rangeExpansionBlocks = map[string]bool{
    "CJK Unified Ideographs":              true,
    "CJK Unified Ideographs Extension A":  true,
    "CJK Unified Ideographs Extension B":  true,
    "CJK Unified Ideographs Extension C":  true,
    "CJK Unified Ideographs Extension D":  true,
    "Hangul Syllables":                    true,
}

// ResolveBlocks assigns db.Blocks[i] to every record, assuming both
// db.Records and db.Blocks are already in ascending order. It performs a
// single forward sweep with a cursor that advances while the current
// record's codepoint exceeds the current block's end -- a loop, not a
// single comparison, since a record can skip over one or more empty blocks
// (the fault this spec's source data had before this fix).
func (db *Database) ResolveBlocks() {
    assertAscending("ResolveBlocks", db.Records)

    cursor := 0
    for _, r := range db.Records {
        for cursor < len(db.Blocks)-1 && r.Codepoint > db.Blocks[cursor].End {
            cursor++
        }
        if cursor < len(db.Blocks) && db.Blocks[cursor].Contains(r.Codepoint) {
            r.Block = db.Blocks[cursor]
        }
    }

    assertBlockCoverage(db.Records)
}

// ExpandRanges synthesizes a default record for every codepoint in the open
// interval of each of the six rangeExpansionBlocks that the primary parse
// didn't already populate, then restores ascending-codepoint order.
//
// Must run after ParseBlocks has populated db.Blocks and after the
// primary UnicodeData.txt parse, and before any pass that looks up
// codepoints inside these ranges (decomposition, composition).
func (db *Database) ExpandRanges() {
    for _, b := range db.Blocks {
        if !rangeExpansionBlocks[b.Name] {
            continue
        }
        for c := b.Start + 1; c < b.End; c++ {
            if _, ok := db.Lookup(c); ok {
                continue
            }
            db.Insert(&Record{
                Codepoint:       c,
                GeneralCategory: Unassigned,
                Block:           b,
            })
        }
    }
    db.SortRecords()
}
