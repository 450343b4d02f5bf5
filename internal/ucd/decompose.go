package ucd

// ResolveDecompositions computes DecomposedNFD and DecomposedNFKD for every
// record and interns their UTF-8 encodings, per §4.5. Must run after
// ExpandRanges so every referenced codepoint has a record.
func (db *Database) ResolveDecompositions() {
    for _, r := range db.Records {
        r.DecomposedNFD = db.resolveDecomposition(r.Codepoint, false, nil)
        r.DecomposedNFKD = db.resolveDecomposition(r.Codepoint, true, nil)

        r.OffsetNFD = db.internSequence(r.Codepoint, r.DecomposedNFD)
        r.OffsetNFKD = db.internSequence(r.Codepoint, r.DecomposedNFKD)
    }
}

// resolveDecomposition implements the resolve(R, allowCompat) algorithm of
// §4.5: if R has a non-empty decomposition applicable under allowCompat,
// return the concatenation of the recursive resolution of each of its
// parts; otherwise return R itself. seen guards against a cyclic reference
// in malformed input data turning this into infinite recursion.
func (db *Database) resolveDecomposition(cp rune, allowCompat bool, seen map[rune]bool) []rune {
    r, ok := db.Lookup(cp)
    if !ok {
        return []rune{cp}
    }

    applicable := allowCompat || r.DecompositionType == Canonical
    if len(r.DecompositionCodepoints) == 0 || !applicable {
        return []rune{cp}
    }

    if seen[cp] {
        db.diag(&MissingCodepointError{Referrer: cp, Reference: cp, Context: "cyclic decomposition"})
        return []rune{cp}
    }
    seen = markSeen(seen, cp)

    var out []rune
    for _, part := range r.DecompositionCodepoints {
        if _, ok := db.Lookup(part); !ok {
            db.diag(&MissingCodepointError{Referrer: cp, Reference: part, Context: "decomposition"})
        }
        out = append(out, db.resolveDecomposition(part, allowCompat, seen)...)
    }
    return out
}

func markSeen(seen map[rune]bool, cp rune) map[rune]bool {
    next := make(map[rune]bool, len(seen)+1)
    for k, v := range seen {
        next[k] = v
    }
    next[cp] = true
    return next
}

// internSequence encodes decomposed as UTF-8 and interns it with a trailing
// NUL, unless it is byte-identical to the UTF-8 encoding of cp itself, in
// which case it's an identity decomposition and is left at offset 0 rather
// than stored (§4.5).
func (db *Database) internSequence(cp rune, decomposed []rune) uint32 {
    if len(decomposed) == 1 && decomposed[0] == cp {
        return 0
    }
    encoded := string(decomposed)
    if encoded == string(cp) {
        return 0
    }
    return db.Blob.InternUTF8WithNUL(encoded)
}
