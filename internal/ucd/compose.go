package ucd

// ResolveComposition builds the inverse canonical-pair index: for every
// record whose decomposition is Canonical and exactly two codepoints long,
// registers db[L].compositionPairs[M] = R.codepoint (§4.6). Must run after
// ExpandRanges, and is independent of ResolveDecompositions (it reads
// DecompositionCodepoints, the raw parsed field, not the resolved NFD/NFKD
// sequences).
func (db *Database) ResolveComposition() {
    for _, r := range db.Records {
        if r.DecompositionType != Canonical {
            continue
        }
        if len(r.DecompositionCodepoints) != 2 {
            continue
        }

        l := r.DecompositionCodepoints[0]
        m := r.DecompositionCodepoints[1]

        first, ok := db.Lookup(l)
        if !ok {
            db.diag(&MissingCodepointError{Referrer: r.Codepoint, Reference: l, Context: "composition first"})
            continue
        }
        first.AddCompositionPair(m, r.Codepoint)
    }
}
