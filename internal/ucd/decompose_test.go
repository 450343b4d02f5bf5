package ucd_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/Linaro1985/utf8rewind/internal/ucd"
)

// buildLatinSmallAWithAcute returns a database containing U+00E1 (a with
// acute) canonically decomposed into U+0061 U+0301, matching real UCD data.
func buildLatinSmallAWithAcute() *ucd.Database {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{Codepoint: 0x0061, Name: "LATIN SMALL LETTER A", GeneralCategory: ucd.LowercaseLetter})
    db.Insert(&ucd.Record{Codepoint: 0x0301, Name: "COMBINING ACUTE ACCENT", GeneralCategory: ucd.NonspacingMark})
    db.Insert(&ucd.Record{
        Codepoint:               0x00E1,
        Name:                    "LATIN SMALL LETTER A WITH ACUTE",
        GeneralCategory:         ucd.LowercaseLetter,
        DecompositionType:       ucd.Canonical,
        DecompositionCodepoints: []rune{0x0061, 0x0301},
    })
    db.SortRecords()
    return db
}

func TestResolveDecompositionsCanonical(t *testing.T) {
    db := buildLatinSmallAWithAcute()
    db.ResolveDecompositions()

    r, _ := db.Lookup(0x00E1)
    assert.Equal(t, []rune{0x0061, 0x0301}, r.DecomposedNFD)
    assert.Equal(t, []rune{0x0061, 0x0301}, r.DecomposedNFKD)
    assert.NotZero(t, r.OffsetNFD)
    assert.NotZero(t, r.OffsetNFKD)
}

func TestResolveDecompositionsIdentityLeavesOffsetZero(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{Codepoint: 'Z'})
    db.ResolveDecompositions()

    r, _ := db.Lookup('Z')
    assert.Equal(t, []rune{'Z'}, r.DecomposedNFD)
    assert.Zero(t, r.OffsetNFD)
    assert.Zero(t, r.OffsetNFKD)
}

func TestResolveDecompositionsCompatibilityOnlyAppliesToNFKD(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{Codepoint: 0x0041})
    db.Insert(&ucd.Record{
        Codepoint:               0xFF21, // FULLWIDTH LATIN CAPITAL LETTER A
        DecompositionType:       ucd.Wide,
        DecompositionCodepoints: []rune{0x0041},
    })
    db.ResolveDecompositions()

    r, _ := db.Lookup(0xFF21)
    assert.Equal(t, []rune{0xFF21}, r.DecomposedNFD) // non-canonical: NFD stays as itself
    assert.Equal(t, []rune{0x0041}, r.DecomposedNFKD)
}

func TestResolveDecompositionsTransitiveThroughMissingCodepointReportsDiagnostic(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{
        Codepoint:               0x1234,
        DecompositionType:       ucd.Canonical,
        DecompositionCodepoints: []rune{0x9999}, // not in database
    })
    db.ResolveDecompositions()

    r, _ := db.Lookup(0x1234)
    assert.Equal(t, []rune{0x9999}, r.DecomposedNFD)
    assert.NotEmpty(t, db.Diagnostics)
}
