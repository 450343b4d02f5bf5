package ucd_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/Linaro1985/utf8rewind/internal/ucd"
)

func TestResolveCompositionRegistersPair(t *testing.T) {
    db := buildLatinSmallAWithAcute()
    db.ResolveComposition()

    a, _ := db.Lookup(0x0061)
    composed, ok := a.CompositionPairs[0x0301]
    assert.True(t, ok)
    assert.Equal(t, rune(0x00E1), composed)
}

func TestResolveCompositionSkipsNonCanonical(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{Codepoint: 0x0041})
    db.Insert(&ucd.Record{Codepoint: 0x0301})
    db.Insert(&ucd.Record{
        Codepoint:               0xFF21,
        DecompositionType:       ucd.Wide, // not canonical
        DecompositionCodepoints: []rune{0x0041, 0x0301},
    })

    db.ResolveComposition()

    a, _ := db.Lookup(0x0041)
    assert.Empty(t, a.CompositionPairs)
}

func TestResolveCompositionSkipsNonPairLength(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{Codepoint: 0x0041})
    db.Insert(&ucd.Record{Codepoint: 0x0301})
    db.Insert(&ucd.Record{Codepoint: 0x0302})
    db.Insert(&ucd.Record{
        Codepoint:               0x1E00,
        DecompositionType:       ucd.Canonical,
        DecompositionCodepoints: []rune{0x0041, 0x0301, 0x0302}, // length 3, not 2
    })

    db.ResolveComposition()

    a, _ := db.Lookup(0x0041)
    assert.Empty(t, a.CompositionPairs)
}

func TestResolveCompositionMissingFirstReportsDiagnostic(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{Codepoint: 0x0301})
    db.Insert(&ucd.Record{
        Codepoint:               0x00E1,
        DecompositionType:       ucd.Canonical,
        DecompositionCodepoints: []rune{0x0061, 0x0301}, // 0x0061 not in database
    })

    db.ResolveComposition()

    assert.NotEmpty(t, db.Diagnostics)
}
