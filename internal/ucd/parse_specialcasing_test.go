package ucd_test

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/Linaro1985/utf8rewind/internal/ucd"
)

func TestApplySpecialCasingUnconditionalReplacesSimpleMapping(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{Codepoint: 0x00DF, Name: "LATIN SMALL LETTER SHARP S", Uppercase: []rune{0x00DF}})

    data := "00DF; 00DF; 0053 0073; 0053 0053; # LATIN SMALL LETTER SHARP S\n"
    conditional, errs := ucd.ApplySpecialCasing(strings.NewReader(data), "SpecialCasing.txt", db)
    assert.Empty(t, errs)
    assert.Equal(t, 0, conditional)

    r, _ := db.Lookup(0x00DF)
    assert.Equal(t, []rune{0x0053, 0x0053}, r.Uppercase)
    assert.Equal(t, []rune{0x0053, 0x0073}, r.Titlecase)
}

func TestApplySpecialCasingConditionalEntrySkipped(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{Codepoint: 0x0130, Uppercase: []rune{0x0130}})

    // Extra field beyond the three case columns marks this conditional.
    data := "0130; 0069 0307; 0130; 0130; tr After_I; # LATIN CAPITAL LETTER I WITH DOT ABOVE\n"
    conditional, errs := ucd.ApplySpecialCasing(strings.NewReader(data), "SpecialCasing.txt", db)
    assert.Empty(t, errs)
    assert.Equal(t, 1, conditional)

    r, _ := db.Lookup(0x0130)
    assert.Equal(t, []rune{0x0130}, r.Uppercase) // unchanged
}
