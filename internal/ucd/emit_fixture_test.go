package ucd_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/Linaro1985/utf8rewind/internal/ucd"
)

func TestEmitCaseFixtureIdentityPadding(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{
        Codepoint: 0x00E9,
        Name:      "LATIN SMALL LETTER E WITH ACUTE",
        Uppercase: []rune{0x00C9},
        // Lowercase and Titlecase left empty -> identity
    })

    out := db.EmitCaseFixture(nil, "t")
    assert.Contains(t, out, "000000E9; 000000C9; 000000E9; 000000E9; # LATIN SMALL LETTER E WITH ACUTE")
}

func TestEmitCaseFixtureSkipsRecordsWithNoCaseMapping(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{Codepoint: 0x0021, Name: "EXCLAMATION MARK"})

    out := db.EmitCaseFixture(nil, "t")
    assert.NotContains(t, out, "EXCLAMATION MARK")
}
