package ucd_test

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/Linaro1985/utf8rewind/internal/ucd"
)

func TestEmitCContainsExpectedTablesAndBanner(t *testing.T) {
    db := buildLatinSmallAWithAcute()
    db.ResolveDecompositions()
    db.ResolveComposition()
    db.EncodeCasing()

    out := db.EmitC("unicodedatabase.h", 0, []string{"-data", "data"}, "2026-07-31T00:00:00Z")

    assert.Contains(t, out, `#include "unicodedatabase.h"`)
    assert.Contains(t, out, "static const DecompositionRecord NFDRecords[]")
    assert.Contains(t, out, "static const CompositionRecord CompositionRecords[]")
    assert.Contains(t, out, "static const char DecompositionData[]")
    assert.Contains(t, out, "DecompositionDataLength")
    assert.True(t, strings.HasPrefix(out, "/* Generated"))
}

func TestEmitCSkipsIdentityOffsetsFromTables(t *testing.T) {
    db := ucd.NewDatabase()
    db.Insert(&ucd.Record{Codepoint: 'Z'}) // identity decomposition, offset 0
    db.ResolveDecompositions()

    out := db.EmitC("h.h", 0, nil, "t")
    assert.NotContains(t, out, "0x0000005A") // U+005A must not appear in NFD table
}

func TestPaginateBlobPreservesBytesAcrossPageBoundary(t *testing.T) {
    blob := []byte("abcdefghij")
    pages := ucd.PaginateBlob(blob, 4)
    assert.Len(t, pages, 3)

    var reconstructed strings.Builder
    for _, p := range pages {
        reconstructed.WriteString(p)
    }

    var expected strings.Builder
    for _, c := range blob {
        expected.WriteString("\\x")
        expected.WriteString(hexByte(c))
    }
    assert.Equal(t, expected.String(), reconstructed.String())
}

func hexByte(b byte) string {
    const digits = "0123456789abcdef"
    return string([]byte{digits[b>>4], digits[b&0xF]})
}
