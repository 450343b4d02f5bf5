package ucd_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/Linaro1985/utf8rewind/internal/ucd"
)

func TestGeneralCategoryCIdentifier(t *testing.T) {
    assert.Equal(t, "LowercaseLetter", ucd.LowercaseLetter.CIdentifier())
    assert.Equal(t, "Unassigned", ucd.Unassigned.CIdentifier())
}

func TestBidiClassCIdentifierSharesCCodeWithDistinctGoNames(t *testing.T) {
    // BidiClass.NonspacingMarkBidi must emit the same C identifier as the
    // unrelated GeneralCategory.NonspacingMark, despite distinct Go names.
    assert.Equal(t, "NonspacingMark", ucd.NonspacingMarkBidi.CIdentifier())
    assert.Equal(t, "NonspacingMark", ucd.NonspacingMark.CIdentifier())
}

func TestFractionFloat64(t *testing.T) {
    f := ucd.Fraction{N: 1, D: 2}
    assert.InDelta(t, 0.5, f.Float64(), 0.0001)

    neg := ucd.Fraction{Negative: true, N: 1, D: 4}
    assert.InDelta(t, -0.25, neg.Float64(), 0.0001)

    zero := ucd.Fraction{}
    assert.Equal(t, float64(0), zero.Float64())
}
