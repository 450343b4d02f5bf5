package ks_test

import (
    "fmt"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/Linaro1985/utf8rewind/ks"
)

func ExampleWrapBlock() {
    fmt.Println(ks.WrapBlock("codepoint U+0041 has no block assigned", 20))

    // Output:
    // codepoint U+0041 has
    // no block assigned
}

func TestMustMap_nil(t *testing.T) {
    var m map[rune]rune
    m = ks.MustMap(m)
    assert.NotNil(t, m)
    assert.Len(t, m, 0)

    m[0x41] = 0x61
    assert.Equal(t, rune(0x61), m[0x41])
}

func TestMustMap_nonNil(t *testing.T) {
    m := map[rune]rune{0x42: 0x62}
    got := ks.MustMap(m)
    got[0x43] = 0x63
    assert.Equal(t, rune(0x63), m[0x43]) // same underlying map, not a copy
    assert.Equal(t, rune(0x62), got[0x42])
}

func TestWrapBlock_zeroColumns(t *testing.T) {
    assert.Equal(t, "", ks.WrapBlock("anything", 0))
}

func TestWrapBlock_longWord(t *testing.T) {
    got := ks.WrapBlock("supercalifragilisticexpialidocious", 10)
    assert.Equal(t, "supercalif", got)
}
