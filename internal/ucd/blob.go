package ucd

// Literal is the byte payload of one interned string. Its Len is the
// escape-token count the emitted C literal will use to address it, which
// for this interner always coincides with len(bytes) -- every encoded byte
// becomes exactly one \xNN token -- but it is named separately from a plain
// []byte so the "index by token, not by raw length" contract from §4.9 is
// visible at the type level rather than an implicit convention callers have
// to remember.
type Literal []byte

// Len returns the escape-token count this literal contributes to the blob's
// next-offset counter.
func (l Literal) Len() uint32 {
    return uint32(len(l))
}

// Blob is the append-only, deduplicating byte-string interner shared by
// every pass that needs to address a UTF-8 sequence by stable offset:
// decomposition, composition never (compositions are codepoint pairs, not
// strings), and case mapping.
//
// The zero offset is reserved to mean "absent/identity" -- NewBlob seeds
// the next-offset counter at 1 so a genuine first intern never collides
// with it.
type Blob struct {
    bytes      []byte
    offsets    map[string]uint32
    nextOffset uint32
    requests   int
}

// NewBlob returns an empty interner with its next-offset counter at 1.
func NewBlob() *Blob {
    return &Blob{
        offsets:    make(map[string]uint32),
        nextOffset: 1,
    }
}

// Intern records tokens in the blob if not already present, and returns the
// offset assigned to it -- the same offset on every call with an identical
// byte sequence, per the interner-stability invariant.
func (b *Blob) Intern(tokens Literal) uint32 {
    b.requests++

    key := string(tokens)
    if offset, ok := b.offsets[key]; ok {
        return offset
    }

    offset := b.nextOffset
    b.offsets[key] = offset
    b.bytes = append(b.bytes, tokens...)
    b.nextOffset += tokens.Len()
    return offset
}

// Bytes returns the concatenated interned payload, in insertion order.
func (b *Blob) Bytes() []byte {
    return b.bytes
}

// Len returns the interner's current next-offset value, which becomes
// DecompositionDataLength once every pass has finished interning.
func (b *Blob) Len() uint32 {
    return b.nextOffset
}

// Requests returns the total number of Intern calls made so far, including
// ones that hit the dedup cache, for the diagnostic "interning requests"
// count (§4.9).
func (b *Blob) Requests() int {
    return b.requests
}

// InternUTF8WithNUL encodes s as UTF-8 with a trailing NUL byte and interns
// it, matching the encoding rule used by the decomposition and case-mapping
// passes (§4.5, §4.8): every interned string in this compiler carries an
// explicit trailing NUL.
func (b *Blob) InternUTF8WithNUL(s string) uint32 {
    tokens := make(Literal, 0, len(s)+1)
    tokens = append(tokens, s...)
    tokens = append(tokens, 0)
    return b.Intern(tokens)
}
