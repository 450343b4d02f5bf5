// Package ucd implements the core Unicode Character Database compiler: it
// parses UnicodeData.txt, Blocks.txt, and SpecialCasing.txt into a single
// in-memory Database, resolves decomposition and composition, and emits the
// C source and case-mapping fixture consumed by the runtime library.
package ucd

// GeneralCategory is the two-letter Unicode general category property,
// field 3 of UnicodeData.txt.
type GeneralCategory int8

const (
    UppercaseLetter GeneralCategory = iota + 1
    LowercaseLetter
    TitlecaseLetter
    ModifierLetter
    OtherLetter
    NonspacingMark
    SpacingMark
    EnclosingMark
    DecimalNumber
    LetterNumber
    OtherNumber
    ConnectorPunctuation
    DashPunctuation
    OpenPunctuation
    ClosePunctuation
    InitialPunctuation
    FinalPunctuation
    OtherPunctuation
    MathSymbol
    CurrencySymbol
    ModifierSymbol
    OtherSymbol
    SpaceSeparator
    LineSeparator
    ParagraphSeparator
    Control
    Format
    Surrogate
    PrivateUse
    Unassigned
)

// generalCategoryCodes maps the UCD two-letter code to its GeneralCategory.
var generalCategoryCodes = map[string]GeneralCategory{
    "Lu": UppercaseLetter,
    "Ll": LowercaseLetter,
    "Lt": TitlecaseLetter,
    "Lm": ModifierLetter,
    "Lo": OtherLetter,
    "Mn": NonspacingMark,
    "Mc": SpacingMark,
    "Me": EnclosingMark,
    "Nd": DecimalNumber,
    "Nl": LetterNumber,
    "No": OtherNumber,
    "Pc": ConnectorPunctuation,
    "Pd": DashPunctuation,
    "Ps": OpenPunctuation,
    "Pe": ClosePunctuation,
    "Pi": InitialPunctuation,
    "Pf": FinalPunctuation,
    "Po": OtherPunctuation,
    "Sm": MathSymbol,
    "Sc": CurrencySymbol,
    "Sk": ModifierSymbol,
    "So": OtherSymbol,
    "Zs": SpaceSeparator,
    "Zl": LineSeparator,
    "Zp": ParagraphSeparator,
    "Cc": Control,
    "Cf": Format,
    "Cs": Surrogate,
    "Co": PrivateUse,
    "Cn": Unassigned,
}

// generalCategoryIdentifiers is the C identifier emitted for each
// GeneralCategory, matching the runtime header verbatim.
var generalCategoryIdentifiers = map[GeneralCategory]string{
    UppercaseLetter:      "UppercaseLetter",
    LowercaseLetter:      "LowercaseLetter",
    TitlecaseLetter:      "TitlecaseLetter",
    ModifierLetter:       "ModifierLetter",
    OtherLetter:          "OtherLetter",
    NonspacingMark:       "NonspacingMark",
    SpacingMark:          "SpacingMark",
    EnclosingMark:        "EnclosingMark",
    DecimalNumber:        "DecimalNumber",
    LetterNumber:         "LetterNumber",
    OtherNumber:          "OtherNumber",
    ConnectorPunctuation: "ConnectorPunctuation",
    DashPunctuation:      "DashPunctuation",
    OpenPunctuation:      "OpenPunctuation",
    ClosePunctuation:     "ClosePunctuation",
    InitialPunctuation:   "InitialPunctuation",
    FinalPunctuation:     "FinalPunctuation",
    OtherPunctuation:     "OtherPunctuation",
    MathSymbol:           "MathSymbol",
    CurrencySymbol:       "CurrencySymbol",
    ModifierSymbol:       "ModifierSymbol",
    OtherSymbol:          "OtherSymbol",
    SpaceSeparator:       "SpaceSeparator",
    LineSeparator:        "LineSeparator",
    ParagraphSeparator:   "ParagraphSeparator",
    Control:              "Control",
    Format:               "Format",
    Surrogate:            "Surrogate",
    PrivateUse:           "PrivateUse",
    Unassigned:           "Unassigned",
}

func (g GeneralCategory) CIdentifier() string {
    return generalCategoryIdentifiers[g]
}

// BidiClass is the short bidirectional class code, field 5 of
// UnicodeData.txt.
type BidiClass int8

const (
    LeftToRight BidiClass = iota + 1
    LeftToRightEmbedding
    LeftToRightOverride
    RightToLeft
    ArabicLetter
    RightToLeftEmbedding
    RightToLeftOverride
    PopDirectionalFormat
    EuropeanNumber
    EuropeanSeparator
    EuropeanTerminator
    ArabicNumber
    CommonSeparator
    NonspacingMarkBidi
    BoundaryNeutral
    ParagraphSeparatorBidi
    SegmentSeparator
    WhiteSpace
    OtherNeutral
    LeftToRightIsolate
    RightToLeftIsolate
    FirstStrongIsolate
    PopDirectionalIsolate
)

var bidiClassCodes = map[string]BidiClass{
    "L":   LeftToRight,
    "LRE": LeftToRightEmbedding,
    "LRO": LeftToRightOverride,
    "R":   RightToLeft,
    "AL":  ArabicLetter,
    "RLE": RightToLeftEmbedding,
    "RLO": RightToLeftOverride,
    "PDF": PopDirectionalFormat,
    "EN":  EuropeanNumber,
    "ES":  EuropeanSeparator,
    "ET":  EuropeanTerminator,
    "AN":  ArabicNumber,
    "CS":  CommonSeparator,
    "NSM": NonspacingMarkBidi,
    "BN":  BoundaryNeutral,
    "B":   ParagraphSeparatorBidi,
    "S":   SegmentSeparator,
    "WS":  WhiteSpace,
    "ON":  OtherNeutral,
    "LRI": LeftToRightIsolate,
    "RLI": RightToLeftIsolate,
    "FSI": FirstStrongIsolate,
    "PDI": PopDirectionalIsolate,
}

var bidiClassIdentifiers = map[BidiClass]string{
    LeftToRight:            "LeftToRight",
    LeftToRightEmbedding:   "LeftToRightEmbedding",
    LeftToRightOverride:    "LeftToRightOverride",
    RightToLeft:            "RightToLeft",
    ArabicLetter:           "ArabicLetter",
    RightToLeftEmbedding:   "RightToLeftEmbedding",
    RightToLeftOverride:    "RightToLeftOverride",
    PopDirectionalFormat:   "PopDirectionalFormat",
    EuropeanNumber:         "EuropeanNumber",
    EuropeanSeparator:      "EuropeanSeparator",
    EuropeanTerminator:     "EuropeanTerminator",
    ArabicNumber:           "ArabicNumber",
    CommonSeparator:        "CommonSeparator",
    NonspacingMarkBidi:     "NonspacingMark",
    BoundaryNeutral:        "BoundaryNeutral",
    ParagraphSeparatorBidi: "ParagraphSeparator",
    SegmentSeparator:       "SegmentSeparator",
    WhiteSpace:             "WhiteSpace",
    OtherNeutral:           "OtherNeutral",
    LeftToRightIsolate:     "LeftToRightIsolate",
    RightToLeftIsolate:     "RightToLeftIsolate",
    FirstStrongIsolate:     "FirstStrongIsolate",
    PopDirectionalIsolate:  "PopDirectionalIsolate",
}

func (b BidiClass) CIdentifier() string {
    return bidiClassIdentifiers[b]
}

// DecompositionType is the compatibility formatting tag in field 6 of
// UnicodeData.txt. Absence of a tag means Canonical.
type DecompositionType int8

const (
    Canonical DecompositionType = iota + 1
    Font
    NoBreak
    InitialArabic
    MedialArabic
    FinalArabic
    IsolatedArabic
    Circle
    Superscript
    Subscript
    Vertical
    Wide
    Narrow
    Small
    SquaredCJK
    Fraction
    Unspecified
)

// decompositionTagCodes maps the bracketed UCD tag to its DecompositionType.
// A decomposition field with no tag at all is Canonical and is handled by
// the caller, not by this table.
var decompositionTagCodes = map[string]DecompositionType{
    "font":     Font,
    "noBreak":  NoBreak,
    "initial":  InitialArabic,
    "medial":   MedialArabic,
    "final":    FinalArabic,
    "isolated": IsolatedArabic,
    "circle":   Circle,
    "super":    Superscript,
    "sub":      Subscript,
    "vertical": Vertical,
    "wide":     Wide,
    "narrow":   Narrow,
    "small":    Small,
    "square":   SquaredCJK,
    "fraction": Fraction,
    "compat":   Unspecified,
}

var decompositionTypeIdentifiers = map[DecompositionType]string{
    Canonical:      "Canonical",
    Font:           "Font",
    NoBreak:        "NoBreak",
    InitialArabic:  "InitialArabic",
    MedialArabic:   "MedialArabic",
    FinalArabic:    "FinalArabic",
    IsolatedArabic: "IsolatedArabic",
    Circle:         "Circle",
    Superscript:    "Superscript",
    Subscript:      "Subscript",
    Vertical:       "Vertical",
    Wide:           "Wide",
    Narrow:         "Narrow",
    Small:          "Small",
    SquaredCJK:     "SquaredCJK",
    Fraction:       "Fraction",
    Unspecified:    "Unspecified",
}

func (d DecompositionType) CIdentifier() string {
    return decompositionTypeIdentifiers[d]
}

// NumericType classifies which of the three numeric-value fields (7-9) of
// UnicodeData.txt were populated.
type NumericType int8

const (
    NumericNone NumericType = iota
    NumericDecimal
    NumericDigit
    NumericNumeric
)

var numericTypeIdentifiers = map[NumericType]string{
    NumericNone:    "None",
    NumericDecimal: "Decimal",
    NumericDigit:   "Digit",
    NumericNumeric: "Numeric",
}

func (n NumericType) CIdentifier() string {
    return numericTypeIdentifiers[n]
}

// Fraction is a rational numeric value, mirroring the teacher's own
// Fraction type in internal/unicode/gen-13.0.0/np/gen.go.
type Fraction struct {
    Negative bool
    N        int64
    D        int64
}

// Float64 returns the fraction as a real number.
func (f Fraction) Float64() float64 {
    if f.D == 0 {
        return 0
    }
    v := float64(f.N) / float64(f.D)
    if f.Negative {
        v = -v
    }
    return v
}
