package ucd

import (
    "bufio"
    "io"
    "strconv"
    "strings"
)

const unicodeDataFields = 15

// ParseUnicodeData reads UnicodeData.txt from r and inserts one Record per
// line into db. A malformed line raises a *ParseError for that entry only;
// the scan continues so a caller auditing a whole file sees every bad line,
// not just the first.
func ParseUnicodeData(r io.Reader, filename string, db *Database) []error {
    var errs []error

    scanner := bufio.NewScanner(r)
    lineNo := 0
    for scanner.Scan() {
        lineNo++
        line := scanner.Text()
        if line == "" {
            continue
        }

        rec, err := parseUnicodeDataLine(filename, lineNo, line)
        if err != nil {
            errs = append(errs, err)
            continue
        }
        db.Insert(rec)
    }

    return errs
}

func parseUnicodeDataLine(file string, lineNo int, line string) (*Record, error) {
    fields := strings.Split(line, ";")
    if len(fields) != unicodeDataFields {
        return nil, &ParseError{File: file, Line: lineNo, Field: "field-count", Value: strconv.Itoa(len(fields))}
    }

    cp, err := parseHexCodepoint(fields[0])
    if err != nil {
        return nil, &ParseError{File: file, Line: lineNo, Field: "codepoint", Value: fields[0]}
    }

    gc, ok := generalCategoryCodes[fields[2]]
    if !ok {
        return nil, &ParseError{File: file, Line: lineNo, Field: "general category", Value: fields[2]}
    }

    ccc, err := parseCombiningClass(fields[3])
    if err != nil {
        return nil, &ParseError{File: file, Line: lineNo, Field: "combining class", Value: fields[3]}
    }

    bidi, ok := bidiClassCodes[fields[4]]
    if !ok {
        return nil, &ParseError{File: file, Line: lineNo, Field: "bidi class", Value: fields[4]}
    }

    dt, decomp, err := parseDecomposition(fields[5])
    if err != nil {
        return nil, &ParseError{File: file, Line: lineNo, Field: "decomposition", Value: fields[5]}
    }

    numType, numValue, err := parseNumericFields(fields[6], fields[7], fields[8])
    if err != nil {
        return nil, &ParseError{File: file, Line: lineNo, Field: "numeric value", Value: fields[6] + ";" + fields[7] + ";" + fields[8]}
    }

    mirrored, err := parseBidiMirrored(fields[9])
    if err != nil {
        return nil, &ParseError{File: file, Line: lineNo, Field: "bidi mirrored", Value: fields[9]}
    }

    upper, err := parseOptionalSimpleCase(fields[12])
    if err != nil {
        return nil, &ParseError{File: file, Line: lineNo, Field: "simple uppercase", Value: fields[12]}
    }
    lower, err := parseOptionalSimpleCase(fields[13])
    if err != nil {
        return nil, &ParseError{File: file, Line: lineNo, Field: "simple lowercase", Value: fields[13]}
    }
    title, err := parseOptionalSimpleCase(fields[14])
    if err != nil {
        return nil, &ParseError{File: file, Line: lineNo, Field: "simple titlecase", Value: fields[14]}
    }

    rec := &Record{
        Codepoint:               cp,
        Name:                    fields[1],
        GeneralCategory:         gc,
        CanonicalCombiningClass: ccc,
        BidiClass:               bidi,
        DecompositionType:       dt,
        DecompositionCodepoints: decomp,
        NumericType:             numType,
        NumericValue:            numValue,
        BidiMirrored:            mirrored,
    }
    if upper != 0 {
        rec.Uppercase = []rune{upper}
    }
    if lower != 0 {
        rec.Lowercase = []rune{lower}
    }
    if title != 0 {
        rec.Titlecase = []rune{title}
    }
    return rec, nil
}

func parseHexCodepoint(s string) (rune, error) {
    v, err := strconv.ParseUint(s, 16, 32)
    if err != nil {
        return 0, err
    }
    return rune(v), nil
}

func parseCombiningClass(s string) (uint8, error) {
    v, err := strconv.ParseUint(s, 10, 8)
    if err != nil {
        return 0, err
    }
    if v > 254 {
        return 0, strconv.ErrRange
    }
    return uint8(v), nil
}

// parseDecomposition parses field 6: an optional bracketed tag followed by
// space-separated hex codepoints. Absence of both tag and codepoints means
// Canonical with an empty sequence.
func parseDecomposition(field string) (DecompositionType, []rune, error) {
    if field == "" {
        return Canonical, nil, nil
    }

    dt := Canonical
    rest := field
    if strings.HasPrefix(field, "<") {
        end := strings.IndexByte(field, '>')
        if end < 0 {
            return 0, nil, strconv.ErrSyntax
        }
        tag := field[1:end]
        mapped, ok := decompositionTagCodes[tag]
        if !ok {
            return 0, nil, strconv.ErrSyntax
        }
        dt = mapped
        rest = strings.TrimSpace(field[end+1:])
    }

    var codepoints []rune
    for _, tok := range strings.Fields(rest) {
        cp, err := parseHexCodepoint(tok)
        if err != nil {
            return 0, nil, err
        }
        codepoints = append(codepoints, cp)
    }
    return dt, codepoints, nil
}

// parseNumericFields implements the field 7-9 semantics of §4.1 exactly.
func parseNumericFields(decimalField, digitField, numericField string) (NumericType, Fraction, error) {
    if numericField == "" {
        return NumericNone, Fraction{}, nil
    }

    frac, err := parseNumericValue(numericField)
    if err != nil {
        return NumericNone, Fraction{}, err
    }

    switch {
    case digitField != "" && decimalField != "":
        return NumericDecimal, frac, nil
    case digitField != "":
        return NumericDigit, frac, nil
    default:
        return NumericNumeric, frac, nil
    }
}

func parseNumericValue(s string) (Fraction, error) {
    neg := strings.HasPrefix(s, "-")
    if neg {
        s = s[1:]
    }

    if slash := strings.IndexByte(s, '/'); slash >= 0 {
        n, err := strconv.ParseInt(s[:slash], 10, 64)
        if err != nil {
            return Fraction{}, err
        }
        d, err := strconv.ParseInt(s[slash+1:], 10, 64)
        if err != nil {
            return Fraction{}, err
        }
        return Fraction{Negative: neg, N: n, D: d}, nil
    }

    n, err := strconv.ParseInt(s, 10, 64)
    if err != nil {
        return Fraction{}, err
    }
    return Fraction{Negative: neg, N: n, D: 1}, nil
}

func parseBidiMirrored(s string) (bool, error) {
    switch s {
    case "Y":
        return true, nil
    case "N":
        return false, nil
    default:
        return false, strconv.ErrSyntax
    }
}

func parseOptionalSimpleCase(s string) (rune, error) {
    if s == "" {
        return 0, nil
    }
    return parseHexCodepoint(s)
}
