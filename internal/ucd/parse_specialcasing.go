package ucd

import (
    "bufio"
    "io"
    "strings"
)

// ApplySpecialCasing reads SpecialCasing.txt from r and, for every
// unconditional entry, replaces (not extends) the simple case mappings
// parsed from UnicodeData.txt on the matching record (§4.7). Conditional
// entries -- ones with a fifth field beyond the three case-mapping columns
// -- are skipped, and counted separately so a verbose run can report how
// many locale-specific entries were intentionally dropped.
func ApplySpecialCasing(r io.Reader, filename string, db *Database) (conditionalCount int, errs []error) {
    scanner := bufio.NewScanner(r)
    lineNo := 0
    for scanner.Scan() {
        lineNo++
        line := strings.TrimSpace(scanner.Text())
        if line == "" || strings.HasPrefix(line, "#") {
            continue
        }
        if idx := strings.IndexByte(line, '#'); idx >= 0 {
            line = strings.TrimSpace(line[:idx])
        }
        if line == "" {
            continue
        }

        fields := splitSpecialCasingFields(line)
        if len(fields) < 4 {
            errs = append(errs, &ParseError{File: filename, Line: lineNo, Field: "special-casing-line", Value: line})
            continue
        }

        // fields: codepoint; lower; title; upper; [conditions...]; comment
        if len(fields) > 4 {
            conditionalCount++
            continue
        }

        cp, err := parseHexCodepoint(strings.TrimSpace(fields[0]))
        if err != nil {
            errs = append(errs, &ParseError{File: filename, Line: lineNo, Field: "codepoint", Value: fields[0]})
            continue
        }

        rec, ok := db.Lookup(cp)
        if !ok {
            db.diag(&MissingCodepointError{Referrer: cp, Reference: cp, Context: "special casing"})
            continue
        }

        lower, err := parseHexCodepointList(fields[1])
        if err != nil {
            errs = append(errs, &ParseError{File: filename, Line: lineNo, Field: "lower", Value: fields[1]})
            continue
        }
        title, err := parseHexCodepointList(fields[2])
        if err != nil {
            errs = append(errs, &ParseError{File: filename, Line: lineNo, Field: "title", Value: fields[2]})
            continue
        }
        upper, err := parseHexCodepointList(fields[3])
        if err != nil {
            errs = append(errs, &ParseError{File: filename, Line: lineNo, Field: "upper", Value: fields[3]})
            continue
        }

        rec.Lowercase = lower
        rec.Titlecase = title
        rec.Uppercase = upper
    }

    return conditionalCount, errs
}

// splitSpecialCasingFields splits on ';' and trims surrounding whitespace
// from each field, discarding a trailing empty field left by a line ending
// in "; # comment" after the comment strip.
func splitSpecialCasingFields(line string) []string {
    raw := strings.Split(line, ";")
    fields := make([]string, 0, len(raw))
    for _, f := range raw {
        f = strings.TrimSpace(f)
        if f == "" && len(fields) >= 4 {
            continue
        }
        fields = append(fields, f)
    }
    return fields
}

func parseHexCodepointList(s string) ([]rune, error) {
    s = strings.TrimSpace(s)
    if s == "" {
        return nil, nil
    }
    var out []rune
    for _, tok := range strings.Fields(s) {
        cp, err := parseHexCodepoint(tok)
        if err != nil {
            return nil, err
        }
        out = append(out, cp)
    }
    return out, nil
}
