package ucd

import (
    "fmt"
    "strings"

    "gopkg.in/alessio/shellescape.v1"
)

// EmitCaseFixture renders the human-readable case-mapping test fixture:
// one line per record with any non-empty case-mapping list, in the format
// "CCCCCCCC; UUUUUUUU [UU...]; LLLLLLLL [LL...]; TTTTTTTT [TT...]; # NAME"
// (§4.11). An empty list is rendered as the record's own codepoint
// (identity).
func (db *Database) EmitCaseFixture(args []string, timestamp string) string {
    var b strings.Builder

    quoted := make([]string, 0, len(args))
    for _, a := range args {
        quoted = append(quoted, shellescape.Quote(a))
    }
    fmt.Fprintf(&b, "# Generated %s by ucdgen %s -- do not edit.\n", timestamp, strings.Join(quoted, " "))

    for _, r := range db.Records {
        if len(r.Uppercase) == 0 && len(r.Lowercase) == 0 && len(r.Titlecase) == 0 {
            continue
        }

        fmt.Fprintf(&b, "%08X; %s; %s; %s; # %s\n",
            uint32(r.Codepoint),
            hexList(r.Uppercase, r.Codepoint),
            hexList(r.Lowercase, r.Codepoint),
            hexList(r.Titlecase, r.Codepoint),
            r.Name,
        )
    }

    return b.String()
}

func hexList(runes []rune, identity rune) string {
    if len(runes) == 0 {
        runes = []rune{identity}
    }
    parts := make([]string, len(runes))
    for i, cp := range runes {
        parts[i] = fmt.Sprintf("%08X", uint32(cp))
    }
    return strings.Join(parts, " ")
}
