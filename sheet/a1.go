package sheet

import "strings"

// ColumnLetter converts a 1-based column number to its A1 letter form
// (1 -> A, 26 -> Z, 27 -> AA).
func ColumnLetter(n int) string {
	var s string
	for n > 0 {
		n--
		s = string(rune('A'+n%26)) + s
		n /= 26
	}
	return s
}

// QuoteSheetName quotes a sheet name for use in an A1 range when it
// contains spaces or quote characters. Embedded single quotes are
// doubled per A1 syntax.
func QuoteSheetName(name string) string {
	if strings.ContainsAny(name, " !'\"") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}

// SheetNameFromRange returns the sheet part of a range like "Raw!A1".
// A range with no sheet part is returned whole.
func SheetNameFromRange(rng string) string {
	name, _, found := strings.Cut(rng, "!")
	if !found {
		return rng
	}
	return name
}
