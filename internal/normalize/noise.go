package normalize

import "regexp"

// noisePatterns strips operational residue from descriptors: dates,
// timestamps, authorization codes, terminal identifiers and masked card
// numbers. The list is ordered and applied in sequence; patterns run on
// the upper-cased, diacritic-free string.
var noisePatterns = []*regexp.Regexp{
	// dates: DD/MM/YY(YY), DD-MM-YY, DD.MM.YY
	regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}(?:[/.-]\d{2,4})?\b`),
	// timestamps
	regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`),
	// authorization/NSU codes: 6+ digit runs
	regexp.MustCompile(`\d{6,}`),
	// labeled numeric codes; the label itself is noise even when the
	// digits were already consumed by an earlier pattern
	regexp.MustCompile(`\b(?:NSU|AUT|COD|ID|REF|NR|NUM|AGENCIA|CONTA|CPF|CNPJ)\b[\s:.#-]*\d*`),
	// terminal identifiers
	regexp.MustCompile(`\bTERM(?:INAL)?\s*[A-Z0-9-]*\d[A-Z0-9-]*`),
	// asterisk runs
	regexp.MustCompile(`\*{2,}`),
	// masked card numbers
	regexp.MustCompile(`\d{4,6}\*+\d{2,4}`),
	// any remaining digit/separator run of 10+ characters
	regexp.MustCompile(`[0-9][0-9 ./-]{8,}[0-9]`),
}

func stripNoise(s string) string {
	for _, re := range noisePatterns {
		s = re.ReplaceAllString(s, " ")
	}
	return s
}
