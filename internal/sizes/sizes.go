package sizes

import "strings"

// Vocabulary is the global size range articles fall back to when they do not
// declare their own allowed sizes.
var Vocabulary = []string{"XS", "S", "M", "L", "XL", "XXL", "3XL", "4XL", "5XL"}

// synonyms folds historical spellings onto the canonical tokens. Matching is
// exact and happens after case/space folding.
var synonyms = map[string]string{
	"XXXL":   "3XL",
	"XXXXL":  "4XL",
	"XXXXXL": "5XL",
}

var plusSizes = map[string]bool{
	"3XL": true,
	"4XL": true,
	"5XL": true,
}

// Normalize canonicalizes a size token: trim, uppercase, drop internal
// spaces, then fold known synonyms. Empty input stays empty; callers treat
// that as "unspecified".
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, " ", "")
	if folded, ok := synonyms[s]; ok {
		return folded
	}
	return s
}

// IsPlusSize reports whether a normalized size falls in the higher flat-tier
// price bracket (3XL/4XL/5XL).
func IsPlusSize(normalized string) bool {
	return plusSizes[normalized]
}
