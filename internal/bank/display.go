package bank

import "regexp"

// Trailing parenthetical disambiguator, e.g. "Which service ...? (2)".
// Bank authors use it to tell otherwise-duplicate stems apart.
var disambiguatorRE = regexp.MustCompile(`\s*\(\d+\)\s*$`)

// DisplayText returns the question text with any trailing disambiguator
// stripped. The full original text still feeds QuestionID so duplicate
// stems keep distinct identities.
func DisplayText(q *Question) string {
	return disambiguatorRE.ReplaceAllString(q.Text, "")
}
