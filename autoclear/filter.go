package autoclear

import "automaid/models"

// Passes reports whether a message's text clears the rule's content filter.
// A rule without a pattern always passes. The match is unanchored: any
// substring hit qualifies the message for deletion. A pattern that fails to
// compile within budget disables deletion for the message rather than
// aborting message processing.
func Passes(rule *models.Rule, text string) bool {
	if rule.Pattern == "" {
		return true
	}

	re, err := compilePattern(rule.Pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
