package command

import (
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel converts a label token in digit, full-width digit or
// circled-numeral form (①..⑳) to a plain digit string. ok is false when the
// token is not a number in 1..20.
func NormalizeLabel(token string) (string, bool) {
	// NFKC folds both "①" and "１" into ASCII digits
	n, err := strconv.Atoi(norm.NFKC.String(token))
	if err != nil || n < minLabel || n > maxLabel {
		return "", false
	}
	return strconv.Itoa(n), true
}

// detectInsertion returns the label when cmd asks to add a labelled element.
func detectInsertion(cmd string) (string, bool) {
	if !addVerbPattern.MatchString(cmd) {
		return "", false
	}

	for _, m := range labelPattern.FindAllStringSubmatch(cmd, -1) {
		token := m[1]
		if token == "" {
			token = m[2]
		}
		if label, ok := NormalizeLabel(token); ok {
			return label, true
		}
	}

	for _, m := range bareLabelPattern.FindAllStringSubmatch(cmd, -1) {
		token := m[1]
		if token == "" {
			token = m[2]
		}
		if label, ok := NormalizeLabel(token); ok {
			return label, true
		}
	}
	return "", false
}
