package tabbar

import (
	"regexp"
	"strings"
)

var (
	lowerUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	upperWord  = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
)

// PascalToKebab converts ArrowRight to arrow-right. A hyphen is inserted
// before an upper case letter that follows a lower case letter or a digit,
// and between an upper case letter and a following capitalized word.
func PascalToKebab(s string) string {
	s = lowerUpper.ReplaceAllString(s, "${1}-${2}")
	s = upperWord.ReplaceAllString(s, "${1}-${2}")
	return strings.ToLower(s)
}

// KebabToPascal converts arrow-right to ArrowRight.
func KebabToPascal(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// NormalizeName returns the kebab-case name of an icon given either in
// kebab-case or in PascalCase.
func NormalizeName(name string) string {
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}
	return PascalToKebab(name)
}
