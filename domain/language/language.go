package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

const separator = ","

// ParseList splits a comma-separated field into trimmed, non-empty tokens.
// Order is preserved and duplicates are kept.
func ParseList(raw string) []string {
	tokens := lo.Map(strings.Split(raw, separator), func(token string, _ int) string {
		return strings.TrimSpace(token)
	})
	return lo.Filter(tokens, func(token string, _ int) bool {
		return token != ""
	})
}

// Reconcile returns proposed when it belongs to languages, the first language otherwise.
// An empty list leaves proposed untouched.
func Reconcile(languages []string, proposed string) string {
	if len(languages) == 0 {
		return proposed
	}
	if lo.Contains(languages, proposed) {
		return proposed
	}
	return languages[0]
}

// Detection is the outcome of a language guess on free text.
type Detection struct {
	Name     string
	Code     string
	Reliable bool
}

func Detect(text string) Detection {
	info := whatlanggo.Detect(text)
	return Detection{
		Name:     info.Lang.String(),
		Code:     info.Lang.Iso6391(),
		Reliable: info.IsReliable(),
	}
}

// Supports reports whether the detection matches one of the languages,
// either by English name or by ISO 639-1 code.
func (d Detection) Supports(languages []string) bool {
	return lo.ContainsBy(languages, func(l string) bool {
		return strings.EqualFold(l, d.Name) || strings.EqualFold(l, d.Code)
	})
}
