package builder

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern selects regular expression matches for Replace. Without Global
// only the first match is replaced.
type Pattern struct {
	Re     *regexp.Regexp
	Global bool
}

// Replace substitutes with for search, which must be one of:
//
//   - string: every non-overlapping occurrence is replaced literally
//   - *regexp.Regexp: every match is replaced, with $1-style expansion
//   - Pattern: the first match, or every match if Global is set
//
// Any other search value records ErrType.
func (sb *StringBuilder) Replace(search any, with string) *StringBuilder {
	return sb.update("replace", func(s string) (string, error) {
		switch p := search.(type) {
		case string:
			return strings.ReplaceAll(s, p, with), nil
		case *regexp.Regexp:
			if p == nil {
				break
			}
			return p.ReplaceAllString(s, with), nil
		case Pattern:
			if p.Re == nil {
				break
			}
			if p.Global {
				return p.Re.ReplaceAllString(s, with), nil
			}
			return replaceFirst(p.Re, s, with), nil
		}
		return s, &Error{Op: "replace", Err: fmt.Errorf("%w: search must be a string or pattern, got %T", ErrType, search)}
	})
}

func replaceFirst(re *regexp.Regexp, s, with string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	expanded := re.ExpandString(nil, with, s, loc)
	return s[:loc[0]] + string(expanded) + s[loc[1]:]
}
