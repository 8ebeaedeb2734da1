package format

import (
	"strconv"
	"strings"
)

// Placeholder is a "{index[:transforms]}" token found in a template.
type Placeholder struct {
	Start int    // Byte offset of '{'
	End   int    // Byte offset after '}'
	Raw   string // Template text between Start and End

	// Index is the argument position, or -1 if the digits overflow int.
	Index int

	// HasTransforms is true when the placeholder has a ':' section, even if
	// that section names no transforms.
	HasTransforms bool
	Transforms    []string
}

// Parse scans tmpl left to right and returns its non-overlapping
// placeholders in order.
func Parse(tmpl string) []Placeholder {
	var result []Placeholder

	for i := 0; i < len(tmpl); {
		open := strings.IndexByte(tmpl[i:], '{')
		if open < 0 {
			break
		}
		open += i

		p, ok := scanPlaceholder(tmpl, open)
		if !ok {
			i = open + 1
			continue
		}
		result = append(result, p)
		i = p.End
	}

	return result
}

// Indexes returns the distinct argument indexes referenced by tmpl in order
// of first appearance.
func Indexes(tmpl string) []int {
	seen := make(map[int]bool)
	var result []int
	for _, p := range Parse(tmpl) {
		if !seen[p.Index] {
			seen[p.Index] = true
			result = append(result, p.Index)
		}
	}
	return result
}

// scanPlaceholder matches `{` digit+ (`:` [^}]*)? `}` at tmpl[start].
func scanPlaceholder(tmpl string, start int) (Placeholder, bool) {
	i := start + 1
	for i < len(tmpl) && isDigit(tmpl[i]) {
		i++
	}
	if i == start+1 || i >= len(tmpl) {
		return Placeholder{}, false
	}

	p := Placeholder{
		Start: start,
		Index: parseIndex(tmpl[start+1 : i]),
	}

	switch tmpl[i] {
	case '}':
		p.End = i + 1
	case ':':
		closing := strings.IndexByte(tmpl[i+1:], '}')
		if closing < 0 {
			return Placeholder{}, false
		}
		p.HasTransforms = true
		p.Transforms = splitTransforms(tmpl[i+1 : i+1+closing])
		p.End = i + 1 + closing + 1
	default:
		return Placeholder{}, false
	}

	p.Raw = tmpl[p.Start:p.End]
	return p, true
}

// splitTransforms splits a comma-separated name list, trimming names and
// dropping empty ones.
func splitTransforms(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func parseIndex(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return -1
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
