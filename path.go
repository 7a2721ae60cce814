package jsonedit

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step into a document: an object key or an array index,
// root-to-leaf order within a Path.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Key builds an object-key segment.
func Key(k string) Segment { return Segment{Key: k} }

// Index builds an array-index segment.
func Index(i int) Segment { return Segment{Index: i, IsIndex: true} }

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return "[" + strconv.Quote(s.Key) + "]"
}

// Path locates a value within a document. The empty path is the document
// root.
type Path []Segment

// Format renders the path in locator notation: "$" for the root, then one
// bracketed segment per step, keys double-quoted and indices bare.
//
//	Format(Path{Key("users"), Index(2), Key("name")}) == `$["users"][2]["name"]`
func Format(path Path) string {
	if len(path) == 0 {
		return "$"
	}
	var sb strings.Builder
	sb.WriteByte('$')
	for _, seg := range path {
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// ParsePath parses a path expression. It accepts the locator notation Format
// produces, dotted notation, and mixtures of both:
//
//	$["users"][2]["name"]
//	users[2].name
//	users.2.name
//
// A bare dotted segment of digits addresses an array index; use a quoted
// bracket segment for an object key that looks numeric.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	if s == "" || s == "." {
		return nil, nil
	}
	var path Path
	i := 0
	for i < len(s) {
		switch s[i] {
		case '.':
			i++
			if i == len(s) {
				return nil, fmt.Errorf("jsonedit: path %q ends with a dot", s)
			}
		case '[':
			end, err := findBracketEnd(s, i)
			if err != nil {
				return nil, err
			}
			inner := s[i+1 : end]
			seg, err := parseBracketSegment(inner)
			if err != nil {
				return nil, err
			}
			path = append(path, seg)
			i = end + 1
		default:
			j := i
			for j < len(s) && s[j] != '.' && s[j] != '[' {
				j++
			}
			word := s[i:j]
			if n, err := strconv.Atoi(word); err == nil && n >= 0 {
				path = append(path, Index(n))
			} else {
				path = append(path, Key(word))
			}
			i = j
		}
	}
	return path, nil
}

func findBracketEnd(s string, start int) (int, error) {
	i := start + 1
	inQuote := false
	for i < len(s) {
		switch {
		case inQuote && s[i] == '\\':
			i++ // skip the escaped character
		case s[i] == '"':
			inQuote = !inQuote
		case !inQuote && s[i] == ']':
			return i, nil
		}
		i++
	}
	return 0, fmt.Errorf("jsonedit: unterminated bracket segment in path %q", s)
}

func parseBracketSegment(inner string) (Segment, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Segment{}, fmt.Errorf("jsonedit: empty bracket segment")
	}
	if inner[0] == '"' {
		key, err := strconv.Unquote(inner)
		if err != nil {
			return Segment{}, fmt.Errorf("jsonedit: bad quoted segment %s: %w", inner, err)
		}
		return Key(key), nil
	}
	n, err := strconv.Atoi(inner)
	if err != nil || n < 0 {
		return Segment{}, fmt.Errorf("jsonedit: bracket segment %q is neither a quoted key nor a non-negative index", inner)
	}
	return Index(n), nil
}
