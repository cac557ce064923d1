package placeholder

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which placeholder syntax and literal-escape rules apply
// during classification. Modes are mutually exclusive.
type Mode int

const (
	// ModeNone disables template detection entirely.
	ModeNone Mode = iota
	// ModeBracesDoubled recognizes {name} / {0} tokens; literal braces are
	// written doubled ("{{", "}}").
	ModeBracesDoubled
	// ModeBracesBackslash recognizes the same brace tokens; literal braces
	// are escaped with a backslash ("\{", "\}").
	ModeBracesBackslash
)

// ParseMode maps a configuration string to a Mode. Unknown values fall back
// to ModeBracesDoubled, the most common convention in game data files.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off", "":
		return ModeNone
	case "braces-backslash":
		return ModeBracesBackslash
	default:
		return ModeBracesDoubled
	}
}

// recognizers maps each mode to its detection function. Detection is
// advisory: a recognizer never errors, it only answers yes or no.
var recognizers = map[Mode]func(string) bool{
	ModeBracesDoubled:   func(s string) bool { return scanBraces(s, escapeDoubled) },
	ModeBracesBackslash: func(s string) bool { return scanBraces(s, escapeBackslash) },
}

type escapeStyle int

const (
	escapeDoubled escapeStyle = iota
	escapeBackslash
)

// IsTemplated reports whether text contains at least one recognizable
// template parameter under the given mode. Malformed placeholder syntax
// (unmatched braces, empty tokens) is treated as not templated rather than
// an error.
func IsTemplated(text string, mode Mode) bool {
	rec, ok := recognizers[mode]
	if !ok {
		return false
	}
	return rec(text)
}

// scanBraces looks for a {token} sequence whose token is a positional index
// or an identifier, optionally followed by an alignment/format section
// (e.g. {0,4} or {count:N2}).
func scanBraces(text string, esc escapeStyle) bool {
	i := 0
	for i < len(text) {
		c := text[i]
		if esc == escapeBackslash && c == '\\' && i+1 < len(text) {
			i += 2
			continue
		}
		if c != '{' {
			i++
			continue
		}
		if esc == escapeDoubled && i+1 < len(text) && text[i+1] == '{' {
			i += 2
			continue
		}
		if tokenAt(text, i+1) {
			return true
		}
		i++
	}
	return false
}

// tokenAt checks for a well-formed parameter token starting just after an
// opening brace at position i-1.
func tokenAt(text string, i int) bool {
	start := i
	for i < len(text) && isTokenChar(text[i]) {
		i++
	}
	if i == start {
		return false
	}
	// Optional alignment or format section, anything but braces or newlines.
	if i < len(text) && (text[i] == ',' || text[i] == ':') {
		i++
		for i < len(text) && text[i] != '}' && text[i] != '{' && text[i] != '\n' {
			i++
		}
	}
	return i < len(text) && text[i] == '}'
}

func isTokenChar(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

// Placeholder describes one template parameter declared by an explicit
// metadata record in a structured document. It is purely descriptive and is
// never used to derive an entry's template flag.
type Placeholder struct {
	Name    string
	Type    string
	Format  string
	Example string
	// Properties holds unrecognized scalar attributes verbatim.
	Properties map[string]string
	// OptionalParameters holds the scalar members of the record's
	// optionalParameters sub-object.
	OptionalParameters map[string]string
}

// ParseMeta builds a Placeholder from a metadata record keyed by name.
func ParseMeta(name string, record map[string]any) (Placeholder, error) {
	if name == "" {
		return Placeholder{}, fmt.Errorf("placeholder record has no name")
	}

	p := Placeholder{Name: name}
	for key, value := range record {
		switch key {
		case "type":
			p.Type, _ = value.(string)
		case "format":
			p.Format, _ = value.(string)
		case "example":
			p.Example = scalarString(value)
		case "optionalParameters":
			sub, ok := value.(map[string]any)
			if !ok {
				continue
			}
			p.OptionalParameters = make(map[string]string, len(sub))
			for k, v := range sub {
				if s, ok := scalar(v); ok {
					p.OptionalParameters[k] = s
				}
			}
		default:
			if s, ok := scalar(value); ok {
				if p.Properties == nil {
					p.Properties = make(map[string]string)
				}
				p.Properties[key] = s
			}
		}
	}
	return p, nil
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}

func scalarString(v any) string {
	s, _ := scalar(v)
	return s
}
