package delim

import (
	"fmt"
	"strings"
)

// RowError reports malformed delimited input at a specific source line.
type RowError struct {
	Line int
	Msg  string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

const quote = '"'

// ReadRow tokenizes exactly one logical row of content starting at offset.
// line is the 1-based line number of the row start and is used for error
// reporting; the returned nextLine accounts for every physical newline the
// row consumed, including newlines embedded in quoted fields.
//
// Fields are split on sep. When quoted is true, a field that begins with a
// double quote runs until the matching closing quote; a doubled quote inside
// it decodes to one literal quote, and separators and line breaks inside it
// are literal content. The returned next offset points just past the row's
// line terminator (or at end of buffer).
func ReadRow(content string, offset, line int, sep byte, quoted bool) (fields []string, next int, nextLine int, err error) {
	var field strings.Builder
	i := offset
	atFieldStart := true

	for i < len(content) {
		if quoted && atFieldStart && content[i] == quote {
			i++
			closed := false
			for i < len(content) {
				c := content[i]
				if c == quote {
					if i+1 < len(content) && content[i+1] == quote {
						field.WriteByte(quote)
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				if c == '\n' {
					line++
				}
				field.WriteByte(c)
				i++
			}
			if !closed {
				return nil, offset, line, &RowError{Line: line, Msg: "unterminated quoted field"}
			}
			atFieldStart = false
			continue
		}

		c := content[i]
		switch c {
		case sep:
			fields = append(fields, field.String())
			field.Reset()
			atFieldStart = true
			i++
		case '\r':
			i++
			if i < len(content) && content[i] == '\n' {
				i++
			}
			fields = append(fields, field.String())
			return fields, i, line + 1, nil
		case '\n':
			i++
			fields = append(fields, field.String())
			return fields, i, line + 1, nil
		default:
			field.WriteByte(c)
			atFieldStart = false
			i++
		}
	}

	fields = append(fields, field.String())
	return fields, i, line + 1, nil
}
