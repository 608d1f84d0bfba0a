package jsonld

import "strings"

// lowerLangTags lower-cases the LANGTAG of every literal in an N-Quads
// document. json-gold's N-Quads grammar only accepts lower-case tags, while
// N-Quads allows either case and compares tags case-insensitively.
//
// IRIs, quoted strings and comments are skipped so only tags following a
// closing quote are touched.
func lowerLangTags(input string) string {
	if !strings.Contains(input, "@") {
		return input
	}
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch c {
		case '<':
			end := strings.IndexByte(input[i:], '>')
			if end < 0 {
				b.WriteString(input[i:])
				return b.String()
			}
			b.WriteString(input[i : i+end+1])
			i += end
		case '#':
			end := strings.IndexAny(input[i:], "\r\n")
			if end < 0 {
				b.WriteString(input[i:])
				return b.String()
			}
			b.WriteString(input[i : i+end])
			i += end - 1
		case '"':
			j := i + 1
			for j < len(input) && input[j] != '"' {
				if input[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(input) {
				b.WriteString(input[i:])
				return b.String()
			}
			b.WriteString(input[i : j+1])
			i = j
			if j+1 < len(input) && input[j+1] == '@' {
				k := j + 2
				for k < len(input) && isLangTagByte(input[k]) {
					k++
				}
				b.WriteByte('@')
				b.WriteString(strings.ToLower(input[j+2 : k]))
				i = k - 1
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isLangTagByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}
