package optmap

import "strings"

// Tokenize splits a raw argument line into tokens. Unquoted, unescaped
// spaces separate tokens; a backslash escapes the next character (the
// backslash itself is consumed); a double quote toggles quoted mode, inside
// which spaces are literal (the quotes themselves are consumed). Empty
// tokens are dropped, so a quoted empty string ("") yields no token.
func Tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuotes := false
	escaped := false

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}
