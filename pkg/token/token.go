// Package token splits script and config text into whitespace-separated
// tokens. Double-quoted strings form a single token without their quotes,
// and // starts a comment that runs to the end of the line.
package token

import "strings"

// MaxTokenChars bounds a token's length. Longer tokens parse as "".
const MaxTokenChars = 1024

// Parse returns the next token in data and the text following it. ok is
// false when only whitespace and comments remain.
//
// Any byte at or below ' ' counts as whitespace. An unterminated quoted
// string runs to the end of data.
func Parse(data string) (tok, rest string, ok bool) {
	i := 0
	for {
		for i < len(data) && data[i] <= ' ' {
			i++
		}
		if i >= len(data) {
			return "", "", false
		}
		if strings.HasPrefix(data[i:], "//") {
			if nl := strings.IndexByte(data[i:], '\n'); nl >= 0 {
				i += nl
			} else {
				i = len(data)
			}
			continue
		}
		break
	}

	var start, end int
	if data[i] == '"' {
		start = i + 1
		if q := strings.IndexByte(data[start:], '"'); q >= 0 {
			end = start + q
			i = end + 1
		} else {
			end = len(data)
			i = end
		}
	} else {
		start = i
		for i < len(data) && data[i] > ' ' {
			i++
		}
		end = i
	}

	tok = data[start:end]
	if len(tok) >= MaxTokenChars {
		tok = ""
	}
	return tok, data[i:], true
}

// Split returns every token in data.
func Split(data string) []string {
	var toks []string
	for {
		tok, rest, ok := Parse(data)
		if !ok {
			return toks
		}
		toks = append(toks, tok)
		data = rest
	}
}
