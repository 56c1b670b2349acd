// Package glob matches text against shell-style wildcard patterns.
//
// In a pattern, * matches any sequence of bytes including '/', ? matches
// any single byte, [set] matches one byte in the set and [!set] or [^set]
// one byte outside it. A set lists bytes and ranges such as 0-9 or a-z.
// A backslash makes the following byte literal, inside or outside a set.
// Any other byte matches itself. The whole text must be consumed.
package glob

// at returns s[i], or 0 past the end of s.
func at(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// Match reports whether text matches pattern.
func Match(pattern, text string) bool {
	p, t := 0, 0
	for p < len(pattern) {
		c := pattern[p]
		p++
		switch c {
		case '?':
			if t >= len(text) {
				return false
			}
			t++

		case '\\':
			// A trailing backslash stands for itself.
			lit := byte('\\')
			if p < len(pattern) {
				lit = pattern[p]
				p++
			}
			if t >= len(text) || text[t] != lit {
				return false
			}
			t++

		case '*':
			return matchAfterStar(pattern[p:], text[t:])

		case '[':
			if t >= len(text) {
				return false
			}
			n, ok := matchSet(pattern[p:], text[t])
			if !ok {
				return false
			}
			p += n
			t++

		default:
			if t >= len(text) || text[t] != c {
				return false
			}
			t++
		}
	}
	return t == len(text)
}

// matchAfterStar matches pattern against any suffix of text.
func matchAfterStar(pattern, text string) bool {
	p, t := 0, 0
	var c byte
	for {
		if p >= len(pattern) {
			return true
		}
		c = pattern[p]
		p++
		if c == '*' {
			continue
		}
		if c != '?' {
			break
		}
		if t >= len(text) {
			return false
		}
		t++
	}

	// c1 is the literal the next text byte must equal before a full match
	// is worth trying.
	c1 := c
	if c == '\\' {
		c1 = '\\'
		if p < len(pattern) {
			c1 = pattern[p]
		}
	}

	rest := pattern[p-1:]
	for {
		if (c == '[' || (t < len(text) && text[t] == c1)) && Match(rest, text[t:]) {
			return true
		}
		if t >= len(text) {
			return false
		}
		t++
	}
}

// matchSet tests b against the set that starts just after a '['. It
// returns the number of pattern bytes consumed through the closing ']' and
// whether b is accepted. An unterminated set accepts nothing.
func matchSet(pattern string, b byte) (int, bool) {
	p := 0
	invert := false
	if c := at(pattern, 0); c == '!' || c == '^' {
		invert = true
		p++
	}

	c := at(pattern, p)
	p++
	for {
		lo, hi := c, c
		if c == '\\' {
			lo = at(pattern, p)
			hi = lo
			p++
		}
		if c == 0 {
			return p, false
		}

		c = at(pattern, p)
		p++
		if c == '-' && at(pattern, p) != ']' {
			hi = at(pattern, p)
			p++
			if hi == '\\' {
				hi = at(pattern, p)
				p++
			}
			if hi == 0 {
				return p, false
			}
			c = at(pattern, p)
			p++
		}

		if b >= lo && b <= hi {
			break
		}
		if c == ']' {
			return p, invert
		}
	}

	// Matched: skip the rest of the set.
	for c != ']' {
		if c == 0 {
			return p, false
		}
		c = at(pattern, p)
		p++
		if c == 0 {
			return p, false
		}
		if c == '\\' {
			p++
		}
	}
	return p, !invert
}
