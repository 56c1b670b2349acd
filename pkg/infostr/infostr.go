// Package infostr reads and edits info strings: flat key/value lists
// encoded as \key1\value1\key2\value2. Keys and values may not contain
// backslashes, semicolons or double quotes.
package infostr

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxKey bounds the length of a key or value, including a terminator
	// in the wire format, so at most MaxKey-1 characters are stored.
	MaxKey = 64
	// MaxString bounds the encoded length of a whole info string.
	MaxString = 512
)

var (
	ErrBackslash = errors.New("keys and values cannot contain a backslash")
	ErrSemicolon = errors.New("keys cannot contain a semicolon")
	ErrQuote     = errors.New("keys and values cannot contain a double quote")
	ErrTooLong   = errors.New("keys and values must be shorter than 64 characters")
	ErrOverflow  = errors.New("info string length exceeded")
)

// pair is one key/value entry located in an info string. start is the
// offset of the entry's leading backslash (or of the key when there is
// none) and end is the offset just past the value.
type pair struct {
	key, value string
	start, end int
}

// next parses the entry starting at offset i. ok is false when the string
// ends before a complete key and separator.
func next(s string, i int) (p pair, ok bool) {
	p.start = i
	if i < len(s) && s[i] == '\\' {
		i++
	}
	k := strings.IndexByte(s[i:], '\\')
	if k < 0 {
		return p, false
	}
	p.key = s[i : i+k]
	i += k + 1

	v := strings.IndexByte(s[i:], '\\')
	if v < 0 {
		v = len(s) - i
	}
	p.value = s[i : i+v]
	p.end = i + v
	return p, true
}

func find(s, key string) (pair, bool) {
	for i := 0; i < len(s); {
		p, ok := next(s, i)
		if !ok {
			return pair{}, false
		}
		if p.key == key {
			return p, true
		}
		i = p.end
	}
	return pair{}, false
}

// ValueForKey returns the value stored under key, or "" when the key is
// absent.
func ValueForKey(s, key string) string {
	p, _ := find(s, key)
	return p.value
}

// RemoveKey returns s without the first entry for key. Keys containing a
// backslash can never be present, so s is returned unchanged.
func RemoveKey(s, key string) string {
	if strings.Contains(key, `\`) {
		return s
	}
	p, ok := find(s, key)
	if !ok {
		return s
	}
	return s[:p.start] + s[p.end:]
}

// Validate reports whether s is free of the characters that break info
// string parsing downstream.
func Validate(s string) bool {
	return !strings.ContainsAny(s, `";`)
}

// SetValueForKey returns s with key set to value. Any previous entry for
// key is removed and the new entry is appended. An empty value only
// removes the key. Characters outside printable ASCII are dropped from the
// new entry after clearing their high bit.
//
// On error s is returned unchanged.
func SetValueForKey(s, key, value string) (string, error) {
	switch {
	case strings.Contains(key, `\`) || strings.Contains(value, `\`):
		return s, fmt.Errorf("infostr: set %q: %w", key, ErrBackslash)
	case strings.Contains(key, ";"):
		return s, fmt.Errorf("infostr: set %q: %w", key, ErrSemicolon)
	case strings.Contains(key, `"`) || strings.Contains(value, `"`):
		return s, fmt.Errorf("infostr: set %q: %w", key, ErrQuote)
	case len(key) > MaxKey-1 || len(value) > MaxKey-1:
		return s, fmt.Errorf("infostr: set %q: %w", key, ErrTooLong)
	}

	out := RemoveKey(s, key)
	if value == "" {
		return out, nil
	}

	entry := `\` + key + `\` + value
	if len(entry)+len(out) > MaxString {
		return s, fmt.Errorf("infostr: set %q: %w", key, ErrOverflow)
	}

	var b strings.Builder
	b.Grow(len(out) + len(entry))
	b.WriteString(out)
	for i := 0; i < len(entry); i++ {
		c := entry[i] & 127
		if c >= 32 && c < 127 {
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
