// Package qpath manipulates game-relative file paths. Paths always use
// forward slashes and have no leading or trailing slash.
package qpath

import (
	"path"
	"strings"
)

// MaxExtension bounds the length of the extension FileExtension returns.
const MaxExtension = 7

// SkipPath returns the final element of p, after the last '/'.
func SkipPath(p string) string {
	return p[strings.LastIndexByte(p, '/')+1:]
}

// FixPath converts backslashes to slashes, collapses repeated slashes,
// drops "." elements, resolves "name/.." pairs and strips leading and
// trailing slashes. Leading ".." elements are kept.
//
//	FixPath(`something\a\..\b`) == "something/b"
func FixPath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return ""
	}
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return p
}

// extIndex returns the index of the '.' starting the extension of the
// final element of p, or -1.
func extIndex(p string) int {
	dot := strings.LastIndexByte(p, '.')
	if dot < 0 || dot < strings.LastIndexByte(p, '/') {
		return -1
	}
	return dot
}

// StripExtension returns p without the extension of its final element.
func StripExtension(p string) string {
	if dot := extIndex(p); dot >= 0 {
		return p[:dot]
	}
	return p
}

// FileExtension returns the extension of the final element of p without
// the dot, truncated to MaxExtension bytes.
func FileExtension(p string) string {
	dot := extIndex(p)
	if dot < 0 {
		return ""
	}
	ext := p[dot+1:]
	if len(ext) > MaxExtension {
		ext = ext[:MaxExtension]
	}
	return ext
}

// FileBase returns the final element of p without its extension.
func FileBase(p string) string {
	return StripExtension(SkipPath(p))
}

// FilePath returns p up to, but not including, the last '/'.
func FilePath(p string) string {
	slash := strings.LastIndexByte(p, '/')
	if slash < 0 {
		return ""
	}
	return p[:slash]
}

// DefaultExtension appends ext, which should include its dot, when the
// final element of p has no extension.
func DefaultExtension(p, ext string) string {
	if extIndex(p) >= 0 {
		return p
	}
	return p + ext
}

// MakePrintable removes every byte outside printable ASCII.
func MakePrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x20 && r <= 0x7e {
			return r
		}
		return -1
	}, s)
}
