// Package fileseq expands frame number patterns in file sequence paths.
//
// Only the file name is inspected, and only the last frame token in it is
// expanded. A token must stand on its own between separators, as in
// "beauty.####.exr" or "beauty_%04d.exr". A run of N '#' characters is
// replaced by the frame number zero padded to N digits, printf style "%d"
// and "%0Nd" tokens are expanded the same way.
package fileseq

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
)

var framePattern = regexp.MustCompile(`(?:^|[._-])(#+|%(?:0\d+)?d)(?:[._-]|$)`)

type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// IsSequence reports whether the file name in p contains a frame token
func (r *Resolver) IsSequence(p string) bool {
	_, _, ok := frameToken(p)
	return ok
}

// Resolve replaces the frame token in p with frame. Paths without a token
// are returned unchanged.
func (r *Resolver) Resolve(p string, frame int) (string, error) {
	start, end, ok := frameToken(p)
	if !ok {
		return p, nil
	}

	token := p[start:end]
	width := len(token)

	if strings.HasPrefix(token, "%") {
		width = 0
		if digits := strings.TrimSuffix(strings.TrimPrefix(token, "%"), "d"); digits != "" {
			w, err := strconv.Atoi(digits)
			if err != nil {
				return "", fmt.Errorf("invalid frame token %q in %s: %w", token, p, err)
			}
			width = w
		}
	}

	return p[:start] + pad(frame, width) + p[end:], nil
}

// frameToken returns the byte offsets in p of the last frame token found
// in the file name.
func frameToken(p string) (int, int, bool) {
	dir := len(p) - len(path.Base(p))
	if strings.HasSuffix(p, "/") || dir < 0 {
		return 0, 0, false
	}

	name := p[dir:]

	// separators may be shared between neighbouring tokens, so scan
	// one byte at a time instead of relying on non overlapping matches
	start, end := -1, -1
	for offset := 0; offset < len(name); {
		m := framePattern.FindStringSubmatchIndex(name[offset:])
		if m == nil {
			break
		}
		start, end = offset+m[2], offset+m[3]
		offset = end
	}

	if start < 0 {
		return 0, 0, false
	}

	return dir + start, dir + end, true
}

func pad(frame, width int) string {
	if frame < 0 {
		return "-" + pad(-frame, width)
	}

	s := strconv.Itoa(frame)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}
