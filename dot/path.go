package dot

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Path parsing
// ─────────────────────────────────────────────────────────────────────────────

// ParsePath splits path into its property segments.
//
//	ParsePath("a.b.c")      // [a b c]
//	ParsePath("a[0].b")     // [a 0 b]
//	ParsePath(`a["x.y"]`)   // [a x.y]
//	ParsePath("")           // []
//
// An unterminated bracket is kept literally as part of the current segment.
func ParsePath(path string) []string {
	if path == "" {
		return nil
	}
	segs := make([]string, 0, strings.Count(path, ".")+1)
	var cur strings.Builder
	closed := false // last segment came from a bracket and is already stored
	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '.':
			if !closed {
				segs = append(segs, cur.String())
			}
			cur.Reset()
			closed = false
		case '[':
			seg, next, ok := bracket(path, i)
			if !ok {
				cur.WriteString(path[i:])
				i = len(path)
				continue
			}
			if !closed && cur.Len() > 0 {
				segs = append(segs, cur.String())
			}
			cur.Reset()
			segs = append(segs, seg)
			closed = true
			i = next
		default:
			if closed {
				// "a[0]b" continues with a fresh segment.
				closed = false
			}
			cur.WriteByte(c)
		}
	}
	if !closed {
		segs = append(segs, cur.String())
	}
	return segs
}

// bracket parses the bracket expression opening at path[start] and returns
// its content and the index of the closing ']'.
func bracket(path string, start int) (string, int, bool) {
	i := start + 1
	if i < len(path) && (path[i] == '"' || path[i] == '\'') {
		quote := path[i]
		var b strings.Builder
		for j := i + 1; j < len(path); j++ {
			switch path[j] {
			case '\\':
				if j+1 < len(path) {
					j++
					b.WriteByte(path[j])
				}
			case quote:
				if j+1 < len(path) && path[j+1] == ']' {
					return b.String(), j + 1, true
				}
				b.WriteByte(quote)
			default:
				b.WriteByte(path[j])
			}
		}
		return "", 0, false
	}
	end := strings.IndexByte(path[i:], ']')
	if end < 0 {
		return "", 0, false
	}
	return path[i : i+end], i + end, true
}

// isDeep reports whether path contains separators that ParsePath would act on.
func isDeep(path string) bool {
	return strings.ContainsAny(path, ".[")
}
