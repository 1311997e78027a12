package channels

import "strings"

const eogChars = "VHEOGLR"

// resolveName normalizes a source channel name into the form used for
// name lookup in pool c. An empty result never matches a slot.
func (s *Scheme) resolveName(c Category, name string) string {
	up := strings.ToUpper(strings.TrimSpace(name))
	switch c {
	case CategoryEEG:
		up = strings.ReplaceAll(up, "EEG", "")
		up = strings.ReplaceAll(up, "REF", "")

		return keepRunes(up, func(r rune) bool {
			_, ok := s.eegChars[r]
			return ok
		})
	case CategoryEOG:
		return keepRunes(up, func(r rune) bool { return strings.ContainsRune(eogChars, r) })
	case CategoryReference:
		up = strings.ReplaceAll(up, "EAR", "")
		up = strings.ReplaceAll(up, "REF", "")
		switch {
		case strings.Contains(up, "A1"):
			return "A1"
		case strings.Contains(up, "A2"):
			return "A2"
		case strings.Contains(up, "L"):
			return "A1"
		case strings.Contains(up, "R"):
			return "A2"
		default:
			return "REF"
		}
	default:
		return up
	}
}

func keepRunes(s string, keep func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if keep(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
