package symbol

// Styled Latin alphabets, each holding A-Z followed by a-z. Most letters live
// in the Mathematical Alphanumeric Symbols block; the exceptions were encoded
// earlier in the Letterlike Symbols block.
var (
	ScriptLetters = styledAlphabet(0x1D49C, 0x1D4B6, map[rune]rune{
		'B': 0x212C, 'E': 0x2130, 'F': 0x2131, 'H': 0x210B, 'I': 0x2110,
		'L': 0x2112, 'M': 0x2133, 'R': 0x211B,
		'e': 0x212F, 'g': 0x210A, 'o': 0x2134,
	})
	FrakturLetters = styledAlphabet(0x1D504, 0x1D51E, map[rune]rune{
		'C': 0x212D, 'H': 0x210C, 'I': 0x2111, 'R': 0x211C, 'Z': 0x2128,
	})
	DoubleStruckLetters = styledAlphabet(0x1D538, 0x1D552, map[rune]rune{
		'C': 0x2102, 'H': 0x210D, 'N': 0x2115, 'P': 0x2119, 'Q': 0x211A,
		'R': 0x211D, 'Z': 0x2124,
	})
)

func styledAlphabet(upper, lower rune, exceptions map[rune]rune) []string {
	letters := make([]string, 0, 52)
	for r := 'A'; r <= 'Z'; r++ {
		letters = append(letters, styledLetter(r, upper+r-'A', exceptions))
	}
	for r := 'a'; r <= 'z'; r++ {
		letters = append(letters, styledLetter(r, lower+r-'a', exceptions))
	}
	return letters
}

func styledLetter(r, styled rune, exceptions map[rune]rune) string {
	if e, ok := exceptions[r]; ok {
		return string(e)
	}
	return string(styled)
}

// Restyle replaces each ASCII letter in s with its counterpart from letters,
// which holds A-Z followed by a-z. It reports whether anything was replaced.
func Restyle(s string, letters []string) (string, bool) {
	if len(letters) != 52 {
		return s, false
	}
	changed := false
	var buf []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z':
			buf = append(buf, letters[c-'A']...)
			changed = true
		case 'a' <= c && c <= 'z':
			buf = append(buf, letters[26+c-'a']...)
			changed = true
		default:
			buf = append(buf, c)
		}
	}
	return string(buf), changed
}
