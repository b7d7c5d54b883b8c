package form4

import "unicode"

// visualOrder reorders a logical-order line for a renderer that lays glyphs
// out strictly left to right. The line is reversed so the first Hebrew rune
// ends up rightmost, while runs of Latin letters and digits (case numbers,
// amounts, dates) keep their internal left-to-right order. Separators like
// the comma in "1,500" or the slash in a date stay inside the run they join.
func visualOrder(line string) string {
	runes := []rune(line)
	if len(runes) < 2 {
		return line
	}

	ltr := make([]bool, len(runes))
	for i, r := range runes {
		ltr[i] = isLTRRune(r)
	}
	for i := 1; i < len(runes)-1; i++ {
		if !ltr[i] && ltr[i-1] && ltr[i+1] && isRunJoiner(runes[i]) {
			ltr[i] = true
		}
	}

	out := make([]rune, 0, len(runes))
	for i := len(runes); i > 0; {
		if !ltr[i-1] {
			out = append(out, runes[i-1])
			i--
			continue
		}
		j := i
		for j > 0 && ltr[j-1] {
			j--
		}
		out = append(out, runes[j:i]...)
		i = j
	}
	return string(out)
}

func hasRTL(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hebrew, r) {
			return true
		}
	}
	return false
}

func isLTRRune(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(unicode.Latin, r)
}

func isRunJoiner(r rune) bool {
	switch r {
	case ',', '.', '/', ':', '-':
		return true
	}
	return false
}
