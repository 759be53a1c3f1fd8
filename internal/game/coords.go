package game

import "strconv"

// ParseCoord converts a board label like "C4" into zero-based (row, col).
// The letter is the row (A=0), the number is the 1-based column.
// Malformed input returns ok=false; this path is fed raw player text.
func ParseCoord(text string) (row, col int, ok bool) {
	if len(text) < 2 {
		return 0, 0, false
	}
	r := text[0]
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return 0, 0, false
	}
	n, err := strconv.Atoi(text[1:])
	if err != nil || n < 1 {
		return 0, 0, false
	}
	return int(r - 'A'), n - 1, true
}

// FormatCoord is the inverse of ParseCoord: (2,3) -> "C4".
func FormatCoord(row, col int) string {
	return string(rune('A'+row)) + strconv.Itoa(col+1)
}
