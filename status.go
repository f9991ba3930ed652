package main

import "fmt"

func playLabel(held bool) string {
	if held {
		return "Playing (held)"
	}
	return "Paused"
}

func chapterLabel(i, n int) string {
	if n == 0 || i < 0 {
		return "Chapter: —"
	}
	return fmt.Sprintf("Chapter: %d/%d", i+1, n)
}

// offsetAt converts an editor row and column, both counted in runes, to a
// rune offset into text. Positions past the end of a line or of the text
// are clamped.
func offsetAt(text string, row, col int) int {
	offset, r, c := 0, 0, 0
	for _, ch := range text {
		if r == row && (c == col || ch == '\n') {
			return offset
		}
		if ch == '\n' {
			r++
			c = 0
		} else {
			c++
		}
		offset++
	}
	return offset
}

// rowCol is the inverse of offsetAt.
func rowCol(text string, offset int) (row, col int) {
	i := 0
	for _, ch := range text {
		if i == offset {
			break
		}
		if ch == '\n' {
			row++
			col = 0
		} else {
			col++
		}
		i++
	}
	return row, col
}
