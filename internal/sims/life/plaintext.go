package life

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePlaintext reads a pattern in the plaintext (.cells) format: 'O' or
// '*' marks a live cell, '.' a dead one, and lines starting with '!' are
// comments. A "!Name:" comment overrides the supplied name. Short rows are
// padded with dead cells to the widest row.
func ParsePlaintext(name string, r io.Reader) (Pattern, error) {
	var rows [][]uint8
	width := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if v, ok := strings.CutPrefix(line, "!Name:"); ok {
				name = strings.TrimSpace(v)
			}
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" && len(rows) == 0 {
			continue
		}
		row := make([]uint8, len(line))
		for i, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				row[i] = 1
			case '.':
			default:
				return Pattern{}, fmt.Errorf("%s: line %d: unexpected %q: %w", name, len(rows)+1, ch, ErrInvalidCell)
			}
		}
		rows = append(rows, row)
		if len(row) > width {
			width = len(row)
		}
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", name, err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]uint8, width-len(row))...)
		}
	}
	return NewPattern(name, rows)
}
