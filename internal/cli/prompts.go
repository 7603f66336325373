package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine prompts and returns the next trimmed input line. The second
// return is false when input has ended.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// readInt prompts until it reads an integer or input ends.
func (m *Menu) readInt(prompt string) (int, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			m.failure.Fprintln(m.out, "Please type a number.")
			continue
		}
		return value, true
	}
}

// readFloat prompts until it reads a decimal number or input ends.
// Comma decimal separators are accepted.
func (m *Menu) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(line, ",", "."), 64)
		if err != nil {
			m.failure.Fprintln(m.out, "Please type a number.")
			continue
		}
		return value, true
	}
}
