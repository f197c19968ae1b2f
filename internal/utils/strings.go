package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitPassengerNames splits a newline-delimited block of passenger names
// into trimmed entries, dropping blank lines.
func SplitPassengerNames(raw string) []string {
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = NormalizeSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
