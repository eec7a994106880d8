package parser

import "strings"

// commentPrefix marks a comment line; the whole line is dropped.
const commentPrefix = "//"

// Tokenize splits script text into whitespace-separated tokens. Every line
// is trimmed, blank lines and comment lines are dropped, and the rest are
// split on whitespace. A token never spans a line break. Tokenize is total:
// any input, including empty text, yields a (possibly empty) sequence.
func Tokenize(src string) []string {
	var tokens []string
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	return tokens
}
