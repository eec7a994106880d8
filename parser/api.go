package parser

import (
	"io"

	"github.com/Sheeplet1/gologo/lang"
)

// ParseString tokenizes and parses script text into a program AST.
func ParseString(src string, env *lang.Env) ([]lang.Node, error) {
	return Parse(Tokenize(src), env)
}

// ParseReader consumes script text from an io.Reader.
func ParseReader(r io.Reader, env *lang.Env) ([]lang.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data), env)
}
