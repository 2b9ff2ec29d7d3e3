// Package parser turns Sleuth source text into the domain.Query AST.
// Every grammar production has a name, and failure to match reports
// that name alongside whatever sub-rule tripped it.
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sleuth-query/sleuth/internal/domain"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokKeyword
	tokNumber
	tokString
	tokAddress
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

var keywords = map[string]bool{
	"SELECT":    true,
	"FROM":      true,
	"WHERE":     true,
	"REGISTER":  true,
	"CONTRACT":  true,
	"AT":        true,
	"WITH":      true,
	"INTERFACE": true,
	"IN":        true,
}

// lex tokenizes the full input up front; the grammar has no context
// sensitivity that requires a streaming lexer.
func lex(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	i := 0
	n := len(runes)

	for i < n {
		c := runes[i]

		if unicode.IsSpace(c) {
			i++
			continue
		}

		start := i

		switch {
		case c == '"':
			i++
			for i < n && runes[i] != '"' {
				i++
			}
			if i >= n {
				return nil, &domain.ParseError{Rule: "string", Detail: "unterminated string literal"}
			}
			toks = append(toks, token{kind: tokString, text: string(runes[start+1 : i]), pos: start})
			i++ // skip closing quote

		case c == '0' && i+1 < n && (runes[i+1] == 'x' || runes[i+1] == 'X'):
			j := i + 2
			for j < n && isHex(runes[j]) {
				j++
			}
			toks = append(toks, token{kind: tokAddress, text: string(runes[start:j]), pos: start})
			i = j

		case unicode.IsDigit(c):
			j := i
			for j < n && unicode.IsDigit(runes[j]) {
				j++
			}
			toks = append(toks, token{kind: tokNumber, text: string(runes[start:j]), pos: start})
			i = j

		case isIdentStart(c):
			j := i
			for j < n && isIdentPart(runes[j]) {
				j++
			}
			word := string(runes[start:j])
			if keywords[word] {
				toks = append(toks, token{kind: tokKeyword, text: word, pos: start})
			} else {
				toks = append(toks, token{kind: tokIdent, text: word, pos: start})
			}
			i = j

		case strings.ContainsRune(",.()[]*;=", c):
			toks = append(toks, token{kind: tokPunct, text: string(c), pos: start})
			i++

		default:
			return nil, &domain.ParseError{Rule: "program", Detail: fmt.Sprintf("unexpected character %q at offset %d", c, start)}
		}
	}

	toks = append(toks, token{kind: tokEOF, text: "", pos: n})
	return toks, nil
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

func isHex(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
