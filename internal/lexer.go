package internal

import "fmt"

// tokenKind enumerates the lexical classes produced by tokenize.
type tokenKind int

const (
	tokNumber tokenKind = iota
	tokCellRef
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

// token is one lexeme of a formula body.
type token struct {
	kind tokenKind
	text string // raw text for tokNumber and tokCellRef
}

var singleCharTokens = map[rune]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
}

// tokenize splits a formula body (the leading '=' already stripped) into
// tokens, skipping spaces and tabs anywhere. It rejects any other
// unexpected character, including other whitespace such as newlines.
func tokenize(body string) ([]token, error) {
	runes := []rune(body)
	var tokens []token
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch == ' ' || ch == '\t' {
			continue
		}
		if between(ch, '0', '9') {
			start := i
			sawDot := false
			for i < len(runes) && (between(runes[i], '0', '9') || (runes[i] == '.' && !sawDot)) {
				if runes[i] == '.' {
					sawDot = true
				}
				i++
			}
			tokens = append(tokens, token{kind: tokNumber, text: string(runes[start:i])})
			i--
			continue
		}
		if between(ch, 'A', 'Z') {
			start := i
			for i < len(runes) && (between(runes[i], '0', '9') || between(runes[i], 'A', 'Z')) {
				i++
			}
			tokens = append(tokens, token{kind: tokCellRef, text: string(runes[start:i])})
			i--
			continue
		}
		if kind, ok := singleCharTokens[ch]; ok {
			tokens = append(tokens, token{kind: kind})
			continue
		}
		return nil, fmt.Errorf("%w: unexpected character %q", ErrFormulaParse, ch)
	}
	return tokens, nil
}

// between is true iff target lies in [lb, ub].
func between(target, lb, ub rune) bool {
	return lb <= target && target <= ub
}
