package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teller-lang/teller/pkg/token"
)

// Lexer tokenizes Teller input in a single left-to-right pass.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// Tokenize lexes the entire input. On an illegal character or a malformed
// numeric literal it returns a *LexError and no tokens; a failed chunk is
// never partially lexed.
func Tokenize(input string) ([]token.Token, error) {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token. ok is false at end of input; no end-of-stream
// token is emitted.
func (l *Lexer) Next() (tok token.Token, ok bool, err error) {
	l.skipWhitespace()

	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token.Token{}, false, nil
	case isLetter(l.ch):
		return l.readWord(pos), true, nil
	case isDigit(l.ch):
		tok, err := l.readNumber(pos)
		if err != nil {
			return token.Token{}, false, err
		}
		return tok, true, nil
	default:
		return token.Token{}, false, &LexError{Pos: pos, Char: l.ch}
	}
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// skipWhitespace skips spaces, tabs, newlines, and carriage returns.
func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// readWord reads a word that starts with a letter. Consumption is greedy
// over NON-whitespace, so a word may contain digits or punctuation mixed
// with letters ("AB123456", "x!y"). Bare account identifiers lex as plain
// strings this way.
func (l *Lexer) readWord(pos token.Position) token.Token {
	start := l.pos
	for l.ch != 0 && !isWhitespace(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.pos]
	return token.Token{
		Type:    token.LookupWord(word),
		Literal: word,
		Pos:     pos,
	}
}

// readNumber reads a numeric literal: a maximal run of digits and dots.
// One dot makes a FLOAT, none makes an INT, and more than one is a lex
// error.
func (l *Lexer) readNumber(pos token.Position) (token.Token, error) {
	start := l.pos
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	literal := l.input[start:l.pos]

	switch strings.Count(literal, ".") {
	case 0:
		v, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return token.Token{}, &LexError{Pos: pos, Message: fmt.Sprintf(errBadNumber, literal)}
		}
		return token.Token{Type: token.INT, Literal: literal, Int: v, Pos: pos}, nil
	case 1:
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return token.Token{}, &LexError{Pos: pos, Message: fmt.Sprintf(errBadNumber, literal)}
		}
		return token.Token{Type: token.FLOAT, Literal: literal, Float: v, Pos: pos}, nil
	default:
		return token.Token{}, &LexError{Pos: pos, Message: fmt.Sprintf(errBadNumber, literal)}
	}
}

// isWhitespace returns true for space, tab, newline, and carriage return.
func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// isLetter returns true if ch is an ASCII letter.
func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// isDigit returns true if ch is an ASCII digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
