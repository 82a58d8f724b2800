package parser

import (
	"fmt"

	"github.com/teller-lang/teller/pkg/token"
)

// LexError represents a lexical analysis error. Either form is fatal to the
// whole input chunk: no tokens are produced past the offending character.
type LexError struct {
	Pos     token.Position
	Char    byte   // offending character, 0 for malformed literals
	Message string // set for malformed numeric literals
}

func (e *LexError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("lex error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("lex error at line %d, column %d: illegal character %q", e.Pos.Line, e.Pos.Column, e.Char)
}

// ParseError represents a syntax error. A single ParseError aborts the whole
// batch: no statements from the chunk are executed.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages.
const (
	errExpectedStatement = "expected keyword CREATE, DEPOSIT, WITHDRAW, or BALANCE"
	errExpectedString    = "expected a string"
	errExpectedNumber    = "expected a number"
	errBadAccountFormat  = "invalid account number format"
	errBadNumber         = "malformed number literal %q"
)
