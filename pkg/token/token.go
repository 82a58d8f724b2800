// Package token defines the lexical vocabulary of the Teller language.
//
// The lexer produces a flat sequence of Tokens; there is no end-of-stream
// sentinel, the parser treats an exhausted sequence as its terminal
// condition.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// KEYWORD is one of the reserved command words (see Keywords).
	KEYWORD Type = iota
	// STRING is any bare word that is not a reserved keyword.
	STRING
	// INT is an integer literal.
	INT
	// FLOAT is a floating-point literal (a digit run containing one dot).
	FLOAT
)

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var typeNames = map[Type]string{
	KEYWORD: "KEYWORD",
	STRING:  "STRING",
	INT:     "INT",
	FLOAT:   "FLOAT",
}

// Token is a single lexical unit. Literal always holds the source text;
// numeric tokens additionally carry their parsed value in Int or Float.
type Token struct {
	Type    Type
	Literal string
	Int     int64   // parsed value when Type == INT
	Float   float64 // parsed value when Type == FLOAT
	Pos     Position
}

// String renders the token for diagnostics, e.g. KEYWORD(DEPOSIT).
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
}

// Reserved command words. Matching is exact and case-sensitive: "deposit"
// is an ordinary STRING, not a keyword.
const (
	DEPOSIT   = "DEPOSIT"
	WITHDRAW  = "WITHDRAW"
	BALANCE   = "BALANCE"
	CREATE    = "CREATE"
	FIRSTNAME = "FIRSTNAME"
	LASTNAME  = "LASTNAME"
	ACCOUNT   = "ACCOUNT"
)

// Keywords lists every reserved word recognized by the lexer.
var Keywords = []string{DEPOSIT, WITHDRAW, BALANCE, CREATE, FIRSTNAME, LASTNAME, ACCOUNT}

var keywordSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Keywords))
	for _, kw := range Keywords {
		m[kw] = struct{}{}
	}
	return m
}()

// IsKeyword reports whether word is a reserved keyword.
func IsKeyword(word string) bool {
	_, ok := keywordSet[word]
	return ok
}

// LookupWord returns the token type for a lexed word: KEYWORD when the word
// is reserved, STRING otherwise.
func LookupWord(word string) Type {
	if IsKeyword(word) {
		return KEYWORD
	}
	return STRING
}
