// Package parser turns Teller source text into statements.
//
// # Usage
//
//	tokens, err := parser.Tokenize(`DEPOSIT AB123456 50`)
//	if err != nil {
//	    // *LexError
//	}
//	stmts, err := parser.Parse(tokens)
//	if err != nil {
//	    // *ParseError
//	}
//
// # Grammar Overview
//
// The parser is recursive descent with one token of lookahead:
//
//	statement → deposit | withdraw | balance | create
//	deposit   → DEPOSIT <string> <number>
//	withdraw  → WITHDRAW <string> <number>
//	balance   → BALANCE <string>
//	create    → CREATE FIRSTNAME <string> LASTNAME <string> create_opts
//	create_opts → (BALANCE <number> | ACCOUNT <string> | <skipped>)*
//
// Parsing is all-or-nothing per chunk: the first error discards every
// statement, including ones already parsed.
//
// The create_opts loop runs to the end of the token stream and silently
// skips anything that is not a BALANCE or ACCOUNT clause, so a CREATE
// consumes every token that follows it in the chunk. The package tests pin
// this behavior.
package parser

import (
	"fmt"
	"regexp"

	"github.com/teller-lang/teller/pkg/bank"
	"github.com/teller-lang/teller/pkg/token"
)

// accountNumberRe validates explicit account identifiers: two uppercase
// letters then six digits. Deliberately unanchored at the end, a valid
// prefix is enough.
var accountNumberRe = regexp.MustCompile(`^[A-Z]{2}[0-9]{6}`)

// Parser parses a token sequence into statements.
type Parser struct {
	tokens []token.Token
	pos    int
}

// NewParser creates a parser over the given tokens.
func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes a token sequence, typically from Tokenize, and returns the
// statements or the first syntax error.
func Parse(tokens []token.Token) ([]Statement, error) {
	return NewParser(tokens).Parse()
}

// Parse parses statements until the token cursor is exhausted.
func (p *Parser) Parse() ([]Statement, error) {
	var statements []Statement
	for p.more() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		p.advance()
	}
	return statements, nil
}

// ---------- Token Helpers ----------

// more returns true while the cursor has a current token.
func (p *Parser) more() bool {
	return p.pos < len(p.tokens)
}

// cur returns the current token; ok is false past the end of the sequence.
func (p *Parser) cur() (token.Token, bool) {
	if !p.more() {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

// advance moves the cursor to the next token.
func (p *Parser) advance() {
	p.pos++
}

// errHere builds a ParseError at the current token, or at the last token
// when the stream is exhausted.
func (p *Parser) errHere(message string) *ParseError {
	if tok, ok := p.cur(); ok {
		return &ParseError{Pos: tok.Pos, Message: message}
	}
	if len(p.tokens) > 0 {
		return &ParseError{Pos: p.tokens[len(p.tokens)-1].Pos, Message: message}
	}
	return &ParseError{Message: message}
}

// expectString advances and returns the literal of the next STRING token.
func (p *Parser) expectString() (string, error) {
	p.advance()
	tok, ok := p.cur()
	if !ok || tok.Type != token.STRING {
		return "", p.errHere(errExpectedString)
	}
	return tok.Literal, nil
}

// expectNumber advances and returns the next INT or FLOAT token as an Amount.
func (p *Parser) expectNumber() (bank.Amount, error) {
	p.advance()
	tok, ok := p.cur()
	if !ok {
		return bank.Amount{}, p.errHere(errExpectedNumber)
	}
	switch tok.Type {
	case token.INT:
		return bank.Int(tok.Int), nil
	case token.FLOAT:
		return bank.Float(tok.Float), nil
	default:
		return bank.Amount{}, p.errHere(errExpectedNumber)
	}
}

// expectKeyword advances and checks that the next token is the given keyword.
func (p *Parser) expectKeyword(word string) error {
	p.advance()
	tok, ok := p.cur()
	if !ok || tok.Type != token.KEYWORD || tok.Literal != word {
		return p.errHere(fmt.Sprintf("expected keyword %s", word))
	}
	return nil
}

// ---------- Statements ----------

// parseStatement dispatches on the statement's leading keyword.
func (p *Parser) parseStatement() (Statement, error) {
	tok, _ := p.cur()
	if tok.Type == token.KEYWORD {
		switch tok.Literal {
		case token.CREATE:
			return p.parseCreate(tok.Pos)
		case token.DEPOSIT:
			return p.parseDeposit(tok.Pos)
		case token.WITHDRAW:
			return p.parseWithdraw(tok.Pos)
		case token.BALANCE:
			return p.parseBalance(tok.Pos)
		}
	}
	return nil, p.errHere(errExpectedStatement)
}

// parseDeposit parses DEPOSIT <account> <amount>.
func (p *Parser) parseDeposit(pos token.Position) (Statement, error) {
	accountID, err := p.expectString()
	if err != nil {
		return nil, err
	}
	amount, err := p.expectNumber()
	if err != nil {
		return nil, err
	}
	return &DepositStmt{Pos: pos, AccountID: accountID, Amount: amount}, nil
}

// parseWithdraw parses WITHDRAW <account> <amount>.
func (p *Parser) parseWithdraw(pos token.Position) (Statement, error) {
	accountID, err := p.expectString()
	if err != nil {
		return nil, err
	}
	amount, err := p.expectNumber()
	if err != nil {
		return nil, err
	}
	return &WithdrawStmt{Pos: pos, AccountID: accountID, Amount: amount}, nil
}

// parseBalance parses BALANCE <account>.
func (p *Parser) parseBalance(pos token.Position) (Statement, error) {
	accountID, err := p.expectString()
	if err != nil {
		return nil, err
	}
	return &BalanceStmt{Pos: pos, AccountID: accountID}, nil
}

// parseCreate parses CREATE FIRSTNAME <string> LASTNAME <string> followed by
// optional BALANCE and ACCOUNT clauses in any order. The optional-clause
// loop consumes the rest of the token stream; tokens that start neither
// clause are skipped without complaint.
func (p *Parser) parseCreate(pos token.Position) (Statement, error) {
	if err := p.expectKeyword(token.FIRSTNAME); err != nil {
		return nil, err
	}
	firstName, err := p.expectString()
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword(token.LASTNAME); err != nil {
		return nil, err
	}
	lastName, err := p.expectString()
	if err != nil {
		return nil, err
	}

	balance := bank.Int(0)
	accountID := ""

	p.advance()
	for {
		tok, ok := p.cur()
		if !ok {
			break
		}
		if tok.Type == token.KEYWORD {
			switch tok.Literal {
			case token.BALANCE:
				balance, err = p.expectNumber()
				if err != nil {
					return nil, err
				}
			case token.ACCOUNT:
				id, err := p.expectString()
				if err != nil {
					return nil, err
				}
				if !accountNumberRe.MatchString(id) {
					return nil, p.errHere(errBadAccountFormat)
				}
				accountID = id
			}
		}
		p.advance()
	}

	return &CreateStmt{
		Pos:       pos,
		FirstName: firstName,
		LastName:  lastName,
		Balance:   balance,
		AccountID: accountID,
	}, nil
}
