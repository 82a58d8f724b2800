package parser

import (
	"github.com/teller-lang/teller/pkg/bank"
	"github.com/teller-lang/teller/pkg/token"
)

// Statement represents one parsed Teller command. The interpreter dispatches
// on the concrete type with an exhaustive type switch.
type Statement interface {
	stmtNode()
}

// CreateStmt opens a new account. AccountID is empty unless the command
// carried an explicit ACCOUNT clause; the interpreter generates an
// identifier when it is empty. Balance defaults to integer zero.
type CreateStmt struct {
	Pos       token.Position
	FirstName string
	LastName  string
	Balance   bank.Amount
	AccountID string
}

func (*CreateStmt) stmtNode() {}

// DepositStmt adds Amount to an existing account's balance.
type DepositStmt struct {
	Pos       token.Position
	AccountID string
	Amount    bank.Amount
}

func (*DepositStmt) stmtNode() {}

// WithdrawStmt removes Amount from an existing account's balance. A
// withdrawal that would drive the balance negative is rejected whole.
type WithdrawStmt struct {
	Pos       token.Position
	AccountID string
	Amount    bank.Amount
}

func (*WithdrawStmt) stmtNode() {}

// BalanceStmt reports an account's current balance without mutating it.
type BalanceStmt struct {
	Pos       token.Position
	AccountID string
}

func (*BalanceStmt) stmtNode() {}
