// Package interp executes parsed Teller statements against an account store
// and exposes the Session pipeline that ties lexing, parsing, and execution
// together for one input chunk at a time.
package interp

import (
	"fmt"

	"github.com/teller-lang/teller/pkg/bank"
	"github.com/teller-lang/teller/pkg/parser"
)

// Interpreter executes statements against a caller-owned account store. It
// holds a reference to the store, never a copy: every mutation is visible
// store-wide immediately.
type Interpreter struct {
	store *bank.Store
	newID bank.IDGenerator
}

// NewInterpreter creates an interpreter over the given store. A nil newID
// falls back to the time-seeded random generator.
func NewInterpreter(store *bank.Store, newID bank.IDGenerator) *Interpreter {
	if newID == nil {
		newID = bank.DefaultIDGenerator()
	}
	return &Interpreter{store: store, newID: newID}
}

// Interpret executes statements strictly in sequence order. A semantic
// failure in one statement is reported as its outcome and does not stop the
// statements after it.
func (in *Interpreter) Interpret(statements []parser.Statement) []Outcome {
	outcomes := make([]Outcome, 0, len(statements))
	for _, stmt := range statements {
		outcomes = append(outcomes, in.exec(stmt))
	}
	return outcomes
}

func (in *Interpreter) exec(stmt parser.Statement) Outcome {
	switch s := stmt.(type) {
	case *parser.CreateStmt:
		return in.execCreate(s)
	case *parser.DepositStmt:
		return in.execDeposit(s)
	case *parser.WithdrawStmt:
		return in.execWithdraw(s)
	case *parser.BalanceStmt:
		return in.execBalance(s)
	default:
		panic(fmt.Sprintf("interp: unknown statement type %T", stmt))
	}
}

func (in *Interpreter) execCreate(s *parser.CreateStmt) Outcome {
	id := s.AccountID
	if id == "" {
		id = in.newID(s.FirstName, s.LastName)
	}
	account := &bank.Account{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		ID:        id,
		Balance:   s.Balance,
	}
	if err := in.store.Add(account); err != nil {
		return Outcome{Kind: DuplicateAccount, AccountID: id}
	}
	return Outcome{Kind: AccountCreated, AccountID: id, Balance: account.Balance}
}

func (in *Interpreter) execDeposit(s *parser.DepositStmt) Outcome {
	account, ok := in.store.Get(s.AccountID)
	if !ok {
		return Outcome{Kind: AccountNotFound, AccountID: s.AccountID}
	}
	account.Balance = account.Balance.Add(s.Amount)
	return Outcome{Kind: DepositMade, AccountID: s.AccountID, Amount: s.Amount, Balance: account.Balance}
}

func (in *Interpreter) execWithdraw(s *parser.WithdrawStmt) Outcome {
	account, ok := in.store.Get(s.AccountID)
	if !ok {
		return Outcome{Kind: AccountNotFound, AccountID: s.AccountID}
	}
	if account.Balance.Less(s.Amount) {
		return Outcome{Kind: InsufficientFunds, AccountID: s.AccountID, Balance: account.Balance}
	}
	account.Balance = account.Balance.Sub(s.Amount)
	return Outcome{Kind: WithdrawalMade, AccountID: s.AccountID, Amount: s.Amount, Balance: account.Balance}
}

func (in *Interpreter) execBalance(s *parser.BalanceStmt) Outcome {
	account, ok := in.store.Get(s.AccountID)
	if !ok {
		return Outcome{Kind: AccountNotFound, AccountID: s.AccountID}
	}
	return Outcome{Kind: BalanceReport, AccountID: s.AccountID, Balance: account.Balance}
}
