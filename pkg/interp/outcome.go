package interp

import (
	"fmt"

	"github.com/teller-lang/teller/pkg/bank"
)

// Kind classifies the result of executing one statement. The kind is the
// observable contract; the rendered wording is presentation only.
type Kind int

const (
	// AccountCreated reports a successful CREATE with the stored identifier.
	AccountCreated Kind = iota
	// DuplicateAccount reports a CREATE rejected because the identifier is
	// taken. The store is unchanged and no new identifier is generated.
	DuplicateAccount
	// DepositMade reports a successful DEPOSIT with the new balance.
	DepositMade
	// WithdrawalMade reports a successful WITHDRAW with the new balance.
	WithdrawalMade
	// BalanceReport reports the current balance of an account.
	BalanceReport
	// AccountNotFound reports an operation on a nonexistent account.
	AccountNotFound
	// InsufficientFunds reports a WITHDRAW larger than the balance. The
	// balance is unchanged; there are no partial withdrawals.
	InsufficientFunds
)

var kindNames = map[Kind]string{
	AccountCreated:    "account_created",
	DuplicateAccount:  "duplicate_account",
	DepositMade:       "deposit_made",
	WithdrawalMade:    "withdrawal_made",
	BalanceReport:     "balance_report",
	AccountNotFound:   "account_not_found",
	InsufficientFunds: "insufficient_funds",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", k)
}

// OK reports whether the kind is a success rather than a rejected operation.
func (k Kind) OK() bool {
	switch k {
	case DuplicateAccount, AccountNotFound, InsufficientFunds:
		return false
	}
	return true
}

// Outcome is the reported result of executing one statement. Semantic
// failures (missing account, insufficient funds, duplicate identifier) are
// outcomes, not errors: they never stop the statements that follow.
type Outcome struct {
	Kind      Kind
	AccountID string
	Amount    bank.Amount // operation amount, for deposits and withdrawals
	Balance   bank.Amount // resulting or reported balance, where applicable
}

// String renders the human-readable outcome line.
func (o Outcome) String() string {
	switch o.Kind {
	case AccountCreated:
		return fmt.Sprintf("Account created: %s", o.AccountID)
	case DuplicateAccount:
		return fmt.Sprintf("Account %s already exists", o.AccountID)
	case DepositMade:
		return fmt.Sprintf("Deposit of $%s into account %s successful", o.Amount, o.AccountID)
	case WithdrawalMade:
		return fmt.Sprintf("Withdrawal of $%s from account %s successful", o.Amount, o.AccountID)
	case BalanceReport:
		return fmt.Sprintf("Balance for account %s: $%s", o.AccountID, o.Balance)
	case AccountNotFound:
		return fmt.Sprintf("Account %s not found", o.AccountID)
	case InsufficientFunds:
		return fmt.Sprintf("Insufficient funds in account %s", o.AccountID)
	}
	return o.Kind.String()
}
