package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/teller-lang/teller/internal/cli/output"
	"github.com/teller-lang/teller/pkg/bank"
	"github.com/teller-lang/teller/pkg/interp"
)

// printOutcomes writes one line per executed statement. Rejected outcomes
// (missing account, insufficient funds, duplicates) get the notice style;
// they are reports, not errors.
func printOutcomes(w io.Writer, styles *output.Styles, outcomes []interp.Outcome) {
	for _, o := range outcomes {
		if o.Kind.OK() {
			_, _ = fmt.Fprintln(w, styles.Success.Render(o.String()))
		} else {
			_, _ = fmt.Fprintln(w, styles.Notice.Render(o.String()))
		}
	}
}

// renderAccounts writes the store contents in the requested format.
func renderAccounts(w io.Writer, store *bank.Store, format string) error {
	accounts := store.All()
	switch format {
	case "json":
		return renderAccountsJSON(w, accounts)
	case "plain":
		return renderAccountsPlain(w, accounts)
	case "table", "":
		return renderAccountsTable(w, accounts)
	default:
		return fmt.Errorf("unknown format %q (want table, json, or plain)", format)
	}
}

func renderAccountsTable(w io.Writer, accounts []*bank.Account) error {
	if len(accounts) == 0 {
		_, _ = fmt.Fprintln(w, "(0 accounts)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ACCOUNT", "FIRST NAME", "LAST NAME", "BALANCE"})
	for _, a := range accounts {
		t.AppendRow(table.Row{a.ID, a.FirstName, a.LastName, a.Balance.String()})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d accounts)\n", len(accounts))
	return nil
}

type accountJSON struct {
	ID        string      `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Balance   bank.Amount `json:"balance"`
}

func renderAccountsJSON(w io.Writer, accounts []*bank.Account) error {
	out := make([]accountJSON, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, accountJSON{
			ID:        a.ID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Balance:   a.Balance,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderAccountsPlain(w io.Writer, accounts []*bank.Account) error {
	for _, a := range accounts {
		_, _ = fmt.Fprintf(w, "%s %s %s %s\n", a.ID, a.FirstName, a.LastName, a.Balance)
	}
	return nil
}
