package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teller-lang/teller/internal/testutil"
	"github.com/teller-lang/teller/pkg/bank"
	"github.com/teller-lang/teller/pkg/interp"
	"github.com/teller-lang/teller/pkg/parser"
)

func TestSessionExecPipeline(t *testing.T) {
	session := interp.NewSession(interp.Options{
		Logger:      testutil.NewTestLogger(t),
		IDGenerator: fixedIDs(),
	})

	outcomes, err := session.Exec("CREATE FIRSTNAME Ann LASTNAME Lee ACCOUNT AL000001 BALANCE 100")
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, interp.AccountCreated, outcomes[0].Kind)

	outcomes, err = session.Exec("DEPOSIT AL000001 50")
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, interp.DepositMade, outcomes[0].Kind)
	assert.Equal(t, bank.Int(150), outcomes[0].Balance)

	outcomes, err = session.Exec("BALANCE AL000001")
	require.NoError(t, err)
	assert.Equal(t, bank.Int(150), outcomes[0].Balance)
}

func TestSessionLexErrorAbortsChunk(t *testing.T) {
	session := interp.NewSession(interp.Options{IDGenerator: fixedIDs()})

	outcomes, err := session.Exec("DEPOSIT AL000001 $50")
	require.Error(t, err)
	assert.Nil(t, outcomes)

	var lexErr *parser.LexError
	assert.ErrorAs(t, err, &lexErr)
}

func TestSessionParseErrorAbortsChunk(t *testing.T) {
	session := interp.NewSession(interp.Options{IDGenerator: fixedIDs()})
	_, err := session.Exec("CREATE FIRSTNAME Ann LASTNAME Lee ACCOUNT AL000001")
	require.NoError(t, err)

	// The failing chunk executes nothing, the store keeps its prior state.
	outcomes, err := session.Exec("DEPOSIT AL000001 50 WITHDRAW")
	require.Error(t, err)
	assert.Nil(t, outcomes)

	var parseErr *parser.ParseError
	assert.ErrorAs(t, err, &parseErr)

	account, ok := session.Store().Get("AL000001")
	require.True(t, ok)
	assert.Equal(t, bank.Int(0), account.Balance)
}

func TestSessionCallerOwnedStore(t *testing.T) {
	store := bank.NewStore()
	session := interp.NewSession(interp.Options{Store: store, IDGenerator: fixedIDs()})

	_, err := session.Exec("CREATE FIRSTNAME Ann LASTNAME Lee ACCOUNT AL000001 BALANCE 100")
	require.NoError(t, err)

	// Mutations land in the caller's store, not a private copy.
	account, ok := store.Get("AL000001")
	require.True(t, ok)
	assert.Equal(t, bank.Int(100), account.Balance)
}

func TestSessionDebugLogsPipeline(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	session := interp.NewSession(interp.Options{
		Logger:      logger,
		IDGenerator: fixedIDs(),
		Debug:       true,
	})

	_, err := session.Exec("BALANCE AL000001")
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "lexed chunk")
	assert.Contains(t, logged, "KEYWORD(BALANCE)")
	assert.Contains(t, logged, "parsed chunk")

	// Disabled by default, and toggleable at runtime.
	buf.Reset()
	session.SetDebug(false)
	_, err = session.Exec("BALANCE AL000001")
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
