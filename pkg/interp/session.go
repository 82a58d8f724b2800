package interp

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/teller-lang/teller/pkg/bank"
	"github.com/teller-lang/teller/pkg/parser"
)

// Options configures a Session. Zero values get sensible defaults: a fresh
// store, the time-seeded identifier generator, and a discard logger.
type Options struct {
	Store       *bank.Store
	IDGenerator bank.IDGenerator
	Logger      *slog.Logger
	Debug       bool
}

// Session runs the full pipeline, text -> tokens -> statements -> outcomes,
// one input chunk per Exec call. The account store lives for the session
// lifetime; the caller owns it and may share it across sessions, serialized
// externally.
type Session struct {
	store  *bank.Store
	interp *Interpreter
	logger *slog.Logger
	debug  bool
}

// NewSession creates a session.
func NewSession(opts Options) *Session {
	store := opts.Store
	if store == nil {
		store = bank.NewStore()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		store:  store,
		interp: NewInterpreter(store, opts.IDGenerator),
		logger: logger,
		debug:  opts.Debug,
	}
}

// Store returns the session's account store.
func (s *Session) Store() *bank.Store {
	return s.store
}

// Debug reports whether pipeline debugging is enabled.
func (s *Session) Debug() bool {
	return s.debug
}

// SetDebug toggles pipeline debugging at runtime.
func (s *Session) SetDebug(on bool) {
	s.debug = on
}

// Exec runs one chunk of input. A lex or parse error aborts the whole chunk
// before anything executes; per-statement semantic failures come back as
// outcomes. With debug enabled, the raw token and statement sequences are
// logged before execution.
func (s *Session) Exec(text string) ([]Outcome, error) {
	tokens, err := parser.Tokenize(text)
	if err != nil {
		return nil, err
	}
	if s.debug {
		s.logger.Debug("lexed chunk", "tokens", fmt.Sprint(tokens))
	}

	statements, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	if s.debug {
		s.logger.Debug("parsed chunk", "statements", fmt.Sprintf("%#v", statements))
	}

	return s.interp.Interpret(statements), nil
}
