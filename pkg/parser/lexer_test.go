package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teller-lang/teller/pkg/parser"
	"github.com/teller-lang/teller/pkg/token"
)

func TestTokenizeDeposit(t *testing.T) {
	tokens, err := parser.Tokenize("DEPOSIT AB123456 50")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, token.KEYWORD, tokens[0].Type)
	assert.Equal(t, "DEPOSIT", tokens[0].Literal)
	assert.Equal(t, token.STRING, tokens[1].Type)
	assert.Equal(t, "AB123456", tokens[1].Literal)
	assert.Equal(t, token.INT, tokens[2].Type)
	assert.Equal(t, int64(50), tokens[2].Int)
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Type
	}{
		{
			name:  "create with all clauses",
			input: "CREATE FIRSTNAME Ann LASTNAME Lee ACCOUNT AL000001 BALANCE 100",
			want: []token.Type{
				token.KEYWORD, token.KEYWORD, token.STRING, token.KEYWORD,
				token.STRING, token.KEYWORD, token.STRING, token.KEYWORD, token.INT,
			},
		},
		{
			name:  "float amount",
			input: "WITHDRAW ZZ999999 12.5",
			want:  []token.Type{token.KEYWORD, token.STRING, token.FLOAT},
		},
		{
			name:  "lowercase keyword is a string",
			input: "deposit AB123456 50",
			want:  []token.Type{token.STRING, token.STRING, token.INT},
		},
		{
			name:  "mixed whitespace",
			input: "BALANCE\t AB123456\r\n",
			want:  []token.Type{token.KEYWORD, token.STRING},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \t\n\r",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := parser.Tokenize(tt.input)
			require.NoError(t, err)
			got := make([]token.Type, 0, len(tokens))
			for _, tok := range tokens {
				got = append(got, tok.Type)
			}
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeNumericValues(t *testing.T) {
	tokens, err := parser.Tokenize("100 12.5")
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, token.INT, tokens[0].Type)
	assert.Equal(t, int64(100), tokens[0].Int)
	assert.Equal(t, token.FLOAT, tokens[1].Type)
	assert.InDelta(t, 12.5, tokens[1].Float, 1e-9)
}

// Words are maximal runs of non-whitespace, so digits and punctuation after
// a leading letter stay inside one STRING token.
func TestTokenizePermissiveWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AB123456", "AB123456"},
		{"a1.b2", "a1.b2"},
		{"x!y", "x!y"},
		{"DEPOSIT50", "DEPOSIT50"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := parser.Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, token.STRING, tokens[0].Type)
			assert.Equal(t, tt.want, tokens[0].Literal)
		})
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		char  byte
	}{
		{"dollar sign", "DEPOSIT AB123456 $50", '$'},
		{"leading dot", ".5", '.'},
		{"dash", "BALANCE - AB123456", '-'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := parser.Tokenize(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)

			var lexErr *parser.LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.char, lexErr.Char)
		})
	}
}

func TestTokenizeMultiDotNumber(t *testing.T) {
	tokens, err := parser.Tokenize("DEPOSIT AB123456 1.2.3")
	require.Error(t, err)
	assert.Nil(t, tokens)

	var lexErr *parser.LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, lexErr.Error(), "1.2.3")
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := parser.Tokenize("BALANCE AB123456\nBALANCE CD654321")
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 2, tokens[2].Pos.Line)
	assert.Equal(t, 1, tokens[2].Pos.Column)
}
