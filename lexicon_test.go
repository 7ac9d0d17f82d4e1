package reviewsense

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeywordBank(t *testing.T) {
	b, err := NewKeywordBank(
		Keyword{"Great", 1.5},
		Keyword{"bad", 2.0},
		Keyword{"GREAT", 1.2},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"great", "bad"}, b.Terms())
	assert.Equal(t, 2, b.Len())
	w, ok := b.Weight("great")
	assert.True(t, ok)
	assert.Equal(t, 1.2, w)
	assert.False(t, b.Has("Great"))
}

func TestNewKeywordBankErrors(t *testing.T) {
	tests := []struct {
		desc string
		kw   Keyword
		want error
	}{
		{"blank term", Keyword{"  ", 1}, ErrInvalidTerm},
		{"zero weight", Keyword{"ok", 0}, ErrInvalidWeight},
		{"negative weight", Keyword{"ok", -1}, ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := NewKeywordBank(tt.kw)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewSlangMap(t *testing.T) {
	m, err := NewSlangMap(
		SlangEntry{"Badiya", "badhiya"},
		SlangEntry{"gr8", "great"},
		SlangEntry{"badiya", "mast"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"badiya", "gr8"}, m.Terms())
	c, ok := m.Canonical("badiya")
	assert.True(t, ok)
	assert.Equal(t, "mast", c)

	_, err = NewSlangMap(SlangEntry{"x", ""})
	assert.ErrorIs(t, err, ErrInvalidTerm)
}

const testLexiconYAML = `
positive:
  keywords:
    great: 1.5
    badhiya: 1.6
    great: 1.4
  slang:
    gr8: great
    luv: love
negative:
  keywords:
    bad: 2.0
neutral:
  keywords:
    okay: 0.8
`

func TestParseLexicon(t *testing.T) {
	lex, err := ParseLexicon([]byte(testLexiconYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"great", "badhiya"}, lex.Positive.Bank.Terms())
	w, _ := lex.Positive.Bank.Weight("great")
	assert.Equal(t, 1.4, w)
	assert.Equal(t, []string{"gr8", "luv"}, lex.Positive.Slang.Terms())
	assert.Equal(t, 1, lex.For(NegativeClass).Bank.Len())
	assert.Equal(t, 0, lex.Neutral.Slang.Len())
}

func TestParseLexiconErrors(t *testing.T) {
	tests := []struct {
		desc string
		yaml string
	}{
		{"keywords not a mapping", "positive:\n  keywords: [great]\n"},
		{"weight not a number", "positive:\n  keywords:\n    great: lots\n"},
		{"zero weight", "negative:\n  keywords:\n    bad: 0\n"},
		{"slang target not a string", "positive:\n  slang:\n    gr8: [great]\n"},
		{"malformed", "positive: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := ParseLexicon([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testLexiconYAML), 0o600))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.True(t, lex.Positive.Bank.Has("badhiya"))

	_, err = LoadLexicon(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()
	for _, c := range Classes {
		assert.NotZero(t, lex.For(c).Bank.Len(), c.String())
	}

	assert.True(t, lex.Positive.Bank.Has("badhiya"))
	assert.True(t, lex.Negative.Bank.Has("bekaar"))
	assert.True(t, lex.Neutral.Bank.Has("chalta hai"))

	// Fresh banks on every call.
	other := DefaultLexicon()
	other.Positive.Bank.weights["badhiya"] = 99
	w, _ := lex.Positive.Bank.Weight("badhiya")
	assert.Equal(t, 1.6, w)
}
