package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchContainment(t *testing.T) {
	pairs := []Pair{
		{Question: "what is rise of kingdoms", Answer: "a strategy game"},
	}

	// Extracted text shorter than the stored question.
	got, ok := Match("rise of kingdoms", pairs)
	assert.True(t, ok)
	assert.Equal(t, "a strategy game", got.Answer)

	// Extracted text longer than the stored question.
	got, ok = Match("tell me what is rise of kingdoms exactly", pairs)
	assert.True(t, ok)
	assert.Equal(t, "a strategy game", got.Answer)
}

func TestMatchCaseInsensitive(t *testing.T) {
	pairs := []Pair{{Question: "Which Hero Is Best", Answer: "Richard"}}

	got, ok := Match("which hero is best?", pairs)
	assert.True(t, ok)
	assert.Equal(t, "Richard", got.Answer)
}

func TestMatchFirstPairWins(t *testing.T) {
	pairs := []Pair{
		{Question: "which hero", Answer: "first"},
		{Question: "which hero is best", Answer: "second"},
	}

	got, ok := Match("which hero is best", pairs)
	assert.True(t, ok)
	assert.Equal(t, "first", got.Answer)
}

func TestMatchNoMatch(t *testing.T) {
	pairs := []Pair{{Question: "which hero is best", Answer: "Richard"}}

	_, ok := Match("where is the nearest barbarian fort", pairs)
	assert.False(t, ok)
}

func TestMatchEmptyQuestion(t *testing.T) {
	pairs := []Pair{{Question: "which hero is best", Answer: "Richard"}}

	_, ok := Match("", pairs)
	assert.False(t, ok)

	_, ok = Match("   ", pairs)
	assert.False(t, ok)
}
