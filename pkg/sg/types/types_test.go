package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSIStyle(t *testing.T) {
	cases := []struct {
		rsi  int
		want Style
	}{
		{0, Caution},
		{49, Caution},
		{50, Caution},
		{51, Favorable},
		{58, Favorable},
		{100, Favorable},
		{-5, Caution},
		{140, Favorable},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RSIStyle(c.rsi), "rsi=%d", c.rsi)
	}
}

func TestResultSetCloneIsDeep(t *testing.T) {
	orig := ResultSet{{Symbol: "NVDA", Catalysts: []string{"a", "b"}}}
	cp := orig.Clone()
	cp[0].Catalysts[0] = "changed"
	cp[0].Symbol = "X"

	assert.Equal(t, "a", orig[0].Catalysts[0])
	assert.Equal(t, "NVDA", orig[0].Symbol)
	assert.Nil(t, ResultSet(nil).Clone())
}

func TestSymbols(t *testing.T) {
	s := ResultSet{{Symbol: "NVDA"}, {Symbol: "META"}}
	assert.Equal(t, []string{"NVDA", "META"}, s.Symbols())
}
