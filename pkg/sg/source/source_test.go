package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSourceReference(t *testing.T) {
	set, err := StaticSource{}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, set, 3)
	assert.Equal(t, []string{"NVDA", "META", "AVGO"}, set.Symbols())

	nvda := set[0]
	assert.Equal(t, 495.50, nvda.CurrentPrice)
	assert.Equal(t, 550.00, nvda.TargetPrice)
	assert.Equal(t, 11.0, nvda.PotentialGain)
	assert.Equal(t, 58, nvda.Technical.RSI)
	for _, r := range set {
		assert.Len(t, r.Catalysts, 5, r.Symbol)
	}
}

func TestStaticSourceReturnsFreshCopies(t *testing.T) {
	a, _ := StaticSource{}.Load(context.Background())
	a[0].Catalysts[0] = "mutated"
	a[1].Symbol = "XXX"

	b, _ := StaticSource{}.Load(context.Background())
	assert.Equal(t, "AI demand surge driving GPU sales", b[0].Catalysts[0])
	assert.Equal(t, "META", b[1].Symbol)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "results.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestYAMLSourceLoad(t *testing.T) {
	p := writeFile(t, `
results:
  - symbol: TSLA
    company: Tesla Inc
    sector: Consumer Cyclical
    currentPrice: 240.1
    targetPrice: 200
    potentialGain: -4.5
    marketCap: $760B
    catalysts: [Robotaxi, Energy storage]
    technicalIndicators: {rsi: 50, movingAverage: Flat, momentum: Neutral}
    fundamentals: {peRatio: 70.2, revenueGrowth: "+8% YoY", earningsGrowth: "-12% YoY"}
    analyst: {rating: Hold, priceTarget: 200, confidence: Low}
`)
	set, err := YAMLSource{Path: p}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, set, 1)
	r := set[0]
	assert.Equal(t, "TSLA", r.Symbol)
	assert.Equal(t, 200.0, r.TargetPrice)
	assert.Equal(t, -4.5, r.PotentialGain)
	assert.Equal(t, []string{"Robotaxi", "Energy storage"}, r.Catalysts)
	assert.Equal(t, 50, r.Technical.RSI)
	assert.Equal(t, "Hold", r.Analyst.Rating)
}

func TestYAMLSourceErrors(t *testing.T) {
	ctx := context.Background()

	_, err := YAMLSource{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Load(ctx)
	assert.ErrorIs(t, err, ErrRetrievalFailed)

	_, err = YAMLSource{Path: writeFile(t, "results: [::")}.Load(ctx)
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = YAMLSource{Path: writeFile(t, "results: []\n")}.Load(ctx)
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = YAMLSource{Path: writeFile(t, "results:\n  - company: Nameless\n")}.Load(ctx)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestYAMLSourceHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := YAMLSource{Path: "unused"}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
