package render

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/sg/pkg/sg/filter"
	"github.com/komsit37/sg/pkg/sg/source"
	"github.com/komsit37/sg/pkg/sg/types"
	"github.com/komsit37/sg/pkg/sg/view"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

func complete() view.Snapshot {
	return view.Snapshot{State: view.Complete, Results: source.Reference(), Generation: 1}
}

func TestBuildIdle(t *testing.T) {
	p := Build(view.Snapshot{}, BuildOptions{Now: fixedNow})

	assert.Equal(t, Title, p.Header.Title)
	assert.Equal(t, "October 15, 2026", p.Header.Date)
	assert.Equal(t, Action{Label: IdleLabel}, p.Action)
	assert.Nil(t, p.Methodology)
	assert.Empty(t, p.Panels)
	assert.Nil(t, p.Disclaimer)
	assert.Empty(t, p.Error)
}

func TestBuildBusyHidesEverything(t *testing.T) {
	snap := view.Snapshot{State: view.Analyzing, Results: source.Reference(), Generation: 1}
	p := Build(snap, BuildOptions{Now: fixedNow})

	assert.Equal(t, Action{Label: BusyLabel, Disabled: true, Busy: true}, p.Action)
	assert.Nil(t, p.Methodology)
	assert.Empty(t, p.Panels)
	assert.Nil(t, p.Disclaimer)
}

func TestBuildComplete(t *testing.T) {
	p := Build(complete(), BuildOptions{Now: fixedNow})

	assert.False(t, p.Action.Disabled)
	require.NotNil(t, p.Methodology)
	require.NotNil(t, p.Disclaimer)
	require.Len(t, p.Panels, 3)

	var syms []string
	for i, panel := range p.Panels {
		assert.Equal(t, i+1, panel.Rank)
		syms = append(syms, panel.Symbol)
	}
	assert.Equal(t, []string{"NVDA", "META", "AVGO"}, syms)

	nvda := p.Panels[0]
	assert.Equal(t, "495.50", nvda.CurrentPrice)
	assert.Equal(t, "550.00", nvda.TargetPrice)
	assert.Equal(t, "+11%", nvda.PotentialGain)
	assert.Equal(t, 58, nvda.RSI)
	assert.Equal(t, types.Favorable, nvda.RSIStyle)
	assert.Equal(t, "52.3", nvda.PERatio)
	assert.Equal(t, "Strong Buy", nvda.Rating)
	assert.Equal(t, "High", nvda.Confidence)

	assert.Equal(t, "+11.3%", p.Panels[1].PotentialGain)
	assert.Equal(t, "168.75", p.Panels[2].CurrentPrice)
	assert.Equal(t, "Medium-High", p.Panels[2].Confidence)
}

func TestBuildKeepsCatalystOrder(t *testing.T) {
	snap := complete()
	p := Build(snap, BuildOptions{Now: fixedNow})
	for i, panel := range p.Panels {
		assert.Len(t, panel.Catalysts, 5)
		assert.Equal(t, snap.Results[i].Catalysts, panel.Catalysts)
	}
}

func TestBuildRSIBoundary(t *testing.T) {
	set := types.ResultSet{
		{Symbol: "A", Technical: types.Technical{RSI: 50}},
		{Symbol: "B", Technical: types.Technical{RSI: 51}},
		{Symbol: "C", Technical: types.Technical{RSI: 12}},
	}
	p := Build(view.Snapshot{State: view.Complete, Results: set}, BuildOptions{Now: fixedNow})
	require.Len(t, p.Panels, 3)
	assert.Equal(t, types.Caution, p.Panels[0].RSIStyle)
	assert.Equal(t, types.Favorable, p.Panels[1].RSIStyle)
	assert.Equal(t, types.Caution, p.Panels[2].RSIStyle)
}

func TestBuildFailed(t *testing.T) {
	snap := view.Snapshot{State: view.Failed, Err: errors.New("retrieval failed: timeout")}
	p := Build(snap, BuildOptions{Now: fixedNow})

	assert.False(t, p.Action.Disabled)
	assert.Equal(t, IdleLabel, p.Action.Label)
	assert.Equal(t, "retrieval failed: timeout", p.Error)
	assert.Empty(t, p.Panels)
	assert.Nil(t, p.Disclaimer)
}

func TestBuildFilterKeepsRank(t *testing.T) {
	f, err := filter.Parse("AVGO")
	require.NoError(t, err)
	p := Build(complete(), BuildOptions{Filter: f, Now: fixedNow})
	require.Len(t, p.Panels, 1)
	assert.Equal(t, "AVGO", p.Panels[0].Symbol)
	assert.Equal(t, 3, p.Panels[0].Rank)

	f, err = filter.Parse("semiconductors")
	require.NoError(t, err)
	p = Build(complete(), BuildOptions{Filter: f, Now: fixedNow})
	require.Len(t, p.Panels, 2)
	assert.Equal(t, "NVDA", p.Panels[0].Symbol)
	assert.Equal(t, "AVGO", p.Panels[1].Symbol)
}

func TestBuildIsPure(t *testing.T) {
	snap := complete()
	a := Build(snap, BuildOptions{Now: fixedNow})
	a.Panels[0].Catalysts[0] = "changed"
	b := Build(snap, BuildOptions{Now: fixedNow})
	assert.Equal(t, "AI demand surge driving GPU sales", b.Panels[0].Catalysts[0])
	assert.Equal(t, "AI demand surge driving GPU sales", snap.Results[0].Catalysts[0])
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "495.50", Price(495.5))
	assert.Equal(t, "190.00", Price(190))
	assert.Equal(t, "11", Decimal(11.0))
	assert.Equal(t, "26.8", Decimal(26.8))
	assert.Equal(t, "+12.6%", Gain(12.6))
	assert.Equal(t, "+0%", Gain(0))
	assert.Equal(t, "-4.5%", Gain(-4.5))
}
