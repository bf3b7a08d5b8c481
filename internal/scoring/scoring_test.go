package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curiata/coreiq/internal/model"
)

func TestWeights_SumToOne(t *testing.T) {
	var sum float64
	for _, w := range Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(nil))

	cases := []struct {
		in   int
		want float64
	}{
		{0, 0}, {1, 20}, {3, 60}, {5, 100},
		{-2, 0},  // clamps low
		{9, 100}, // clamps high
	}
	for _, tc := range cases {
		got := Normalize(&tc.in)
		require.NotNil(t, got)
		assert.Equal(t, tc.want, *got)
	}
}

func TestComponentScore_MeanOfAnswered(t *testing.T) {
	score := func(v int) *int { return &v }

	sub := []model.Answer{
		{Key: "a", Score: score(0)},
		{Key: "b", Score: score(5)},
		{Key: "c"}, // unanswered, excluded
	}
	assert.Equal(t, 50.0, ComponentScore(sub))
}

func TestComponentScore_EmptyIsZero(t *testing.T) {
	// An unanswered component scores 0, same as an all-zero component.
	assert.Equal(t, 0.0, ComponentScore(nil))
	assert.Equal(t, 0.0, ComponentScore([]model.Answer{{Key: "a"}, {Key: "b"}}))
}

func TestFunctionScore_Weighted(t *testing.T) {
	byComp := map[model.ComponentName]float64{
		model.ComponentFunctionality:   100,
		model.ComponentFriction:        100,
		model.ComponentDataFitness:     100,
		model.ComponentChangeReadiness: 100,
	}
	assert.InDelta(t, 100.0, FunctionScore(byComp), 1e-9)

	byComp[model.ComponentDataFitness] = 0
	assert.InDelta(t, 85.0, FunctionScore(byComp), 1e-9)
}

func TestFunctionScore_RepeatableAcrossCalls(t *testing.T) {
	// Component means that do not divide evenly, so any variation in
	// summation order would show up in the last ulp.
	byComp := map[model.ComponentName]float64{
		model.ComponentFunctionality:   66.66666666666667,
		model.ComponentFriction:        53.333333333333336,
		model.ComponentDataFitness:     80,
		model.ComponentChangeReadiness: 73.33333333333333,
	}

	first := FunctionScore(byComp)
	for i := 0; i < 500; i++ {
		require.Equal(t, first, FunctionScore(byComp), "call %d", i)
	}
}

func TestBandFor_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{100, BandPrime},
		{85, BandPrime},
		{84.9, BandStrong},
		{70, BandStrong},
		{69.9, BandCompetent},
		{50, BandCompetent},
		{49.9, BandBaseline},
		{0, BandBaseline},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BandFor(tc.score), "score %.1f", tc.score)
	}
}

func TestCompute_ScopedOnly(t *testing.T) {
	a, err := model.NewAudit("Acme", "", map[model.FunctionName]bool{
		model.FunctionOps: true,
		model.FunctionCX:  true,
	})
	require.NoError(t, err)

	five := 5
	for _, comp := range model.ComponentOrder {
		require.NoError(t, a.SetAnswer(model.FunctionOps, comp, "q", &five, nil))
	}
	// CX left unanswered; FINANCE_ADMIN out of scope gets answers that
	// must not count.
	require.NoError(t, a.SetAnswer(model.FunctionFinanceAdmin, model.ComponentFriction, "q", &five, nil))

	res := Compute(a)

	require.Len(t, res.PerFunction, 2)
	assert.InDelta(t, 100.0, res.PerFunction[model.FunctionOps], 1e-9)
	assert.InDelta(t, 0.0, res.PerFunction[model.FunctionCX], 1e-9)
	_, ok := res.PerFunction[model.FunctionFinanceAdmin]
	assert.False(t, ok)

	assert.InDelta(t, 50.0, res.Overall, 1e-9)

	// Per-component radar means average across the two active functions.
	require.Len(t, res.PerComponent, 4)
	for i := range res.PerComponent {
		assert.InDelta(t, 50.0, res.PerComponent[i], 1e-9)
	}
}

func TestCompute_NoActiveFunctions(t *testing.T) {
	a, err := model.NewAudit("Acme", "", map[model.FunctionName]bool{model.FunctionOps: true})
	require.NoError(t, err)
	a.Scope[model.FunctionOps] = false

	res := Compute(a)
	assert.Empty(t, res.PerFunction)
	assert.Equal(t, 0.0, res.Overall)
	assert.Equal(t, []float64{0, 0, 0, 0}, res.PerComponent)
}
