// Package scoring turns raw 0–5 answers into percentage scores, weighted
// function scores, an overall score and a maturity band.
package scoring

import "github.com/curiata/coreiq/internal/model"

// Weights blends the four component scores into a function score. The
// values sum to 1.0; a test pins that.
var Weights = map[model.ComponentName]float64{
	model.ComponentFunctionality:   0.30,
	model.ComponentFriction:        0.25,
	model.ComponentDataFitness:     0.15,
	model.ComponentChangeReadiness: 0.30,
}

// Band is the maturity label attached to an overall score.
type Band string

const (
	BandPrime     Band = "Prime"
	BandStrong    Band = "Strong"
	BandCompetent Band = "Competent"
	BandBaseline  Band = "Baseline"
)

// BandFor maps a 0–100 score to its band. Boundaries are inclusive on the
// lower side.
func BandFor(score float64) Band {
	switch {
	case score >= 85:
		return BandPrime
	case score >= 70:
		return BandStrong
	case score >= 50:
		return BandCompetent
	default:
		return BandBaseline
	}
}

// Normalize converts a raw 0–5 answer to a 0–100 percentage. Out-of-range
// values clamp; a nil score stays nil and is excluded from every mean.
func Normalize(score *int) *float64 {
	if score == nil {
		return nil
	}
	s := *score
	if s < 0 {
		s = 0
	}
	if s > 5 {
		s = 5
	}
	v := float64(s) * 20
	return &v
}

// ComponentScore is the mean of the answered sub-criteria, as percentages.
// An entirely unanswered component scores 0, indistinguishable from a
// component answered all-zero; callers that care must check for answers.
func ComponentScore(sub []model.Answer) float64 {
	var sum float64
	var n int
	for _, a := range sub {
		if v := Normalize(a.Score); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// FunctionScore blends per-component scores by Weights. Summation follows
// ComponentOrder; float addition is not associative, so a fixed order keeps
// repeated calls bit-identical.
func FunctionScore(byComponent map[model.ComponentName]float64) float64 {
	var total float64
	for _, comp := range model.ComponentOrder {
		total += byComponent[comp] * Weights[comp]
	}
	return total
}

// Result is one full scoring pass over an audit.
type Result struct {
	// PerFunction maps each active function to its weighted score.
	PerFunction map[model.FunctionName]float64
	// PerComponent holds the mean of each component across active
	// functions, in model.ComponentOrder. Feeds the radar view.
	PerComponent []float64
	// Overall is the unweighted mean of the function scores, 0 when no
	// function is active.
	Overall float64
}

// Compute scores the active functions of an audit. Unscoped functions do
// not contribute anywhere.
func Compute(a *model.Audit) Result {
	perFn := make(map[model.FunctionName]float64)
	buckets := make(map[model.ComponentName][]float64, len(model.ComponentOrder))

	for _, fn := range a.ActiveFunctions() {
		byComp := make(map[model.ComponentName]float64, len(model.ComponentOrder))
		for _, c := range fn.Components {
			cs := ComponentScore(c.Sub)
			byComp[c.Name] = cs
			buckets[c.Name] = append(buckets[c.Name], cs)
		}
		perFn[fn.Name] = FunctionScore(byComp)
	}

	var overall float64
	if len(perFn) > 0 {
		for _, v := range perFn {
			overall += v
		}
		overall /= float64(len(perFn))
	}

	perComp := make([]float64, 0, len(model.ComponentOrder))
	for _, comp := range model.ComponentOrder {
		arr := buckets[comp]
		if len(arr) == 0 {
			perComp = append(perComp, 0)
			continue
		}
		var sum float64
		for _, v := range arr {
			sum += v
		}
		perComp = append(perComp, sum/float64(len(arr)))
	}

	return Result{PerFunction: perFn, PerComponent: perComp, Overall: overall}
}

// ComponentScores returns the per-component scores of every active
// function. The recommendation rules and report sections read these.
func ComponentScores(a *model.Audit) map[model.FunctionName]map[model.ComponentName]float64 {
	out := make(map[model.FunctionName]map[model.ComponentName]float64)
	for _, fn := range a.ActiveFunctions() {
		m := make(map[model.ComponentName]float64, len(model.ComponentOrder))
		for _, c := range fn.Components {
			m[c.Name] = ComponentScore(c.Sub)
		}
		out[fn.Name] = m
	}
	return out
}
