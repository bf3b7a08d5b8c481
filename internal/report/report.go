// Package report compiles the deterministic client-facing report: cover
// meta, executive summary, per-function sections, a fixed 30/60/90 roadmap,
// risks and next steps. Compilation is a pure function of the audit and a
// caller-supplied timestamp.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/curiata/coreiq/internal/model"
	"github.com/curiata/coreiq/internal/recommend"
	"github.com/curiata/coreiq/internal/scoring"
)

// Meta is the report cover block.
type Meta struct {
	Client       string       `json:"client"`
	GeneratedAt  time.Time    `json:"generated_at"`
	Band         scoring.Band `json:"band"`
	OverallScore float64      `json:"overall_score"`
}

// Finding is one evidence-backed statement inside a section.
type Finding struct {
	Statement string   `json:"statement"`
	Evidence  []string `json:"evidence"`
}

// Weakness pairs a component with its score for ranking.
type Weakness struct {
	Component model.ComponentName `json:"component"`
	Score     float64             `json:"score"`
}

// Section is the report body for one active function.
type Section struct {
	Function        model.FunctionName         `json:"fn"`
	Score           float64                    `json:"score"`
	Situation       string                     `json:"situation"`
	Complication    string                     `json:"complication"`
	Findings        []Finding                  `json:"findings"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Notes           []recommend.Note           `json:"notes"`
	Attachments     []model.Attachment         `json:"attachments"`
}

// Executive is the summary block at the head of the report.
type Executive struct {
	Headline  string   `json:"headline"`
	Bullets   []string `json:"bullets"`
	Citations []string `json:"citations"`
}

// Roadmap is the fixed 30/60/90-day plan.
type Roadmap struct {
	Days30 []string `json:"days_30"`
	Days60 []string `json:"days_60"`
	Days90 []string `json:"days_90"`
}

// Report is the complete compiled artifact.
type Report struct {
	Meta      Meta      `json:"meta"`
	Executive Executive `json:"executive_summary"`
	Functions []Section `json:"functions"`
	Roadmap   Roadmap   `json:"roadmap"`
	Risks     []string  `json:"risks"`
	NextSteps []string  `json:"next_steps"`
}

var staticRoadmap = Roadmap{
	Days30: []string{
		"Stabilise data capture and remove obvious rekeying in one pilot process.",
		"Confirm owners, decision rights, and baseline metrics.",
	},
	Days60: []string{
		"Deploy first integration or automation in the pilot function.",
		"Draft vendor shortlist and commercials for priority recs.",
	},
	Days90: []string{
		"Scale to two additional processes; publish KPI uplift and savings estimate.",
		"Lock implementation plan with selected vendor(s).",
	},
}

var staticRisks = []string{"Change fatigue", "Weak data foundations", "Under-resourced owners"}

var staticNextSteps = []string{
	"Approve pilot scope",
	"Share access for evidence extraction",
	"Schedule working session for vendor selection",
}

// Compile assembles the report for an audit. It reads nothing but its
// arguments, so two calls with the same audit and timestamp produce
// identical output.
func Compile(a *model.Audit, now time.Time) Report {
	scores := scoring.Compute(a)
	comp := scoring.ComponentScores(a)
	notes := recommend.CollectNotes(a)
	recs := recommend.Run(a)

	sections := make([]Section, 0, len(a.Functions))
	for _, fn := range a.ActiveFunctions() {
		sections = append(sections, buildSection(a, fn.Name, scores, comp[fn.Name], notes[fn.Name], recs[fn.Name]))
	}

	totalRecs := 0
	for _, list := range recs {
		totalRecs += len(list)
	}

	return Report{
		Meta: Meta{
			Client:       a.Client,
			GeneratedAt:  now.UTC(),
			Band:         scoring.BandFor(scores.Overall),
			OverallScore: scores.Overall,
		},
		Executive: buildExecutive(sections, scores.Overall, totalRecs),
		Functions: sections,
		Roadmap:   staticRoadmap,
		Risks:     staticRisks,
		NextSteps: staticNextSteps,
	}
}

func buildSection(a *model.Audit, fn model.FunctionName, scores scoring.Result, comp map[model.ComponentName]float64, notes []recommend.Note, recs []recommend.Recommendation) Section {
	weaknesses := rankWeaknesses(comp)

	keyNotes := notes
	if len(keyNotes) > 6 {
		keyNotes = keyNotes[:6]
	}
	evidence := noteIDs(keyNotes, 2)

	findings := make([]Finding, 0, len(weaknesses)+1)
	for _, w := range weaknesses {
		findings = append(findings, Finding{
			Statement: fmt.Sprintf("%s %s is a weakness (%.0f).", fn, lowerName(w.Component), w.Score),
			Evidence:  evidence,
		})
	}
	if len(keyNotes) > 0 {
		quote, truncated := truncate(keyNotes[0].Text, 120)
		ellipsis := ""
		if truncated {
			ellipsis = "…"
		}
		findings = append(findings, Finding{
			Statement: `Representative notes mention: "` + quote + ellipsis + `"`,
			Evidence:  []string{keyNotes[0].ID},
		})
	}

	complication := "Limited documented evidence of specific blockers."
	if len(keyNotes) > 0 {
		head, _ := truncate(keyNotes[0].Text, 40)
		complication = fmt.Sprintf("Notes indicate %s…", strings.ToLower(head))
	}

	atts := a.Attachments[fn]
	if atts == nil {
		atts = []model.Attachment{}
	}

	if recs == nil {
		recs = []recommend.Recommendation{}
	}

	return Section{
		Function:        fn,
		Score:           scores.PerFunction[fn],
		Situation:       fmt.Sprintf("Baseline %s score %d with %s below target.", fn, int(math.Round(scores.PerFunction[fn])), joinWeaknesses(weaknesses)),
		Complication:    complication,
		Findings:        findings,
		Recommendations: recs,
		Notes:           keyNotes,
		Attachments:     atts,
	}
}

func buildExecutive(sections []Section, overall float64, totalRecs int) Executive {
	bullet1 := "Primary gap not determined."
	if len(sections) > 0 {
		lowest := sections[0]
		for _, s := range sections[1:] {
			if s.Score < lowest.Score {
				lowest = s
			}
		}
		bullet1 = fmt.Sprintf("Primary gap in %s — lowest function score %.1f.", lowest.Function, lowest.Score)
	}

	// Statements keep their trailing periods; the bullet template appends
	// one more, so the bullet ends "..".
	var firstFindings []string
	for _, s := range sections {
		if len(s.Findings) == 0 {
			continue
		}
		firstFindings = append(firstFindings, s.Findings[0].Statement)
		if len(firstFindings) == 3 {
			break
		}
	}

	var citations []string
	if len(sections) > 0 {
		citations = noteIDs(sections[0].Notes, 2)
	}

	return Executive{
		Headline: fmt.Sprintf("%s automation readiness (%.1f)", scoring.BandFor(overall), overall),
		Bullets: []string{
			bullet1,
			fmt.Sprintf("Weakest components: %s.", strings.Join(firstFindings, "; ")),
			fmt.Sprintf("%d vendor-linked recommendations prepared.", totalRecs),
		},
		Citations: citations,
	}
}

// rankWeaknesses returns the two lowest-scoring components, ties broken by
// component declaration order.
func rankWeaknesses(comp map[model.ComponentName]float64) []Weakness {
	all := make([]Weakness, 0, len(model.ComponentOrder))
	for _, cn := range model.ComponentOrder {
		all = append(all, Weakness{Component: cn, Score: comp[cn]})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Score < all[j].Score })
	if len(all) > 2 {
		all = all[:2]
	}
	return all
}

func noteIDs(notes []recommend.Note, max int) []string {
	ids := []string{}
	for _, n := range notes {
		if len(ids) == max {
			break
		}
		ids = append(ids, n.ID)
	}
	return ids
}

func joinWeaknesses(ws []Weakness) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = lowerName(w.Component)
	}
	return strings.Join(parts, " and ")
}

func lowerName(c model.ComponentName) string {
	return strings.ToLower(string(c))
}

// truncate cuts s to at most max runes and reports whether anything was
// dropped.
func truncate(s string, max int) (string, bool) {
	r := []rune(s)
	if len(r) <= max {
		return s, false
	}
	return string(r[:max]), true
}
