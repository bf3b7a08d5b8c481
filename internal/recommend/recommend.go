// Package recommend maps component gaps plus consultant notes to
// vendor-linked recommendations via a fixed rule table. Matching is literal
// substring search over note text; there is no inference.
package recommend

import (
	"fmt"
	"strings"

	"github.com/curiata/coreiq/internal/catalogue"
	"github.com/curiata/coreiq/internal/model"
	"github.com/curiata/coreiq/internal/scoring"
)

// Note is one non-empty consultant note with its stable citation ID.
type Note struct {
	ID        string              `json:"id"`
	Function  model.FunctionName  `json:"fn"`
	Component model.ComponentName `json:"component"`
	Text      string              `json:"text"`
}

// CollectNotes gathers the trimmed non-empty notes of each active function.
// IDs number 1-based per function across all components, so they stay
// stable for citation as long as answers only accrue.
func CollectNotes(a *model.Audit) map[model.FunctionName][]Note {
	out := make(map[model.FunctionName][]Note)
	for _, fn := range a.ActiveFunctions() {
		notes := []Note{}
		seq := 0
		for _, c := range fn.Components {
			for _, s := range c.Sub {
				text := strings.TrimSpace(s.Note)
				if text == "" {
					continue
				}
				seq++
				notes = append(notes, Note{
					ID:        fmt.Sprintf("NOTE-%s-%s-%d", strings.ToLower(string(fn.Name)), s.Key, seq),
					Function:  fn.Name,
					Component: c.Name,
					Text:      text,
				})
			}
		}
		out[fn.Name] = notes
	}
	return out
}

// Recommendation links an intervention to the vendors that deliver it.
type Recommendation struct {
	Title     string             `json:"title"`
	Rationale string             `json:"rationale"`
	Vendors   []catalogue.Vendor `json:"vendors"`
}

// gapThreshold is the component score below which a rule can fire.
const gapThreshold = 60

var (
	rekeyingKeywords    = []string{"duplicate", "rekey", "double capture", "manual entry"}
	spreadsheetKeywords = []string{"spreadsheet", "sheets", "manual process"}
)

// Run evaluates the rule table for every active function. Rules are
// conjunctions of a score gap and, for the first two, keyword evidence in
// the notes; output order follows the table.
func Run(a *model.Audit) map[model.FunctionName][]Recommendation {
	comp := scoring.ComponentScores(a)
	notes := CollectNotes(a)

	out := make(map[model.FunctionName][]Recommendation, len(comp))
	for fn, m := range comp {
		list := []Recommendation{}

		if m[model.ComponentFriction] < gapThreshold && notesContain(notes[fn], rekeyingKeywords) {
			list = append(list, Recommendation{
				Title:     "Eliminate duplicate data entry",
				Rationale: "Friction and notes indicate rekeying.",
				Vendors:   catalogue.VendorsByID(catalogue.VendorIPaaS),
			})
		}
		if m[model.ComponentFunctionality] < gapThreshold && notesContain(notes[fn], spreadsheetKeywords) {
			if fn == model.FunctionOps || fn == model.FunctionFinanceAdmin {
				list = append(list, Recommendation{
					Title:     "Upgrade core system of record",
					Rationale: "Functionality gaps with spreadsheet reliance.",
					Vendors:   catalogue.VendorsByID(catalogue.VendorERP),
				})
			}
		}
		if fn == model.FunctionCX && (m[model.ComponentDataFitness] < gapThreshold || m[model.ComponentFunctionality] < gapThreshold) {
			list = append(list, Recommendation{
				Title:     "Unify CX stack & CRM",
				Rationale: "Data fitness/functional gaps suggest fragmentation.",
				Vendors:   catalogue.VendorsByID(catalogue.VendorHelpdesk),
			})
		}
		if fn == model.FunctionInternalIQ && (m[model.ComponentFunctionality] < gapThreshold || m[model.ComponentDataFitness] < gapThreshold) {
			list = append(list, Recommendation{
				Title:     "Establish governed data platform",
				Rationale: "Gaps in data fitness/functionality.",
				Vendors:   catalogue.VendorsByID(catalogue.VendorDWH),
			})
		}

		out[fn] = list
	}
	return out
}

// notesContain reports whether any keyword appears in the space-joined,
// lowercased note text of one function.
func notesContain(notes []Note, keywords []string) bool {
	texts := make([]string, len(notes))
	for i, n := range notes {
		texts[i] = n.Text
	}
	blob := strings.ToLower(strings.Join(texts, " "))
	for _, w := range keywords {
		if strings.Contains(blob, w) {
			return true
		}
	}
	return false
}
