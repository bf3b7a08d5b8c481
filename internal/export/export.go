// Package export serializes the full question catalogue, with whatever
// answers exist, to CSV, JSONL and XLSX. Exports walk the catalogue, not
// the audit, so every question appears whether answered or not.
package export

import (
	"strconv"

	"github.com/curiata/coreiq/internal/catalogue"
	"github.com/curiata/coreiq/internal/model"
)

// Header is the column set shared by the CSV and XLSX exports. Order is
// part of the wire contract.
var Header = []string{"Function", "Component", "SubKey", "Label", "Score", "Note", "AnchorLeft", "AnchorRight"}

// Entry is one catalogue question joined with the audit's answer, if any.
type Entry struct {
	Function  model.FunctionName
	Component model.ComponentName
	Sub       catalogue.SubCriterion
	Anchors   catalogue.AnchorPair
	Score     *int
	Note      string
}

// Entries joins the catalogue with an audit's answers. Only scoped
// functions appear; iteration follows catalogue.FunctionOrder, then
// component declaration order, then catalogue question order. Answer keys
// not present in the catalogue are ignored.
func Entries(cat *catalogue.Catalogue, a *model.Audit) []Entry {
	var out []Entry
	for _, fnName := range catalogue.FunctionOrder {
		if !a.Scope[fnName] {
			continue
		}
		fn := a.Function(fnName)
		for _, compName := range model.ComponentOrder {
			var comp *model.Component
			if fn != nil {
				comp = fn.Component(compName)
			}
			for _, q := range cat.SubCriteria(fnName, compName) {
				e := Entry{
					Function:  fnName,
					Component: compName,
					Sub:       q,
					Anchors:   catalogue.Anchors(q),
				}
				if comp != nil {
					if ans := comp.Answer(q.Key); ans != nil {
						e.Score = ans.Score
						e.Note = ans.Note
					}
				}
				out = append(out, e)
			}
		}
	}
	return out
}

// scoreCell renders a score for tabular output: the raw 0–5 number, or an
// empty cell when unanswered.
func scoreCell(score *int) string {
	if score == nil {
		return ""
	}
	return strconv.Itoa(*score)
}
