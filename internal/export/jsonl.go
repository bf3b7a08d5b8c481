package export

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/curiata/coreiq/internal/catalogue"
	"github.com/curiata/coreiq/internal/model"
	"github.com/curiata/coreiq/internal/scoring"
)

// SchemaTag versions the JSONL record layout.
const SchemaTag = "coreiq.v1"

// Record is one JSONL line. Field order is part of the wire contract.
type Record struct {
	Schema          string              `json:"schema"`
	AuditID         string              `json:"audit_id"`
	Client          string              `json:"client"`
	Function        model.FunctionName  `json:"function"`
	Component       model.ComponentName `json:"component"`
	SubKey          string              `json:"subkey"`
	Label           string              `json:"label"`
	Score           *int                `json:"score"`
	Note            string              `json:"note"`
	AnchorLeft      string              `json:"anchor_left"`
	AnchorRight     string              `json:"anchor_right"`
	ScorePct        *float64            `json:"score_pct"`
	Unanswered      bool                `json:"unanswered"`
	ComponentWeight *float64            `json:"component_weight"`
	GeneratedAt     time.Time           `json:"generated_at"`
}

// Records builds one record per catalogue entry. Unanswered questions carry
// null score and score_pct with unanswered true.
func Records(cat *catalogue.Catalogue, a *model.Audit, now time.Time) []Record {
	entries := Entries(cat, a)
	out := make([]Record, 0, len(entries))
	ts := now.UTC()
	for _, e := range entries {
		var pct *float64
		if e.Score != nil {
			v := float64(*e.Score) * 20
			pct = &v
		}
		var weight *float64
		if w, ok := scoring.Weights[e.Component]; ok {
			weight = &w
		}
		out = append(out, Record{
			Schema:          SchemaTag,
			AuditID:         a.ID,
			Client:          a.Client,
			Function:        e.Function,
			Component:       e.Component,
			SubKey:          e.Sub.Key,
			Label:           e.Sub.Label,
			Score:           e.Score,
			Note:            e.Note,
			AnchorLeft:      e.Anchors.Left,
			AnchorRight:     e.Anchors.Right,
			ScorePct:        pct,
			Unanswered:      e.Score == nil,
			ComponentWeight: weight,
			GeneratedAt:     ts,
		})
	}
	return out
}

// JSONL renders the records one JSON object per line, \n joined, no
// trailing newline.
func JSONL(cat *catalogue.Catalogue, a *model.Audit, now time.Time) (string, error) {
	recs := Records(cat, a, now)
	lines := make([]string, len(recs))
	for i, r := range recs {
		raw, err := json.Marshal(r)
		if err != nil {
			return "", eris.Wrap(err, "export: marshal jsonl record")
		}
		lines[i] = string(raw)
	}
	return strings.Join(lines, "\n"), nil
}
