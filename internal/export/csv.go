package export

import (
	"strings"

	"github.com/curiata/coreiq/internal/catalogue"
	"github.com/curiata/coreiq/internal/model"
)

// Rows returns the header row plus one row per catalogue entry.
func Rows(cat *catalogue.Catalogue, a *model.Audit) [][]string {
	entries := Entries(cat, a)
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, Header)
	for _, e := range entries {
		rows = append(rows, []string{
			string(e.Function),
			string(e.Component),
			e.Sub.Key,
			e.Sub.Label,
			scoreCell(e.Score),
			e.Note,
			e.Anchors.Left,
			e.Anchors.Right,
		})
	}
	return rows
}

// CSV renders the export. The contract quotes every field and doubles
// embedded quotes; encoding/csv quotes only when needed, which would break
// byte-for-byte compatibility with existing downstream diffs, so the
// quoting is done here. Rows join with \n and there is no trailing newline.
func CSV(cat *catalogue.Catalogue, a *model.Audit) string {
	rows := Rows(cat, a)
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		lines[i] = strings.Join(cells, ",")
	}
	return strings.Join(lines, "\n")
}
