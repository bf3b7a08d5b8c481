package export

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/curiata/coreiq/internal/catalogue"
	"github.com/curiata/coreiq/internal/model"
)

var testNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func newAudit(t *testing.T, fns ...model.FunctionName) *model.Audit {
	t.Helper()
	scope := make(map[model.FunctionName]bool)
	for _, fn := range fns {
		scope[fn] = true
	}
	a, err := model.NewAudit("Acme, Inc.", "", scope)
	require.NoError(t, err)
	return a
}

func TestEntries_FollowCatalogueOrder(t *testing.T) {
	cat := catalogue.Default()
	a := newAudit(t, model.FunctionOps, model.FunctionSalesMktg, model.FunctionFinanceAdmin)

	entries := Entries(cat, a)
	require.Len(t, entries, 60)

	// Functions appear in catalogue order: OPS before SALES_MARKETING
	// before FINANCE_ADMIN (not audit order, which puts finance first).
	assert.Equal(t, model.FunctionOps, entries[0].Function)
	assert.Equal(t, model.FunctionSalesMktg, entries[20].Function)
	assert.Equal(t, model.FunctionFinanceAdmin, entries[40].Function)

	// Components follow declaration order within each function.
	assert.Equal(t, model.ComponentFunctionality, entries[0].Component)
	assert.Equal(t, "sops", entries[0].Sub.Key)
	assert.Equal(t, model.ComponentFriction, entries[5].Component)
}

func TestEntries_JoinAnswers(t *testing.T) {
	cat := catalogue.Default()
	a := newAudit(t, model.FunctionOps)

	score := 4
	note := "versioned in the wiki"
	require.NoError(t, a.SetAnswer(model.FunctionOps, model.ComponentFunctionality, "sops", &score, &note))

	entries := Entries(cat, a)
	require.NotNil(t, entries[0].Score)
	assert.Equal(t, 4, *entries[0].Score)
	assert.Equal(t, "versioned in the wiki", entries[0].Note)

	// Unanswered questions still appear with no score.
	assert.Nil(t, entries[1].Score)
	assert.Empty(t, entries[1].Note)
}

func TestEntries_UnknownKeysIgnored(t *testing.T) {
	cat := catalogue.Default()
	a := newAudit(t, model.FunctionOps)

	score := 3
	require.NoError(t, a.SetAnswer(model.FunctionOps, model.ComponentFunctionality, "made_up_key", &score, nil))

	entries := Entries(cat, a)
	assert.Len(t, entries, 20)
	for _, e := range entries {
		assert.NotEqual(t, "made_up_key", e.Sub.Key)
	}
}

func TestEntries_AnchorOverrides(t *testing.T) {
	cat := catalogue.Default()
	a := newAudit(t, model.FunctionOps)

	entries := Entries(cat, a)
	// sops has a global anchor override.
	assert.Equal(t, "None", entries[0].Anchors.Left)
	assert.Equal(t, "Versioned", entries[0].Anchors.Right)
}

func TestCSV_WireContract(t *testing.T) {
	cat := catalogue.Default()
	a := newAudit(t, model.FunctionOps)

	score := 2
	note := `uses "legacy" tool, badly`
	require.NoError(t, a.SetAnswer(model.FunctionOps, model.ComponentFunctionality, "sops", &score, &note))

	out := CSV(cat, a)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 21) // header + 20 questions

	assert.Equal(t, `"Function","Component","SubKey","Label","Score","Note","AnchorLeft","AnchorRight"`, lines[0])

	// Every field quoted; embedded quotes doubled; embedded comma kept.
	assert.Contains(t, lines[1], `"uses ""legacy"" tool, badly"`)
	assert.Contains(t, lines[1], `"OPS","FUNCTIONALITY","sops"`)
	assert.Contains(t, lines[1], `"2"`)

	// Unanswered rows carry an empty quoted score cell.
	assert.Contains(t, lines[2], `"roles"`)
	assert.Contains(t, lines[2], `,"",`)

	// No trailing newline.
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestJSONL_WireContract(t *testing.T) {
	cat := catalogue.Default()
	a := newAudit(t, model.FunctionOps)

	score := 3
	require.NoError(t, a.SetAnswer(model.FunctionOps, model.ComponentFunctionality, "sops", &score, nil))

	out, err := JSONL(cat, a, testNow)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 20)
	assert.False(t, strings.HasSuffix(out, "\n"))

	// Field order is fixed.
	assert.True(t, strings.HasPrefix(lines[0], `{"schema":"coreiq.v1","audit_id":"`))

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Acme, Inc.", first["client"])
	assert.Equal(t, "OPS", first["function"])
	assert.Equal(t, "sops", first["subkey"])
	assert.Equal(t, float64(3), first["score"])
	assert.Equal(t, float64(60), first["score_pct"])
	assert.Equal(t, false, first["unanswered"])
	assert.Equal(t, 0.30, first["component_weight"])

	// Unanswered questions carry nulls and unanswered true.
	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Nil(t, second["score"])
	assert.Nil(t, second["score_pct"])
	assert.Equal(t, true, second["unanswered"])
}

func TestJSONL_RecordCountMatchesCatalogue(t *testing.T) {
	cat := catalogue.Default()
	a := newAudit(t, model.FunctionOps, model.FunctionCX, model.FunctionSalesMktg,
		model.FunctionFinanceAdmin, model.FunctionInternalIQ)

	recs := Records(cat, a, testNow)
	want := 0
	for _, fn := range catalogue.FunctionOrder {
		want += cat.Count(fn)
	}
	assert.Equal(t, want, len(recs))
	assert.Equal(t, 100, len(recs))
}

func TestWriteXLSX(t *testing.T) {
	cat := catalogue.Default()
	a := newAudit(t, model.FunctionOps)

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, WriteXLSX(cat, a, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)
	assert.Equal(t, "CoreIQ", f.Sheets[0].Name)
	require.Len(t, f.Sheets[0].Rows, 21)
	assert.Equal(t, "Function", f.Sheets[0].Rows[0].Cells[0].Value)
}
