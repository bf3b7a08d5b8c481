package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAudit_RequiresClient(t *testing.T) {
	_, err := NewAudit("", "", map[FunctionName]bool{FunctionOps: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client name")
}

func TestNewAudit_RequiresScope(t *testing.T) {
	_, err := NewAudit("Acme", "", nil)
	require.Error(t, err)

	_, err = NewAudit("Acme", "", map[FunctionName]bool{FunctionOps: false})
	require.Error(t, err)
}

func TestNewAudit_Structure(t *testing.T) {
	a, err := NewAudit("Acme", "", map[FunctionName]bool{FunctionOps: true, FunctionCX: true})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "CoreIQ Audit — Acme", a.Title)
	assert.Equal(t, StatusDraft, a.Status)
	assert.Equal(t, NDANotSent, a.NDA)

	// All five functions exist regardless of scope.
	require.Len(t, a.Functions, 5)
	for _, f := range a.Functions {
		require.Len(t, f.Components, 4)
	}

	// Scope is explicit for every function.
	assert.True(t, a.Scope[FunctionOps])
	assert.True(t, a.Scope[FunctionCX])
	assert.False(t, a.Scope[FunctionFinanceAdmin])

	active := a.ActiveFunctions()
	require.Len(t, active, 2)
	assert.Equal(t, FunctionOps, active[0].Name)
	assert.Equal(t, FunctionCX, active[1].Name)
}

func TestNewAudit_CustomTitle(t *testing.T) {
	a, err := NewAudit("Acme", "Q3 Assessment", map[FunctionName]bool{FunctionOps: true})
	require.NoError(t, err)
	assert.Equal(t, "Q3 Assessment", a.Title)
}

func TestSetAnswer_Upsert(t *testing.T) {
	a, err := NewAudit("Acme", "", map[FunctionName]bool{FunctionOps: true})
	require.NoError(t, err)

	score := 3
	require.NoError(t, a.SetAnswer(FunctionOps, ComponentFriction, "rework", &score, nil))

	comp := a.Function(FunctionOps).Component(ComponentFriction)
	ans := comp.Answer("rework")
	require.NotNil(t, ans)
	require.NotNil(t, ans.Score)
	assert.Equal(t, 3, *ans.Score)
	assert.Empty(t, ans.Note)

	// Note-only update leaves the score untouched.
	note := "jobs redone weekly"
	require.NoError(t, a.SetAnswer(FunctionOps, ComponentFriction, "rework", nil, &note))
	ans = comp.Answer("rework")
	require.NotNil(t, ans.Score)
	assert.Equal(t, 3, *ans.Score)
	assert.Equal(t, "jobs redone weekly", ans.Note)

	// Score update leaves the note untouched.
	score = 5
	require.NoError(t, a.SetAnswer(FunctionOps, ComponentFriction, "rework", &score, nil))
	ans = comp.Answer("rework")
	assert.Equal(t, 5, *ans.Score)
	assert.Equal(t, "jobs redone weekly", ans.Note)
}

func TestSetAnswer_UnknownFunction(t *testing.T) {
	a, err := NewAudit("Acme", "", map[FunctionName]bool{FunctionOps: true})
	require.NoError(t, err)

	err = a.SetAnswer("LOGISTICS", ComponentFriction, "rework", nil, nil)
	require.Error(t, err)
}

func TestAnswer_UnmarshalTolerant(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want *int
	}{
		{"integer", `{"key":"sops","score":4}`, intPtr(4)},
		{"float", `{"key":"sops","score":3.7}`, intPtr(3)},
		{"null", `{"key":"sops","score":null}`, nil},
		{"string", `{"key":"sops","score":"high"}`, nil},
		{"absent", `{"key":"sops"}`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Answer
			require.NoError(t, json.Unmarshal([]byte(tc.in), &a))
			assert.Equal(t, "sops", a.Key)
			if tc.want == nil {
				assert.Nil(t, a.Score)
			} else {
				require.NotNil(t, a.Score)
				assert.Equal(t, *tc.want, *a.Score)
			}
		})
	}
}

func TestRemoveAttachment(t *testing.T) {
	a, err := NewAudit("Acme", "", map[FunctionName]bool{FunctionOps: true})
	require.NoError(t, err)

	require.NoError(t, a.AddAttachment(FunctionOps, Attachment{ID: "att-1", Name: "invoices.pdf"}))
	require.NoError(t, a.AddAttachment(FunctionOps, Attachment{ID: "att-2", Name: "flows.png"}))

	removed, ok := a.RemoveAttachment("att-1")
	require.True(t, ok)
	assert.Equal(t, "invoices.pdf", removed.Name)
	require.Len(t, a.Attachments[FunctionOps], 1)
	assert.Equal(t, "att-2", a.Attachments[FunctionOps][0].ID)

	_, ok = a.RemoveAttachment("att-1")
	assert.False(t, ok)
}

func intPtr(v int) *int { return &v }
