// Package catalogue holds the static CoreIQ question bank: five business
// functions, four components each, five sub-criteria per component, with
// 0/3/5 maturity anchors. The bank ships built in; a YAML file can override
// individual entries.
package catalogue

import "github.com/curiata/coreiq/internal/model"

// Anchor holds the 0/3/5 maturity descriptions for a sub-criterion.
type Anchor struct {
	A0 string `yaml:"a0" json:"a0"`
	A3 string `yaml:"a3" json:"a3"`
	A5 string `yaml:"a5" json:"a5"`
}

// SubCriterion is one question within a component.
type SubCriterion struct {
	Key         string `yaml:"key" json:"key"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
	Anchor      Anchor `yaml:"anchor" json:"anchor"`
}

// AnchorPair is the display form of an anchor: the two pole labels shown
// beside a slider or export row.
type AnchorPair struct {
	Left  string
	Right string
}

// FunctionOrder is the order exports walk the catalogue. It differs from the
// audit's own function order; both are load-bearing for downstream diffs.
var FunctionOrder = []model.FunctionName{
	model.FunctionOps,
	model.FunctionCX,
	model.FunctionSalesMktg,
	model.FunctionFinanceAdmin,
	model.FunctionInternalIQ,
}

// anchorOverrides maps a sub-criterion key to polished pole labels. Keys are
// global across functions, matching the shared vocabulary of the bank.
var anchorOverrides = map[string]AnchorPair{
	"sops":             {Left: "None", Right: "Versioned"},
	"roles":            {Left: "Unclear", Right: "RACI"},
	"systems":          {Left: "Spreadsheets", Right: "Fit"},
	"integration":      {Left: "Siloed", Right: "Integrated"},
	"measurement":      {Left: "None", Right: "Dashboards"},
	"manual_entry":     {Left: "High", Right: "Low"},
	"approvals":        {Left: "Slow", Right: "Fast"},
	"duplication":      {Left: "Common", Right: "None"},
	"rework":           {Left: "High", Right: "Low"},
	"downtime":         {Left: "Frequent", Right: "Rare"},
	"completeness":     {Left: "Incomplete", Right: "Complete"},
	"accuracy":         {Left: "Poor", Right: "High"},
	"access":           {Left: "Gatekept", Right: "Self-serve"},
	"format":           {Left: "Unstandardised", Right: "Standardised"},
	"standardisation":  {Left: "Inconsistent", Right: "Strict"},
	"data_integration": {Left: "Disconnected", Right: "Unified"},
	"leadership":       {Left: "Resistant", Right: "Driving"},
	"culture":          {Left: "Static", Right: "Innovates"},
	"past_adoption":    {Left: "Failed", Right: "Successful"},
	"training":         {Left: "Reluctant", Right: "Eager"},
	"resources":        {Left: "None", Right: "Allocated"},
}

// Anchors returns the pole labels for s: the override when one exists,
// otherwise the raw a0/a5 anchors.
func Anchors(s SubCriterion) AnchorPair {
	if o, ok := anchorOverrides[s.Key]; ok {
		return o
	}
	return AnchorPair{Left: s.Anchor.A0, Right: s.Anchor.A5}
}

// Catalogue is the question bank consulted by exports and the answer flow.
type Catalogue struct {
	subs map[model.FunctionName]map[model.ComponentName][]SubCriterion
}

// Default returns the built-in bank.
func Default() *Catalogue {
	return &Catalogue{subs: builtin}
}

// SubCriteria returns the questions for one function/component cell in
// declaration order. Unknown cells return nil.
func (c *Catalogue) SubCriteria(fn model.FunctionName, comp model.ComponentName) []SubCriterion {
	return c.subs[fn][comp]
}

// Count returns the total number of questions under fn.
func (c *Catalogue) Count(fn model.FunctionName) int {
	n := 0
	for _, subs := range c.subs[fn] {
		n += len(subs)
	}
	return n
}

// Vendor is an entry in the recommendation vendor catalogue.
type Vendor struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Niche     string               `json:"niche"`
	Functions []model.FunctionName `json:"fns"`
}

const (
	VendorIPaaS    = "v-ipaas"
	VendorHelpdesk = "v-helpdesk"
	VendorERP      = "v-erp"
	VendorDWH      = "v-dwh"
)

// Vendors is the fixed vendor catalogue referenced by recommendation rules.
var Vendors = []Vendor{
	{ID: VendorIPaaS, Name: "iPaaS Integration Layer", Niche: "Integration/iPaaS", Functions: []model.FunctionName{model.FunctionOps, model.FunctionCX, model.FunctionFinanceAdmin}},
	{ID: VendorHelpdesk, Name: "Helpdesk + CRM Suite", Niche: "CX Platform", Functions: []model.FunctionName{model.FunctionCX}},
	{ID: VendorERP, Name: "Modern ERP", Niche: "ERP", Functions: []model.FunctionName{model.FunctionOps, model.FunctionFinanceAdmin}},
	{ID: VendorDWH, Name: "Data Warehouse + BI", Niche: "Data Platform", Functions: []model.FunctionName{model.FunctionInternalIQ, model.FunctionOps, model.FunctionFinanceAdmin}},
}

// VendorsByID resolves ids against the catalogue, preserving catalogue order
// and dropping unknown ids.
func VendorsByID(ids ...string) []Vendor {
	var out []Vendor
	for _, v := range Vendors {
		for _, id := range ids {
			if v.ID == id {
				out = append(out, v)
			}
		}
	}
	return out
}
