package model

// FunctionName identifies one of the five fixed business areas.
type FunctionName string

const (
	FunctionOps          FunctionName = "OPS"
	FunctionCX           FunctionName = "CX"
	FunctionSalesMktg    FunctionName = "SALES_MARKETING"
	FunctionFinanceAdmin FunctionName = "FINANCE_ADMIN"
	FunctionInternalIQ   FunctionName = "INTERNAL_INTEL"
)

// FunctionOrder is the canonical order of functions within an audit. Reports
// and scoring walk functions in this order.
var FunctionOrder = []FunctionName{
	FunctionOps,
	FunctionCX,
	FunctionFinanceAdmin,
	FunctionSalesMktg,
	FunctionInternalIQ,
}

// Valid reports whether n is one of the five known functions.
func (n FunctionName) Valid() bool {
	switch n {
	case FunctionOps, FunctionCX, FunctionSalesMktg, FunctionFinanceAdmin, FunctionInternalIQ:
		return true
	}
	return false
}

// ComponentName identifies one of the four fixed scoring dimensions.
type ComponentName string

const (
	ComponentFunctionality   ComponentName = "FUNCTIONALITY"
	ComponentFriction        ComponentName = "FRICTION"
	ComponentDataFitness     ComponentName = "DATA_FITNESS"
	ComponentChangeReadiness ComponentName = "CHANGE_READINESS"
)

// ComponentOrder is the declaration order of components within every
// function. Weakness ranking ties break on this order.
var ComponentOrder = []ComponentName{
	ComponentFunctionality,
	ComponentFriction,
	ComponentDataFitness,
	ComponentChangeReadiness,
}

// Valid reports whether n is one of the four known components.
func (n ComponentName) Valid() bool {
	switch n {
	case ComponentFunctionality, ComponentFriction, ComponentDataFitness, ComponentChangeReadiness:
		return true
	}
	return false
}

// AuditStatus is the workflow state of an audit.
type AuditStatus string

const (
	StatusDraft      AuditStatus = "DRAFT"
	StatusInProgress AuditStatus = "IN_PROGRESS"
)

// NDAStatus tracks the client NDA. Evidence entry and report compilation
// are gated on SIGNED.
type NDAStatus string

const (
	NDANotSent NDAStatus = "NOT_SENT"
	NDASent    NDAStatus = "SENT"
	NDASigned  NDAStatus = "SIGNED"
)

// Valid reports whether s is a known NDA state.
func (s NDAStatus) Valid() bool {
	switch s {
	case NDANotSent, NDASent, NDASigned:
		return true
	}
	return false
}
