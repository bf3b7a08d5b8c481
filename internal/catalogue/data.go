package catalogue

import "github.com/curiata/coreiq/internal/model"

// builtin is the seeded question bank. Labels and anchors are the assessment
// instrument itself; do not edit casually, exports diff against these.
var builtin = map[model.FunctionName]map[model.ComponentName][]SubCriterion{
	model.FunctionOps: {
		model.ComponentFunctionality: {
			{Key: "sops", Label: "Documented SOPs — order-to-cash, scheduling, QC.", Description: "Coverage & currency of core SOPs.", Anchor: Anchor{A0: "none", A3: "partial/key steps", A5: "versioned"}},
			{Key: "roles", Label: "Role Clarity — handoffs between teams.", Description: "Clarity & enforcement of handoffs.", Anchor: Anchor{A0: "unclear", A3: "mostly", A5: "RACI"}},
			{Key: "systems", Label: "System Coverage — WMS/ERP, scheduling, task mgmt.", Description: "Fit-for-purpose coverage vs spreadsheets.", Anchor: Anchor{A0: "sheets", A3: "single", A5: "fit"}},
			{Key: "integration", Label: "Integration — ERP↔inventory↔dispatch↔finance.", Description: "Stability & breadth of integrations.", Anchor: Anchor{A0: "siloed", A3: "partial", A5: "integrated"}},
			{Key: "measurement", Label: "Process Measurement — cycle time, OTIF, defect rate.", Description: "How metrics are captured & surfaced.", Anchor: Anchor{A0: "none", A3: "manual", A5: "dashboards"}},
		},
		model.ComponentFriction: {
			{Key: "manual_entry", Label: "Manual Data Entry — % touch time.", Description: "Share of work that’s manual.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "approvals", Label: "Approval Bottlenecks — PO/job sign-offs.", Description: "Time to decision.", Anchor: Anchor{A0: "slow", A3: "ok", A5: "fast"}},
			{Key: "duplication", Label: "Duplication — double capture/rekey.", Description: "Duplicate entry prevalence.", Anchor: Anchor{A0: "common", A3: "some", A5: "none"}},
			{Key: "rework", Label: "Rework Rate — % jobs redone.", Description: "Rework intensity.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "downtime", Label: "System Downtime/Delays — planning/ERP.", Description: "Outage/slowdown frequency.", Anchor: Anchor{A0: "freq", A3: "monthly", A5: "rare"}},
		},
		model.ComponentDataFitness: {
			{Key: "completeness", Label: "Data Completeness — item codes, BOMs, job IDs.", Description: "Required fields present.", Anchor: Anchor{A0: "incomplete", A3: "mixed", A5: "complete"}},
			{Key: "accuracy", Label: "Accuracy — stock deltas, route variance.", Description: "Error frequency.", Anchor: Anchor{A0: "poor", A3: "ok", A5: "high"}},
			{Key: "access", Label: "Accessibility — ops staff can self-serve.", Description: "Appropriate self-serve access.", Anchor: Anchor{A0: "gatekept", A3: "partial", A5: "self-serve"}},
			{Key: "format", Label: "Format Standardisation — units, SKUs, naming.", Description: "Standards adherence.", Anchor: Anchor{A0: "chaos", A3: "mostly", A5: "catalogue"}},
			{Key: "data_integration", Label: "Data Integration — ERP⇄WMS⇄BI.", Description: "Unification level.", Anchor: Anchor{A0: "none", A3: "some", A5: "unified"}},
		},
		model.ComponentChangeReadiness: {
			{Key: "leadership", Label: "Leadership Buy-in — ops head sponsorship.", Description: "Sponsor energy.", Anchor: Anchor{A0: "resist", A3: "neutral", A5: "driving"}},
			{Key: "culture", Label: "Innovation Culture — kaizen/continuous improvement.", Description: "Continuous improvement cadence.", Anchor: Anchor{A0: "never", A3: "adhoc", A5: "routine"}},
			{Key: "past_adoption", Label: "Past Tech Adoption — ERP upgrades succeeded?", Description: "Track record of change.", Anchor: Anchor{A0: "failed", A3: "mixed", A5: "success"}},
			{Key: "training", Label: "Training Willingness — floor teams upskill.", Description: "Willingness to learn.", Anchor: Anchor{A0: "reluctant", A3: "willing", A5: "eager"}},
			{Key: "resources", Label: "Resources — time/budget/SME available.", Description: "Resourcing for improvement.", Anchor: Anchor{A0: "none", A3: "limited", A5: "allocated"}},
		},
	},
	model.FunctionCX: {
		model.ComponentFunctionality: {
			{Key: "sops", Label: "SOPs — intake, triage, escalation, refunds.", Description: "Process coverage.", Anchor: Anchor{A0: "none", A3: "partial", A5: "versioned"}},
			{Key: "roles", Label: "Role Clarity — agent vs team lead vs QA.", Description: "Ownership of tasks.", Anchor: Anchor{A0: "unclear", A3: "mostly", A5: "RACI"}},
			{Key: "systems", Label: "System Coverage — helpdesk/CRM/telephony/KB.", Description: "Tooling sufficiency.", Anchor: Anchor{A0: "adhoc", A3: "single", A5: "fit"}},
			{Key: "integration", Label: "Integration — CRM↔helpdesk↔billing↔comms.", Description: "Data flow between CX tools.", Anchor: Anchor{A0: "siloed", A3: "partial", A5: "stable"}},
			{Key: "measurement", Label: "Measurement — SLA, FRT, AHT, CSAT/NPS in dashboards.", Description: "Operational telemetry.", Anchor: Anchor{A0: "none", A3: "manual", A5: "dashboards"}},
		},
		model.ComponentFriction: {
			{Key: "manual_entry", Label: "Manual Entry — notes/rekeying between tools.", Description: "Manual activity share.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "approvals", Label: "Approval Bottlenecks — goodwill/discounts/RMAs.", Description: "Time to authorise.", Anchor: Anchor{A0: "slow", A3: "ok", A5: "fast"}},
			{Key: "duplication", Label: "Duplication — duplicate tickets/accounts.", Description: "Duplicates prevalence.", Anchor: Anchor{A0: "common", A3: "some", A5: "rare"}},
			{Key: "rework", Label: "Rework — reopened tickets % / transfers.", Description: "Amount of rework.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "downtime", Label: "Downtime/Delays — telephony/queue outages.", Description: "Outage frequency.", Anchor: Anchor{A0: "freq", A3: "monthly", A5: "rare"}},
		},
		model.ComponentDataFitness: {
			{Key: "completeness", Label: "Completeness — CRM required fields, contact history.", Description: "Data field fill.", Anchor: Anchor{A0: "incomplete", A3: "mixed", A5: "complete"}},
			{Key: "accuracy", Label: "Accuracy — wrong contact/entitlement.", Description: "Error rate.", Anchor: Anchor{A0: "poor", A3: "ok", A5: "high"}},
			{Key: "access", Label: "Accessibility — 360° customer view.", Description: "Context availability.", Anchor: Anchor{A0: "fragmented", A3: "partial", A5: "unified"}},
			{Key: "standardisation", Label: "Standardisation — tagging, reasons, dispositions.", Description: "Taxonomy discipline.", Anchor: Anchor{A0: "inconsistent", A3: "improving", A5: "strict"}},
			{Key: "data_integration", Label: "Integration — events in one timeline.", Description: "Timeline consolidation.", Anchor: Anchor{A0: "none", A3: "partial", A5: "consolidated"}},
		},
		model.ComponentChangeReadiness: {
			{Key: "leadership", Label: "Leadership Buy-in — CX lead owns outcomes.", Description: "Sponsor engagement.", Anchor: Anchor{A0: "resist", A3: "neutral", A5: "driving"}},
			{Key: "culture", Label: "Innovation Culture — macros, AI, self-service experiments.", Description: "Experiment cadence.", Anchor: Anchor{A0: "static", A3: "adhoc", A5: "routine"}},
			{Key: "past_adoption", Label: "Past Adoption — helpdesk/CRM rollouts stuck or shipped?", Description: "Rollout track record.", Anchor: Anchor{A0: "failed", A3: "mixed", A5: "success"}},
			{Key: "training", Label: "Training — playbooks, QA coaching cadence.", Description: "Enablement rigour.", Anchor: Anchor{A0: "reluctant", A3: "willing", A5: "eager"}},
			{Key: "resources", Label: "Resources — content, ops engineer, budget.", Description: "Capacity to execute.", Anchor: Anchor{A0: "none", A3: "limited", A5: "allocated"}},
		},
	},
	model.FunctionSalesMktg: {
		model.ComponentFunctionality: {
			{Key: "sops", Label: "SOPs — lead capture→handoff→close, campaign mgmt.", Description: "Sales and marketing process coverage.", Anchor: Anchor{A0: "none", A3: "partial", A5: "versioned"}},
			{Key: "roles", Label: "Role Clarity — SDR/AE/marketing ops defined.", Description: "Ownership and handoffs across GTM roles.", Anchor: Anchor{A0: "unclear", A3: "mostly", A5: "RACI"}},
			{Key: "systems", Label: "System Coverage — CRM, MAP, call tools, proposals.", Description: "Tooling sufficiency.", Anchor: Anchor{A0: "adhoc", A3: "single", A5: "fit"}},
			{Key: "integration", Label: "Integration — CRM⇄MAP↔ads↔billing.", Description: "Closed-loop data flow.", Anchor: Anchor{A0: "siloed", A3: "partial", A5: "integrated"}},
			{Key: "measurement", Label: "Measurement — funnel dashboards, CAC/LTV, win-loss.", Description: "Operational & financial telemetry.", Anchor: Anchor{A0: "none", A3: "manual", A5: "dashboards"}},
		},
		model.ComponentFriction: {
			{Key: "manual_entry", Label: "Manual Entry — CRM updates by reps.", Description: "Manual work share.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "approvals", Label: "Approval Bottlenecks — discounts, contracts.", Description: "Time to authorise.", Anchor: Anchor{A0: "slow", A3: "ok", A5: "fast"}},
			{Key: "duplication", Label: "Duplication — duplicate leads/accounts.", Description: "Duplicates prevalence.", Anchor: Anchor{A0: "common", A3: "some", A5: "rare"}},
			{Key: "rework", Label: "Rework — poor handoffs, requalification.", Description: "Amount of rework.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "downtime", Label: "Downtime — tool outages, broken integrations.", Description: "Outage frequency.", Anchor: Anchor{A0: "freq", A3: "sometimes", A5: "rare"}},
		},
		model.ComponentDataFitness: {
			{Key: "completeness", Label: "Completeness — CRM fields populated.", Description: "Required field fill.", Anchor: Anchor{A0: "incomplete", A3: "mixed", A5: "complete"}},
			{Key: "accuracy", Label: "Accuracy — attribution & pipeline data.", Description: "Data correctness.", Anchor: Anchor{A0: "poor", A3: "mixed", A5: "strong"}},
			{Key: "access", Label: "Accessibility — live dashboards for reps/managers.", Description: "Appropriate access.", Anchor: Anchor{A0: "opaque", A3: "partial", A5: "clear"}},
			{Key: "standardisation", Label: "Standardisation — stages, reasons, tags.", Description: "Taxonomy consistency.", Anchor: Anchor{A0: "inconsistent", A3: "improving", A5: "enforced"}},
			{Key: "data_integration", Label: "Closed-loop tracking from marketing to sales.", Description: "Unified GTM model.", Anchor: Anchor{A0: "none", A3: "partial", A5: "full"}},
		},
		model.ComponentChangeReadiness: {
			{Key: "leadership", Label: "Leadership Buy-in — CRO/Head of Sales/Marketing.", Description: "Sponsor engagement.", Anchor: Anchor{A0: "resist", A3: "neutral", A5: "driving"}},
			{Key: "culture", Label: "Innovation Culture — A/B testing, experimentation.", Description: "Experiment cadence.", Anchor: Anchor{A0: "static", A3: "adhoc", A5: "routine"}},
			{Key: "past_adoption", Label: "Past Adoption — CRM/MAP upgrades.", Description: "Track record.", Anchor: Anchor{A0: "failed", A3: "mixed", A5: "success"}},
			{Key: "training", Label: "Training — sales enablement sessions.", Description: "Enablement.", Anchor: Anchor{A0: "reluctant", A3: "willing", A5: "eager"}},
			{Key: "resources", Label: "Resources — ops support & budget.", Description: "Capacity.", Anchor: Anchor{A0: "none", A3: "limited", A5: "allocated"}},
		},
	},
	model.FunctionFinanceAdmin: {
		model.ComponentFunctionality: {
			{Key: "sops", Label: "SOPs — budgeting, forecasting, month-end close.", Description: "Finance process coverage.", Anchor: Anchor{A0: "none", A3: "partial", A5: "versioned"}},
			{Key: "roles", Label: "Role Clarity — CFO, controllers, AP/AR, procurement.", Description: "Ownership and handoffs.", Anchor: Anchor{A0: "unclear", A3: "mostly", A5: "RACI"}},
			{Key: "systems", Label: "System Coverage — ERP, expense mgmt, procurement.", Description: "Tooling sufficiency.", Anchor: Anchor{A0: "sheets", A3: "single", A5: "fit"}},
			{Key: "integration", Label: "Integration — ERP↔bank↔payroll↔procurement.", Description: "Data flow across finance tools.", Anchor: Anchor{A0: "siloed", A3: "partial", A5: "integrated"}},
			{Key: "measurement", Label: "Measurement — cash flow, AR aging, BvA dashboards.", Description: "Operational dashboards.", Anchor: Anchor{A0: "none", A3: "manual", A5: "dashboards"}},
		},
		model.ComponentFriction: {
			{Key: "manual_entry", Label: "Manual Entry — invoices, expenses, bank recs.", Description: "Manual workload.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "approvals", Label: "Approval Bottlenecks — PO approvals, expense sign-off.", Description: "Time to approve.", Anchor: Anchor{A0: "slow", A3: "ok", A5: "fast"}},
			{Key: "duplication", Label: "Duplication — duplicate vendor/customer records.", Description: "Duplicates.", Anchor: Anchor{A0: "common", A3: "some", A5: "none"}},
			{Key: "rework", Label: "Rework — correcting posting errors.", Description: "Rework level.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "downtime", Label: "Downtime — payroll, ERP outages.", Description: "Outage frequency.", Anchor: Anchor{A0: "freq", A3: "sometimes", A5: "rare"}},
		},
		model.ComponentDataFitness: {
			{Key: "completeness", Label: "Completeness — required fields in finance systems.", Description: "Data field fill.", Anchor: Anchor{A0: "incomplete", A3: "mixed", A5: "complete"}},
			{Key: "accuracy", Label: "Accuracy — reconciliation variances.", Description: "Error rate.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "access", Label: "Accessibility — live reports for decision makers.", Description: "Role-appropriate access.", Anchor: Anchor{A0: "gatekept", A3: "partial", A5: "self-serve"}},
			{Key: "standardisation", Label: "Standardisation — chart of accounts, vendor codes.", Description: "Standards adherence.", Anchor: Anchor{A0: "chaotic", A3: "improv", A5: "enforced"}},
			{Key: "data_integration", Label: "Integration — automated sync across finance stack.", Description: "Unification level.", Anchor: Anchor{A0: "manual", A3: "semi", A5: "full"}},
		},
		model.ComponentChangeReadiness: {
			{Key: "leadership", Label: "Leadership Buy-in — CFO & finance leadership.", Description: "Sponsor energy.", Anchor: Anchor{A0: "resist", A3: "neutral", A5: "driving"}},
			{Key: "culture", Label: "Innovation Culture — adoption of fintech tools.", Description: "Appetite for new tools.", Anchor: Anchor{A0: "static", A3: "adhoc", A5: "routine"}},
			{Key: "past_adoption", Label: "Past Adoption — ERP migrations, automation success.", Description: "Track record.", Anchor: Anchor{A0: "failed", A3: "mixed", A5: "success"}},
			{Key: "training", Label: "Training — finance team enablement.", Description: "Enablement cadence.", Anchor: Anchor{A0: "reluctant", A3: "willing", A5: "eager"}},
			{Key: "resources", Label: "Resources — budget for transformation projects.", Description: "Capacity to execute.", Anchor: Anchor{A0: "none", A3: "limited", A5: "allocated"}},
		},
	},
	model.FunctionInternalIQ: {
		model.ComponentFunctionality: {
			{Key: "sops", Label: "SOPs — data ingestion, incident runbooks, change mgmt.", Description: "Operational SOPs for data & IT.", Anchor: Anchor{A0: "none", A3: "partial", A5: "versioned"}},
			{Key: "roles", Label: "Role Clarity — data owners, admins, security.", Description: "Ownership clarity.", Anchor: Anchor{A0: "unclear", A3: "mostly", A5: "defined"}},
			{Key: "systems", Label: "System Coverage — warehouse/lake, ETL, BI, monitoring.", Description: "Platform coverage.", Anchor: Anchor{A0: "gaps", A3: "partial", A5: "complete"}},
			{Key: "integration", Label: "Integration — source ⇄ warehouse ⇄ BI.", Description: "Pipeline connectivity.", Anchor: Anchor{A0: "siloed", A3: "partial", A5: "integrated"}},
			{Key: "measurement", Label: "Measurement — data SLAs, quality, uptime.", Description: "Operational telemetry.", Anchor: Anchor{A0: "none", A3: "manual", A5: "dashboards"}},
		},
		model.ComponentFriction: {
			{Key: "manual_entry", Label: "Manual Entry — CSV uploads, ad-hoc scripts.", Description: "Manual operations.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "approvals", Label: "Approval Bottlenecks — access requests, schemas.", Description: "Time to approve.", Anchor: Anchor{A0: "slow", A3: "ok", A5: "fast"}},
			{Key: "duplication", Label: "Duplication — redundant datasets/reports.", Description: "Duplicate assets.", Anchor: Anchor{A0: "common", A3: "some", A5: "rare"}},
			{Key: "rework", Label: "Rework — fixing broken pipelines.", Description: "Fix-forward rate.", Anchor: Anchor{A0: "high", A3: "some", A5: "low"}},
			{Key: "downtime", Label: "Downtime — system or integration outages.", Description: "Failure frequency.", Anchor: Anchor{A0: "freq", A3: "sometimes", A5: "rare"}},
		},
		model.ComponentDataFitness: {
			{Key: "completeness", Label: "Completeness — coverage of required data sources.", Description: "Source coverage.", Anchor: Anchor{A0: "incomplete", A3: "mixed", A5: "complete"}},
			{Key: "accuracy", Label: "Accuracy — tests & anomaly detection.", Description: "Data correctness.", Anchor: Anchor{A0: "low", A3: "ok", A5: "high"}},
			{Key: "access", Label: "Accessibility — governed self-serve analytics.", Description: "Self-serve with governance.", Anchor: Anchor{A0: "gatekept", A3: "partial", A5: "self-serve"}},
			{Key: "standardisation", Label: "Standardisation — naming conventions, models.", Description: "Standards consistency.", Anchor: Anchor{A0: "inconsistent", A3: "improving", A5: "strict"}},
			{Key: "data_integration", Label: "Integration — unified semantic layer.", Description: "Semantic unification.", Anchor: Anchor{A0: "none", A3: "partial", A5: "unified"}},
		},
		model.ComponentChangeReadiness: {
			{Key: "leadership", Label: "Leadership Buy-in — CIO/Head of Data.", Description: "Sponsor engagement.", Anchor: Anchor{A0: "resist", A3: "neutral", A5: "driving"}},
			{Key: "culture", Label: "Innovation Culture — new tools experimentation.", Description: "Experiment cadence.", Anchor: Anchor{A0: "static", A3: "adhoc", A5: "routine"}},
			{Key: "past_adoption", Label: "Past Adoption — platform migrations.", Description: "Track record.", Anchor: Anchor{A0: "failed", A3: "mixed", A5: "success"}},
			{Key: "training", Label: "Training — analyst & engineer upskilling.", Description: "Enablement.", Anchor: Anchor{A0: "reluctant", A3: "willing", A5: "eager"}},
			{Key: "resources", Label: "Resources — bandwidth for improvements.", Description: "Capacity.", Anchor: Anchor{A0: "none", A3: "limited", A5: "allocated"}},
		},
	},
}
