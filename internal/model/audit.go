package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
)

// Answer is one scored sub-criterion within a component. A nil Score means
// the question has not been answered; unanswered questions contribute
// nothing to any mean.
type Answer struct {
	Key   string `json:"key"`
	Score *int   `json:"score"`
	Note  string `json:"note,omitempty"`
}

// UnmarshalJSON coerces malformed score values (strings, fractions typed by
// hand, nulls) to "unanswered" instead of failing the whole audit row.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw struct {
		Key   string          `json:"key"`
		Score json.RawMessage `json:"score"`
		Note  string          `json:"note"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return eris.Wrap(err, "model: unmarshal answer")
	}
	a.Key = raw.Key
	a.Note = raw.Note
	a.Score = nil
	if len(raw.Score) > 0 && string(raw.Score) != "null" {
		var n float64
		if err := json.Unmarshal(raw.Score, &n); err == nil {
			v := int(n)
			a.Score = &v
		}
	}
	return nil
}

// Component holds the answers entered for one scoring dimension.
type Component struct {
	Name ComponentName `json:"name"`
	Sub  []Answer      `json:"sub"`
}

// Answer returns the stored answer for key, or nil.
func (c *Component) Answer(key string) *Answer {
	for i := range c.Sub {
		if c.Sub[i].Key == key {
			return &c.Sub[i]
		}
	}
	return nil
}

// Function is one business area with its four fixed components.
type Function struct {
	Name       FunctionName `json:"name"`
	Components []Component  `json:"components"`
}

// Component returns the named component. The four components always exist
// structurally, so a nil return indicates a corrupted audit.
func (f *Function) Component(name ComponentName) *Component {
	for i := range f.Components {
		if f.Components[i].Name == name {
			return &f.Components[i]
		}
	}
	return nil
}

// Attachment is evidence-file metadata. The file bytes live with the
// file-storage collaborator; StoragePath is an opaque reference into it.
type Attachment struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	MimeType    string    `json:"type,omitempty"`
	AddedAt     time.Time `json:"addedAt"`
	StoragePath string    `json:"storagePath,omitempty"`
}

// Audit is the root aggregate of one client assessment engagement.
type Audit struct {
	ID           string                        `json:"id"`
	Client       string                        `json:"client"`
	Title        string                        `json:"title"`
	Status       AuditStatus                   `json:"status"`
	NDA          NDAStatus                     `json:"nda"`
	Industry     string                        `json:"industry,omitempty"`
	ContactName  string                        `json:"contactName,omitempty"`
	ContactEmail string                        `json:"contactEmail,omitempty"`
	NDAFileName  string                        `json:"ndaFileName,omitempty"`
	Archived     bool                          `json:"archived,omitempty"`
	Scope        map[FunctionName]bool         `json:"scope"`
	Attachments  map[FunctionName][]Attachment `json:"attachments"`
	Functions    []Function                    `json:"functions"`
	UpdatedAt    time.Time                     `json:"updatedAt"`
}

// NewAudit builds a DRAFT audit with all five functions present and the
// given scope. Client must be non-empty and at least one function scoped.
func NewAudit(client, title string, scope map[FunctionName]bool) (*Audit, error) {
	if client == "" {
		return nil, eris.New("model: client name is required")
	}
	scoped := false
	for _, fn := range FunctionOrder {
		if scope[fn] {
			scoped = true
		}
	}
	if !scoped {
		return nil, eris.New("model: at least one function must be in scope")
	}

	fullScope := make(map[FunctionName]bool, len(FunctionOrder))
	attachments := make(map[FunctionName][]Attachment, len(FunctionOrder))
	functions := make([]Function, 0, len(FunctionOrder))
	for _, fn := range FunctionOrder {
		fullScope[fn] = scope[fn]
		attachments[fn] = []Attachment{}
		comps := make([]Component, 0, len(ComponentOrder))
		for _, cn := range ComponentOrder {
			comps = append(comps, Component{Name: cn, Sub: []Answer{}})
		}
		functions = append(functions, Function{Name: fn, Components: comps})
	}

	if title == "" {
		title = "CoreIQ Audit — " + client
	}

	return &Audit{
		ID:          uuid.New().String(),
		Client:      client,
		Title:       title,
		Status:      StatusDraft,
		NDA:         NDANotSent,
		Scope:       fullScope,
		Attachments: attachments,
		Functions:   functions,
		UpdatedAt:   time.Now().UTC(),
	}, nil
}

// Function returns the named function entity, or nil.
func (a *Audit) Function(name FunctionName) *Function {
	for i := range a.Functions {
		if a.Functions[i].Name == name {
			return &a.Functions[i]
		}
	}
	return nil
}

// ActiveFunctions returns the scoped functions in audit order. Everything
// downstream (scoring, rules, reports, exports) only ever sees these.
func (a *Audit) ActiveFunctions() []Function {
	var out []Function
	for _, f := range a.Functions {
		if a.Scope[f.Name] {
			out = append(out, f)
		}
	}
	return out
}

// SetAnswer upserts the score and/or note for one sub-criterion. A nil
// score leaves the existing score untouched; likewise a nil note.
func (a *Audit) SetAnswer(fn FunctionName, comp ComponentName, key string, score *int, note *string) error {
	f := a.Function(fn)
	if f == nil {
		return eris.Errorf("model: unknown function %s", fn)
	}
	c := f.Component(comp)
	if c == nil {
		return eris.Errorf("model: unknown component %s", comp)
	}

	ans := c.Answer(key)
	if ans == nil {
		c.Sub = append(c.Sub, Answer{Key: key})
		ans = &c.Sub[len(c.Sub)-1]
	}
	if score != nil {
		v := *score
		ans.Score = &v
	}
	if note != nil {
		ans.Note = *note
	}
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// AddAttachment appends evidence metadata under a function.
func (a *Audit) AddAttachment(fn FunctionName, att Attachment) error {
	if !fn.Valid() {
		return eris.Errorf("model: unknown function %s", fn)
	}
	if a.Attachments == nil {
		a.Attachments = make(map[FunctionName][]Attachment)
	}
	a.Attachments[fn] = append(a.Attachments[fn], att)
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveAttachment drops evidence metadata by id and returns the removed
// record so the caller can release the stored file. Answers are unaffected.
func (a *Audit) RemoveAttachment(id string) (*Attachment, bool) {
	for fn, atts := range a.Attachments {
		for i, att := range atts {
			if att.ID == id {
				a.Attachments[fn] = append(atts[:i:i], atts[i+1:]...)
				a.UpdatedAt = time.Now().UTC()
				return &att, true
			}
		}
	}
	return nil, false
}
