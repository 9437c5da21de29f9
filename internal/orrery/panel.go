package orrery

import "fmt"

// Action is a button.
type Action struct {
	Label  string
	Invoke func() error
}

// Toggle is a checkbox. Value is bound directly by the UI; call Set so
// OnChange runs.
type Toggle struct {
	Label    string
	Value    bool
	OnChange func(bool)
}

// Set updates the value and notifies OnChange if it changed.
func (t *Toggle) Set(v bool) {
	if t.Value == v {
		return
	}
	t.Value = v
	if t.OnChange != nil {
		t.OnChange(v)
	}
}

// InfoRow is one read-only line of text.
type InfoRow struct {
	Label string
	Value string
}

// InfoBlock groups rows under a heading.
type InfoBlock struct {
	Title string
	Rows  []InfoRow
}

// Panel is the control panel model: actions, toggles and static text.
// It holds no drawing code.
type Panel struct {
	Title   string
	Actions []*Action
	Toggles []*Toggle
	Info    []InfoBlock
}

// NewPanel returns an empty panel.
func NewPanel(title string) *Panel {
	return &Panel{Title: title}
}

// AddAction appends a button.
func (p *Panel) AddAction(label string, fn func() error) *Action {
	a := &Action{Label: label, Invoke: fn}
	p.Actions = append(p.Actions, a)
	return a
}

// AddToggle appends a checkbox.
func (p *Panel) AddToggle(label string, initial bool, fn func(bool)) *Toggle {
	t := &Toggle{Label: label, Value: initial, OnChange: fn}
	p.Toggles = append(p.Toggles, t)
	return t
}

// AddInfo appends a text block.
func (p *Panel) AddInfo(b InfoBlock) {
	p.Info = append(p.Info, b)
}

// Trigger invokes the action with the given label.
func (p *Panel) Trigger(label string) error {
	for _, a := range p.Actions {
		if a.Label == label {
			return a.Invoke()
		}
	}
	return fmt.Errorf("no action %q", label)
}

// Toggle returns the checkbox with the given label, or nil.
func (p *Panel) Toggle(label string) *Toggle {
	for _, t := range p.Toggles {
		if t.Label == label {
			return t
		}
	}
	return nil
}

// SetToggle sets a checkbox by label.
func (p *Panel) SetToggle(label string, v bool) error {
	t := p.Toggle(label)
	if t == nil {
		return fmt.Errorf("no toggle %q", label)
	}
	t.Set(v)
	return nil
}
