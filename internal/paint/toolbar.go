package paint

import (
	"encoding/json"
	"fmt"
)

// PageDataFile is the toolbar/navigation document, served next to the
// entry page.
const PageDataFile = "data.json"

// PageData is the page chrome: titles, nav links, and the toolbar.
type PageData struct {
	PageTitle   string    `json:"pageTitle"`
	HeaderTitle string    `json:"headerTitle"`
	NavLinks    []NavLink `json:"navLinks"`
	Toolbar     Toolbar   `json:"toolbar"`
}

// NavLink is one header navigation entry.
type NavLink struct {
	Href      string `json:"href"`
	Text      string `json:"text"`
	IsCurrent bool   `json:"isCurrent,omitempty"`
}

// Toolbar groups the interactive controls and plain buttons.
type Toolbar struct {
	Controls []Control `json:"controls"`
	Buttons  []Button  `json:"buttons"`
}

// Button is a plain toolbar button.
type Button struct {
	ID    string `json:"id"`
	Class string `json:"class,omitempty"`
	Text  string `json:"text"`
}

// Control kinds.
const (
	ControlColorPicker = "color-picker"
	ControlRange       = "range"
	ControlSelect      = "select"
)

// Control is a tagged toolbar control. Exactly one of the typed fields is
// set, selected by Type.
type Control struct {
	Type   string
	Picker *PickerControl
	Range  *RangeControl
	Select *SelectControl
}

// PickerControl is the color-picker control payload.
type PickerControl struct {
	TriggerID         string `json:"triggerId"`
	PickerContainerID string `json:"pickerContainerId"`
	LabelClass        string `json:"labelClass"`
	PreviewClass      string `json:"previewClass"`
	DefaultColor      string `json:"defaultColor"`
}

// RangeControl is the slider control payload.
type RangeControl struct {
	InputID      string `json:"inputId"`
	Min          int    `json:"min"`
	Max          int    `json:"max"`
	Value        int    `json:"value"`
	DisplayID    string `json:"displayId"`
	DisplayClass string `json:"displayClass"`
	DisplayText  string `json:"displayText"`
}

// SelectControl is the dropdown control payload.
type SelectControl struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	AriaLabel string         `json:"ariaLabel,omitempty"`
	Options   []SelectOption `json:"options"`
}

// SelectOption is one dropdown entry.
type SelectOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// UnmarshalJSON dispatches on the type tag. Unknown tags are an error so
// a typo in data.json fails loudly instead of rendering a hole.
func (c *Control) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	switch tag.Type {
	case ControlColorPicker:
		c.Picker = &PickerControl{}
		if err := json.Unmarshal(data, c.Picker); err != nil {
			return err
		}
	case ControlRange:
		c.Range = &RangeControl{}
		if err := json.Unmarshal(data, c.Range); err != nil {
			return err
		}
	case ControlSelect:
		c.Select = &SelectControl{}
		if err := json.Unmarshal(data, c.Select); err != nil {
			return err
		}
	default:
		return fmt.Errorf("toolbar: unknown control type %q", tag.Type)
	}
	c.Type = tag.Type
	return nil
}

// MarshalJSON writes the control back in its tagged wire shape.
func (c Control) MarshalJSON() ([]byte, error) {
	var payload interface{}
	switch c.Type {
	case ControlColorPicker:
		payload = c.Picker
	case ControlRange:
		payload = c.Range
	case ControlSelect:
		payload = c.Select
	default:
		return nil, fmt.Errorf("toolbar: unknown control type %q", c.Type)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	// Splice the tag into the payload object.
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	m["type"] = c.Type
	return json.Marshal(m)
}

// ParsePageData decodes and validates the page document.
func ParsePageData(raw []byte) (*PageData, error) {
	var page PageData
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("parse %s: %w", PageDataFile, err)
	}
	if page.PageTitle == "" {
		return nil, fmt.Errorf("%s: pageTitle is required", PageDataFile)
	}
	return &page, nil
}
