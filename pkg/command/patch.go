package command

import "mockup-editor-be/pkg/mockup"

// Patch is the result of interpreting a command: either a StylePatch or an
// InsertionRequest.
type Patch interface {
	isPatch()
}

// StylePatch is a partial mutation of one element. Nil fields are left
// alone. A patch with neither field set is a no-op.
type StylePatch struct {
	Content *string       `json:"content,omitempty"`
	Style   *mockup.Style `json:"style,omitempty"`
}

// InsertionRequest asks for a new element labelled Label to be added.
// Label is a normalized digit string ("1" .. "20").
type InsertionRequest struct {
	Label string `json:"label"`
}

func (StylePatch) isPatch()       {}
func (InsertionRequest) isPatch() {}

// IsEmpty reports whether applying p would change nothing.
func (p StylePatch) IsEmpty() bool {
	return p.Content == nil && (p.Style == nil || p.Style.IsEmpty())
}

// Apply returns a new element with p's content (if set) and p's style keys
// merged over the element's own. el is not modified.
func Apply(el mockup.Element, p StylePatch) mockup.Element {
	out := el
	if p.Content != nil {
		out.Content = *p.Content
	}
	if p.Style != nil {
		out.Style = el.Style.Merge(*p.Style)
	}
	return out
}
