package mockup

// Kind identifies which visual primitive an element renders as.
// The set is closed: heading, paragraph, button.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindButton    Kind = "button"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindHeading, KindParagraph, KindButton:
		return true
	default:
		return false
	}
}

// DefaultFontSize is the rendering default in px when no font size is set.
func (k Kind) DefaultFontSize() int {
	switch k {
	case KindHeading:
		return 36
	default:
		return 16
	}
}

// Element is one node of the mock-up. ID and Kind never change after creation.
type Element struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Content string `json:"content"`
	Style   Style  `json:"style"`
}

// Placement says on which side of the referenced element a new one lands.
type Placement string

const (
	PlacementBefore Placement = "before"
	PlacementAfter  Placement = "after"
)

// Anchor is a resolved insertion point. A nil *Anchor means "append at end".
type Anchor struct {
	Index     int       `json:"index"`
	Placement Placement `json:"placement"`
}

// Position turns the anchor into an insertion index clamped to [0, length].
func (a *Anchor) Position(length int) int {
	if a == nil {
		return length
	}

	pos := a.Index
	if a.Placement == PlacementAfter {
		pos++
	}
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}
