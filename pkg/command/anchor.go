package command

import (
	"github.com/google/uuid"

	"mockup-editor-be/pkg/mockup"
)

// ResolveAnchor decides where a new element goes. The first matching rule
// wins:
//
//  1. top/first keyword           -> before index 0
//  2. bottom/last keyword         -> after the last element
//  3. a named kind that exists    -> its first element (heading, paragraph, button)
//  4. a selection                 -> the selected element
//
// For 3 and 4 the placement is before when a before/above keyword is
// present, after otherwise. A nil result means "append at the end".
func ResolveAnchor(cmd string, elements []mockup.Element, selected *mockup.Element) *mockup.Anchor {
	if len(elements) > 0 {
		if topPattern.MatchString(cmd) {
			return &mockup.Anchor{Index: 0, Placement: mockup.PlacementBefore}
		}
		if bottomPattern.MatchString(cmd) {
			return &mockup.Anchor{Index: len(elements) - 1, Placement: mockup.PlacementAfter}
		}

		for _, kind := range []mockup.Kind{mockup.KindHeading, mockup.KindParagraph, mockup.KindButton} {
			if !namesKind(cmd, kind) {
				continue
			}
			if i := mockup.FirstOfKind(elements, kind); i >= 0 {
				return &mockup.Anchor{Index: i, Placement: placement(cmd)}
			}
		}
	}

	if selected != nil {
		if i := mockup.IndexOf(elements, selected.ID); i >= 0 {
			return &mockup.Anchor{Index: i, Placement: placement(cmd)}
		}
	}
	return nil
}

func namesKind(cmd string, kind mockup.Kind) bool {
	switch kind {
	case mockup.KindHeading:
		return headingPattern.MatchString(cmd)
	case mockup.KindParagraph:
		// "text" is generic enough to show up in button phrasing
		return paragraphPattern.MatchString(cmd) && !buttonPattern.MatchString(cmd)
	case mockup.KindButton:
		return buttonPattern.MatchString(cmd)
	default:
		return false
	}
}

func placement(cmd string) mockup.Placement {
	if beforePattern.MatchString(cmd) {
		return mockup.PlacementBefore
	}
	return mockup.PlacementAfter
}

// Placeholder builds the paragraph created for an insertion request.
func Placeholder(label string) mockup.Element {
	return mockup.Element{
		ID:      uuid.NewString(),
		Kind:    mockup.KindParagraph,
		Content: label,
		Style: mockup.Style{
			Color:        mockup.String("#6b7280"),
			FontSize:     mockup.Int(16),
			MarginTop:    mockup.Int(8),
			MarginBottom: mockup.Int(8),
			TextAlign:    mockup.String("left"),
		},
	}
}

// Insert places a placeholder for req at anchor (nil appends) and returns
// the new sequence together with the created element. elements is not
// modified.
func Insert(elements []mockup.Element, req InsertionRequest, anchor *mockup.Anchor) ([]mockup.Element, mockup.Element) {
	el := Placeholder(req.Label)
	return mockup.InsertAt(elements, anchor.Position(len(elements)), el), el
}
