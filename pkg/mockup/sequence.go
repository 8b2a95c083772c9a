package mockup

import "github.com/google/uuid"

// Seed returns the initial mock-up: a heading, a paragraph and a button.
// Each call produces fresh ids.
func Seed() []Element {
	return []Element{
		{
			ID:      uuid.NewString(),
			Kind:    KindHeading,
			Content: "サンプル見出し",
			Style: Style{
				Color:        String("#111827"),
				FontSize:     Int(36),
				FontWeight:   Int(700),
				MarginTop:    Int(16),
				MarginBottom: Int(16),
				TextAlign:    String("left"),
			},
		},
		{
			ID:      uuid.NewString(),
			Kind:    KindParagraph,
			Content: "ここに説明文が入ります。コマンドでスタイルや内容を変更できます。",
			Style: Style{
				Color:        String("#374151"),
				FontSize:     Int(16),
				MarginTop:    Int(16),
				MarginBottom: Int(16),
				TextAlign:    String("left"),
			},
		},
		{
			ID:      uuid.NewString(),
			Kind:    KindButton,
			Content: "送信する",
			Style: Style{
				Color:          String("#ffffff"),
				FontSize:       Int(16),
				FontWeight:     Int(700),
				MarginTop:      Int(16),
				MarginBottom:   Int(16),
				JustifyContent: String("flex-start"),
			},
		},
	}
}

// Clone copies the sequence so the result can be changed without touching
// the original slice.
func Clone(elements []Element) []Element {
	out := make([]Element, len(elements))
	copy(out, elements)
	return out
}

// IndexOf returns the position of the element with id, or -1.
func IndexOf(elements []Element, id string) int {
	for i, el := range elements {
		if el.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the element with id.
func Find(elements []Element, id string) (Element, bool) {
	if i := IndexOf(elements, id); i >= 0 {
		return elements[i], true
	}
	return Element{}, false
}

// FirstOfKind returns the index of the first element of kind, or -1.
func FirstOfKind(elements []Element, kind Kind) int {
	for i, el := range elements {
		if el.Kind == kind {
			return i
		}
	}
	return -1
}

// Replace returns a copy of elements with the entry sharing el's id swapped
// for el. Unknown ids leave the copy unchanged.
func Replace(elements []Element, el Element) []Element {
	out := Clone(elements)
	if i := IndexOf(out, el.ID); i >= 0 {
		out[i] = el
	}
	return out
}

// InsertAt returns a copy of elements with el placed at pos, clamped to
// [0, len(elements)].
func InsertAt(elements []Element, pos int, el Element) []Element {
	if pos < 0 {
		pos = 0
	}
	if pos > len(elements) {
		pos = len(elements)
	}

	out := make([]Element, 0, len(elements)+1)
	out = append(out, elements[:pos]...)
	out = append(out, el)
	out = append(out, elements[pos:]...)
	return out
}
