package mockup

import (
	"strconv"
	"strings"
)

// Style is a sparse set of presentation attributes. A nil field means
// "use the rendering default". Values behind the pointers are never
// mutated, so copies of a Style may share them safely.
type Style struct {
	Color          *string `json:"color,omitempty"`
	FontSize       *int    `json:"fontSize,omitempty"`
	FontWeight     *int    `json:"fontWeight,omitempty"`
	MarginTop      *int    `json:"marginTop,omitempty"`
	MarginBottom   *int    `json:"marginBottom,omitempty"`
	TextAlign      *string `json:"textAlign,omitempty"`
	JustifyContent *string `json:"justifyContent,omitempty"`
}

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// IsEmpty reports whether no attribute is set.
func (s Style) IsEmpty() bool {
	return s.Color == nil &&
		s.FontSize == nil &&
		s.FontWeight == nil &&
		s.MarginTop == nil &&
		s.MarginBottom == nil &&
		s.TextAlign == nil &&
		s.JustifyContent == nil
}

// Merge returns s with every attribute set in overlay replaced.
func (s Style) Merge(overlay Style) Style {
	out := s
	if overlay.Color != nil {
		out.Color = overlay.Color
	}
	if overlay.FontSize != nil {
		out.FontSize = overlay.FontSize
	}
	if overlay.FontWeight != nil {
		out.FontWeight = overlay.FontWeight
	}
	if overlay.MarginTop != nil {
		out.MarginTop = overlay.MarginTop
	}
	if overlay.MarginBottom != nil {
		out.MarginBottom = overlay.MarginBottom
	}
	if overlay.TextAlign != nil {
		out.TextAlign = overlay.TextAlign
	}
	if overlay.JustifyContent != nil {
		out.JustifyContent = overlay.JustifyContent
	}
	return out
}

// Declarations maps the set attributes 1:1 to CSS, in a fixed order.
// JustifyContent is left out: it belongs to the button's flex row, see
// RowDeclarations.
func (s Style) Declarations() []Declaration {
	var decls []Declaration
	if s.Color != nil {
		decls = append(decls, Declaration{"color", *s.Color})
	}
	if s.FontSize != nil {
		decls = append(decls, Declaration{"font-size", px(*s.FontSize)})
	}
	if s.FontWeight != nil {
		decls = append(decls, Declaration{"font-weight", strconv.Itoa(*s.FontWeight)})
	}
	if s.MarginTop != nil {
		decls = append(decls, Declaration{"margin-top", px(*s.MarginTop)})
	}
	if s.MarginBottom != nil {
		decls = append(decls, Declaration{"margin-bottom", px(*s.MarginBottom)})
	}
	if s.TextAlign != nil {
		decls = append(decls, Declaration{"text-align", *s.TextAlign})
	}
	return decls
}

// RowDeclarations returns the declarations for the flex container that
// wraps a button.
func (s Style) RowDeclarations() []Declaration {
	decls := []Declaration{{"display", "flex"}}
	if s.JustifyContent != nil {
		decls = append(decls, Declaration{"justify-content", *s.JustifyContent})
	}
	return decls
}

// CSS joins declarations into an inline style attribute value.
func CSS(decls []Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}

// Int and String build the pointer values Style expects.
func Int(v int) *int { return &v }

func String(v string) *string { return &v }
