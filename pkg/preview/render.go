package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"

	"github.com/microcosm-cc/bluemonday"

	"mockup-editor-be/pkg/mockup"
)

// Options controls how the mock-up is rendered.
type Options struct {
	// ReadOnly drops the selection hooks so the client cannot pick elements.
	ReadOnly bool
}

type node struct {
	ID       string
	Kind     mockup.Kind
	Content  string
	Style    template.CSS
	RowStyle template.CSS
	Hooks    bool
	Selected bool
}

var pageTemplate = template.Must(template.New("page").Parse(`<section class="mockup">
{{- range .}}
{{- if eq .Kind "heading"}}
<h1{{if .Hooks}} data-element-id="{{.ID}}"{{if .Selected}} data-selected="true"{{end}}{{end}} style="{{.Style}}">{{.Content}}</h1>
{{- else if eq .Kind "button"}}
<div style="{{.RowStyle}}"><button{{if .Hooks}} data-element-id="{{.ID}}"{{if .Selected}} data-selected="true"{{end}}{{end}} style="{{.Style}}">{{.Content}}</button></div>
{{- else}}
<p{{if .Hooks}} data-element-id="{{.ID}}"{{if .Selected}} data-selected="true"{{end}}{{end}} style="{{.Style}}">{{.Content}}</p>
{{- end}}
{{- end}}
</section>`))

var (
	styleValue = regexp.MustCompile(`^[#a-zA-Z0-9 .-]+$`)
	policy     = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("section", "div", "h1", "p", "button")
	p.AllowAttrs("class").OnElements("section")
	p.AllowDataAttributes()
	p.AllowStyles(
		"color", "font-size", "font-weight",
		"margin-top", "margin-bottom", "text-align",
		"display", "justify-content",
	).Matching(styleValue).Globally()
	return p
}

// Render produces the HTML fragment for elements. Each kind maps to its
// own primitive (h1, p, button) and every style key becomes one CSS
// declaration. The output is sanitized before it is returned.
func Render(elements []mockup.Element, selectedID string, opts Options) (string, error) {
	nodes := make([]node, 0, len(elements))
	for _, el := range elements {
		if !el.Kind.Valid() {
			return "", fmt.Errorf("unknown element kind %q", el.Kind)
		}
		nodes = append(nodes, node{
			ID:       el.ID,
			Kind:     el.Kind,
			Content:  el.Content,
			Style:    template.CSS(mockup.CSS(el.Style.Declarations())),
			RowStyle: template.CSS(mockup.CSS(el.Style.RowDeclarations())),
			Hooks:    !opts.ReadOnly,
			Selected: el.ID == selectedID,
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, nodes); err != nil {
		return "", fmt.Errorf("failed to render mockup: %w", err)
	}

	return policy.Sanitize(buf.String()), nil
}
