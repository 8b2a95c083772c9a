package command

import (
	"regexp"
	"strconv"
	"strings"

	"mockup-editor-be/pkg/mockup"
)

// accumulator collects what the rules decide for one command.
type accumulator struct {
	content *string
	style   mockup.Style
}

// rule is one independent predicate/effect step. Rules run in order and a
// later rule overwrites any field an earlier one set.
type rule struct {
	name  string
	apply func(cmd string, current mockup.Element, acc *accumulator)
}

var rules = []rule{
	{"fontSize", fontSizeRule},
	{"color", colorRule},
	{"weight", weightRule},
	{"alignment", alignmentRule},
	{"spacing", spacingRule},
	{"content", contentRule},
}

// Interpret maps a free-text command to a Patch for the current element.
//
// Insertion requests ("テキスト3を追加", "add text 3") short-circuit every
// other rule. Anything else runs through the style/content rules; a
// command no rule recognizes yields an empty StylePatch.
func Interpret(cmd string, current mockup.Element) Patch {
	if label, ok := detectInsertion(cmd); ok {
		return InsertionRequest{Label: label}
	}

	acc := &accumulator{}
	for _, r := range rules {
		r.apply(cmd, current, acc)
	}

	patch := StylePatch{Content: acc.content}
	if !acc.style.IsEmpty() {
		style := acc.style
		patch.Style = &style
	}
	return patch
}

func fontSizeRule(cmd string, current mockup.Element, acc *accumulator) {
	size := current.Kind.DefaultFontSize()
	if current.Style.FontSize != nil {
		size = *current.Style.FontSize
	}

	matched := false
	if biggerPattern.MatchString(cmd) {
		size = clamp(size+fontStep, fontMin, fontMax)
		matched = true
	}
	if smallerPattern.MatchString(cmd) {
		size = clamp(size-fontStep, fontMin, fontMax)
		matched = true
	}
	if m := explicitPxPattern.FindStringSubmatch(cmd); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			size = clamp(v, fontMin, fontMax)
			matched = true
		}
	}

	if matched {
		acc.style.FontSize = mockup.Int(size)
	}
}

func colorRule(cmd string, _ mockup.Element, acc *accumulator) {
	for _, kw := range colorKeywords {
		if kw.pattern.MatchString(cmd) {
			acc.style.Color = mockup.String(kw.hex)
		}
	}
}

func weightRule(cmd string, _ mockup.Element, acc *accumulator) {
	if boldPattern.MatchString(cmd) {
		acc.style.FontWeight = mockup.Int(weightBold)
	}
	if lightPattern.MatchString(cmd) {
		acc.style.FontWeight = mockup.Int(weightLight)
	}
}

type alignment int

const (
	alignNone alignment = iota
	alignLeft
	alignCenter
	alignRight
)

func alignmentRule(cmd string, current mockup.Element, acc *accumulator) {
	align := alignNone
	if alignLeftPattern.MatchString(cmd) {
		align = alignLeft
	}
	if alignCenterPattern.MatchString(cmd) {
		align = alignCenter
	}
	if alignRightPattern.MatchString(cmd) {
		align = alignRight
	}
	if align == alignNone {
		return
	}

	switch current.Kind {
	case mockup.KindButton:
		acc.style.JustifyContent = mockup.String(justifyValue(align))
	default:
		acc.style.TextAlign = mockup.String(textAlignValue(align))
	}
}

func justifyValue(a alignment) string {
	switch a {
	case alignLeft:
		return "flex-start"
	case alignRight:
		return "flex-end"
	default:
		return "center"
	}
}

func textAlignValue(a alignment) string {
	switch a {
	case alignLeft:
		return "left"
	case alignRight:
		return "right"
	default:
		return "center"
	}
}

func spacingRule(cmd string, current mockup.Element, acc *accumulator) {
	sign := 0
	if spacingUpPattern.MatchString(cmd) {
		sign = 1
	}
	if spacingDownPattern.MatchString(cmd) {
		sign = -1
	}
	if sign == 0 {
		return
	}

	step := marginStep
	switch {
	case extremePattern.MatchString(cmd):
		step = marginExtreme
	case morePattern.MatchString(cmd):
		step = marginMore
	}
	delta := sign * step

	top, bottom := defaultMargin, defaultMargin
	if current.Style.MarginTop != nil {
		top = *current.Style.MarginTop
	}
	if current.Style.MarginBottom != nil {
		bottom = *current.Style.MarginBottom
	}

	acc.style.MarginTop = mockup.Int(max(top+delta, 0))
	acc.style.MarginBottom = mockup.Int(max(bottom+delta, 0))
}

func contentRule(cmd string, _ mockup.Element, acc *accumulator) {
	for _, re := range []*regexp.Regexp{contentJPPattern, contentENPattern} {
		if text, ok := trailingText(re, cmd); ok {
			acc.content = &text
			return
		}
	}
}

// trailingText returns the trimmed text captured after a content keyword.
func trailingText(re *regexp.Regexp, cmd string) (string, bool) {
	sub := re.FindStringSubmatch(cmd)
	if sub == nil {
		return "", false
	}
	text := strings.TrimSpace(sub[1])
	if text == "" {
		return "", false
	}
	return text, true
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
