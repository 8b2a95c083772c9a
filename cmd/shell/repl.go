package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"mockup-editor-be/pkg/command"
	"mockup-editor-be/pkg/history"
	"mockup-editor-be/pkg/mockup"

	"github.com/fatih/color"
)

var (
	promptColor   = color.New(color.FgCyan, color.Bold)
	appliedColor  = color.New(color.FgGreen)
	ignoredColor  = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
	selectedColor = color.New(color.FgMagenta, color.Bold)
)

// shell is one editing session driven from the terminal.
type shell struct {
	history  *history.History[[]mockup.Element]
	selected string
	out      io.Writer
}

func newShell(out io.Writer, historyLimit int) *shell {
	return &shell{
		history: history.New(mockup.Seed(), historyLimit),
		out:     out,
	}
}

func (s *shell) elements() []mockup.Element {
	return s.history.Current()
}

func (s *shell) selectedElement() *mockup.Element {
	el, ok := mockup.Find(s.elements(), s.selected)
	if !ok {
		return nil
	}
	return &el
}

// handle runs one input line and reports whether the shell should exit.
func (s *shell) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if !strings.HasPrefix(line, ":") {
		s.execute(line)
		return false
	}

	name, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "quit", "q":
		return true
	case "select", "s":
		s.selectIndex(arg)
	case "content":
		if arg == "" {
			errorColor.Fprintln(s.out, "usage: :content TEXT")
			return false
		}
		s.applyPatch(command.StylePatch{Content: &arg})
	case "undo":
		s.travel(s.history.Undo)
	case "redo":
		s.travel(s.history.Redo)
	case "reset":
		s.history.Push(mockup.Seed())
		s.selected = ""
		appliedColor.Fprintln(s.out, "reset")
		s.printDocument()
	case "palette":
		s.printPalette()
	case "show":
		s.printDocument()
	default:
		errorColor.Fprintf(s.out, "unknown command :%s\n", name)
	}
	return false
}

func (s *shell) execute(cmd string) {
	var current mockup.Element
	selected := s.selectedElement()
	if selected != nil {
		current = *selected
	}

	switch patch := command.Interpret(cmd, current).(type) {
	case command.InsertionRequest:
		anchor := command.ResolveAnchor(cmd, s.elements(), selected)
		next, inserted := command.Insert(s.elements(), patch, anchor)
		s.history.Push(next)
		s.selected = inserted.ID
		appliedColor.Fprintf(s.out, "inserted text %s\n", patch.Label)
		s.printDocument()
	case command.StylePatch:
		s.applyPatch(patch)
	}
}

func (s *shell) applyPatch(patch command.StylePatch) {
	selected := s.selectedElement()
	switch {
	case selected == nil:
		ignoredColor.Fprintln(s.out, "nothing selected (:select N)")
		return
	case patch.IsEmpty():
		ignoredColor.Fprintln(s.out, "command not understood, nothing changed")
		return
	}

	s.history.Push(mockup.Replace(s.elements(), command.Apply(*selected, patch)))
	appliedColor.Fprintln(s.out, "applied")
	s.printDocument()
}

func (s *shell) selectIndex(arg string) {
	n, err := strconv.Atoi(arg)
	els := s.elements()
	if err != nil || n < 1 || n > len(els) {
		errorColor.Fprintf(s.out, "usage: :select N (1-%d)\n", len(els))
		return
	}
	s.selected = els[n-1].ID
	s.printDocument()
}

func (s *shell) travel(step func() ([]mockup.Element, bool)) {
	if _, ok := step(); !ok {
		ignoredColor.Fprintln(s.out, "nothing to do")
		return
	}
	if s.selectedElement() == nil {
		s.selected = ""
	}
	s.printDocument()
}

func (s *shell) printDocument() {
	for i, el := range s.elements() {
		line := fmt.Sprintf("%2d. [%s] %s", i+1, el.Kind, el.Content)
		decls := el.Style.Declarations()
		if el.Style.JustifyContent != nil {
			decls = append(decls, mockup.Declaration{Property: "justify-content", Value: *el.Style.JustifyContent})
		}
		if len(decls) > 0 {
			line += "  {" + mockup.CSS(decls) + "}"
		}
		if el.ID == s.selected {
			selectedColor.Fprintln(s.out, "* "+line)
		} else {
			fmt.Fprintln(s.out, "  "+line)
		}
	}
}

func (s *shell) printPalette() {
	for _, p := range command.Palette() {
		fmt.Fprintf(s.out, "  %-22s %s\n", p.Label, promptColor.Sprint(p.Command))
	}
}
