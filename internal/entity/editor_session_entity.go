package entity

import (
	"sync"
	"time"

	"mockup-editor-be/pkg/history"
	"mockup-editor-be/pkg/mockup"
)

// EditorSession is one user's working copy of the mock-up. All access goes
// through the embedded mutex; the service holds it for a whole operation.
type EditorSession struct {
	sync.Mutex

	Id         string
	History    *history.History[[]mockup.Element]
	SelectedId string // empty when nothing is selected
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Elements is the current snapshot.
func (s *EditorSession) Elements() []mockup.Element {
	return s.History.Current()
}

// Selected returns the selected element, or nil.
func (s *EditorSession) Selected() *mockup.Element {
	if s.SelectedId == "" {
		return nil
	}
	el, ok := mockup.Find(s.Elements(), s.SelectedId)
	if !ok {
		return nil
	}
	return &el
}
