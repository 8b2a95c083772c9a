package dto

import (
	"time"

	"mockup-editor-be/pkg/command"
	"mockup-editor-be/pkg/mockup"
)

type CreateSessionResponse struct {
	Token    string           `json:"token"`
	Document DocumentResponse `json:"document"`
}

type DocumentResponse struct {
	SessionId  string           `json:"session_id"`
	Elements   []mockup.Element `json:"elements"`
	SelectedId string           `json:"selected_id,omitempty"`
	CanUndo    bool             `json:"can_undo"`
	CanRedo    bool             `json:"can_redo"`
	Position   int              `json:"position"` // history cursor
	UpdatedAt  time.Time        `json:"updated_at"`
}

type SelectElementRequest struct {
	ElementId string `json:"element_id" validate:"omitempty,uuid"`
}

type ExecuteCommandRequest struct {
	Command string `json:"command" validate:"required,max=500"`
}

type ReplaceContentRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

// MutationResponse reports what a command did. Applied is false for
// commands that changed nothing; no history entry is recorded for those.
type MutationResponse struct {
	Applied   bool                      `json:"applied"`
	Kind      string                    `json:"kind"` // "style", "insertion", "undo", "redo", "reset" or "none"
	Patch     *command.StylePatch       `json:"patch,omitempty"`
	Insertion *command.InsertionRequest `json:"insertion,omitempty"`
	Anchor    *mockup.Anchor            `json:"anchor,omitempty"`
	Document  DocumentResponse          `json:"document"`
}

type PaletteItem struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Command string `json:"command"`
}

type PreviewResponse struct {
	Html     string `json:"html"`
	ReadOnly bool   `json:"read_only"`
}

// DocumentChangedMessage is published on the changes topic after every
// effective mutation.
type DocumentChangedMessage struct {
	SessionId string           `json:"session_id"`
	Reason    string           `json:"reason"`
	Document  DocumentResponse `json:"document"`
}
