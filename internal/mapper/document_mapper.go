package mapper

import (
	"mockup-editor-be/internal/dto"
	"mockup-editor-be/internal/entity"
	"mockup-editor-be/pkg/mockup"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

// ToResponse snapshots the session. The element slice is copied so the
// response stays valid after the session lock is released.
func (m *DocumentMapper) ToResponse(s *entity.EditorSession) dto.DocumentResponse {
	return dto.DocumentResponse{
		SessionId:  s.Id,
		Elements:   mockup.Clone(s.Elements()),
		SelectedId: s.SelectedId,
		CanUndo:    s.History.CanUndo(),
		CanRedo:    s.History.CanRedo(),
		Position:   s.History.Cursor(),
		UpdatedAt:  s.UpdatedAt,
	}
}
