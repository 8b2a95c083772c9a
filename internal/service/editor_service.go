package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mockup-editor-be/internal/dto"
	"mockup-editor-be/internal/entity"
	"mockup-editor-be/internal/mapper"
	"mockup-editor-be/internal/pkg/logger"
	"mockup-editor-be/internal/pkg/serverutils"
	"mockup-editor-be/internal/repository/memory"
	"mockup-editor-be/pkg/command"
	"mockup-editor-be/pkg/history"
	"mockup-editor-be/pkg/mockup"
	"mockup-editor-be/pkg/preview"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("editor session not found")
	ErrElementNotFound = errors.New("element not found")
)

const (
	MutationStyle     = "style"
	MutationInsertion = "insertion"
	MutationUndo      = "undo"
	MutationRedo      = "redo"
	MutationReset     = "reset"
	MutationNone      = "none"
)

type IEditorService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetDocument(ctx context.Context, sessionId string) (*dto.DocumentResponse, error)
	Select(ctx context.Context, sessionId string, req *dto.SelectElementRequest) (*dto.DocumentResponse, error)
	ExecuteCommand(ctx context.Context, sessionId string, req *dto.ExecuteCommandRequest) (*dto.MutationResponse, error)
	ReplaceContent(ctx context.Context, sessionId string, req *dto.ReplaceContentRequest) (*dto.MutationResponse, error)
	Undo(ctx context.Context, sessionId string) (*dto.MutationResponse, error)
	Redo(ctx context.Context, sessionId string) (*dto.MutationResponse, error)
	Reset(ctx context.Context, sessionId string) (*dto.MutationResponse, error)
	Preview(ctx context.Context, sessionId string, readOnly bool) (*dto.PreviewResponse, error)
	Palette() []dto.PaletteItem
}

type EditorServiceConfig struct {
	HistoryLimit int
	JwtSecret    string
}

type editorService struct {
	sessions  *memory.SessionRepository
	publisher IPublisherService
	mapper    *mapper.DocumentMapper
	logger    logger.ILogger
	cfg       EditorServiceConfig
}

func NewEditorService(
	sessions *memory.SessionRepository,
	publisher IPublisherService,
	log logger.ILogger,
	cfg EditorServiceConfig,
) IEditorService {
	return &editorService{
		sessions:  sessions,
		publisher: publisher,
		mapper:    mapper.NewDocumentMapper(),
		logger:    log,
		cfg:       cfg,
	}
}

func (s *editorService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	now := time.Now()
	session := &entity.EditorSession{
		Id:        uuid.NewString(),
		History:   history.New(mockup.Seed(), s.cfg.HistoryLimit),
		CreatedAt: now,
		UpdatedAt: now,
	}

	token, err := serverutils.IssueSessionToken(s.cfg.JwtSecret, session.Id)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.sessions.Save(session)
	s.logger.Info("EditorService", "Session created", map[string]interface{}{"session_id": session.Id})

	return &dto.CreateSessionResponse{
		Token:    token,
		Document: s.mapper.ToResponse(session),
	}, nil
}

func (s *editorService) GetDocument(ctx context.Context, sessionId string) (*dto.DocumentResponse, error) {
	session, err := s.lock(sessionId)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	res := s.mapper.ToResponse(session)
	return &res, nil
}

func (s *editorService) Select(ctx context.Context, sessionId string, req *dto.SelectElementRequest) (*dto.DocumentResponse, error) {
	session, err := s.lock(sessionId)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	if req.ElementId != "" && mockup.IndexOf(session.Elements(), req.ElementId) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, req.ElementId)
	}

	session.SelectedId = req.ElementId
	s.touch(session)

	res := s.mapper.ToResponse(session)
	return &res, nil
}

func (s *editorService) ExecuteCommand(ctx context.Context, sessionId string, req *dto.ExecuteCommandRequest) (*dto.MutationResponse, error) {
	session, err := s.lock(sessionId)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	// With nothing selected the command is read against an empty element:
	// only insertions can take effect then.
	var current mockup.Element
	selected := session.Selected()
	if selected != nil {
		current = *selected
	}

	switch patch := command.Interpret(req.Command, current).(type) {
	case command.InsertionRequest:
		elements := session.Elements()
		anchor := command.ResolveAnchor(req.Command, elements, selected)
		next, inserted := command.Insert(elements, patch, anchor)

		session.History.Push(next)
		session.SelectedId = inserted.ID
		s.touch(session)

		s.logger.Info("EditorService", "Element inserted", map[string]interface{}{
			"session_id": sessionId,
			"command":    req.Command,
			"label":      patch.Label,
			"anchor":     anchor,
		})

		res := &dto.MutationResponse{
			Applied:   true,
			Kind:      MutationInsertion,
			Insertion: &patch,
			Anchor:    anchor,
			Document:  s.mapper.ToResponse(session),
		}
		s.publish(ctx, MutationInsertion, res.Document)
		return res, nil

	case command.StylePatch:
		return s.applyPatch(ctx, session, req.Command, patch), nil

	default:
		return nil, fmt.Errorf("unexpected patch type %T", patch)
	}
}

func (s *editorService) ReplaceContent(ctx context.Context, sessionId string, req *dto.ReplaceContentRequest) (*dto.MutationResponse, error) {
	session, err := s.lock(sessionId)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	content := req.Content
	return s.applyPatch(ctx, session, "", command.StylePatch{Content: &content}), nil
}

// applyPatch applies a style/content patch to the selected element. Empty
// patches and patches without a target are no-ops and leave history alone.
func (s *editorService) applyPatch(ctx context.Context, session *entity.EditorSession, cmd string, patch command.StylePatch) *dto.MutationResponse {
	selected := session.Selected()
	if patch.IsEmpty() || selected == nil {
		s.logger.Debug("EditorService", "Command ignored", map[string]interface{}{
			"session_id": session.Id,
			"command":    cmd,
			"selected":   selected != nil,
		})
		return &dto.MutationResponse{
			Applied:  false,
			Kind:     MutationNone,
			Document: s.mapper.ToResponse(session),
		}
	}

	updated := command.Apply(*selected, patch)
	session.History.Push(mockup.Replace(session.Elements(), updated))
	s.touch(session)

	s.logger.Info("EditorService", "Patch applied", map[string]interface{}{
		"session_id": session.Id,
		"element_id": updated.ID,
		"command":    cmd,
	})

	res := &dto.MutationResponse{
		Applied:  true,
		Kind:     MutationStyle,
		Patch:    &patch,
		Document: s.mapper.ToResponse(session),
	}
	s.publish(ctx, MutationStyle, res.Document)
	return res
}

func (s *editorService) Undo(ctx context.Context, sessionId string) (*dto.MutationResponse, error) {
	return s.travel(ctx, sessionId, MutationUndo)
}

func (s *editorService) Redo(ctx context.Context, sessionId string) (*dto.MutationResponse, error) {
	return s.travel(ctx, sessionId, MutationRedo)
}

func (s *editorService) travel(ctx context.Context, sessionId, kind string) (*dto.MutationResponse, error) {
	session, err := s.lock(sessionId)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	var moved bool
	if kind == MutationUndo {
		_, moved = session.History.Undo()
	} else {
		_, moved = session.History.Redo()
	}

	if !moved {
		return &dto.MutationResponse{
			Applied:  false,
			Kind:     MutationNone,
			Document: s.mapper.ToResponse(session),
		}, nil
	}

	// the selected element may not exist in the restored snapshot
	if session.Selected() == nil {
		session.SelectedId = ""
	}
	s.touch(session)

	res := &dto.MutationResponse{
		Applied:  true,
		Kind:     kind,
		Document: s.mapper.ToResponse(session),
	}
	s.publish(ctx, kind, res.Document)
	return res, nil
}

func (s *editorService) Reset(ctx context.Context, sessionId string) (*dto.MutationResponse, error) {
	session, err := s.lock(sessionId)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	session.History.Push(mockup.Seed())
	session.SelectedId = ""
	s.touch(session)

	res := &dto.MutationResponse{
		Applied:  true,
		Kind:     MutationReset,
		Document: s.mapper.ToResponse(session),
	}
	s.publish(ctx, MutationReset, res.Document)
	return res, nil
}

func (s *editorService) Preview(ctx context.Context, sessionId string, readOnly bool) (*dto.PreviewResponse, error) {
	session, err := s.lock(sessionId)
	if err != nil {
		return nil, err
	}
	defer session.Unlock()

	html, err := preview.Render(session.Elements(), session.SelectedId, preview.Options{ReadOnly: readOnly})
	if err != nil {
		return nil, err
	}

	return &dto.PreviewResponse{Html: html, ReadOnly: readOnly}, nil
}

func (s *editorService) Palette() []dto.PaletteItem {
	presets := command.Palette()
	items := make([]dto.PaletteItem, 0, len(presets))
	for _, p := range presets {
		items = append(items, dto.PaletteItem{Key: p.Key, Label: p.Label, Command: p.Command})
	}
	return items
}

func (s *editorService) lock(sessionId string) (*entity.EditorSession, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionId)
	}
	session.Lock()
	return session, nil
}

// touch stamps the session and re-saves it, which also renews its TTL.
func (s *editorService) touch(session *entity.EditorSession) {
	session.UpdatedAt = time.Now()
	s.sessions.Save(session)
}

func (s *editorService) publish(ctx context.Context, reason string, doc dto.DocumentResponse) {
	err := s.publisher.PublishDocumentChanged(ctx, dto.DocumentChangedMessage{
		SessionId: doc.SessionId,
		Reason:    reason,
		Document:  doc,
	})
	if err != nil {
		s.logger.Warn("EditorService", "Failed to publish document change", map[string]interface{}{
			"session_id": doc.SessionId,
			"error":      err.Error(),
		})
	}
}
