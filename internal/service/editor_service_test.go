package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"mockup-editor-be/internal/dto"
	"mockup-editor-be/internal/pkg/logger"
	"mockup-editor-be/internal/pkg/serverutils"
	"mockup-editor-be/internal/repository/memory"
	"mockup-editor-be/pkg/mockup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages []dto.DocumentChangedMessage
}

func (p *recordingPublisher) PublishDocumentChanged(_ context.Context, msg dto.DocumentChangedMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) reasons() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.messages))
	for _, m := range p.messages {
		out = append(out, m.Reason)
	}
	return out
}

const testSecret = "test-secret"

func newTestEditor(t *testing.T) (IEditorService, *recordingPublisher) {
	t.Helper()
	return newTestEditorWithTTL(t, time.Hour)
}

func newTestEditorWithTTL(t *testing.T, ttl time.Duration) (IEditorService, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	svc := NewEditorService(
		memory.NewSessionRepository(ttl),
		pub,
		logger.NewNopLogger(),
		EditorServiceConfig{HistoryLimit: 0, JwtSecret: testSecret},
	)
	return svc, pub
}

func createSession(t *testing.T, svc IEditorService) *dto.CreateSessionResponse {
	t.Helper()
	res, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	return res
}

func elementOfKind(t *testing.T, doc dto.DocumentResponse, kind mockup.Kind) mockup.Element {
	t.Helper()
	i := mockup.FirstOfKind(doc.Elements, kind)
	require.GreaterOrEqual(t, i, 0)
	return doc.Elements[i]
}

func TestCreateSession(t *testing.T) {
	svc, _ := newTestEditor(t)
	res := createSession(t, svc)

	assert.Len(t, res.Document.Elements, 3)
	assert.False(t, res.Document.CanUndo)
	assert.False(t, res.Document.CanRedo)

	sessionID, err := serverutils.ParseSessionToken(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Document.SessionId, sessionID)
}

func TestUnknownSession(t *testing.T) {
	svc, _ := newTestEditor(t)

	_, err := svc.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.ExecuteCommand(context.Background(), "missing", &dto.ExecuteCommandRequest{Command: "赤"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSelectUnknownElement(t *testing.T) {
	svc, _ := newTestEditor(t)
	doc := createSession(t, svc).Document

	_, err := svc.Select(context.Background(), doc.SessionId, &dto.SelectElementRequest{ElementId: "nope"})
	assert.ErrorIs(t, err, ErrElementNotFound)
}

func TestCommandWithoutSelectionIsNoop(t *testing.T) {
	svc, pub := newTestEditor(t)
	ctx := context.Background()
	doc := createSession(t, svc).Document

	res, err := svc.ExecuteCommand(ctx, doc.SessionId, &dto.ExecuteCommandRequest{Command: "中央"})
	require.NoError(t, err)

	assert.False(t, res.Applied)
	assert.Equal(t, MutationNone, res.Kind)
	assert.False(t, res.Document.CanUndo, "no history entry for a no-op")
	assert.Empty(t, pub.reasons())
}

func TestUnrecognizedCommandIsNoop(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	doc := createSession(t, svc).Document

	_, err := svc.Select(ctx, doc.SessionId, &dto.SelectElementRequest{ElementId: doc.Elements[0].ID})
	require.NoError(t, err)

	res, err := svc.ExecuteCommand(ctx, doc.SessionId, &dto.ExecuteCommandRequest{Command: "こんにちは"})
	require.NoError(t, err)

	assert.False(t, res.Applied)
	assert.Equal(t, 0, res.Document.Position)
}

func TestCenterOnButtonSetsJustifyContent(t *testing.T) {
	svc, pub := newTestEditor(t)
	ctx := context.Background()
	doc := createSession(t, svc).Document
	btn := elementOfKind(t, doc, mockup.KindButton)

	_, err := svc.Select(ctx, doc.SessionId, &dto.SelectElementRequest{ElementId: btn.ID})
	require.NoError(t, err)

	res, err := svc.ExecuteCommand(ctx, doc.SessionId, &dto.ExecuteCommandRequest{Command: "中央"})
	require.NoError(t, err)
	require.True(t, res.Applied)

	got := elementOfKind(t, res.Document, mockup.KindButton)
	assert.Equal(t, "center", *got.Style.JustifyContent)
	assert.Nil(t, got.Style.TextAlign)
	assert.Equal(t, []string{MutationStyle}, pub.reasons())
}

func TestRedThenBlue(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	doc := createSession(t, svc).Document
	p := elementOfKind(t, doc, mockup.KindParagraph)

	_, err := svc.Select(ctx, doc.SessionId, &dto.SelectElementRequest{ElementId: p.ID})
	require.NoError(t, err)

	_, err = svc.ExecuteCommand(ctx, doc.SessionId, &dto.ExecuteCommandRequest{Command: "赤"})
	require.NoError(t, err)
	res, err := svc.ExecuteCommand(ctx, doc.SessionId, &dto.ExecuteCommandRequest{Command: "青"})
	require.NoError(t, err)

	got := elementOfKind(t, res.Document, mockup.KindParagraph)
	assert.Equal(t, "#2563eb", *got.Style.Color)
	assert.Equal(t, 2, res.Document.Position)
}

func TestInsertionBelowHeading(t *testing.T) {
	svc, pub := newTestEditor(t)
	ctx := context.Background()
	doc := createSession(t, svc).Document

	res, err := svc.ExecuteCommand(ctx, doc.SessionId, &dto.ExecuteCommandRequest{Command: "見出しの下にテキスト2を追加"})
	require.NoError(t, err)

	require.True(t, res.Applied)
	assert.Equal(t, MutationInsertion, res.Kind)
	require.NotNil(t, res.Insertion)
	assert.Equal(t, "2", res.Insertion.Label)
	assert.Equal(t, &mockup.Anchor{Index: 0, Placement: mockup.PlacementAfter}, res.Anchor)

	els := res.Document.Elements
	require.Len(t, els, 4)
	assert.Equal(t, doc.Elements[0].ID, els[0].ID)
	assert.Equal(t, "2", els[1].Content)
	assert.Equal(t, doc.Elements[1].ID, els[2].ID)
	assert.Equal(t, els[1].ID, res.Document.SelectedId, "new element becomes the selection")
	assert.Equal(t, []string{MutationInsertion}, pub.reasons())
}

func TestReplaceContent(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	doc := createSession(t, svc).Document
	h := elementOfKind(t, doc, mockup.KindHeading)

	res, err := svc.ReplaceContent(ctx, doc.SessionId, &dto.ReplaceContentRequest{Content: "新しい見出し"})
	require.NoError(t, err)
	assert.False(t, res.Applied, "nothing selected")

	_, err = svc.Select(ctx, doc.SessionId, &dto.SelectElementRequest{ElementId: h.ID})
	require.NoError(t, err)

	res, err = svc.ReplaceContent(ctx, doc.SessionId, &dto.ReplaceContentRequest{Content: "新しい見出し"})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, "新しい見出し", elementOfKind(t, res.Document, mockup.KindHeading).Content)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	doc := createSession(t, svc).Document
	h := elementOfKind(t, doc, mockup.KindHeading)

	_, err := svc.Select(ctx, doc.SessionId, &dto.SelectElementRequest{ElementId: h.ID})
	require.NoError(t, err)

	commands := []string{"大きく", "赤", "中央", "余白を広げて", "ボタンの前にテキスト3を追加"}
	for _, c := range commands {
		res, err := svc.ExecuteCommand(ctx, doc.SessionId, &dto.ExecuteCommandRequest{Command: c})
		require.NoError(t, err)
		require.True(t, res.Applied, c)
	}

	final, err := svc.GetDocument(ctx, doc.SessionId)
	require.NoError(t, err)

	for range commands {
		res, err := svc.Undo(ctx, doc.SessionId)
		require.NoError(t, err)
		assert.True(t, res.Applied)
	}
	res, err := svc.Undo(ctx, doc.SessionId)
	require.NoError(t, err)
	assert.False(t, res.Applied, "undo at the earliest snapshot is a no-op")
	assert.Equal(t, doc.Elements, res.Document.Elements)

	for range commands {
		_, err := svc.Redo(ctx, doc.SessionId)
		require.NoError(t, err)
	}
	res, err = svc.Redo(ctx, doc.SessionId)
	require.NoError(t, err)
	assert.False(t, res.Applied, "redo at the latest snapshot is a no-op")
	assert.Equal(t, final.Elements, res.Document.Elements)
}

func TestUndoClearsVanishedSelection(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	doc := createSession(t, svc).Document

	res, err := svc.ExecuteCommand(ctx, doc.SessionId, &dto.ExecuteCommandRequest{Command: "一番下にテキスト③を追加"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Document.SelectedId)

	undone, err := svc.Undo(ctx, doc.SessionId)
	require.NoError(t, err)
	assert.Empty(t, undone.Document.SelectedId)
}

func TestReset(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	doc := createSession(t, svc).Document

	_, err := svc.ExecuteCommand(ctx, doc.SessionId, &dto.ExecuteCommandRequest{Command: "一番上にテキスト1を追加"})
	require.NoError(t, err)

	res, err := svc.Reset(ctx, doc.SessionId)
	require.NoError(t, err)
	assert.Len(t, res.Document.Elements, 3)
	assert.True(t, res.Document.CanUndo)
}

func TestPreview(t *testing.T) {
	svc, _ := newTestEditor(t)
	doc := createSession(t, svc).Document

	res, err := svc.Preview(context.Background(), doc.SessionId, true)
	require.NoError(t, err)
	assert.True(t, res.ReadOnly)
	assert.Contains(t, res.Html, "<h1")
	assert.NotContains(t, res.Html, "data-element-id")
}

func TestPalette(t *testing.T) {
	svc, _ := newTestEditor(t)

	items := svc.Palette()
	assert.Len(t, items, 14)
	assert.Equal(t, "bigger", items[0].Key)
}

func TestActiveSessionOutlivesItsTTL(t *testing.T) {
	const ttl = 300 * time.Millisecond
	svc, _ := newTestEditorWithTTL(t, ttl)
	ctx := context.Background()
	res := createSession(t, svc)

	// keep mutating for well past one TTL
	deadline := time.Now().Add(3 * ttl)
	for time.Now().Before(deadline) {
		_, err := svc.Reset(ctx, res.Document.SessionId)
		require.NoError(t, err)
		time.Sleep(ttl / 4)
	}

	_, err := svc.GetDocument(ctx, res.Document.SessionId)
	require.NoError(t, err)

	sessionID, err := serverutils.ParseSessionToken(testSecret, res.Token)
	require.NoError(t, err, "token must stay valid while the session is alive")
	assert.Equal(t, res.Document.SessionId, sessionID)
}

func TestIdleSessionExpires(t *testing.T) {
	const ttl = 100 * time.Millisecond
	svc, _ := newTestEditorWithTTL(t, ttl)
	res := createSession(t, svc)

	time.Sleep(3 * ttl)

	_, err := svc.GetDocument(context.Background(), res.Document.SessionId)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
