package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mockup-editor-be/internal/bootstrap"
	"mockup-editor-be/internal/config"
	"mockup-editor-be/internal/dto"
	"mockup-editor-be/internal/pkg/logger"
	"mockup-editor-be/internal/pkg/serverutils"
	"mockup-editor-be/pkg/mockup"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			CorsAllowedOrigins: "http://localhost:5173",
		},
		Editor: config.EditorConfig{
			SessionTTL:   time.Hour,
			HistoryLimit: 50,
			ChangesTopic: "document.changed",
		},
		Auth: config.AuthConfig{JwtSecret: "integration-secret"},
	}
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cfg := testConfig()

	container := bootstrap.Build(ctx, cfg, logger.NewNopLogger(), logger.NewNopLogger())
	t.Cleanup(func() {
		cancel()
		container.Close()
	})

	return New(cfg, container).GetApp()
}

func do(t *testing.T, app *fiber.App, method, path, token, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) serverutils.BaseResponse[T] {
	t.Helper()
	var out serverutils.BaseResponse[T]
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func openSession(t *testing.T, app *fiber.App) dto.CreateSessionResponse {
	t.Helper()
	status, raw := do(t, app, http.MethodPost, "/api/editor/v1/sessions", "", "")
	require.Equal(t, http.StatusCreated, status, string(raw))

	res := decode[dto.CreateSessionResponse](t, raw)
	require.True(t, res.Success)
	require.NotEmpty(t, res.Data.Token)
	return res.Data
}

func TestEditingFlow(t *testing.T) {
	app := newTestApp(t)
	session := openSession(t, app)
	token := session.Token

	heading := session.Document.Elements[mockup.FirstOfKind(session.Document.Elements, mockup.KindHeading)]

	status, raw := do(t, app, http.MethodPut, "/api/editor/v1/selection", token, `{"element_id":"`+heading.ID+`"}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, heading.ID, decode[dto.DocumentResponse](t, raw).Data.SelectedId)

	status, raw = do(t, app, http.MethodPost, "/api/editor/v1/commands", token, `{"command":"もっと大きく、赤で"}`)
	require.Equal(t, http.StatusOK, status, string(raw))

	mutation := decode[dto.MutationResponse](t, raw).Data
	require.True(t, mutation.Applied)
	assert.Equal(t, "style", mutation.Kind)
	got := mutation.Document.Elements[0]
	assert.Equal(t, 42, *got.Style.FontSize)
	assert.Equal(t, "#e11d48", *got.Style.Color)

	status, raw = do(t, app, http.MethodPost, "/api/editor/v1/undo", token, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	undone := decode[dto.MutationResponse](t, raw).Data
	assert.Equal(t, session.Document.Elements, undone.Document.Elements)
	assert.True(t, undone.Document.CanRedo)

	status, raw = do(t, app, http.MethodPost, "/api/editor/v1/redo", token, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, 42, *decode[dto.MutationResponse](t, raw).Data.Document.Elements[0].Style.FontSize)

	status, raw = do(t, app, http.MethodGet, "/api/editor/v1/document", token, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, 1, decode[dto.DocumentResponse](t, raw).Data.Position)
}

func TestInsertionThroughCommand(t *testing.T) {
	app := newTestApp(t)
	token := openSession(t, app).Token

	status, raw := do(t, app, http.MethodPost, "/api/editor/v1/commands", token, `{"command":"ボタンの前にテキスト②を追加"}`)
	require.Equal(t, http.StatusOK, status, string(raw))

	mutation := decode[dto.MutationResponse](t, raw).Data
	assert.Equal(t, "insertion", mutation.Kind)
	els := mutation.Document.Elements
	require.Len(t, els, 4)
	assert.Equal(t, "2", els[2].Content)
	assert.Equal(t, mockup.KindButton, els[3].Kind)
}

func TestPreviewAndPalette(t *testing.T) {
	app := newTestApp(t)
	token := openSession(t, app).Token

	status, raw := do(t, app, http.MethodGet, "/api/editor/v1/preview?readonly=true", token, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	preview := decode[dto.PreviewResponse](t, raw).Data
	assert.True(t, preview.ReadOnly)
	assert.Contains(t, preview.Html, "<button")

	status, raw = do(t, app, http.MethodGet, "/api/editor/v1/palette", "", "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Len(t, decode[[]dto.PaletteItem](t, raw).Data, 14)
}

func TestRequestErrors(t *testing.T) {
	app := newTestApp(t)
	token := openSession(t, app).Token

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"missing token", http.MethodGet, "/api/editor/v1/document", "", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/editor/v1/document", "not-a-jwt", "", http.StatusUnauthorized},
		{"malformed body", http.MethodPost, "/api/editor/v1/commands", token, `{"command":`, http.StatusBadRequest},
		{"empty command", http.MethodPost, "/api/editor/v1/commands", token, `{"command":""}`, http.StatusBadRequest},
		{"element id not a uuid", http.MethodPut, "/api/editor/v1/selection", token, `{"element_id":"nope"}`, http.StatusBadRequest},
		{"unknown element", http.MethodPut, "/api/editor/v1/selection", token, `{"element_id":"` + uuid.NewString() + `"}`, http.StatusNotFound},
		{"websocket without upgrade", http.MethodGet, "/api/editor/v1/ws", token, "", http.StatusUpgradeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := do(t, app, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.want, status, string(raw))

			res := decode[any](t, raw)
			assert.False(t, res.Success)
		})
	}
}

func TestTokenForExpiredSession(t *testing.T) {
	app := newTestApp(t)

	token, err := serverutils.IssueSessionToken("integration-secret", uuid.NewString())
	require.NoError(t, err)

	status, _ := do(t, app, http.MethodGet, "/api/editor/v1/document", token, "")
	assert.Equal(t, http.StatusNotFound, status)
}
