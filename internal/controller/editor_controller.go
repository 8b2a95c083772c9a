package controller

import (
	"errors"

	"mockup-editor-be/internal/dto"
	"mockup-editor-be/internal/pkg/serverutils"
	"mockup-editor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEditorController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetDocument(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	ExecuteCommand(ctx *fiber.Ctx) error
	ReplaceContent(ctx *fiber.Ctx) error
	Undo(ctx *fiber.Ctx) error
	Redo(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	Palette(ctx *fiber.Ctx) error
}

type editorController struct {
	editorService service.IEditorService
	jwt           fiber.Handler
}

func NewEditorController(editorService service.IEditorService, jwt fiber.Handler) IEditorController {
	return &editorController{
		editorService: editorService,
		jwt:           jwt,
	}
}

func (c *editorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/editor/v1")
	h.Post("sessions", c.CreateSession)
	h.Get("palette", c.Palette)

	// session token required
	h.Get("document", c.jwt, c.GetDocument)
	h.Put("selection", c.jwt, c.Select)
	h.Post("commands", c.jwt, c.ExecuteCommand)
	h.Put("content", c.jwt, c.ReplaceContent)
	h.Post("undo", c.jwt, c.Undo)
	h.Post("redo", c.jwt, c.Redo)
	h.Post("reset", c.jwt, c.Reset)
	h.Get("preview", c.jwt, c.Preview)
}

func (c *editorController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.editorService.CreateSession(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *editorController) GetDocument(ctx *fiber.Ctx) error {
	res, err := c.editorService.GetDocument(ctx.UserContext(), sessionID(ctx))
	if err != nil {
		return editorError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get document", res))
}

func (c *editorController) Select(ctx *fiber.Ctx) error {
	var req dto.SelectElementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.editorService.Select(ctx.UserContext(), sessionID(ctx), &req)
	if err != nil {
		return editorError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success select element", res))
}

func (c *editorController) ExecuteCommand(ctx *fiber.Ctx) error {
	var req dto.ExecuteCommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.editorService.ExecuteCommand(ctx.UserContext(), sessionID(ctx), &req)
	if err != nil {
		return editorError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success execute command", res))
}

func (c *editorController) ReplaceContent(ctx *fiber.Ctx) error {
	var req dto.ReplaceContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.editorService.ReplaceContent(ctx.UserContext(), sessionID(ctx), &req)
	if err != nil {
		return editorError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success replace content", res))
}

func (c *editorController) Undo(ctx *fiber.Ctx) error {
	res, err := c.editorService.Undo(ctx.UserContext(), sessionID(ctx))
	if err != nil {
		return editorError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success undo", res))
}

func (c *editorController) Redo(ctx *fiber.Ctx) error {
	res, err := c.editorService.Redo(ctx.UserContext(), sessionID(ctx))
	if err != nil {
		return editorError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success redo", res))
}

func (c *editorController) Reset(ctx *fiber.Ctx) error {
	res, err := c.editorService.Reset(ctx.UserContext(), sessionID(ctx))
	if err != nil {
		return editorError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset document", res))
}

func (c *editorController) Preview(ctx *fiber.Ctx) error {
	readOnly := ctx.QueryBool("readonly", false)

	res, err := c.editorService.Preview(ctx.UserContext(), sessionID(ctx), readOnly)
	if err != nil {
		return editorError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render preview", res))
}

func (c *editorController) Palette(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get palette", c.editorService.Palette()))
}

func sessionID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(serverutils.SessionIDKey).(string)
	return id
}

// editorError maps service sentinels to HTTP status codes.
func editorError(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrElementNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return err
	}
}
