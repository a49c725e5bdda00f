package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lingoleap/lingo_api/dto"
	"github.com/lingoleap/lingo_api/shared"
)

type ContentHandler struct {
	generatorSvc   GeneratorServiceInterface
	translationSvc TranslationServiceInterface
}

func NewContentHandler(generatorSvc GeneratorServiceInterface, translationSvc TranslationServiceInterface) *ContentHandler {
	return &ContentHandler{
		generatorSvc:   generatorSvc,
		translationSvc: translationSvc,
	}
}

// @Summary Generate learning content
// @Description Generate a personalized learning unit for the authenticated user
// @Tags content
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param generateRequest body dto.GenerateContentRequest true "Generation parameters"
// @Success 201 {object} shared.Response{data=dto.ContentResponse}
// @Router /api/v1/content/generate [post]
func (h *ContentHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	userID := c.Locals(shared.UserID).(string)

	resp, err := h.generatorSvc.Generate(c.UserContext(), userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Content generated successfully", resp)
}

// @Summary Get content history
// @Description List the user's generated content, newest first
// @Tags content
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.ContentHistoryResponse}
// @Router /api/v1/content/history [get]
func (h *ContentHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.generatorSvc.GetHistory(userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get content by ID
// @Description Fetch one generated learning unit
// @Tags content
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param contentId path string true "Content ID"
// @Success 200 {object} shared.Response{data=dto.ContentResponse}
// @Router /api/v1/content/{contentId} [get]
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	contentID := c.Params("contentId")
	userID := c.Locals(shared.UserID).(string)
	role, _ := c.Locals(shared.UserRole).(string)

	resp, err := h.generatorSvc.GetContent(contentID, userID, role)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Rate content
// @Description Store a 1-5 rating on the user's own content
// @Tags content
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param contentId path string true "Content ID"
// @Param rateRequest body dto.RateContentRequest true "Rating"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/content/{contentId}/rate [put]
func (h *ContentHandler) RateContent(c *fiber.Ctx) error {
	var req dto.RateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	contentID := c.Params("contentId")
	userID := c.Locals(shared.UserID).(string)

	if err := h.generatorSvc.RateContent(contentID, userID, req.Rating); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Content rated successfully", nil)
}

// @Summary Translate text
// @Description Translate arbitrary text to a target language
// @Tags content
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param translateRequest body dto.TranslateRequest true "Text and target language"
// @Success 200 {object} shared.Response{data=dto.TranslateResponse}
// @Router /api/v1/translate [post]
func (h *ContentHandler) Translate(c *fiber.Ctx) error {
	var req dto.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.translationSvc.Translate(c.UserContext(), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
