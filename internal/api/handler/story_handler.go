package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storyweave/storyweave-api/internal/core/domain"
	"github.com/storyweave/storyweave-api/internal/core/ports"
)

// StoryHandler handles HTTP requests for story CRUD. Every operation is
// scoped to the authenticated account.
type StoryHandler struct {
	service ports.StoryService
}

func NewStoryHandler(service ports.StoryService) *StoryHandler {
	return &StoryHandler{service: service}
}

// Create handles POST /v1/stories.
//
// @Summary      Record a new story
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStoryRequest  true  "Story contents"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      502   {object}  envelope
// @Router       /v1/stories [post]
func (h *StoryHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story, err := h.service.CreateStory(c.Request().Context(), ports.CreateStoryInput{
		UserID:       user.ID,
		Title:        req.Title,
		OriginalText: req.OriginalText,
		SourceLang:   req.SourceLang,
		TargetLang:   req.TargetLang,
		Translate:    req.Translate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, OK(storyData{Story: story}))
}

// Get handles GET /v1/stories/:id.
//
// @Summary      Get a story
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Story id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/stories/{id} [get]
func (h *StoryHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	story, err := h.service.GetStory(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, OK(storyData{Story: story}))
}

// List handles GET /v1/stories.
//
// @Summary      List own stories
// @Tags         stories
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  envelope
// @Failure      401    {object}  envelope
// @Router       /v1/stories [get]
func (h *StoryHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	res, err := h.service.ListStories(c.Request().Context(), user.ID, page, limit)
	if err != nil {
		return err
	}

	stories := res.Items
	if stories == nil {
		stories = []*domain.Story{} // keep "stories": [] instead of null
	}
	return c.JSON(http.StatusOK, OK(storyListData{
		Stories:    stories,
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	}))
}

// Update handles PUT /v1/stories/:id.
//
// @Summary      Update a story
// @Tags         stories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Story id"
// @Param        body  body      updateStoryRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /v1/stories/{id} [put]
func (h *StoryHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story, err := h.service.UpdateStory(c.Request().Context(), c.Param("id"), user.ID, ports.UpdateStoryInput{
		Title:          req.Title,
		OriginalText:   req.OriginalText,
		SourceLang:     req.SourceLang,
		TranslatedText: req.TranslatedText,
		TargetLang:     req.TargetLang,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, OK(storyData{Story: story}))
}

// Delete handles DELETE /v1/stories/:id.
//
// @Summary      Delete a story
// @Tags         stories
// @Security     BearerAuth
// @Param        id  path  string  true  "Story id"
// @Success      204
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/stories/{id} [delete]
func (h *StoryHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteStory(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
