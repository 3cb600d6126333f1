package handlers

import (
	"errors"
	"net/http"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/auth"
	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/dto"
	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	svc *service.BookmarkService
}

func NewBookmarkHandler(svc *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{svc: svc}
}

// List godoc
// @Summary      List the user's bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.BookmarkResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /bookmarks [get]
func (h *BookmarkHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		serverError(c, "list bookmarks", err)
		return
	}
	c.JSON(http.StatusOK, bookmarksToResponses(list))
}

// Create godoc
// @Summary      Create a bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateBookmarkRequest  true  "Bookmark body"
// @Success      201   {object}  dto.BookmarkResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /bookmarks [post]
func (h *BookmarkHandler) Create(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	var req dto.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Create(c.Request.Context(), userID, req.Title, req.URL, req.Description, req.Tags)
	if err != nil {
		if errors.Is(err, service.ErrBookmarkFieldsRequired) || errors.Is(err, service.ErrInvalidURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serverError(c, "create bookmark", err)
		return
	}
	c.JSON(http.StatusCreated, bookmarkToResponse(b))
}

// Update godoc
// @Summary      Update a bookmark (partial)
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Bookmark ID"
// @Param        body  body      dto.UpdateBookmarkRequest  true  "Partial update"
// @Success      200   {object}  dto.BookmarkResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /bookmarks/{id} [patch]
func (h *BookmarkHandler) Update(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bookmark not found"})
			return
		}
		if errors.Is(err, service.ErrBookmarkFieldsRequired) || errors.Is(err, service.ErrInvalidURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serverError(c, "update bookmark", err)
		return
	}
	c.JSON(http.StatusOK, bookmarkToResponse(b))
}

// Delete godoc
// @Summary      Delete a bookmark
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Bookmark ID"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bookmark not found"})
			return
		}
		serverError(c, "delete bookmark", err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "bookmark deleted successfully"})
}

func bookmarkToResponse(b dom.Bookmark) dto.BookmarkResponse {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.BookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		Tags:        tags,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func bookmarksToResponses(list []dom.Bookmark) []dto.BookmarkResponse {
	out := make([]dto.BookmarkResponse, len(list))
	for i := range list {
		out[i] = bookmarkToResponse(list[i])
	}
	return out
}
