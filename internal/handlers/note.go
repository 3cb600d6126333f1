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

type NoteHandler struct {
	svc *service.NoteService
}

func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// List godoc
// @Summary      List the user's notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.NoteResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		serverError(c, "list notes", err)
		return
	}
	c.JSON(http.StatusOK, notesToResponses(list))
}

// Create godoc
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateNoteRequest  true  "Note body"
// @Success      201   {object}  dto.NoteResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.svc.Create(c.Request.Context(), userID, req.Title, req.Content, req.Category)
	if err != nil {
		if errors.Is(err, service.ErrNoteFieldsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serverError(c, "create note", err)
		return
	}
	c.JSON(http.StatusCreated, noteToResponse(n))
}

// Update godoc
// @Summary      Update a note (partial)
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Note ID"
// @Param        body  body      dto.UpdateNoteRequest  true  "Partial update"
// @Success      200   {object}  dto.NoteResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /notes/{id} [patch]
func (h *NoteHandler) Update(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.svc.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		if errors.Is(err, service.ErrNoteFieldsRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serverError(c, "update note", err)
		return
	}
	c.JSON(http.StatusOK, noteToResponse(n))
}

// Delete godoc
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Note ID"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		serverError(c, "delete note", err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "note deleted successfully"})
}

func noteToResponse(n dom.Note) dto.NoteResponse {
	category := n.Category
	if category == nil {
		category = []string{}
	}
	return dto.NoteResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		Category:  category,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func notesToResponses(list []dom.Note) []dto.NoteResponse {
	out := make([]dto.NoteResponse, len(list))
	for i := range list {
		out[i] = noteToResponse(list[i])
	}
	return out
}
