package handlers

import (
	"net/http"
	"strconv"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/logger"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// serverError logs the cause and responds with a generic 500. The detailed
// error stays server-side only.
func serverError(c *gin.Context, op string, err error) {
	logger.Sugar.Errorw("internal error", "op", op, "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}
