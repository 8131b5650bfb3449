package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/scotty/internal/advisor"
)

// advisorHandler serves the wire contract consumed by advisor.Remote.
type advisorHandler struct {
	advisor advisor.Advisor
}

func (h *advisorHandler) Query(c *gin.Context) {
	var req advisor.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, advisor.ErrorResponse{Error: "Missing 'query' field in request"})
		return
	}

	answer, err := h.advisor.Answer(c.Request.Context(), req.Query)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, advisor.ErrorResponse{
			Error:   "Failed to process query",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, advisor.QueryResponse{Response: answer})
}

func (h *advisorHandler) Health(c *gin.Context) {
	st := h.advisor.Status(c.Request.Context())
	c.JSON(http.StatusOK, advisor.HealthResponse{
		Status:      "healthy",
		IndexLoaded: st.Ready,
		Model:       st.Model,
	})
}
