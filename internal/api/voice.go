package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookmate/backend/internal/middleware"
	"github.com/pageza/cookmate/backend/internal/service"
	"github.com/pageza/cookmate/backend/internal/types"
)

type VoiceHandler struct {
	voice   service.IVoiceService
	limiter *middleware.RateLimiter
}

// NewVoiceHandler creates a voice handler. limiter may be nil.
func NewVoiceHandler(voice service.IVoiceService, limiter *middleware.RateLimiter) *VoiceHandler {
	return &VoiceHandler{voice: voice, limiter: limiter}
}

func (h *VoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	if h.limiter != nil {
		router.POST("/voice", h.limiter.RateLimitMiddleware(), h.Voice)
		return
	}
	router.POST("/voice", h.Voice)
}

// Voice answers a spoken or typed recipe question
func (h *VoiceHandler) Voice(c *gin.Context) {
	var req types.VoiceRequest
	// a missing or malformed body reads as empty text
	_ = c.ShouldBindJSON(&req)

	answer, err := h.voice.Answer(c.Request.Context(), req.Text)
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text provided"})
		return
	case errors.Is(err, service.ErrNoRecipeMatch) && answer != nil:
		c.JSON(http.StatusNotFound, types.VoiceResponse{Response: answer.Response})
		return
	case err != nil:
		internalError(c, "VoiceHandler", err)
		return
	}

	resp := types.VoiceResponse{Response: answer.Response}
	if answer.Recipe != nil {
		formatted := service.FormatRecipe(answer.Recipe)
		resp.Recipe = &formatted
	}
	c.JSON(http.StatusOK, resp)
}
