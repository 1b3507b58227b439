package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookmate/backend/internal/service"
	"github.com/pageza/cookmate/backend/internal/types"
)

type FeedbackHandler struct {
	feedbackService service.IFeedbackService
}

func NewFeedbackHandler(feedbackService service.IFeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	feedback := router.Group("/feedback")
	{
		feedback.GET("", h.ListFeedback)
		feedback.POST("", h.CreateFeedback)
	}
}

// ListFeedback returns feedback for ?recipeId=, or [] without one
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	recipeID := c.Query("recipeId")
	if recipeID == "" {
		recipeID = c.Query("recipe")
	}

	feedback, err := h.feedbackService.ListByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		internalError(c, "FeedbackHandler", err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// CreateFeedback stores whatever fields were sent, all optional
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req types.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	feedback := req.ToModel()
	if err := h.feedbackService.Create(c.Request.Context(), feedback); err != nil {
		internalError(c, "FeedbackHandler", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback received", "id": feedback.ID})
}
