package handler

import (
	"net/http"

	"anoa.com/skillswap/internal/entity"
	feedback "anoa.com/skillswap/internal/modules/feedback/service"
	"anoa.com/skillswap/pkg/response"
	"anoa.com/skillswap/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeedbackHandler struct {
	feedbackService feedback.FeedbackService
}

func NewFeedbackHandler(feedbackService feedback.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

type createFeedbackInput struct {
	SwapRequestID string `json:"swapRequestId" binding:"required,uuid"`
	ToUserID      string `json:"toUserId" binding:"required,uuid"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment" binding:"max=2000"`
}

func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input createFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	swapRequestID, err := uuid.Parse(input.SwapRequestID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid swap request id"})
		return
	}
	toUserID, err := uuid.Parse(input.ToUserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipient id"})
		return
	}

	fb := &entity.Feedback{
		SwapRequestID: swapRequestID,
		FromUserID:    userID,
		ToUserID:      toUserID,
		Rating:        input.Rating,
		Comment:       input.Comment,
	}

	if err := h.feedbackService.CreateFeedback(c.Request.Context(), fb); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fb)
}

func (h *FeedbackHandler) ListForUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	feedback, err := h.feedbackService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": feedback})
}
