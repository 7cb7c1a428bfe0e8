package handler

import (
	"log"
	"net/http"

	"anoa.com/skillswap/internal/entity"
	swapDto "anoa.com/skillswap/internal/modules/swap/dto"
	swap "anoa.com/skillswap/internal/modules/swap/service"
	"anoa.com/skillswap/pkg/response"
	"anoa.com/skillswap/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type SwapHandler struct {
	swapService swap.SwapService
	aggregator  *swap.Aggregator
	upgrader    websocket.Upgrader
}

func NewSwapHandler(swapService swap.SwapService, aggregator *swap.Aggregator) *SwapHandler {
	return &SwapHandler{
		swapService: swapService,
		aggregator:  aggregator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for now
			},
		},
	}
}

func (h *SwapHandler) CreateRequest(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input swapDto.CreateSwapRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	toUserID, err := uuid.Parse(input.ToUserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipient id"})
		return
	}

	request, err := h.swapService.CreateRequest(c.Request.Context(), userID, toUserID, input.SkillWanted, input.Message)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

func (h *SwapHandler) UpdateStatus(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	var input swapDto.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	request, err := h.swapService.UpdateStatus(c.Request.Context(), requestID, entity.SwapStatus(input.Status), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// HandleWebSocket streams the subscriber's combined request views: one
// message per recompute, each carrying the full received/sent/completed
// partition.
func (h *SwapHandler) HandleWebSocket(c *gin.Context) {
	userIDStr := c.GetString("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
		return
	}
	defer conn.Close()

	// The aggregator serializes onUpdate calls, so writing to the conn from
	// the callback is safe.
	unsubscribe := h.aggregator.Subscribe(userIDStr, func(views swapDto.RequestViews) {
		if err := conn.WriteJSON(views); err != nil {
			log.Printf("Failed to write views to websocket: %v", err)
		}
	})
	defer unsubscribe()

	// Block until the client goes away; reads are discarded.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
