package handler

import (
	"net/http"

	"anoa.com/skillswap/internal/entity"
	report "anoa.com/skillswap/internal/modules/report/service"
	"anoa.com/skillswap/pkg/response"
	"anoa.com/skillswap/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

type createReportInput struct {
	ReportedUserID string `json:"reportedUserId" binding:"required,uuid"`
	Reason         string `json:"reason" binding:"required,min=1,max=100"`
	Description    string `json:"description" binding:"max=2000"`
}

func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input createReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	reportedUserID, err := uuid.Parse(input.ReportedUserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reported user id"})
		return
	}

	r := &entity.Report{
		ReporterID:     userID,
		ReportedUserID: reportedUserID,
		Reason:         input.Reason,
		Description:    input.Description,
	}

	if err := h.reportService.CreateReport(c.Request.Context(), r); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, r)
}
