package handler

import (
	"net/http"
	"strconv"

	admin "anoa.com/skillswap/internal/modules/admin/service"
	report "anoa.com/skillswap/internal/modules/report/service"
	"anoa.com/skillswap/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService  admin.AdminService
	reportService report.ReportService
}

func NewAdminHandler(adminService admin.AdminService, reportService report.ReportService) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		reportService: reportService,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := h.adminService.ListUsers(c.Request.Context(), (page-1)*limit, limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users, "total": total, "page": page, "limit": limit})
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	adminID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.adminService.BanUser(c.Request.Context(), userID, adminID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user banned"})
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := h.reportService.ListReports(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reports})
}

func (h *AdminHandler) ListActions(c *gin.Context) {
	actions, err := h.adminService.ListActions(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": actions})
}
