package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/reports", h.Report)
	r.GET("/dashboard-stats", h.DashboardStats)
	r.GET("/asset-distribution", h.Distribution)
}

func (h *Handler) Report(c *gin.Context) {
	var f ReportFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apiErr(CodeInternal, "invalid query"))
		return
	}
	res, err := h.svc.Report(c.Request.Context(), f)
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErr(CodeInternal, "failed to generate report"))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DashboardStats(c *gin.Context) {
	res, err := h.svc.DashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErr(CodeInternal, "failed to generate dashboard statistics"))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Distribution(c *gin.Context) {
	res, err := h.svc.Distribution(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErr(CodeInternal, "failed to fetch asset distribution"))
		return
	}
	c.JSON(http.StatusOK, res)
}

// ---------- helpers ----------

type errDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func apiErr(code Code, msg string) errDTO {
	var e errDTO
	e.Error.Code = code
	e.Error.Message = msg
	return e
}
