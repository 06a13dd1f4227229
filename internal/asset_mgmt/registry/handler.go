package registry

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/register-asset", h.RegisterAsset)
	r.GET("/registered-assets", h.ListRegisteredAssets)
	r.GET("/registered-assets/:serial_number", h.GetRegisteredAsset)

	// 発行フォームの事前チェック用
	r.GET("/validate-serial/:serial_number", h.ValidateSerial)
}

// ---------- handlers ----------

func (h *Handler) RegisterAsset(c *gin.Context) {
	var req RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiErr(CodeMissingRequiredField, "invalid json"))
		return
	}
	res, err := h.svc.RegisterAsset(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.Header("Location", "/registered-assets/"+res.SerialNumber)
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListRegisteredAssets(c *gin.Context) {
	res, err := h.svc.ListRegisteredAssets(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetRegisteredAsset(c *gin.Context) {
	res, err := h.svc.GetRegisteredAsset(c.Request.Context(), c.Param("serial_number"))
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ValidateSerial(c *gin.Context) {
	res, err := h.svc.ValidateForIssuance(c.Request.Context(), c.Param("serial_number"))
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
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

func apiErrFrom(err error) errDTO {
	if api, ok := err.(*APIError); ok {
		return apiErr(api.Code, api.Message)
	}
	return apiErr(CodeInternal, err.Error())
}
