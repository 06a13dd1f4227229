package notify

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type NotifyIssueRequest struct {
	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"`
	EmailID      string `json:"email_id"`
	AssetType    string `json:"asset_type"`
	SerialNumber string `json:"serial_number"`

	AttachmentName   string `json:"attachment_name,omitempty"`
	AttachmentBase64 string `json:"attachment_base64,omitempty"`
}

type Handler struct{ mailer *Mailer }

func RegisterRoutes(r gin.IRoutes, mailer *Mailer) {
	h := &Handler{mailer: mailer}
	r.POST("/notify-issue", h.NotifyIssue)
}

// POST /notify-issue
//
// 貸与完了を保有者へメールで知らせる。失敗しても貸与自体は成立している
// ので、ここではエラーを返すだけで何も巻き戻さない。
func (h *Handler) NotifyIssue(c *gin.Context) {
	var req NotifyIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.EmailID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_id is required"})
		return
	}

	subject := fmt.Sprintf("IT Asset Issued: %s (%s)", req.AssetType, req.SerialNumber)
	body := fmt.Sprintf(
		"Dear %s (%s),\r\n\r\n"+
			"The following IT asset has been issued to you:\r\n\r\n"+
			"  Asset Type:    %s\r\n"+
			"  Serial Number: %s\r\n\r\n"+
			"Please acknowledge receipt with the attached handover form if provided.\r\n",
		req.EmployeeName, req.EmployeeCode, req.AssetType, req.SerialNumber,
	)

	var att *Attachment
	if req.AttachmentBase64 != "" {
		name := req.AttachmentName
		if name == "" {
			name = "handover_form.docx"
		}
		att = &Attachment{Filename: name, Base64: req.AttachmentBase64}
	}

	if err := h.mailer.SendMail(req.EmailID, subject, body, att); err != nil {
		log.Printf("[WARN] issue notification failed (to=%s): %v", req.EmailID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification sent"})
}
