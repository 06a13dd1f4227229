package documents

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"regexp"

	"github.com/gin-gonic/gin"
)

const templateFile = "Undertaking_IT_Asset_Handover_Form.docx"

var filenameSafeRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type Handler struct {
	templateDir string
}

func RegisterRoutes(r gin.IRoutes, templateDir string) {
	h := &Handler{templateDir: templateDir}
	r.POST("/generate-handover-form", h.GenerateHandoverForm)
}

// POST /generate-handover-form
//
// リクエストボディはフラットな field → value のマップ。中身の解釈はせず、
// そのままテンプレートへ流し込む。
func (h *Handler) GenerateHandoverForm(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	buf, err := FillTemplate(filepath.Join(h.templateDir, templateFile), fields)
	if err != nil {
		log.Printf("[ERROR] handover form generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate document"})
		return
	}

	name := fields["employee_name"]
	if name == "" {
		name = "user"
	}
	name = filenameSafeRe.ReplaceAllString(name, "_")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=Handover_Form_%s.docx", name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", buf)
}
