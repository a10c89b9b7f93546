// Package template отдаёт пример документа для массового импорта.
//
// Документ отдаётся без обёртки ответа, чтобы его можно было сохранить,
// отредактировать и отправить обратно в bulk-import как есть.
package template

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

// Handler обрабатывает GET /api/miracles/template/json.
type Handler struct {
	template func() models.BulkImportRequest
}

// New создает новый Handler.
func New(template func() models.BulkImportRequest) *Handler {
	return &Handler{template: template}
}

// ServeHTTP godoc
// @Summary Шаблон массового импорта
// @Tags miracles
// @Produce json
// @Success 200 {object} models.BulkImportRequest
// @Router /api/miracles/template/json [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.template())
}
