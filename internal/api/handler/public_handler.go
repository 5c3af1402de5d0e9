package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CauehCraft/AgendaAberta/internal/dto"
	"github.com/CauehCraft/AgendaAberta/internal/service"
	"github.com/CauehCraft/AgendaAberta/pkg/response"
)

// PublicHandler handlers da agenda pública, sem autenticação
type PublicHandler struct {
	slotSvc   service.SlotService
	exportSvc service.ExportService
}

// NewPublicHandler cria o PublicHandler
func NewPublicHandler(slotSvc service.SlotService, exportSvc service.ExportService) *PublicHandler {
	return &PublicHandler{slotSvc: slotSvc, exportSvc: exportSvc}
}

// ListSlots busca pública de horários ativos com filtros combináveis
// GET /api/v1/public/slots?curso=&disciplina=&dia_semana=&periodo=&professor_nome=&busca=
func (h *PublicHandler) ListSlots(c *gin.Context) {
	var req dto.PublicSlotListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	result, err := h.slotSvc.ListPublic(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": result, "total": len(result)})
}

// Calendar feed iCalendar da agenda pública, com os mesmos filtros da busca
// GET /api/v1/public/slots.ics
func (h *PublicHandler) Calendar(c *gin.Context) {
	var req dto.PublicSlotListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	content, err := h.exportSvc.PublicCalendar(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=agenda_aberta.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}
