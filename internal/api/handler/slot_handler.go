package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/CauehCraft/AgendaAberta/internal/dto"
	"github.com/CauehCraft/AgendaAberta/internal/schedule"
	"github.com/CauehCraft/AgendaAberta/internal/service"
	"github.com/CauehCraft/AgendaAberta/pkg/response"
)

// SlotHandler handlers HTTP do módulo de horários
type SlotHandler struct {
	slotSvc service.SlotService
}

// NewSlotHandler cria o SlotHandler
func NewSlotHandler(slotSvc service.SlotService) *SlotHandler {
	return &SlotHandler{slotSvc: slotSvc}
}

// Create publica um novo horário
// POST /api/v1/slots
func (h *SlotHandler) Create(c *gin.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	result, err := h.slotSvc.Create(c.Request.Context(), &req, userID, role)
	if err != nil {
		h.handleSlotError(c, err)
		return
	}

	response.Created(c, result)
}

// Get consulta um horário
// GET /api/v1/slots/:id
func (h *SlotHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id não pode ser vazio")
		return
	}

	result, err := h.slotSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSlotError(c, err)
		return
	}

	response.OK(c, result)
}

// ListMine lista os horários do responsável autenticado
// GET /api/v1/slots
func (h *SlotHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.slotSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.handleSlotError(c, err)
		return
	}

	response.OK(c, gin.H{"list": result})
}

// Update atualiza um horário do responsável autenticado
// PUT /api/v1/slots/:id
func (h *SlotHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id não pode ser vazio")
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.slotSvc.Update(c.Request.Context(), id, &req, userID)
	if err != nil {
		h.handleSlotError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete remove um horário do responsável autenticado
// DELETE /api/v1/slots/:id
func (h *SlotHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id não pode ser vazio")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.slotSvc.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleSlotError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *SlotHandler) handleSlotError(c *gin.Context, err error) {
	var verr *schedule.ValidationError
	switch {
	case errors.As(err, &verr):
		writeValidationError(c, verr)
	case errors.Is(err, service.ErrSlotNotFound):
		response.NotFound(c, 13002, "horário não encontrado")
	case errors.Is(err, service.ErrNotSlotOwner):
		response.Forbidden(c, 13003, "apenas o responsável pode alterar este horário")
	case errors.Is(err, service.ErrOwnerRoleRequired):
		response.Forbidden(c, 13004, "apenas professores e monitores podem publicar horários")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 12002, "disciplina não encontrada")
	default:
		response.InternalError(c)
	}
}
