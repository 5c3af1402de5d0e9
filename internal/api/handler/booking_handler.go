package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/CauehCraft/AgendaAberta/internal/dto"
	"github.com/CauehCraft/AgendaAberta/internal/service"
	"github.com/CauehCraft/AgendaAberta/pkg/response"
)

// BookingHandler handlers HTTP do módulo de agendamentos
type BookingHandler struct {
	bookingSvc service.BookingService
}

// NewBookingHandler cria o BookingHandler
func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// Create registra interesse em um horário
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
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

	result, err := h.bookingSvc.Create(c.Request.Context(), &req, userID, role)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, result)
}

// Get consulta um agendamento acessível ao usuário
// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id não pode ser vazio")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.bookingSvc.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, result)
}

// List lista agendamentos conforme o papel do usuário
// GET /api/v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	result, err := h.bookingSvc.List(c.Request.Context(), userID, role)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, gin.H{"list": result})
}

// Update atualiza situação e observações de um agendamento
// PUT /api/v1/bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id não pode ser vazio")
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.bookingSvc.Update(c.Request.Context(), id, &req, userID)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete remove um agendamento do próprio aluno
// DELETE /api/v1/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id não pode ser vazio")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.bookingSvc.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, 14002, "agendamento não encontrado")
	case errors.Is(err, service.ErrBookingAccessDenied):
		response.Forbidden(c, 14003, "sem permissão sobre este agendamento")
	case errors.Is(err, service.ErrStudentRoleRequired):
		response.Forbidden(c, 14004, "apenas alunos podem registrar interesse em horários")
	case errors.Is(err, service.ErrInvalidBookingStatus):
		response.BadRequest(c, 14005, "situação de agendamento inválida")
	case errors.Is(err, service.ErrInvalidBookingDate):
		response.BadRequest(c, 14006, "data de agendamento inválida")
	case errors.Is(err, service.ErrSlotNotFound):
		response.NotFound(c, 13002, "horário não encontrado")
	default:
		response.InternalError(c)
	}
}
