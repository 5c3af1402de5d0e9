package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/CauehCraft/AgendaAberta/internal/dto"
	"github.com/CauehCraft/AgendaAberta/internal/service"
	"github.com/CauehCraft/AgendaAberta/pkg/response"
)

// SubjectHandler handlers HTTP do módulo de disciplinas
type SubjectHandler struct {
	subjectSvc service.SubjectService
}

// NewSubjectHandler cria o SubjectHandler
func NewSubjectHandler(subjectSvc service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc}
}

// Create cadastra uma disciplina
// POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	result, err := h.subjectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.Created(c, result)
}

// Get consulta uma disciplina
// GET /api/v1/subjects/:id
func (h *SubjectHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id não pode ser vazio")
		return
	}

	result, err := h.subjectSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, result)
}

// List lista as disciplinas cadastradas
// GET /api/v1/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	result, err := h.subjectSvc.List(c.Request.Context())
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, gin.H{"list": result})
}

// Update atualiza uma disciplina
// PUT /api/v1/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id não pode ser vazio")
		return
	}

	var req dto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	result, err := h.subjectSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete remove uma disciplina
// DELETE /api/v1/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "id não pode ser vazio")
		return
	}

	if err := h.subjectSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *SubjectHandler) handleSubjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 12002, "disciplina não encontrada")
	case errors.Is(err, service.ErrSubjectCodeExists):
		response.Conflict(c, 12003, "já existe disciplina com este código")
	default:
		response.InternalError(c)
	}
}
