package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CauehCraft/AgendaAberta/internal/schedule"
	"github.com/CauehCraft/AgendaAberta/pkg/response"
)

// writeValidationError converte um erro de validação de grade em resposta
// HTTP: problemas de entrada viram 400; conflitos e horários já ocorridos
// viram 409. Os campos envolvidos acompanham a resposta.
func writeValidationError(c *gin.Context, verr *schedule.ValidationError) {
	switch verr.Kind {
	case schedule.KindMissingRequiredField,
		schedule.KindInvalidTimeOrder,
		schedule.KindInvalidWeekday:
		response.ErrorWithFields(c, http.StatusBadRequest, 13005, verr.Message, verr.Fields)
	case schedule.KindScheduleConflict,
		schedule.KindRoomConflict,
		schedule.KindSlotAlreadyOccurred:
		response.ErrorWithFields(c, http.StatusConflict, 13006, verr.Message, verr.Fields)
	default:
		response.InternalError(c)
	}
}
