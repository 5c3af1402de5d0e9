package schedule

import "fmt"

// ErrorKind identifica o tipo de falha de validação de horário
type ErrorKind string

const (
	KindMissingRequiredField ErrorKind = "MissingRequiredField"
	KindInvalidTimeOrder     ErrorKind = "InvalidTimeOrder"
	KindScheduleConflict     ErrorKind = "ScheduleConflict"
	KindRoomConflict         ErrorKind = "RoomConflict"
	KindSlotAlreadyOccurred  ErrorKind = "SlotAlreadyOccurred"
	KindInvalidWeekday       ErrorKind = "InvalidWeekday"
)

// ValidationError rejeição estruturada do pipeline de validação.
// Fields lista os campos implicados quando a falha é atribuível a campos
// específicos do formulário; vazio para falhas gerais.
type ValidationError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Fields  []string  `json:"fields,omitempty"`
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	return e.Message
}

// ── Construtores ──

func missingFields(fields []string) *ValidationError {
	return &ValidationError{
		Kind:    KindMissingRequiredField,
		Message: "campos obrigatórios ausentes",
		Fields:  fields,
	}
}

func invalidClock(field, value string) *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidTimeOrder,
		Message: fmt.Sprintf("hora inválida: %q (esperado HH:MM)", value),
		Fields:  []string{field},
	}
}

func invalidTimeOrder() *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidTimeOrder,
		Message: "a hora de início deve ser anterior à hora de fim",
		Fields:  []string{"hora_fim"},
	}
}

func scheduleConflict() *ValidationError {
	return &ValidationError{
		Kind:    KindScheduleConflict,
		Message: "conflito de horário: o professor/monitor já possui um horário neste intervalo",
	}
}

func roomConflict() *ValidationError {
	return &ValidationError{
		Kind:    KindRoomConflict,
		Message: "conflito de sala: o local já está ocupado neste intervalo",
		Fields:  []string{"local"},
	}
}

func slotAlreadyOccurred() *ValidationError {
	return &ValidationError{
		Kind:    KindSlotAlreadyOccurred,
		Message: "horários que já ocorreram não podem ser alterados ou removidos",
	}
}

func invalidWeekday(weekday string) *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidWeekday,
		Message: fmt.Sprintf("dia da semana inválido: %q", weekday),
		Fields:  []string{"dia_semana"},
	}
}
