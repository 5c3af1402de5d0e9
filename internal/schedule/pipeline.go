package schedule

import (
	"strings"
	"time"

	"github.com/CauehCraft/AgendaAberta/internal/model"
)

// Request candidato único de validação para criação e edição de horários.
// Em edição os valores já vêm mesclados (campo novo quando informado, valor
// armazenado caso contrário) e SlotID carrega a identidade do horário editado,
// excluída das verificações de conflito contra si mesmo.
type Request struct {
	SlotID    string // vazio na criação
	OwnerID   string
	SubjectID string
	Weekday   string
	StartTime string
	EndTime   string
	Location  string
}

// checkRequired valida presença de disciplina e local (local em branco após
// trim conta como ausente)
func checkRequired(subjectID, location string) *ValidationError {
	var fields []string
	if subjectID == "" {
		fields = append(fields, "disciplina")
	}
	if strings.TrimSpace(location) == "" {
		fields = append(fields, "local")
	}
	if len(fields) > 0 {
		return missingFields(fields)
	}
	return nil
}

// checkOrder valida que início e fim são horas "HH:MM" reais e que o início
// é estritamente anterior ao fim. A comparação lexical do restante do pacote
// só é válida sobre horas bem formadas.
func checkOrder(startTime, endTime string) *ValidationError {
	if _, err := time.Parse("15:04", startTime); err != nil {
		return invalidClock("hora_inicio", startTime)
	}
	if _, err := time.Parse("15:04", endTime); err != nil {
		return invalidClock("hora_fim", endTime)
	}
	if startTime >= endTime {
		return invalidTimeOrder()
	}
	return nil
}

// ValidateCreate executa o pipeline de criação:
// campos obrigatórios → ordem cronológica → dia válido → conflito do
// responsável → conflito de sala. Criação não tem restrição de passado;
// o horário recorre semanalmente.
//
// ownerSlots são os horários existentes do responsável; roomSlots os do mesmo
// local (ambos podem conter entradas fora do dia candidato; o filtro é feito
// aqui). A primeira falha interrompe o pipeline.
func ValidateCreate(req Request, ownerSlots, roomSlots []model.Slot) *ValidationError {
	if verr := checkRequired(req.SubjectID, req.Location); verr != nil {
		return verr
	}
	if verr := checkOrder(req.StartTime, req.EndTime); verr != nil {
		return verr
	}
	if _, verr := Ordinal(req.Weekday); verr != nil {
		return verr
	}
	if HasOwnerConflict(ownerSlots, req.OwnerID, req.Weekday, req.StartTime, req.EndTime, "") {
		return scheduleConflict()
	}
	if HasRoomConflict(roomSlots, req.Location, req.Weekday, req.StartTime, req.EndTime, "") {
		return roomConflict()
	}
	return nil
}

// ValidateUpdate executa o pipeline de edição:
// guarda de futuro sobre a instância armazenada → campos obrigatórios →
// ordem cronológica → dia válido → conflito do responsável (excluindo o
// próprio) → conflito de sala (excluindo o próprio).
//
// A guarda de futuro é avaliada sobre o registro atual, antes de qualquer
// outra coisa: um horário que já ocorreu nesta semana é imutável.
func ValidateUpdate(req Request, current *model.Slot, ownerSlots, roomSlots []model.Slot, referenceNow time.Time) *ValidationError {
	upcoming, verr := IsUpcoming(current.Weekday, current.StartTime, current.EndTime, referenceNow)
	if verr != nil {
		return verr
	}
	if !upcoming {
		return slotAlreadyOccurred()
	}

	if verr := checkRequired(req.SubjectID, req.Location); verr != nil {
		return verr
	}
	if verr := checkOrder(req.StartTime, req.EndTime); verr != nil {
		return verr
	}
	if _, verr := Ordinal(req.Weekday); verr != nil {
		return verr
	}
	if HasOwnerConflict(ownerSlots, req.OwnerID, req.Weekday, req.StartTime, req.EndTime, current.SlotID) {
		return scheduleConflict()
	}
	if HasRoomConflict(roomSlots, req.Location, req.Weekday, req.StartTime, req.EndTime, current.SlotID) {
		return roomConflict()
	}
	return nil
}

// ValidateDelete executa o pipeline de remoção: apenas a guarda de futuro.
// Horários passados permanecem como registro histórico, apenas consultáveis.
func ValidateDelete(current *model.Slot, referenceNow time.Time) *ValidationError {
	upcoming, verr := IsUpcoming(current.Weekday, current.StartTime, current.EndTime, referenceNow)
	if verr != nil {
		return verr
	}
	if !upcoming {
		return slotAlreadyOccurred()
	}
	return nil
}
