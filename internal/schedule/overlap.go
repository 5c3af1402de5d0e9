package schedule

import "github.com/CauehCraft/AgendaAberta/internal/model"

// Overlaps informa se dois intervalos semiabertos [aStart,aEnd) e [bStart,bEnd)
// no mesmo dia se sobrepõem. Fronteiras iguais (um termina quando o outro
// começa) não contam como sobreposição. Horas no formato "HH:MM".
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// HasOwnerConflict informa se o intervalo candidato colide com algum horário
// ativo do mesmo responsável no mesmo dia. excludeID (quando não vazio) remove
// o próprio horário da verificação, para o caso de edição.
func HasOwnerConflict(existing []model.Slot, ownerID, weekday, startTime, endTime, excludeID string) bool {
	for i := range existing {
		s := &existing[i]
		if !s.IsActive || s.OwnerID != ownerID || s.Weekday != weekday {
			continue
		}
		if excludeID != "" && s.SlotID == excludeID {
			continue
		}
		if Overlaps(startTime, endTime, s.StartTime, s.EndTime) {
			return true
		}
	}
	return false
}

// HasRoomConflict informa se o intervalo candidato colide com algum horário
// ativo no mesmo local e dia, independentemente do responsável; dois
// professores não podem ocupar a mesma sala ao mesmo tempo.
func HasRoomConflict(existing []model.Slot, location, weekday, startTime, endTime, excludeID string) bool {
	for i := range existing {
		s := &existing[i]
		if !s.IsActive || s.Location != location || s.Weekday != weekday {
			continue
		}
		if excludeID != "" && s.SlotID == excludeID {
			continue
		}
		if Overlaps(startTime, endTime, s.StartTime, s.EndTime) {
			return true
		}
	}
	return false
}
