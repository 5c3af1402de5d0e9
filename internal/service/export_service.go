package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/CauehCraft/AgendaAberta/internal/dto"
	"github.com/CauehCraft/AgendaAberta/internal/model"
	"github.com/CauehCraft/AgendaAberta/internal/repository"
	"github.com/CauehCraft/AgendaAberta/internal/schedule"
)

// ── Erros de negócio do módulo de exportação ──

var (
	ErrExportNoSlots      = errors.New("nenhum horário cadastrado para exportar")
	ErrExportGenerateFail = errors.New("falha ao gerar o arquivo de exportação")
)

// ExportService exportação da agenda em formatos externos
//
// Decisões de projeto:
//   - A planilha Excel é restrita aos horários do próprio professor/monitor,
//     com a contagem de alunos interessados por horário
//   - O feed iCalendar é público e aceita os mesmos filtros da busca pública;
//     cada horário vira um VEVENT com RRULE semanal
//   - Ambos retornam o conteúdo em memória; o Handler define os cabeçalhos
//     HTTP e escreve a resposta
type ExportService interface {
	// ExportOwnerSlots exporta os horários do responsável como Excel (.xlsx)
	ExportOwnerSlots(ctx context.Context, ownerID string) (*bytes.Buffer, string, error)

	// PublicCalendar serializa a agenda pública como iCalendar (RFC 5545)
	PublicCalendar(ctx context.Context, req *dto.PublicSlotListRequest) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService cria o ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ExportOwnerSlots: planilha dos horários do responsável
// ═══════════════════════════════════════════════════════════
//
// Formato:
//   - Sheet "Meus Horários"
//   - Colunas: Dia | Início | Fim | Disciplina | Código | Local | Ativo | Interessados
//   - Linhas ordenadas por dia da semana e hora de início

func (s *exportService) ExportOwnerSlots(ctx context.Context, ownerID string) (*bytes.Buffer, string, error) {
	slots, err := s.repo.Slot.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("falha ao listar horários para exportação", zap.Error(err))
		return nil, "", err
	}
	if len(slots) == 0 {
		return nil, "", ErrExportNoSlots
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Meus Horários"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("falha ao criar planilha", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 16)
	f.SetColWidth(sheetName, "B", "C", 9)
	f.SetColWidth(sheetName, "D", "D", 32)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 18)
	f.SetColWidth(sheetName, "G", "H", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#305496"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Dia", "Início", "Fim", "Disciplina", "Código", "Local", "Ativo", "Interessados"}
	for i, h := range headers {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cellName, h)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", last, headerStyle)

	row := 2
	for _, slot := range slots {
		count, err := s.repo.Booking.CountBySlot(ctx, slot.SlotID)
		if err != nil {
			s.logger.Error("falha ao contar agendamentos do horário",
				zap.String("slot_id", slot.SlotID), zap.Error(err))
			return nil, "", err
		}

		subjectName, subjectCode := "", ""
		if slot.Subject != nil {
			subjectName = slot.Subject.Name
			subjectCode = slot.Subject.Code
		}
		active := "Sim"
		if !slot.IsActive {
			active = "Não"
		}

		values := []interface{}{
			slot.Weekday, slot.StartTime, slot.EndTime,
			subjectName, subjectCode, slot.Location, active, count,
		}
		for i, v := range values {
			cellName, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheetName, cellName, v)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("falha ao escrever planilha", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("meus_horarios_%s.xlsx", s.now().Format("2006-01-02"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// PublicCalendar: agenda pública como feed iCalendar
// ═══════════════════════════════════════════════════════════
//
// Cada horário ativo vira um VEVENT com início na próxima ocorrência do
// dia da semana (a partir de hoje) e RRULE=FREQ=WEEKLY;BYDAY=<dia>.

// icsByDay mapeia o ordinal do dia (0=Segunda-feira) para o código BYDAY
var icsByDay = [7]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

func (s *exportService) PublicCalendar(ctx context.Context, req *dto.PublicSlotListRequest) (string, error) {
	slots, err := s.repo.Slot.Search(ctx, repository.SlotSearchFilter{
		Course:    req.Course,
		SubjectID: req.SubjectID,
		Weekday:   req.Weekday,
		Periodo:   req.Periodo,
		OwnerName: req.OwnerName,
		Search:    req.Search,
	})
	if err != nil {
		s.logger.Error("falha ao buscar horários para o calendário", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//AgendaAberta//Agenda Pública//PT-BR")
	cal.SetCalscale("GREGORIAN")

	now := s.now()
	for _, slot := range slots {
		if err := s.buildEvent(cal, slot, now); err != nil {
			s.logger.Warn("horário ignorado no calendário",
				zap.String("slot_id", slot.SlotID), zap.Error(err))
		}
	}

	return cal.Serialize(), nil
}

// buildEvent monta o VEVENT de um horário semanal
func (s *exportService) buildEvent(cal *ics.Calendar, slot model.Slot, now time.Time) error {
	ord, verr := schedule.Ordinal(slot.Weekday)
	if verr != nil {
		return verr
	}

	startHour, startMin, err := splitClock(slot.StartTime)
	if err != nil {
		return err
	}
	endHour, endMin, err := splitClock(slot.EndTime)
	if err != nil {
		return err
	}

	// Próxima ocorrência do dia da semana, contando a partir de hoje
	today := (int(now.Weekday()) + 6) % 7
	days := (ord - today + 7) % 7
	date := now.AddDate(0, 0, days)

	start := time.Date(date.Year(), date.Month(), date.Day(), startHour, startMin, 0, 0, now.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), endHour, endMin, 0, 0, now.Location())

	event := cal.AddEvent(fmt.Sprintf("slot-%s@agenda-aberta", slot.SlotID))
	event.SetDtStampTime(now)
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetLocation(slot.Location)
	event.AddRrule("FREQ=WEEKLY;BYDAY=" + icsByDay[ord])

	summary := slot.Location
	if slot.Subject != nil {
		summary = slot.Subject.Name
		event.SetDescription(fmt.Sprintf("%s (%s): %s", slot.Subject.Name, slot.Subject.Code, slot.Subject.Course))
	}
	if slot.Owner != nil {
		summary = fmt.Sprintf("%s: %s", summary, slot.Owner.Name)
	}
	event.SetSummary(summary)

	return nil
}

// splitClock decompõe "HH:MM" em hora e minuto
func splitClock(clock string) (int, int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("horário inválido: %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("horário inválido: %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("horário inválido: %q", clock)
	}
	return hour, minute, nil
}
