package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CauehCraft/AgendaAberta/internal/dto"
	"github.com/CauehCraft/AgendaAberta/internal/model"
	"github.com/CauehCraft/AgendaAberta/internal/repository"
	"github.com/CauehCraft/AgendaAberta/internal/schedule"
)

// Formato dos carimbos de data/hora nas respostas
const timeLayout = "2006-01-02T15:04:05Z07:00"

// ── Erros de negócio do módulo de horários ──

var (
	ErrSlotNotFound      = errors.New("horário não encontrado")
	ErrNotSlotOwner      = errors.New("apenas o responsável pode alterar este horário")
	ErrOwnerRoleRequired = errors.New("apenas professores e monitores podem publicar horários")
)

// SlotService interface de negócio de horários
type SlotService interface {
	Create(ctx context.Context, req *dto.CreateSlotRequest, callerID, callerRole string) (*dto.SlotResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SlotResponse, error)
	ListMine(ctx context.Context, callerID string) ([]dto.SlotResponse, error)
	ListPublic(ctx context.Context, req *dto.PublicSlotListRequest) ([]dto.SlotResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSlotRequest, callerID string) (*dto.SlotResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type slotService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // injetável para testes determinísticos
}

// NewSlotService cria a instância de SlotService
func NewSlotService(repo *repository.Repository, logger *zap.Logger) SlotService {
	return &slotService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Create ──────────────────────

// Create publica um novo horário. O responsável é sempre o usuário autenticado.
// Não há restrição de passado na criação: o horário recorre semanalmente.
func (s *slotService) Create(ctx context.Context, req *dto.CreateSlotRequest, callerID, callerRole string) (*dto.SlotResponse, error) {
	if callerRole != model.RoleProfessor && callerRole != model.RoleMonitor {
		return nil, ErrOwnerRoleRequired
	}

	// Disciplina deve existir
	if _, err := s.repo.Subject.GetByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("falha ao consultar disciplina", zap.Error(err))
		return nil, err
	}

	ownerSlots, roomSlots, err := s.conflictCandidates(ctx, callerID, req.Location, req.Weekday)
	if err != nil {
		return nil, err
	}

	candidate := schedule.Request{
		OwnerID:   callerID,
		SubjectID: req.SubjectID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	}
	if verr := schedule.ValidateCreate(candidate, ownerSlots, roomSlots); verr != nil {
		return nil, verr
	}

	slot := &model.Slot{
		OwnerID:   callerID,
		SubjectID: req.SubjectID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
		IsActive:  true,
	}

	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		s.logger.Error("falha ao criar horário", zap.Error(err))
		return nil, err
	}

	// Recarrega com as associações
	created, err := s.repo.Slot.GetByID(ctx, slot.SlotID)
	if err != nil {
		return nil, err
	}
	return toSlotResponse(created), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *slotService) GetByID(ctx context.Context, id string) (*dto.SlotResponse, error) {
	slot, err := s.repo.Slot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("falha ao consultar horário", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSlotResponse(slot), nil
}

// ────────────────────── ListMine ──────────────────────

// ListMine lista os horários do próprio responsável (inclusive inativos)
func (s *slotService) ListMine(ctx context.Context, callerID string) ([]dto.SlotResponse, error) {
	slots, err := s.repo.Slot.ListByOwner(ctx, callerID)
	if err != nil {
		s.logger.Error("falha ao listar horários", zap.Error(err))
		return nil, err
	}
	return toSlotResponses(slots), nil
}

// ────────────────────── ListPublic ──────────────────────

// ListPublic busca pública de horários ativos, sem autenticação
func (s *slotService) ListPublic(ctx context.Context, req *dto.PublicSlotListRequest) ([]dto.SlotResponse, error) {
	slots, err := s.repo.Slot.Search(ctx, repository.SlotSearchFilter{
		Course:    req.Course,
		SubjectID: req.SubjectID,
		Weekday:   req.Weekday,
		Periodo:   req.Periodo,
		OwnerName: req.OwnerName,
		Search:    req.Search,
	})
	if err != nil {
		s.logger.Error("falha na busca pública de horários", zap.Error(err))
		return nil, err
	}
	return toSlotResponses(slots), nil
}

// ────────────────────── Update ──────────────────────

// Update edita um horário existente após passar o pipeline completo de
// validação sobre os valores mesclados (campo novo quando informado, valor
// armazenado caso contrário)
func (s *slotService) Update(ctx context.Context, id string, req *dto.UpdateSlotRequest, callerID string) (*dto.SlotResponse, error) {
	slot, err := s.repo.Slot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("falha ao consultar horário", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if slot.OwnerID != callerID {
		return nil, ErrNotSlotOwner
	}

	// Mescla dos valores novos com os armazenados
	merged := schedule.Request{
		SlotID:    slot.SlotID,
		OwnerID:   slot.OwnerID,
		SubjectID: slot.SubjectID,
		Weekday:   slot.Weekday,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Location:  slot.Location,
	}
	if req.SubjectID != nil {
		merged.SubjectID = *req.SubjectID
	}
	if req.Weekday != nil {
		merged.Weekday = *req.Weekday
	}
	if req.StartTime != nil {
		merged.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		merged.EndTime = *req.EndTime
	}
	if req.Location != nil {
		merged.Location = *req.Location
	}

	// Disciplina trocada deve existir
	if req.SubjectID != nil {
		if _, err := s.repo.Subject.GetByID(ctx, merged.SubjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSubjectNotFound
			}
			s.logger.Error("falha ao consultar disciplina", zap.Error(err))
			return nil, err
		}
	}

	ownerSlots, roomSlots, err := s.conflictCandidates(ctx, merged.OwnerID, merged.Location, merged.Weekday)
	if err != nil {
		return nil, err
	}

	if verr := schedule.ValidateUpdate(merged, slot, ownerSlots, roomSlots, s.now()); verr != nil {
		return nil, verr
	}

	slot.SubjectID = merged.SubjectID
	slot.Weekday = merged.Weekday
	slot.StartTime = merged.StartTime
	slot.EndTime = merged.EndTime
	slot.Location = merged.Location
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}

	if err := s.repo.Slot.Update(ctx, slot); err != nil {
		s.logger.Error("falha ao atualizar horário", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Slot.GetByID(ctx, slot.SlotID)
	if err != nil {
		return nil, err
	}
	return toSlotResponse(updated), nil
}

// ────────────────────── Delete ──────────────────────

// Delete remove um horário cuja próxima ocorrência ainda não passou.
// Horários já ocorridos permanecem como registro histórico.
func (s *slotService) Delete(ctx context.Context, id string, callerID string) error {
	slot, err := s.repo.Slot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("falha ao consultar horário", zap.String("id", id), zap.Error(err))
		return err
	}

	if slot.OwnerID != callerID {
		return ErrNotSlotOwner
	}

	if verr := schedule.ValidateDelete(slot, s.now()); verr != nil {
		return verr
	}

	if err := s.repo.Slot.Delete(ctx, id); err != nil {
		s.logger.Error("falha ao remover horário", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── Auxiliares internos ──

// conflictCandidates carrega os horários existentes relevantes para as
// verificações de conflito de responsável e de sala
func (s *slotService) conflictCandidates(ctx context.Context, ownerID, location, weekday string) ([]model.Slot, []model.Slot, error) {
	ownerSlots, err := s.repo.Slot.ListActiveByOwnerAndWeekday(ctx, ownerID, weekday)
	if err != nil {
		s.logger.Error("falha ao consultar horários do responsável", zap.Error(err))
		return nil, nil, err
	}
	roomSlots, err := s.repo.Slot.ListActiveByLocationAndWeekday(ctx, location, weekday)
	if err != nil {
		s.logger.Error("falha ao consultar horários do local", zap.Error(err))
		return nil, nil, err
	}
	return ownerSlots, roomSlots, nil
}

func toSlotResponse(slot *model.Slot) *dto.SlotResponse {
	resp := &dto.SlotResponse{
		ID:        slot.SlotID,
		Weekday:   slot.Weekday,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Location:  slot.Location,
		IsActive:  slot.IsActive,
		CreatedAt: slot.CreatedAt.Format(timeLayout),
		UpdatedAt: slot.UpdatedAt.Format(timeLayout),
	}

	if slot.Subject != nil {
		resp.Subject = &dto.SubjectBrief{
			ID:     slot.Subject.SubjectID,
			Code:   slot.Subject.Code,
			Name:   slot.Subject.Name,
			Course: slot.Subject.Course,
		}
	}
	if slot.Owner != nil {
		resp.Owner = &dto.OwnerBrief{
			ID:   slot.Owner.UserID,
			Name: slot.Owner.Name,
			Role: slot.Owner.Role,
		}
	}

	return resp
}

func toSlotResponses(slots []model.Slot) []dto.SlotResponse {
	result := make([]dto.SlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, *toSlotResponse(&slots[i]))
	}
	return result
}
