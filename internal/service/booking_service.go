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
)

// ── Erros de negócio do módulo de agendamentos ──

var (
	ErrBookingNotFound      = errors.New("agendamento não encontrado")
	ErrBookingAccessDenied  = errors.New("sem permissão sobre este agendamento")
	ErrStudentRoleRequired  = errors.New("apenas alunos podem registrar interesse em horários")
	ErrInvalidBookingStatus = errors.New("situação de agendamento inválida")
	ErrInvalidBookingDate   = errors.New("data de agendamento inválida")
)

// BookingService interface de negócio de agendamentos
type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest, callerID, callerRole string) (*dto.BookingResponse, error)
	GetByID(ctx context.Context, id string, callerID string) (*dto.BookingResponse, error)
	List(ctx context.Context, callerID, callerRole string) ([]dto.BookingResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateBookingRequest, callerID string) (*dto.BookingResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type bookingService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewBookingService cria a instância de BookingService
func NewBookingService(repo *repository.Repository, logger *zap.Logger) BookingService {
	return &bookingService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Create ──────────────────────

// Create registra o interesse de um aluno em um horário numa data.
// Vários alunos podem registrar interesse no mesmo horário/data; não há
// exclusividade de reserva. Data em branco assume a data de hoje.
func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest, callerID, callerRole string) (*dto.BookingResponse, error) {
	if callerRole != model.RoleAluno {
		return nil, ErrStudentRoleRequired
	}

	// Horário deve existir
	if _, err := s.repo.Slot.GetByID(ctx, req.SlotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("falha ao consultar horário", zap.Error(err))
		return nil, err
	}

	date := s.now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidBookingDate
		}
		date = parsed
	}

	booking := &model.Booking{
		StudentID: callerID,
		SlotID:    req.SlotID,
		Date:      date,
		Status:    model.BookingSolicitado,
		Notes:     req.Notes,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.logger.Error("falha ao criar agendamento", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Booking.GetByID(ctx, booking.BookingID)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(created), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *bookingService) GetByID(ctx context.Context, id string, callerID string) (*dto.BookingResponse, error) {
	booking, err := s.getAccessible(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// ────────────────────── List ──────────────────────

// List lista agendamentos conforme o papel do usuário:
// aluno vê os próprios; professor/monitor vê os registrados sobre seus horários
func (s *bookingService) List(ctx context.Context, callerID, callerRole string) ([]dto.BookingResponse, error) {
	var (
		bookings []model.Booking
		err      error
	)

	switch callerRole {
	case model.RoleAluno:
		bookings, err = s.repo.Booking.ListByStudent(ctx, callerID)
	case model.RoleProfessor, model.RoleMonitor:
		bookings, err = s.repo.Booking.ListBySlotOwner(ctx, callerID)
	default:
		return []dto.BookingResponse{}, nil
	}
	if err != nil {
		s.logger.Error("falha ao listar agendamentos", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *toBookingResponse(&bookings[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

// Update atualiza situação e observações. O aluno dono do agendamento e o
// responsável pelo horário têm acesso; a situação informada deve ser uma das
// reconhecidas.
func (s *bookingService) Update(ctx context.Context, id string, req *dto.UpdateBookingRequest, callerID string) (*dto.BookingResponse, error) {
	booking, err := s.getAccessible(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !model.ValidBookingStatus(*req.Status) {
			return nil, ErrInvalidBookingStatus
		}
		// Aluno só pode cancelar o próprio agendamento; confirmar e concluir
		// cabem ao responsável pelo horário.
		if callerID == booking.StudentID {
			if *req.Status != model.BookingCancelado {
				return nil, ErrBookingAccessDenied
			}
		}
		booking.Status = *req.Status
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.logger.Error("falha ao atualizar agendamento", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toBookingResponse(booking), nil
}

// ────────────────────── Delete ──────────────────────

// Delete remove um agendamento; apenas o aluno que o criou pode remover
func (s *bookingService) Delete(ctx context.Context, id string, callerID string) error {
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("falha ao consultar agendamento", zap.String("id", id), zap.Error(err))
		return err
	}

	if booking.StudentID != callerID {
		return ErrBookingAccessDenied
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		s.logger.Error("falha ao remover agendamento", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── Auxiliares internos ──

// getAccessible carrega o agendamento e verifica o acesso: aluno dono do
// agendamento ou responsável pelo horário
func (s *bookingService) getAccessible(ctx context.Context, id, callerID string) (*model.Booking, error) {
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("falha ao consultar agendamento", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if booking.StudentID != callerID && (booking.Slot == nil || booking.Slot.OwnerID != callerID) {
		return nil, ErrBookingAccessDenied
	}
	return booking, nil
}

func toBookingResponse(booking *model.Booking) *dto.BookingResponse {
	resp := &dto.BookingResponse{
		ID:        booking.BookingID,
		Date:      booking.Date.Format("2006-01-02"),
		Status:    booking.Status,
		Notes:     booking.Notes,
		CreatedAt: booking.CreatedAt.Format(timeLayout),
		UpdatedAt: booking.UpdatedAt.Format(timeLayout),
	}

	if booking.Slot != nil {
		resp.Slot = toSlotResponse(booking.Slot)
	}
	if booking.Student != nil {
		resp.Student = &dto.OwnerBrief{
			ID:   booking.Student.UserID,
			Name: booking.Student.Name,
			Role: booking.Student.Role,
		}
	}

	return resp
}
