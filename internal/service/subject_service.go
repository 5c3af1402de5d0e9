package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CauehCraft/AgendaAberta/internal/dto"
	"github.com/CauehCraft/AgendaAberta/internal/model"
	"github.com/CauehCraft/AgendaAberta/internal/repository"
)

// ── Erros de negócio do módulo de disciplinas ──

var (
	ErrSubjectNotFound   = errors.New("disciplina não encontrada")
	ErrSubjectCodeExists = errors.New("já existe disciplina com este código")
)

// SubjectService interface de negócio de disciplinas
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error)
	List(ctx context.Context) ([]dto.SubjectResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService cria a instância de SubjectService
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	// Unicidade do código
	if _, err := s.repo.Subject.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrSubjectCodeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("falha ao consultar disciplina", zap.Error(err))
		return nil, err
	}

	subject := &model.Subject{
		Code:     req.Code,
		Name:     req.Name,
		Course:   req.Course,
		Semester: req.Semester,
		IsActive: true,
	}

	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		// Corrida entre a verificação acima e o insert: o índice único decide
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubjectCodeExists
		}
		s.logger.Error("falha ao criar disciplina", zap.Error(err))
		return nil, err
	}

	return toSubjectResponse(subject), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *subjectService) GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("falha ao consultar disciplina", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSubjectResponse(subject), nil
}

// ────────────────────── List ──────────────────────

func (s *subjectService) List(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.Subject.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar disciplinas", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		result = append(result, *toSubjectResponse(&subjects[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *subjectService) Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("falha ao consultar disciplina", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Course != nil {
		subject.Course = *req.Course
	}
	if req.Semester != nil {
		subject.Semester = *req.Semester
	}
	if req.IsActive != nil {
		subject.IsActive = *req.IsActive
	}

	if err := s.repo.Subject.Update(ctx, subject); err != nil {
		s.logger.Error("falha ao atualizar disciplina", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toSubjectResponse(subject), nil
}

// ────────────────────── Delete ──────────────────────

func (s *subjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Subject.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		s.logger.Error("falha ao consultar disciplina", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Subject.Delete(ctx, id); err != nil {
		s.logger.Error("falha ao remover disciplina", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── Auxiliares internos ──

func toSubjectResponse(subject *model.Subject) *dto.SubjectResponse {
	return &dto.SubjectResponse{
		ID:        subject.SubjectID,
		Code:      subject.Code,
		Name:      subject.Name,
		Course:    subject.Course,
		Semester:  subject.Semester,
		IsActive:  subject.IsActive,
		CreatedAt: subject.CreatedAt.Format(timeLayout),
		UpdatedAt: subject.UpdatedAt.Format(timeLayout),
	}
}
