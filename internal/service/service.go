package service

import (
	"go.uber.org/zap"

	"github.com/CauehCraft/AgendaAberta/config"
	"github.com/CauehCraft/AgendaAberta/internal/repository"
	"github.com/CauehCraft/AgendaAberta/pkg/jwt"
	"github.com/CauehCraft/AgendaAberta/pkg/redis"
)

// Service agregador de todos os serviços
type Service struct {
	Auth    AuthService
	Subject SubjectService
	Slot    SlotService
	Booking BookingService
	Export  ExportService
}

// NewService cria o agregador de serviços
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Subject: NewSubjectService(repo, logger),
		Slot:    NewSlotService(repo, logger),
		Booking: NewBookingService(repo, logger),
		Export:  NewExportService(repo, logger),
	}
}
