package handler

import "github.com/CauehCraft/AgendaAberta/internal/service"

// Handler agregador de todos os handlers HTTP
type Handler struct {
	Auth    *AuthHandler
	Subject *SubjectHandler
	Slot    *SlotHandler
	Booking *BookingHandler
	Public  *PublicHandler
	Export  *ExportHandler
}

// NewHandler cria o agregador de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Subject: NewSubjectHandler(svc.Subject),
		Slot:    NewSlotHandler(svc.Slot),
		Booking: NewBookingHandler(svc.Booking),
		Public:  NewPublicHandler(svc.Slot, svc.Export),
		Export:  NewExportHandler(svc.Export),
	}
}
