package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/CauehCraft/AgendaAberta/internal/model"
)

// BookingRepository acesso a dados de agendamentos
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Booking, error)
	ListBySlotOwner(ctx context.Context, ownerID string) ([]model.Booking, error)
	CountBySlot(ctx context.Context, slotID string) (int64, error)
	Update(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id string) error
}

// bookingRepo implementação GORM de BookingRepository
type bookingRepo struct {
	db *gorm.DB
}

// NewBookingRepo cria a instância de BookingRepository
func NewBookingRepo(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Slot").
		Preload("Slot.Subject").
		Where("booking_id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("Slot").
		Preload("Slot.Subject").
		Preload("Slot.Owner").
		Where("student_id = ?", studentID).
		Order("date DESC, created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// ListBySlotOwner lista agendamentos feitos sobre horários do responsável
func (r *bookingRepo) ListBySlotOwner(ctx context.Context, ownerID string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN slots ON slots.slot_id = bookings.slot_id").
		Where("slots.owner_id = ?", ownerID).
		Preload("Student").
		Preload("Slot").
		Preload("Slot.Subject").
		Order("bookings.date DESC, bookings.created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) CountBySlot(ctx context.Context, slotID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("slot_id = ?", slotID).
		Count(&total).Error
	return total, err
}

func (r *bookingRepo) Update(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		Delete(&model.Booking{}).Error
}
