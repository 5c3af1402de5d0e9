package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/CauehCraft/AgendaAberta/internal/model"
)

// Períodos do dia reconhecidos pelo filtro público
const (
	PeriodoManha = "manha"
	PeriodoTarde = "tarde"
	PeriodoNoite = "noite"
)

// SlotSearchFilter critérios da busca pública de horários
type SlotSearchFilter struct {
	Course        string // substring do curso da disciplina
	SubjectID     string
	Weekday       string
	Periodo       string // manha | tarde | noite (pela hora de início)
	OwnerName     string // substring do nome do professor/monitor
	Search        string // busca livre: disciplina, código, local ou responsável
}

// SlotRepository acesso a dados de horários
type SlotRepository interface {
	Create(ctx context.Context, slot *model.Slot) error
	GetByID(ctx context.Context, id string) (*model.Slot, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Slot, error)
	ListActiveByOwnerAndWeekday(ctx context.Context, ownerID, weekday string) ([]model.Slot, error)
	ListActiveByLocationAndWeekday(ctx context.Context, location, weekday string) ([]model.Slot, error)
	Search(ctx context.Context, filter SlotSearchFilter) ([]model.Slot, error)
	Update(ctx context.Context, slot *model.Slot) error
	Delete(ctx context.Context, id string) error
}

// slotRepo implementação GORM de SlotRepository
type slotRepo struct {
	db *gorm.DB
}

// NewSlotRepo cria a instância de SlotRepository
func NewSlotRepo(db *gorm.DB) SlotRepository {
	return &slotRepo{db: db}
}

func (r *slotRepo) Create(ctx context.Context, slot *model.Slot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *slotRepo) GetByID(ctx context.Context, id string) (*model.Slot, error) {
	var slot model.Slot
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Subject").
		Where("slot_id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Slot, error) {
	var slots []model.Slot
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Where("owner_id = ?", ownerID).
		Order("weekday ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *slotRepo) ListActiveByOwnerAndWeekday(ctx context.Context, ownerID, weekday string) ([]model.Slot, error) {
	var slots []model.Slot
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND weekday = ? AND is_active = ?", ownerID, weekday, true).
		Find(&slots).Error
	return slots, err
}

func (r *slotRepo) ListActiveByLocationAndWeekday(ctx context.Context, location, weekday string) ([]model.Slot, error) {
	var slots []model.Slot
	err := r.db.WithContext(ctx).
		Where("location = ? AND weekday = ? AND is_active = ?", location, weekday, true).
		Find(&slots).Error
	return slots, err
}

// Search busca pública de horários ativos com filtros combináveis.
// O período do dia particiona pela hora de início: manhã antes das 12:00,
// tarde em [12:00,18:00), noite a partir das 18:00.
func (r *slotRepo) Search(ctx context.Context, filter SlotSearchFilter) ([]model.Slot, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Slot{}).
		Joins("JOIN subjects ON subjects.subject_id = slots.subject_id").
		Joins("JOIN users ON users.user_id = slots.owner_id").
		Where("slots.is_active = ?", true)

	if filter.Course != "" {
		db = db.Where("subjects.course ILIKE ?", "%"+filter.Course+"%")
	}
	if filter.SubjectID != "" {
		db = db.Where("slots.subject_id = ?", filter.SubjectID)
	}
	if filter.Weekday != "" {
		db = db.Where("slots.weekday = ?", filter.Weekday)
	}
	if filter.OwnerName != "" {
		db = db.Where("users.name ILIKE ?", "%"+filter.OwnerName+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where(
			"subjects.name ILIKE ? OR subjects.code ILIKE ? OR slots.location ILIKE ? OR users.name ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	switch filter.Periodo {
	case PeriodoManha:
		db = db.Where("slots.start_time < ?", "12:00")
	case PeriodoTarde:
		db = db.Where("slots.start_time >= ? AND slots.start_time < ?", "12:00", "18:00")
	case PeriodoNoite:
		db = db.Where("slots.start_time >= ?", "18:00")
	}

	var slots []model.Slot
	err := db.Preload("Owner").
		Preload("Subject").
		Order("slots.weekday ASC, slots.start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *slotRepo) Update(ctx context.Context, slot *model.Slot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *slotRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("slot_id = ?", id).
		Delete(&model.Slot{}).Error
}
