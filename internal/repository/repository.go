package repository

import "gorm.io/gorm"

// Repository agregador de todos os repositórios
type Repository struct {
	User    UserRepository
	Subject SubjectRepository
	Slot    SlotRepository
	Booking BookingRepository
}

// NewRepository cria o agregador de repositórios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:    NewUserRepo(db),
		Subject: NewSubjectRepo(db),
		Slot:    NewSlotRepo(db),
		Booking: NewBookingRepo(db),
	}
}
