package model

import "time"

// Situações possíveis de um agendamento
const (
	BookingSolicitado = "solicitado"
	BookingConfirmado = "confirmado"
	BookingCancelado  = "cancelado"
	BookingConcluido  = "concluido"
)

// Booking tabela bookings: interesse de um aluno em um horário numa data (Agendamento)
//
// Vários alunos podem registrar interesse no mesmo horário/data; não há
// exclusividade de reserva.
type Booking struct {
	BookingID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"booking_id"`
	StudentID string    `gorm:"type:uuid;not null"                             json:"student_id"`
	SlotID    string    `gorm:"type:uuid;not null"                             json:"slot_id"`
	Date      time.Time `gorm:"type:date;not null;default:CURRENT_DATE"        json:"date"`
	Status    string    `gorm:"type:varchar(20);not null;default:'solicitado'" json:"status"` // solicitado | confirmado | cancelado | concluido
	Notes     string    `gorm:"type:varchar(500)"                              json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`

	// Associações
	Student *User `gorm:"foreignKey:StudentID;references:UserID" json:"student,omitempty"`
	Slot    *Slot `gorm:"foreignKey:SlotID;references:SlotID"    json:"slot,omitempty"`
}

// TableName indica o nome da tabela
func (Booking) TableName() string { return "bookings" }

// ValidBookingStatus indica se a situação informada é uma das reconhecidas
func ValidBookingStatus(status string) bool {
	switch status {
	case BookingSolicitado, BookingConfirmado, BookingCancelado, BookingConcluido:
		return true
	}
	return false
}
