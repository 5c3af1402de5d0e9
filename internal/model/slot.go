package model

import "time"

// Slot tabela slots: janela semanal recorrente de atendimento (Horario)
//
// StartTime/EndTime usam o formato "HH:MM" (24h, zero à esquerda); a ordenação
// lexicográfica coincide com a ordenação temporal, então comparações de string
// bastam para sobreposição de intervalos.
type Slot struct {
	SlotID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"slot_id"`
	OwnerID   string    `gorm:"type:uuid;not null"                             json:"owner_id"`
	SubjectID string    `gorm:"type:uuid;not null"                             json:"subject_id"`
	Weekday   string    `gorm:"type:varchar(20);not null"                      json:"weekday"` // Segunda-feira .. Domingo
	StartTime string    `gorm:"type:varchar(5);not null"                       json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null"                       json:"end_time"`
	Location  string    `gorm:"type:varchar(100);not null"                     json:"location"`
	IsActive  bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`

	// Associações
	Owner   *User    `gorm:"foreignKey:OwnerID;references:UserID"      json:"owner,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
}

// TableName indica o nome da tabela
func (Slot) TableName() string { return "slots" }
