package model

import "time"

// Subject tabela subjects: disciplinas
type Subject struct {
	SubjectID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	Code      string    `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Name      string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Course    string    `gorm:"type:varchar(100);not null"                     json:"course"`
	Semester  int       `gorm:"type:smallint;not null;default:1"               json:"semester"`
	IsActive  bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName indica o nome da tabela
func (Subject) TableName() string { return "subjects" }
