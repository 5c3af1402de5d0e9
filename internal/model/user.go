package model

import "time"

// Papéis de usuário reconhecidos pelo sistema
const (
	RoleAluno     = "aluno"
	RoleProfessor = "professor"
	RoleMonitor   = "monitor"
)

// User tabela users: alunos, professores e monitores
type User struct {
	UserID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	Email        string    `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string    `gorm:"type:varchar(20);not null"                      json:"role"` // aluno | professor | monitor
	IsActive     bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName indica o nome da tabela
func (User) TableName() string { return "users" }

// CanOwnSlots indica se o papel pode publicar horários
func (u *User) CanOwnSlots() bool {
	return u.Role == RoleProfessor || u.Role == RoleMonitor
}

// ValidRole indica se o papel informado é um dos reconhecidos
func ValidRole(role string) bool {
	switch role {
	case RoleAluno, RoleProfessor, RoleMonitor:
		return true
	}
	return false
}
