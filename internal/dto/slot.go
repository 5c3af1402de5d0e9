package dto

// ── Módulo de horários ──

// CreateSlotRequest requisição de criação de horário.
// O responsável nunca vem do cliente: é o usuário autenticado.
type CreateSlotRequest struct {
	SubjectID string `json:"disciplina_id" binding:"required,uuid"`
	Weekday   string `json:"dia_semana"    binding:"required"`
	StartTime string `json:"hora_inicio"   binding:"required,datetime=15:04"` // "10:00"
	EndTime   string `json:"hora_fim"      binding:"required,datetime=15:04"` // "11:00"
	Location  string `json:"local"         binding:"required,max=100"`
}

// UpdateSlotRequest requisição de atualização parcial de horário
type UpdateSlotRequest struct {
	SubjectID *string `json:"disciplina_id" binding:"omitempty,uuid"`
	Weekday   *string `json:"dia_semana"`
	StartTime *string `json:"hora_inicio" binding:"omitempty,datetime=15:04"`
	EndTime   *string `json:"hora_fim"    binding:"omitempty,datetime=15:04"`
	Location  *string `json:"local"       binding:"omitempty,max=100"`
	IsActive  *bool   `json:"ativo"`
}

// PublicSlotListRequest parâmetros da busca pública de horários
type PublicSlotListRequest struct {
	Course    string `form:"curso"`
	SubjectID string `form:"disciplina" binding:"omitempty,uuid"`
	Weekday   string `form:"dia_semana"`
	Periodo   string `form:"periodo" binding:"omitempty,oneof=manha tarde noite"`
	OwnerName string `form:"professor_nome"`
	Search    string `form:"busca"`
}

// SlotResponse informações do horário
type SlotResponse struct {
	ID        string        `json:"id"`
	Weekday   string        `json:"dia_semana"`
	StartTime string        `json:"hora_inicio"`
	EndTime   string        `json:"hora_fim"`
	Location  string        `json:"local"`
	IsActive  bool          `json:"ativo"`
	Subject   *SubjectBrief `json:"disciplina,omitempty"`
	Owner     *OwnerBrief   `json:"responsavel,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// OwnerBrief resumo do responsável pelo horário (embutido em respostas)
type OwnerBrief struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	Role string `json:"papel"`
}
