package dto

// ── Módulo de disciplinas ──

// CreateSubjectRequest requisição de criação de disciplina
type CreateSubjectRequest struct {
	Code     string `json:"codigo"   binding:"required,min=2,max=20"`
	Name     string `json:"nome"     binding:"required,min=2,max=100"`
	Course   string `json:"curso"    binding:"required,min=2,max=100"`
	Semester int    `json:"semestre" binding:"required,min=1,max=20"`
}

// UpdateSubjectRequest requisição de atualização de disciplina.
// O código é identidade imutável e não aparece aqui.
type UpdateSubjectRequest struct {
	Name     *string `json:"nome"     binding:"omitempty,min=2,max=100"`
	Course   *string `json:"curso"    binding:"omitempty,min=2,max=100"`
	Semester *int    `json:"semestre" binding:"omitempty,min=1,max=20"`
	IsActive *bool   `json:"ativo"`
}

// SubjectResponse informações da disciplina
type SubjectResponse struct {
	ID        string `json:"id"`
	Code      string `json:"codigo"`
	Name      string `json:"nome"`
	Course    string `json:"curso"`
	Semester  int    `json:"semestre"`
	IsActive  bool   `json:"ativo"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SubjectBrief resumo da disciplina (embutido em outras respostas)
type SubjectBrief struct {
	ID     string `json:"id"`
	Code   string `json:"codigo"`
	Name   string `json:"nome"`
	Course string `json:"curso"`
}
