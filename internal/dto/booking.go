package dto

// ── Módulo de agendamentos ──

// CreateBookingRequest requisição de registro de interesse em um horário.
// Date em branco assume a data de hoje.
type CreateBookingRequest struct {
	SlotID string `json:"horario_id"  binding:"required,uuid"`
	Date   string `json:"data"        binding:"omitempty,datetime=2006-01-02"`
	Notes  string `json:"observacoes" binding:"omitempty,max=500"`
}

// UpdateBookingRequest requisição de atualização de agendamento
type UpdateBookingRequest struct {
	Status *string `json:"status"      binding:"omitempty,oneof=solicitado confirmado cancelado concluido"`
	Notes  *string `json:"observacoes" binding:"omitempty,max=500"`
}

// BookingResponse informações do agendamento
type BookingResponse struct {
	ID        string        `json:"id"`
	Date      string        `json:"data"`
	Status    string        `json:"status"`
	Notes     string        `json:"observacoes,omitempty"`
	Slot      *SlotResponse `json:"horario,omitempty"`
	Student   *OwnerBrief   `json:"aluno,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}
