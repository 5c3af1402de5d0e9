package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/CauehCraft/AgendaAberta/internal/dto"
	"github.com/CauehCraft/AgendaAberta/internal/model"
)

func setupTestBookingService() (BookingService, *testRepos) {
	repos := newTestRepos()
	svc := NewBookingService(repos.toRepository(), zap.NewNop())
	svc.(*bookingService).now = func() time.Time { return testNow }
	return svc, repos
}

// seedBookingData semeia os usuários, a disciplina e um horário publicado
func seedBookingData(repos *testRepos) {
	seedSlotData(repos)
	seedUpcomingSlot(repos, "slot-1", "prof-1")
}

// ════════════════════════════════════════════════════════════
// Testes de Create
// ════════════════════════════════════════════════════════════

func TestBookingService_Create_Success(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)

	resp, err := svc.Create(context.Background(), &dto.CreateBookingRequest{
		SlotID: "slot-1",
		Notes:  "dúvidas sobre a segunda lista",
	}, "aluno-1", model.RoleAluno)
	if err != nil {
		t.Fatalf("Create deveria ter sucesso: %v", err)
	}

	if resp.Status != model.BookingSolicitado {
		t.Errorf("esperado status=%s, obtido=%s", model.BookingSolicitado, resp.Status)
	}
	// Data em branco assume a data de referência
	if resp.Date != testNow.Format("2006-01-02") {
		t.Errorf("esperado data=%s, obtido=%s", testNow.Format("2006-01-02"), resp.Date)
	}
	if resp.Slot == nil || resp.Slot.ID != "slot-1" {
		t.Errorf("horário embutido incorreto: %+v", resp.Slot)
	}
	if resp.Student == nil || resp.Student.ID != "aluno-1" {
		t.Errorf("aluno embutido incorreto: %+v", resp.Student)
	}
}

func TestBookingService_Create_ExplicitDate(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)

	resp, err := svc.Create(context.Background(), &dto.CreateBookingRequest{
		SlotID: "slot-1",
		Date:   "2026-04-17",
	}, "aluno-1", model.RoleAluno)
	if err != nil {
		t.Fatalf("Create deveria ter sucesso: %v", err)
	}
	if resp.Date != "2026-04-17" {
		t.Errorf("esperado data=2026-04-17, obtido=%s", resp.Date)
	}
}

func TestBookingService_Create_ProfessorForbidden(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)

	_, err := svc.Create(context.Background(), &dto.CreateBookingRequest{SlotID: "slot-1"}, "prof-1", model.RoleProfessor)
	if !errors.Is(err, ErrStudentRoleRequired) {
		t.Errorf("esperado ErrStudentRoleRequired, obtido: %v", err)
	}
}

func TestBookingService_Create_SlotNotFound(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)

	_, err := svc.Create(context.Background(), &dto.CreateBookingRequest{SlotID: "inexistente"}, "aluno-1", model.RoleAluno)
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("esperado ErrSlotNotFound, obtido: %v", err)
	}
}

func TestBookingService_Create_MultipleStudentsSameSlot(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)
	repos.user.users["aluno-2"] = &model.User{
		UserID: "aluno-2", Name: "Maria Souza", Username: "maria",
		Role: model.RoleAluno, IsActive: true,
	}

	if _, err := svc.Create(context.Background(), &dto.CreateBookingRequest{SlotID: "slot-1"}, "aluno-1", model.RoleAluno); err != nil {
		t.Fatalf("primeiro interesse deveria ter sucesso: %v", err)
	}
	if _, err := svc.Create(context.Background(), &dto.CreateBookingRequest{SlotID: "slot-1"}, "aluno-2", model.RoleAluno); err != nil {
		t.Fatalf("interesse de outro aluno no mesmo horário deveria ter sucesso: %v", err)
	}

	count, _ := repos.booking.CountBySlot(context.Background(), "slot-1")
	if count != 2 {
		t.Errorf("esperado 2 agendamentos no horário, obtido: %d", count)
	}
}

// ════════════════════════════════════════════════════════════
// Testes de List
// ════════════════════════════════════════════════════════════

func seedBookings(repos *testRepos) {
	repos.booking.bookings["b-1"] = &model.Booking{
		BookingID: "b-1", StudentID: "aluno-1", SlotID: "slot-1",
		Date: testNow, Status: model.BookingSolicitado,
	}
	repos.booking.bookings["b-2"] = &model.Booking{
		BookingID: "b-2", StudentID: "aluno-1", SlotID: "slot-2",
		Date: testNow, Status: model.BookingConfirmado,
	}
}

func TestBookingService_List_AlunoSeesOwn(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)
	seedUpcomingSlot(repos, "slot-2", "mon-1")
	seedBookings(repos)

	result, err := svc.List(context.Background(), "aluno-1", model.RoleAluno)
	if err != nil {
		t.Fatalf("List deveria ter sucesso: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("esperado 2 agendamentos do aluno, obtido: %d", len(result))
	}
}

func TestBookingService_List_OwnerSeesSlotBookings(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)
	seedUpcomingSlot(repos, "slot-2", "mon-1")
	seedBookings(repos)

	result, err := svc.List(context.Background(), "prof-1", model.RoleProfessor)
	if err != nil {
		t.Fatalf("List deveria ter sucesso: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("esperado 1 agendamento sobre horários do professor, obtido: %d", len(result))
	}
	if result[0].ID != "b-1" {
		t.Errorf("esperado agendamento b-1, obtido: %s", result[0].ID)
	}
}

// ════════════════════════════════════════════════════════════
// Testes de acesso e atualização
// ════════════════════════════════════════════════════════════

func TestBookingService_GetByID_AccessDenied(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)
	seedUpcomingSlot(repos, "slot-2", "mon-1")
	seedBookings(repos)

	// mon-1 não é o aluno nem o responsável por slot-1
	_, err := svc.GetByID(context.Background(), "b-1", "mon-1")
	if !errors.Is(err, ErrBookingAccessDenied) {
		t.Errorf("esperado ErrBookingAccessDenied, obtido: %v", err)
	}
}

func TestBookingService_Update_OwnerConfirms(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)
	seedUpcomingSlot(repos, "slot-2", "mon-1")
	seedBookings(repos)

	status := model.BookingConfirmado
	resp, err := svc.Update(context.Background(), "b-1", &dto.UpdateBookingRequest{Status: &status}, "prof-1")
	if err != nil {
		t.Fatalf("responsável pelo horário deveria poder confirmar: %v", err)
	}
	if resp.Status != model.BookingConfirmado {
		t.Errorf("esperado status=confirmado, obtido=%s", resp.Status)
	}
}

func TestBookingService_Update_StudentCancels(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)
	seedUpcomingSlot(repos, "slot-2", "mon-1")
	seedBookings(repos)

	status := model.BookingCancelado
	resp, err := svc.Update(context.Background(), "b-1", &dto.UpdateBookingRequest{Status: &status}, "aluno-1")
	if err != nil {
		t.Fatalf("aluno deveria poder cancelar o próprio agendamento: %v", err)
	}
	if resp.Status != model.BookingCancelado {
		t.Errorf("esperado status=cancelado, obtido=%s", resp.Status)
	}
}

func TestBookingService_Update_StudentCannotConfirm(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)
	seedUpcomingSlot(repos, "slot-2", "mon-1")
	seedBookings(repos)

	status := model.BookingConfirmado
	_, err := svc.Update(context.Background(), "b-1", &dto.UpdateBookingRequest{Status: &status}, "aluno-1")
	if !errors.Is(err, ErrBookingAccessDenied) {
		t.Errorf("esperado ErrBookingAccessDenied para aluno confirmando, obtido: %v", err)
	}
}

func TestBookingService_Update_InvalidStatus(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)
	seedUpcomingSlot(repos, "slot-2", "mon-1")
	seedBookings(repos)

	status := "pendente"
	_, err := svc.Update(context.Background(), "b-1", &dto.UpdateBookingRequest{Status: &status}, "aluno-1")
	if !errors.Is(err, ErrInvalidBookingStatus) {
		t.Errorf("esperado ErrInvalidBookingStatus, obtido: %v", err)
	}
}

func TestBookingService_Delete_OnlyStudent(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)
	seedUpcomingSlot(repos, "slot-2", "mon-1")
	seedBookings(repos)

	if err := svc.Delete(context.Background(), "b-1", "prof-1"); !errors.Is(err, ErrBookingAccessDenied) {
		t.Errorf("responsável não deveria poder remover o agendamento: %v", err)
	}
	if err := svc.Delete(context.Background(), "b-1", "aluno-1"); err != nil {
		t.Fatalf("aluno deveria poder remover o próprio agendamento: %v", err)
	}
	if _, ok := repos.booking.bookings["b-1"]; ok {
		t.Error("agendamento deveria ter sido removido")
	}
}

func TestBookingService_GetByID_NotFound(t *testing.T) {
	svc, repos := setupTestBookingService()
	seedBookingData(repos)

	_, err := svc.GetByID(context.Background(), "inexistente", "aluno-1")
	if !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("esperado ErrBookingNotFound, obtido: %v", err)
	}
}
