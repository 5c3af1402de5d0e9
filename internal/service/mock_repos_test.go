package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/CauehCraft/AgendaAberta/internal/model"
	"github.com/CauehCraft/AgendaAberta/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	// createErr simula falha do insert (ex.: índice único no banco)
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct {
	subjects map[string]*model.Subject
	// createErr simula falha do insert (ex.: índice único no banco)
	createErr error
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if m.createErr != nil {
		return m.createErr
	}
	if subject.SubjectID == "" {
		subject.SubjectID = "subj-" + subject.Code
	}
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id string) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) GetByCode(_ context.Context, code string) (*model.Subject, error) {
	for _, s := range m.subjects {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context) ([]model.Subject, error) {
	var result []model.Subject
	for _, s := range m.subjects {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *model.Subject) error {
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id string) error {
	delete(m.subjects, id)
	return nil
}

// ── Mock SlotRepository ──
//
// Mantém referências aos mocks de usuário e disciplina para simular os
// Preloads de Owner e Subject feitos pela implementação GORM.

type mockSlotRepo struct {
	slots    map[string]*model.Slot
	users    *mockUserRepo
	subjects *mockSubjectRepo
}

func newMockSlotRepo(users *mockUserRepo, subjects *mockSubjectRepo) *mockSlotRepo {
	return &mockSlotRepo{
		slots:    make(map[string]*model.Slot),
		users:    users,
		subjects: subjects,
	}
}

func (m *mockSlotRepo) preload(slot model.Slot) model.Slot {
	if m.users != nil {
		if u, ok := m.users.users[slot.OwnerID]; ok {
			slot.Owner = u
		}
	}
	if m.subjects != nil {
		if s, ok := m.subjects.subjects[slot.SubjectID]; ok {
			slot.Subject = s
		}
	}
	return slot
}

func (m *mockSlotRepo) Create(_ context.Context, slot *model.Slot) error {
	if slot.SlotID == "" {
		slot.SlotID = fmt.Sprintf("slot-%d", len(m.slots)+1)
	}
	m.slots[slot.SlotID] = slot
	return nil
}

func (m *mockSlotRepo) GetByID(_ context.Context, id string) (*model.Slot, error) {
	if s, ok := m.slots[id]; ok {
		loaded := m.preload(*s)
		return &loaded, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSlotRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Slot, error) {
	var result []model.Slot
	for _, s := range m.slots {
		if s.OwnerID == ownerID {
			result = append(result, m.preload(*s))
		}
	}
	sortSlots(result)
	return result, nil
}

func (m *mockSlotRepo) ListActiveByOwnerAndWeekday(_ context.Context, ownerID, weekday string) ([]model.Slot, error) {
	var result []model.Slot
	for _, s := range m.slots {
		if s.OwnerID == ownerID && s.Weekday == weekday && s.IsActive {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSlotRepo) ListActiveByLocationAndWeekday(_ context.Context, location, weekday string) ([]model.Slot, error) {
	var result []model.Slot
	for _, s := range m.slots {
		if s.Location == location && s.Weekday == weekday && s.IsActive {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSlotRepo) Search(_ context.Context, filter repository.SlotSearchFilter) ([]model.Slot, error) {
	var result []model.Slot
	for _, s := range m.slots {
		if !s.IsActive {
			continue
		}
		loaded := m.preload(*s)
		if !matchesFilter(loaded, filter) {
			continue
		}
		result = append(result, loaded)
	}
	sortSlots(result)
	return result, nil
}

func matchesFilter(slot model.Slot, filter repository.SlotSearchFilter) bool {
	if filter.SubjectID != "" && slot.SubjectID != filter.SubjectID {
		return false
	}
	if filter.Weekday != "" && slot.Weekday != filter.Weekday {
		return false
	}
	if filter.Course != "" {
		if slot.Subject == nil || !containsFold(slot.Subject.Course, filter.Course) {
			return false
		}
	}
	if filter.OwnerName != "" {
		if slot.Owner == nil || !containsFold(slot.Owner.Name, filter.OwnerName) {
			return false
		}
	}
	if filter.Search != "" {
		hit := containsFold(slot.Location, filter.Search)
		if slot.Subject != nil {
			hit = hit || containsFold(slot.Subject.Name, filter.Search) || containsFold(slot.Subject.Code, filter.Search)
		}
		if slot.Owner != nil {
			hit = hit || containsFold(slot.Owner.Name, filter.Search)
		}
		if !hit {
			return false
		}
	}
	switch filter.Periodo {
	case repository.PeriodoManha:
		if slot.StartTime >= "12:00" {
			return false
		}
	case repository.PeriodoTarde:
		if slot.StartTime < "12:00" || slot.StartTime >= "18:00" {
			return false
		}
	case repository.PeriodoNoite:
		if slot.StartTime < "18:00" {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortSlots(slots []model.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Weekday != slots[j].Weekday {
			return slots[i].Weekday < slots[j].Weekday
		}
		if slots[i].StartTime != slots[j].StartTime {
			return slots[i].StartTime < slots[j].StartTime
		}
		return slots[i].SlotID < slots[j].SlotID
	})
}

func (m *mockSlotRepo) Update(_ context.Context, slot *model.Slot) error {
	m.slots[slot.SlotID] = slot
	return nil
}

func (m *mockSlotRepo) Delete(_ context.Context, id string) error {
	delete(m.slots, id)
	return nil
}

// ── Mock BookingRepository ──

type mockBookingRepo struct {
	bookings map[string]*model.Booking
	slots    *mockSlotRepo
}

func newMockBookingRepo(slots *mockSlotRepo) *mockBookingRepo {
	return &mockBookingRepo{
		bookings: make(map[string]*model.Booking),
		slots:    slots,
	}
}

func (m *mockBookingRepo) preload(booking model.Booking) model.Booking {
	if m.slots != nil {
		if s, ok := m.slots.slots[booking.SlotID]; ok {
			loaded := m.slots.preload(*s)
			booking.Slot = &loaded
		}
	}
	if m.slots != nil && m.slots.users != nil {
		if u, ok := m.slots.users.users[booking.StudentID]; ok {
			booking.Student = u
		}
	}
	return booking
}

func (m *mockBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	if booking.BookingID == "" {
		booking.BookingID = fmt.Sprintf("booking-%d", len(m.bookings)+1)
	}
	m.bookings[booking.BookingID] = booking
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*model.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		loaded := m.preload(*b)
		return &loaded, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) ListByStudent(_ context.Context, studentID string) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		if b.StudentID == studentID {
			result = append(result, m.preload(*b))
		}
	}
	sortBookings(result)
	return result, nil
}

func (m *mockBookingRepo) ListBySlotOwner(_ context.Context, ownerID string) ([]model.Booking, error) {
	var result []model.Booking
	for _, b := range m.bookings {
		slot, ok := m.slots.slots[b.SlotID]
		if !ok || slot.OwnerID != ownerID {
			continue
		}
		result = append(result, m.preload(*b))
	}
	sortBookings(result)
	return result, nil
}

func (m *mockBookingRepo) CountBySlot(_ context.Context, slotID string) (int64, error) {
	var count int64
	for _, b := range m.bookings {
		if b.SlotID == slotID {
			count++
		}
	}
	return count, nil
}

func sortBookings(bookings []model.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookingID < bookings[j].BookingID
	})
}

func (m *mockBookingRepo) Update(_ context.Context, booking *model.Booking) error {
	m.bookings[booking.BookingID] = booking
	return nil
}

func (m *mockBookingRepo) Delete(_ context.Context, id string) error {
	delete(m.bookings, id)
	return nil
}

// ── Agregação dos mocks ──

// testRepos agrupa os mocks para facilitar o seed de dados nos testes
type testRepos struct {
	user    *mockUserRepo
	subject *mockSubjectRepo
	slot    *mockSlotRepo
	booking *mockBookingRepo
}

func newTestRepos() *testRepos {
	users := newMockUserRepo()
	subjects := newMockSubjectRepo()
	slots := newMockSlotRepo(users, subjects)
	bookings := newMockBookingRepo(slots)
	return &testRepos{
		user:    users,
		subject: subjects,
		slot:    slots,
		booking: bookings,
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		User:    r.user,
		Subject: r.subject,
		Slot:    r.slot,
		Booking: r.booking,
	}
}
