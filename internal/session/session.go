package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/calendar"
	"github.com/m04kA/SMC-ClinicBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ClinicBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

// Deps зависимости сессии формы записи
type Deps struct {
	Catalog  Catalog
	Resolver Resolver
	Slots    SlotsUseCase
	Booking  BookingUseCase
	Calendar CalendarBuilder
	Renderer Renderer
	Logger   Logger
}

// Session одна форма записи: выбор пользователя и видимый месяц календаря.
// Операции сериализуются мьютексом; сетевой вызов отправки выполняется без блокировки.
type Session struct {
	mu sync.Mutex

	id           string
	deps         Deps
	timeProvider TimeProvider

	selection    Selection
	visibleMonth calendar.Month
	submitting   bool
	lastBooking  *create_booking.Response
	lastActive   time.Time
}

// New создает сессию с пустым выбором и текущим месяцем в календаре
func New(id string, deps Deps, tp TimeProvider) *Session {
	if tp == nil {
		tp = &RealTimeProvider{}
	}
	now := tp.Now()
	return &Session{
		id:           id,
		deps:         deps,
		timeProvider: tp,
		visibleMonth: calendar.MonthOf(now),
		lastActive:   now,
	}
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string {
	return s.id
}

// LastActive возвращает время последнего обращения
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Selection возвращает копию текущего выбора
func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// View возвращает текущее представление без изменения состояния
func (s *Session) View(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	return s.buildView(ctx)
}

// SetDoctor выбирает врача (пустой врач снимает выбор) и сбрасывает время.
// Точка входа для внешнего виджета выбора врача.
func (s *Session) SetDoctor(ctx context.Context, doctor domain.DoctorID) (View, error) {
	if doctor != "" && !s.deps.Catalog.Has(doctor) {
		return View{}, fmt.Errorf("%w: %s", ErrDoctorNotFound, doctor)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	s.selection.Doctor = doctor
	s.selection.Time = ""
	s.deps.Logger.Debug("Session %s: doctor set to %q", s.id, doctor)

	return s.changed(ctx)
}

// SetDate выбирает дату, сбрасывает время и показывает месяц этой даты.
// Нулевая дата снимает выбор; прошедшая дата и выходной отклоняются.
func (s *Session) SetDate(ctx context.Context, date time.Time) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	return s.setDate(ctx, date)
}

// ClickDay выбирает день видимого месяца, как клик по ячейке календаря
func (s *Session) ClickDay(ctx context.Context, day int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	if day < 1 || day > s.visibleMonth.DaysIn() {
		return View{}, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	return s.setDate(ctx, time.Date(s.visibleMonth.Year, s.visibleMonth.Month, day, 0, 0, 0, 0, time.UTC))
}

func (s *Session) setDate(ctx context.Context, date time.Time) (View, error) {
	if !date.IsZero() {
		date = domain.DateOnly(date)
		if !s.deps.Resolver.IsSelectableDate(date, s.timeProvider.Now()) {
			return View{}, fmt.Errorf("%w: %s", ErrDateNotSelectable, date.Format(domain.DateFormat))
		}
		s.visibleMonth = calendar.MonthOf(date)
	}

	s.selection.Date = date
	s.selection.Time = ""
	s.deps.Logger.Debug("Session %s: date set to %s", s.id, formatDate(date))

	return s.changed(ctx)
}

// SetTime выбирает время; оно должно входить в текущий список свободных слотов.
// Пустое время снимает выбор.
func (s *Session) SetTime(ctx context.Context, at types.TimeString) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	if at.IsZero() {
		s.selection.Time = ""
		return s.changed(ctx)
	}

	slots, err := s.deps.Slots.Execute(ctx, &get_available_slots.Request{
		Doctor: s.selection.Doctor,
		Date:   s.selection.Date,
	})
	if err != nil {
		return View{}, err
	}
	if slots.State != domain.SlotStateReady || !containsSlot(slots.Slots, at) {
		return View{}, fmt.Errorf("%w: %s", ErrSlotNotAvailable, at)
	}

	s.selection.Time = at
	s.deps.Logger.Debug("Session %s: time set to %s", s.id, at)

	return s.changed(ctx)
}

// PrevMonth листает календарь на месяц назад; выбор не меняется
func (s *Session) PrevMonth(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	s.visibleMonth = s.visibleMonth.Prev()
	return s.changed(ctx)
}

// NextMonth листает календарь на месяц вперед; выбор не меняется
func (s *Session) NextMonth(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touch()
	s.visibleMonth = s.visibleMonth.Next()
	return s.changed(ctx)
}

// Submit отправляет заявку с текущим выбором и полями формы (имя, возраст, сообщение).
// Пока отправка не завершилась, повторный Submit возвращает ErrSubmitInProgress, остальные операции доступны.
// После успеха выбор сбрасывается; при ошибке сохраняется.
func (s *Session) Submit(ctx context.Context, fields map[string]string) (*create_booking.Response, View, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, View{}, ErrSubmitInProgress
	}
	s.touch()
	s.submitting = true
	selection := s.selection
	s.mu.Unlock()

	resp, err := s.deps.Booking.Execute(ctx, &create_booking.Request{Fields: submissionFields(fields, selection)})

	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
	if err != nil {
		s.deps.Logger.Warn("Session %s: submit failed, selection preserved: %v", s.id, err)
		view, viewErr := s.changed(ctx)
		if viewErr != nil {
			return nil, View{}, viewErr
		}
		return nil, view, err
	}

	s.deps.Logger.Info("Session %s: submitted reference=%s", s.id, resp.Reference)
	s.selection = Selection{}
	s.lastBooking = resp

	view, err := s.changed(ctx)
	if err != nil {
		return resp, View{}, err
	}
	return resp, view, nil
}

// changed пересчитывает представление и передает его рендереру
func (s *Session) changed(ctx context.Context) (View, error) {
	view, err := s.buildView(ctx)
	if err != nil {
		return View{}, err
	}
	if s.deps.Renderer != nil {
		s.deps.Renderer.Render(view)
	}
	return view, nil
}

func (s *Session) buildView(ctx context.Context) (View, error) {
	slots, err := s.deps.Slots.Execute(ctx, &get_available_slots.Request{
		Doctor: s.selection.Doctor,
		Date:   s.selection.Date,
	})
	if err != nil {
		return View{}, err
	}

	return View{
		ID:           s.id,
		Selection:    s.selection,
		VisibleMonth: s.visibleMonth,
		Calendar:     s.deps.Calendar.Build(s.visibleMonth, s.selection.Doctor, s.selection.Date),
		SlotState:    slots.State,
		Selectable:   slots.Selectable,
		Slots:        slots.Slots,
		Submitting:   s.submitting,
		LastBooking:  s.lastBooking,
	}, nil
}

func (s *Session) touch() {
	s.lastActive = s.timeProvider.Now()
}

// submissionFields объединяет поля формы с выбором сессии; выбор имеет приоритет
func submissionFields(fields map[string]string, selection Selection) map[string]string {
	merged := make(map[string]string, len(fields)+3)
	for k, v := range fields {
		merged[k] = v
	}
	merged[domain.FieldDoctor] = string(selection.Doctor)
	merged[domain.FieldDate] = formatDate(selection.Date)
	merged[domain.FieldTime] = selection.Time.String()
	return merged
}

func containsSlot(slots []get_available_slots.Slot, at types.TimeString) bool {
	for _, slot := range slots {
		if slot.StartTime == at {
			return true
		}
	}
	return false
}

func formatDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(domain.DateFormat)
}
