package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/infra/storage/catalog"
	storage "github.com/m04kA/SMC-ClinicBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/availability"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/calendar"
	"github.com/m04kA/SMC-ClinicBooking/internal/service/ledger"
	"github.com/m04kA/SMC-ClinicBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ClinicBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClinicBooking/pkg/logger"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

const (
	pediatrics domain.DoctorID = "pediatrics-captaincare"
	cardiology domain.DoctorID = "cardiology-hearthero"
)

var (
	now    = time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)
	monday = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type recordingRenderer struct{ views []View }

func (r *recordingRenderer) Render(view View) { r.views = append(r.views, view) }

type stubBooking struct {
	entered chan struct{}
	release chan struct{}
	fields  map[string]string
	err     error
}

func (b *stubBooking) Execute(_ context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	b.fields = req.Fields
	if b.entered != nil {
		b.entered <- struct{}{}
		<-b.release
	}
	if b.err != nil {
		return nil, b.err
	}
	return &create_booking.Response{Reference: "ref", Outcome: domain.OutcomeOffline}, nil
}

type fixture struct {
	deps     Deps
	ledger   *ledger.Service
	renderer *recordingRenderer
	clock    *clock
}

func newFixture(t *testing.T, booking BookingUseCase) *fixture {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	log := logger.NewNop()
	c := &clock{now: now}
	bookings := ledger.NewService(storage.NewMemoryStore(), nil, log)
	resolver := availability.NewService(cat, bookings)
	slots := get_available_slots.NewUseCase(cat, resolver, nil, log).WithTimeProvider(c)
	if booking == nil {
		booking = create_booking.NewUseCase(cat, resolver, bookings, nil, nil,
			create_booking.Options{VerifySlot: true}, log).WithTimeProvider(c)
	}
	renderer := &recordingRenderer{}

	return &fixture{
		deps: Deps{
			Catalog:  cat,
			Resolver: resolver,
			Slots:    slots,
			Booking:  booking,
			Calendar: calendar.NewService(resolver, calendar.LayoutWeek).WithTimeProvider(c),
			Renderer: renderer,
			Logger:   log,
		},
		ledger:   bookings,
		renderer: renderer,
		clock:    c,
	}
}

func (f *fixture) session() *Session {
	return New("s-1", f.deps, f.clock)
}

func startTimes(slots []get_available_slots.Slot) []types.TimeString {
	times := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.StartTime)
	}
	return times
}

func form() map[string]string {
	return map[string]string{"name": "Ann Lee", "age": "7", "message": "hi"}
}

func TestSession_InitialView(t *testing.T) {
	fx := newFixture(t, nil)
	s := fx.session()

	view, err := s.View(context.Background())

	require.NoError(t, err)
	assert.Equal(t, calendar.Month{Year: 2026, Month: time.October}, view.VisibleMonth)
	assert.Equal(t, domain.SlotStateSelectionRequired, view.SlotState)
	assert.Empty(t, view.Slots)
	assert.Empty(t, fx.renderer.views, "reading the view does not render")
}

func TestSession_SelectionFlow(t *testing.T) {
	fx := newFixture(t, nil)
	s := fx.session()
	ctx := context.Background()

	_, err := s.SetDoctor(ctx, pediatrics)
	require.NoError(t, err)

	view, err := s.SetDate(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotStateReady, view.SlotState)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00"}, startTimes(view.Slots))

	view, err = s.SetTime(ctx, "10:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), view.Selection.Time)
	assert.True(t, view.Selection.IsComplete())

	assert.Len(t, fx.renderer.views, 3)
}

func TestSession_ChangingDoctorOrDateClearsTime(t *testing.T) {
	ctx := context.Background()

	t.Run("doctor", func(t *testing.T) {
		fx := newFixture(t, nil)
		s := fx.session()
		_, _ = s.SetDoctor(ctx, pediatrics)
		_, _ = s.SetDate(ctx, monday)
		_, err := s.SetTime(ctx, "09:00")
		require.NoError(t, err)

		view, err := s.SetDoctor(ctx, cardiology)

		require.NoError(t, err)
		assert.True(t, view.Selection.Time.IsZero())
		assert.Equal(t, monday, view.Selection.Date)
	})

	t.Run("same doctor again", func(t *testing.T) {
		fx := newFixture(t, nil)
		s := fx.session()
		_, _ = s.SetDoctor(ctx, pediatrics)
		_, _ = s.SetDate(ctx, monday)
		_, _ = s.SetTime(ctx, "09:00")

		view, err := s.SetDoctor(ctx, pediatrics)

		require.NoError(t, err)
		assert.True(t, view.Selection.Time.IsZero())
	})

	t.Run("date by click", func(t *testing.T) {
		fx := newFixture(t, nil)
		s := fx.session()
		_, _ = s.SetDoctor(ctx, pediatrics)
		_, _ = s.SetDate(ctx, monday)
		_, _ = s.SetTime(ctx, "09:00")

		view, err := s.ClickDay(ctx, 21)

		require.NoError(t, err)
		assert.True(t, view.Selection.Time.IsZero())
		assert.Equal(t, 21, view.Selection.Date.Day())
		for _, c := range view.Calendar.Cells {
			assert.Equal(t, c.Day == 21, c.Selected, "day %d", c.Day)
		}
	})
}

func TestSession_RejectsInvalidSelections(t *testing.T) {
	fx := newFixture(t, nil)
	s := fx.session()
	ctx := context.Background()

	_, err := s.SetDoctor(ctx, "astrology-stargazer")
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = s.SetDate(ctx, now.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrDateNotSelectable)

	_, err = s.ClickDay(ctx, 24)
	assert.ErrorIs(t, err, ErrDateNotSelectable, "saturday")

	_, err = s.ClickDay(ctx, 32)
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = s.SetTime(ctx, "09:00")
	assert.ErrorIs(t, err, ErrSlotNotAvailable, "no doctor or date yet")

	_, _ = s.SetDoctor(ctx, pediatrics)
	_, _ = s.SetDate(ctx, monday)
	require.NoError(t, fx.ledger.RecordBooking(ctx, pediatrics, monday, "09:30"))

	_, err = s.SetTime(ctx, "09:30")
	assert.ErrorIs(t, err, ErrSlotNotAvailable, "already booked")

	_, err = s.SetTime(ctx, "13:00")
	assert.ErrorIs(t, err, ErrSlotNotAvailable, "not offered")

	assert.True(t, s.Selection().Time.IsZero())
}

func TestSession_MonthPagingKeepsSelection(t *testing.T) {
	fx := newFixture(t, nil)
	s := fx.session()
	ctx := context.Background()
	_, _ = s.SetDoctor(ctx, pediatrics)
	_, _ = s.SetDate(ctx, monday)
	_, _ = s.SetTime(ctx, "09:00")

	view, err := s.NextMonth(ctx)
	require.NoError(t, err)
	view, err = s.NextMonth(ctx)
	require.NoError(t, err)
	view, err = s.NextMonth(ctx)
	require.NoError(t, err)

	assert.Equal(t, calendar.Month{Year: 2027, Month: time.January}, view.VisibleMonth)
	assert.Equal(t, Selection{Doctor: pediatrics, Date: monday, Time: "09:00"}, view.Selection)
	for _, c := range view.Calendar.Cells {
		assert.False(t, c.Selected)
	}

	view, err = s.PrevMonth(ctx)
	require.NoError(t, err)
	assert.Equal(t, calendar.Month{Year: 2026, Month: time.December}, view.VisibleMonth)
}

func TestSession_SubmitSuccessResetsSelection(t *testing.T) {
	fx := newFixture(t, nil)
	s := fx.session()
	ctx := context.Background()
	_, _ = s.SetDoctor(ctx, pediatrics)
	_, _ = s.SetDate(ctx, monday)
	_, _ = s.SetTime(ctx, "09:30")

	resp, view, err := s.Submit(ctx, form())

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeOffline, resp.Outcome)
	assert.Equal(t, Selection{}, view.Selection)
	assert.Equal(t, resp, view.LastBooking)
	assert.True(t, fx.ledger.IsBooked(ctx, pediatrics, monday, "09:30"))

	view, err = s.SetDoctor(ctx, pediatrics)
	require.NoError(t, err)
	view, err = s.SetDate(ctx, monday)
	require.NoError(t, err)
	assert.NotContains(t, startTimes(view.Slots), types.TimeString("09:30"))
}

func TestSession_SubmitIncompleteFailsValidation(t *testing.T) {
	fx := newFixture(t, nil)
	s := fx.session()
	ctx := context.Background()
	_, _ = s.SetDoctor(ctx, pediatrics)
	_, _ = s.SetDate(ctx, monday)

	_, view, err := s.Submit(ctx, form())

	require.ErrorIs(t, err, create_booking.ErrInvalidInput)
	assert.Equal(t, pediatrics, view.Selection.Doctor)
	assert.Empty(t, fx.ledger.BookedSlots(ctx, pediatrics, monday))
}

func TestSession_SubmitTransportFailurePreservesSelection(t *testing.T) {
	booking := &stubBooking{err: fmt.Errorf("%w: connection refused", create_booking.ErrTransportFailure)}
	fx := newFixture(t, booking)
	s := fx.session()
	ctx := context.Background()
	_, _ = s.SetDoctor(ctx, pediatrics)
	_, _ = s.SetDate(ctx, monday)
	_, _ = s.SetTime(ctx, "10:00")

	resp, view, err := s.Submit(ctx, form())

	require.ErrorIs(t, err, create_booking.ErrTransportFailure)
	assert.Nil(t, resp)
	assert.Equal(t, Selection{Doctor: pediatrics, Date: monday, Time: "10:00"}, view.Selection)
	assert.False(t, view.Submitting)

	assert.Equal(t, "Ann Lee", booking.fields["name"])
	assert.Equal(t, string(pediatrics), booking.fields["doctor"])
	assert.Equal(t, "2026-10-19", booking.fields["date"])
	assert.Equal(t, "10:00", booking.fields["time"])
}

func TestSession_SubmitInProgress(t *testing.T) {
	booking := &stubBooking{entered: make(chan struct{}), release: make(chan struct{})}
	fx := newFixture(t, booking)
	s := fx.session()
	ctx := context.Background()
	_, _ = s.SetDoctor(ctx, pediatrics)
	_, _ = s.SetDate(ctx, monday)
	_, _ = s.SetTime(ctx, "10:00")

	done := make(chan error, 1)
	go func() {
		_, _, err := s.Submit(ctx, form())
		done <- err
	}()
	<-booking.entered

	_, _, err := s.Submit(ctx, form())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	view, err := s.NextMonth(ctx)
	require.NoError(t, err, "other events stay available while pending")
	assert.True(t, view.Submitting)

	close(booking.release)
	require.NoError(t, <-done)
	assert.Equal(t, Selection{}, s.Selection())
}

func TestRegistry_CreateGetEvict(t *testing.T) {
	fx := newFixture(t, nil)
	registry := NewRegistry(fx.deps, time.Minute).WithTimeProvider(fx.clock)

	first := registry.Create()
	got, err := registry.Get(first.ID())
	require.NoError(t, err)
	assert.Same(t, first, got)

	fx.clock.now = now.Add(45 * time.Second)
	second := registry.Create()
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, 2, registry.Len())

	fx.clock.now = now.Add(90 * time.Second)
	_, err = registry.Get(first.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = registry.Get(second.ID())
	require.NoError(t, err)

	registry.Delete(second.ID())
	_, err = registry.Get(second.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
