package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	"github.com/m04kA/SMC-ClinicBooking/internal/integrations/appointments"
)

const (
	outcomeTransportFailure = "transport_failure"
	outcomeRejected         = "rejected"
)

// UseCase use case отправки заявки на прием.
// Единственный писатель журнала бронирований.
type UseCase struct {
	catalog      Catalog
	resolver     Resolver
	ledger       Ledger
	transport    Transport
	metrics      Metrics
	options      Options
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// transport может быть nil: тогда заявка только записывается в журнал (офлайн-режим).
func NewUseCase(
	catalog Catalog,
	resolver Resolver,
	ledger Ledger,
	transport Transport,
	metrics Metrics,
	options Options,
	logger Logger,
) *UseCase {
	if options.Mode == "" {
		options.Mode = domain.CommitModeOptimistic
	}
	return &UseCase{
		catalog:      catalog,
		resolver:     resolver,
		ledger:       ledger,
		transport:    transport,
		metrics:      metrics,
		options:      options,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case отправки заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация формы: при ошибке нет ни вызова транспорта, ни записи в журнал
	appointment, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: doctor=%s, date=%s, time=%s",
		appointment.Doctor, appointment.Date.Format(domain.DateFormat), appointment.Time)

	// 2. Врач должен быть в каталоге
	if !uc.catalog.Has(appointment.Doctor) {
		uc.logger.Warn("CreateBooking: doctor %s not found", appointment.Doctor)
		return nil, ErrDoctorNotFound
	}

	// 3. Повторная проверка слота для клиентов, обходящих форму
	if uc.options.VerifySlot {
		if err := uc.verifySlot(ctx, appointment); err != nil {
			uc.logger.Warn("CreateBooking: slot verification failed: %v", err)
			return nil, err
		}
	}

	reference := uuid.New().String()

	// 4. Отправка заявки
	outcome, err := uc.submit(ctx, appointment, reference)
	if err != nil {
		return nil, err
	}

	// 5. Запись в журнал; сбой хранилища не отменяет успеха
	recorded := true
	if err := uc.ledger.RecordBooking(ctx, appointment.Doctor, appointment.Date, appointment.Time); err != nil {
		uc.logger.Error("CreateBooking: reference=%s accepted but ledger write failed: %v", reference, err)
		recorded = false
	}

	uc.observe(string(outcome))
	uc.logger.Info("CreateBooking: reference=%s completed with outcome=%s", reference, outcome)

	return &Response{
		Reference: reference,
		Outcome:   outcome,
		Doctor:    appointment.Doctor,
		Date:      appointment.Date,
		Time:      appointment.Time,
		Message:   SuccessMessage,
		Recorded:  recorded,
	}, nil
}

func (uc *UseCase) verifySlot(ctx context.Context, appointment *domain.Appointment) error {
	if !uc.resolver.IsSelectableDate(appointment.Date, uc.timeProvider.Now()) {
		return fmt.Errorf("%w: %s", ErrDateNotSelectable, appointment.Date.Format(domain.DateFormat))
	}
	if !uc.resolver.IsSlotAvailable(ctx, appointment.Doctor, appointment.Date, appointment.Time) {
		return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, appointment.Date.Format(domain.DateFormat), appointment.Time)
	}
	return nil
}

// submit применяет политику обработки исхода транспорта
func (uc *UseCase) submit(ctx context.Context, appointment *domain.Appointment, reference string) (domain.BookingOutcome, error) {
	if uc.transport == nil {
		uc.logger.Info("CreateBooking: reference=%s, no transport configured, recording offline", reference)
		return domain.OutcomeOffline, nil
	}

	ack, err := uc.transport.SubmitAppointment(ctx, appointment.Fields(), reference)
	switch {
	case err == nil:
		if ack != nil {
			uc.logger.Info("CreateBooking: reference=%s acknowledged: %v", reference, ack.Payload)
		}
		return domain.OutcomeConfirmed, nil

	case errors.Is(err, appointments.ErrRejected):
		if uc.options.Mode == domain.CommitModeStrict {
			uc.logger.Warn("CreateBooking: reference=%s rejected in strict mode: %v", reference, err)
			uc.observe(outcomeRejected)
			return "", fmt.Errorf("%w: %v", ErrTransportRejected, err)
		}
		uc.logger.Warn("CreateBooking: reference=%s rejected, accepting optimistically: %v", reference, err)
		return domain.OutcomeRejectedAccepted, nil

	default:
		uc.logger.Error("CreateBooking: reference=%s transport failure: %v", reference, err)
		uc.observe(outcomeTransportFailure)
		return "", fmt.Errorf("%w: %v", ErrTransportFailure, err)
	}
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(outcome)
	}
}
