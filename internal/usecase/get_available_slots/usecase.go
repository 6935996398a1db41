package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
)

// UseCase use case для получения доступных слотов врача на дату
type UseCase struct {
	catalog      Catalog
	resolver     Resolver
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, resolver Resolver, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		resolver:     resolver,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов.
// Невыбранный врач или дата дают состояние selection_required, а не пустой список "ready".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp := &Response{
		Doctor: req.Doctor,
		Date:   req.Date,
		Slots:  []Slot{},
	}

	// 1. Проверяем врача, если он выбран
	if req.Doctor != "" && !uc.catalog.Has(req.Doctor) {
		uc.logger.Warn("GetAvailableSlots: doctor %s not found", req.Doctor)
		return nil, ErrDoctorNotFound
	}

	// 2. Дата не выбрана: выбираемость не определена
	if req.Date.IsZero() {
		resp.State = domain.SlotStateSelectionRequired
		return resp, nil
	}

	resp.Date = domain.DateOnly(req.Date)
	resp.Selectable = uc.resolver.IsSelectableDate(resp.Date, uc.timeProvider.Now())

	// 3. Врач не выбран
	if req.Doctor == "" {
		resp.State = domain.SlotStateSelectionRequired
		return resp, nil
	}

	// 4. Прошедшая дата или выходной
	if !resp.Selectable {
		uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s is not selectable",
			req.Doctor, resp.Date.Format(domain.DateFormat))
		resp.State = domain.SlotStateDateUnavailable
		return resp, nil
	}

	// 5. Свободные слоты
	available := uc.resolver.AvailableSlots(ctx, req.Doctor, resp.Date)
	resp.State = domain.SlotStateReady
	resp.Slots = toSlots(available)

	if uc.metrics != nil {
		uc.metrics.ObserveSlotsReturned(len(resp.Slots))
	}

	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s, returned %d slots",
		req.Doctor, resp.Date.Format(domain.DateFormat), len(resp.Slots))

	return resp, nil
}
