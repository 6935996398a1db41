package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicBooking/internal/domain"
	storage "github.com/m04kA/SMC-ClinicBooking/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-ClinicBooking/pkg/types"
)

const (
	operationRead  = "read"
	operationWrite = "write"
)

// Service журнал уже занятых слотов (врач, дата) -> множество времен.
// Журнал единственный источник занятости; единственный писатель - отправка заявки.
type Service struct {
	store   Store
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр журнала бронирований
func NewService(store Store, metrics Metrics, logger Logger) *Service {
	return &Service{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// BookedSlots возвращает занятые слоты в порядке записи.
// Ошибка чтения не пробрасывается: недоступное хранилище означает "ничего не занято".
func (s *Service) BookedSlots(ctx context.Context, doctor domain.DoctorID, date time.Time) []types.TimeString {
	key := domain.BookingKey{Doctor: doctor, Date: domain.DateOnly(date)}

	slots, err := s.read(ctx, key)
	if err != nil {
		s.logger.Warn("BookedSlots: failed to read %s, treating as empty: %v", key, err)
		s.observeError(operationRead)
		return []types.TimeString{}
	}

	return slots
}

// IsBooked возвращает true, если время уже занято
func (s *Service) IsBooked(ctx context.Context, doctor domain.DoctorID, date time.Time, at types.TimeString) bool {
	for _, booked := range s.BookedSlots(ctx, doctor, date) {
		if booked == at {
			return true
		}
	}
	return false
}

// RecordBooking идемпотентно добавляет время в журнал.
// Повторная запись того же времени ничего не меняет.
// Ошибка чтения или записи логируется и возвращается как ErrStorageUnavailable; вызывающий решает сам, прерываться ли.
func (s *Service) RecordBooking(ctx context.Context, doctor domain.DoctorID, date time.Time, at types.TimeString) error {
	if doctor == "" || date.IsZero() || at.IsZero() {
		return fmt.Errorf("%w: doctor, date and time are required", ErrInvalidInput)
	}

	key := domain.BookingKey{Doctor: doctor, Date: domain.DateOnly(date)}

	// Без прочитанного списка запись затерла бы уже занятые времена
	slots, err := s.read(ctx, key)
	if err != nil {
		s.logger.Error("RecordBooking: failed to read %s, skipping write time=%s: %v", key, at, err)
		s.observeError(operationRead)
		return fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, key, err)
	}

	for _, booked := range slots {
		if booked == at {
			s.logger.Info("RecordBooking: %s already contains %s", key, at)
			return nil
		}
	}

	data, err := json.Marshal(append(slots, at))
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStorageUnavailable, key, err)
	}

	if err := s.store.Set(ctx, key.String(), data); err != nil {
		s.logger.Error("RecordBooking: failed to persist %s time=%s: %v", key, at, err)
		s.observeError(operationWrite)
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("RecordBooking: recorded %s time=%s", key, at)
	return nil
}

// read возвращает пустой список для отсутствующего ключа и для значения, которое не удалось разобрать
func (s *Service) read(ctx context.Context, key domain.BookingKey) ([]types.TimeString, error) {
	data, err := s.store.Get(ctx, key.String())
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []types.TimeString{}, nil
	}
	if err != nil {
		return nil, err
	}

	var slots []types.TimeString
	if err := json.Unmarshal(data, &slots); err != nil {
		s.logger.Warn("BookedSlots: corrupted value for %s, ignoring: %v", key, err)
		return []types.TimeString{}, nil
	}
	if slots == nil {
		slots = []types.TimeString{}
	}

	return slots, nil
}

func (s *Service) observeError(operation string) {
	if s.metrics != nil {
		s.metrics.ObserveLedgerError(operation)
	}
}
