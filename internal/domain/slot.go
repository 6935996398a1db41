package domain

// SlotState состояние списка слотов для пары (врач, дата)
type SlotState string

const (
	// SlotStateReady список рассчитан (может быть пустым)
	SlotStateReady SlotState = "ready"
	// SlotStateSelectionRequired врач или дата не выбраны; это не то же самое, что пустой список
	SlotStateSelectionRequired SlotState = "selection_required"
	// SlotStateDateUnavailable дата в прошлом или выходной
	SlotStateDateUnavailable SlotState = "date_unavailable"
)

// BookingOutcome результат отправки заявки, показанный как успех
type BookingOutcome string

const (
	// OutcomeConfirmed транспорт подтвердил заявку
	OutcomeConfirmed BookingOutcome = "confirmed"
	// OutcomeOffline транспорт не настроен, заявка записана только в журнал
	OutcomeOffline BookingOutcome = "offline"
	// OutcomeRejectedAccepted транспорт ответил неуспешным статусом, оптимистичный режим принял заявку
	OutcomeRejectedAccepted BookingOutcome = "rejected_accepted"
)

// CommitMode политика обработки неуспешного ответа транспорта
type CommitMode string

const (
	CommitModeOptimistic CommitMode = "optimistic"
	CommitModeStrict     CommitMode = "strict"
)
