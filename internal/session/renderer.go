package session

// LogRenderer пишет сводку представления в лог.
// Используется, когда внешнего виджета календаря нет.
type LogRenderer struct {
	Log Logger
}

// Render логирует выбор и состояние слотов
func (r LogRenderer) Render(view View) {
	r.Log.Debug("Session %s: render month=%d-%02d doctor=%q date=%s time=%q slots=%d state=%s",
		view.ID, view.VisibleMonth.Year, int(view.VisibleMonth.Month), view.Selection.Doctor,
		formatDate(view.Selection.Date), view.Selection.Time, len(view.Slots), view.SlotState)
}
