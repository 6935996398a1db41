package appointments

// Ack подтверждение от сервера заявок. Содержимое только логируется.
type Ack struct {
	StatusCode int
	Reference  string
	Payload    map[string]interface{}
}
