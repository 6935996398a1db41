package form_session

import "github.com/m04kA/SMC-ClinicBooking/internal/session"

type SessionRegistry interface {
	Create() *session.Session
	Get(id string) (*session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
