// Package logging wires up structured diagnostics for the CLI shell around
// the interpreter. It is used for operational visibility only — startup
// diagnostics, file-load warnings, REPL session boundaries — never for the
// interpreter's own value-printing or error-printing contract, which
// remains plain fmt.Println/fmt.Fprintln writing exactly the strings the
// language's external interface specifies.
package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New builds a *zap.SugaredLogger tagged with a session UUID, and returns a
// sync closer the caller should defer. level "debug" yields a development
// logger (console-friendly, caller info); anything else yields a
// production logger (JSON, sampled).
func New(level string, sessionID uuid.UUID) (*zap.SugaredLogger, func(), error) {
	var base *zap.Logger
	var err error

	if level == "debug" {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, func() {}, err
	}

	logger := base.Sugar().With("session_id", sessionID.String())

	return logger, func() { _ = base.Sync() }, nil
}
