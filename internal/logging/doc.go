// Package logging provides the structured logging interface used across
// ratcalc. Components depend on the Logger interface; the default backend is
// zerolog, and a standard library adapter exists for callers that already
// hold a *log.Logger.
package logging
