// Package logging builds slog loggers for trackctl.
package logging
