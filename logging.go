package sst

import (
	"os"

	"github.com/rs/zerolog"
)

// defaultLogger is the structured logger the default AssertFunc writes
// to. Grounded in the logiface-zerolog convention used across the rest of
// the retrieval pack (joeycumines-go-utilpkg/logiface-zerolog): a single
// zerolog.Logger configured once, with per-call fields attached at the
// call site rather than baked into the logger itself.
var defaultLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	With().
	Timestamp().
	Str("component", "sst").
	Logger()

// SetLogger replaces the package-wide default logger used by the built-in
// AssertFunc. Applications embedding this module
// into a larger service (e.g. a hosted simulator or a desktop test rig)
// can redirect it to their own zerolog.Logger; the bare-metal target
// never calls this and relies solely on AssertFunc's side effects before
// the reset.
func SetLogger(l zerolog.Logger) {
	defaultLogger = l
}

// defaultAssertFunc logs the contract violation at Error level and then
// panics, satisfying "on_assert ... is required not to return" (spec §7).
func defaultAssertFunc(module string, location int, reason string) {
	defaultLogger.Error().
		Str("module", module).
		Int("location", location).
		Str("reason", reason).
		Msg("contract violation")
	panic(&AssertError{Module: module, Location: location, Reason: reason})
}
