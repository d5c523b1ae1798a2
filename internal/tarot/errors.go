package tarot

import "errors"

// Sentinel errors for the fatal, per-request failure conditions of the
// reading pipeline. Best-effort failures (profile fetch, AI enhancement)
// are recovered inside the Reader and never surface as errors.
var (
	// ErrInvalidCardCount is returned when a draw is requested with a
	// zero or negative card count.
	ErrInvalidCardCount = errors.New("tarot: card count must be positive")

	// ErrUnknownPool is returned for an unrecognized pool filter.
	ErrUnknownPool = errors.New("tarot: unknown card pool filter")

	// ErrCatalogNotLoaded is returned when the draw engine is used
	// before a catalog has been supplied.
	ErrCatalogNotLoaded = errors.New("tarot: card catalog not loaded")

	// ErrNoValidSpread is returned when neither the requested spread
	// override nor the reading type resolves to a known spread.
	ErrNoValidSpread = errors.New("tarot: no valid spread for reading")
)
