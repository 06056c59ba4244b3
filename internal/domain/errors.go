package domain

import "errors"

// Sentinel errors for the two failure modes the pipeline can surface.
// Everything else in the pipeline is total once given non-empty text.
var (
	// ErrEmptyInput indicates the text was empty after normalization.
	// Recovered at the HTTP boundary as a 400.
	ErrEmptyInput = errors.New("empty email text")

	// ErrModelUnavailable indicates the zero-shot model could not be
	// reached or failed during inference. Fatal for the request; never
	// replaced by a default label.
	ErrModelUnavailable = errors.New("zero-shot model unavailable")
)
