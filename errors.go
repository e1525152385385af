package makecsv

import (
	"errors"
	"fmt"
)

// Errors returned by New and Build. None of them is recoverable: the run
// stops at the first one and rows already written stay on the writer.
var (
	// ErrMissingInput indicates a required input path was not configured.
	ErrMissingInput = errors.New("missing required input")

	// ErrUnsupportedUnit indicates an unknown token unit.
	ErrUnsupportedUnit = errors.New("unsupported unit")

	// ErrNotImplemented indicates a recognized but unimplemented unit (bpe).
	ErrNotImplemented = errors.New("not implemented")

	// ErrMissingFeature indicates a feats.scp entry points at a file that
	// does not exist.
	ErrMissingFeature = errors.New("feature file not found")

	// ErrUnknownUtterance indicates a transcript utterance absent from the
	// feature index or the frame counts.
	ErrUnknownUtterance = errors.New("utterance not indexed")

	// ErrUnknownToken indicates a token absent from the dictionary in a unit
	// mode without <unk> fallback.
	ErrUnknownToken = errors.New("token not in dictionary")
)

// LookupError reports a token that could not be mapped to an id.
type LookupError struct {
	UttID      string
	Unit       Unit
	Token      string
	Suggestion string // closest dictionary token, if any
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("%s: %s %q: %v", e.UttID, e.Unit, e.Token, ErrUnknownToken)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (closest: %q)", e.Suggestion)
	}
	return msg
}

func (e *LookupError) Unwrap() error {
	return ErrUnknownToken
}
