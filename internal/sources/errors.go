package sources

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a source failure.
type Kind string

const (
	// KindUnavailable means the backing store could not be reached or queried.
	KindUnavailable Kind = "unavailable"
	// KindMalformed means the store answered with data that could not be read.
	KindMalformed Kind = "malformed"
	// KindCanceled means the caller gave up before the source answered.
	KindCanceled Kind = "canceled"
)

// ErrUnavailable is matched by every SourceError of KindUnavailable.
var ErrUnavailable = errors.New("source unavailable")

// SourceError is the typed failure returned across the source boundary.
type SourceError struct {
	Source  string
	Dataset string
	Kind    Kind
	Err     error
}

// NewError wraps err for dataset, deriving the kind from context errors.
func NewError(source, dataset string, kind Kind, err error) *SourceError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		kind = KindCanceled
	}
	return &SourceError{Source: source, Dataset: dataset, Kind: kind, Err: err}
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Source, e.Dataset, e.Kind, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrUnavailable) match unavailable source errors.
func (e *SourceError) Is(target error) bool {
	return target == ErrUnavailable && e.Kind == KindUnavailable
}

// AsSourceError attempts to unwrap an error into a SourceError.
func AsSourceError(err error) (*SourceError, bool) {
	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		return srcErr, true
	}
	return nil, false
}
