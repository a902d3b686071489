package engine

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-raster/raster/conv"
	"github.com/cwbudde/algo-raster/raster/fft"
	"github.com/cwbudde/algo-raster/raster/filter"
	"github.com/cwbudde/algo-raster/raster/kernel"
	"github.com/cwbudde/algo-raster/raster/morph"
	"github.com/cwbudde/algo-raster/raster/pixel"
)

// Kind classifies a failed operation.
type Kind int

const (
	// KindComputationFault covers unexpected failures inside a filter,
	// including recovered panics.
	KindComputationFault Kind = iota
	// KindInvalidGeometry means the length did not match width*height*4 or
	// a dimension was not positive.
	KindInvalidGeometry
	// KindInvalidParameter means a filter argument was out of range.
	KindInvalidParameter
	// KindProtocolViolation means an inverse transform was requested with
	// no spectral data held.
	KindProtocolViolation
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindComputationFault:
		return "computation fault"
	case KindInvalidGeometry:
		return "invalid geometry"
	case KindInvalidParameter:
		return "invalid parameter"
	case KindProtocolViolation:
		return "protocol violation"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrComputationFault  = errors.New("engine: computation fault")
	ErrInvalidGeometry   = errors.New("engine: invalid geometry")
	ErrInvalidParameter  = errors.New("engine: invalid parameter")
	ErrProtocolViolation = errors.New("engine: protocol violation")
)

// ErrNoSpectralData is the cause of a protocol violation.
var ErrNoSpectralData = errors.New("engine: no spectral data; run a forward transform first")

// ErrUnknownOperation is returned by Apply and ParseOperation.
var ErrUnknownOperation = errors.New("engine: unknown operation")

// Error is returned by every failed engine operation.
type Error struct {
	Op   Operation
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("engine: %s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidGeometry:
		return ErrInvalidGeometry
	case KindInvalidParameter:
		return ErrInvalidParameter
	case KindProtocolViolation:
		return ErrProtocolViolation
	default:
		return ErrComputationFault
	}
}

// KindOf returns the kind of err, or KindComputationFault when err is not
// an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindComputationFault
}

var (
	geometryCauses = []error{
		pixel.ErrInvalidGeometry,
		fft.ErrGeometry,
	}
	parameterCauses = []error{
		filter.ErrInvalidThreshold,
		morph.ErrInvalidKernelSize,
		kernel.ErrEvenSize,
		kernel.ErrInvalidRadius,
		kernel.ErrInvalidSigma,
		ErrUnknownOperation,
	}
)

// classify wraps a lower-level error into an *Error.
func classify(op Operation, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	kind := KindComputationFault
	for _, c := range geometryCauses {
		if errors.Is(err, c) {
			kind = KindInvalidGeometry
		}
	}
	for _, c := range parameterCauses {
		if errors.Is(err, c) {
			kind = KindInvalidParameter
		}
	}
	if errors.Is(err, ErrNoSpectralData) {
		kind = KindProtocolViolation
	}
	if errors.Is(err, conv.ErrPanic) {
		kind = KindComputationFault
	}
	return &Error{Op: op, Kind: kind, Err: err}
}
