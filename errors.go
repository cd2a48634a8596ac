package cubekit

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubekit package. Typed errors below unwrap to
// these, so callers can match with errors.Is without caring about the
// attached detail.
var (
	ErrMalformedState   = errors.New("cubekit: state must be exactly 54 facelets")
	ErrUnknownSymbol    = errors.New("cubekit: symbol outside the U/D/R/L/F/B alphabet")
	ErrUnknownMove      = errors.New("cubekit: unknown move face")
	ErrInvalidMoveToken = errors.New("cubekit: invalid move token")
	ErrMoveCountRange   = errors.New("cubekit: move count out of range")
	ErrUnknownFormat    = errors.New("cubekit: unknown output format")
)

// MalformedStateError reports a state whose length is not 54.
type MalformedStateError struct {
	Length int
}

func (e *MalformedStateError) Error() string {
	return fmt.Sprintf("cubekit: state must be exactly 54 facelets, got %d", e.Length)
}

func (e *MalformedStateError) Unwrap() error { return ErrMalformedState }

// UnknownSymbolError reports the first facelet of a state that is not
// one of the six face letters.
type UnknownSymbolError struct {
	Symbol byte
	Index  int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("cubekit: symbol %q at facelet %d is outside the U/D/R/L/F/B alphabet", e.Symbol, e.Index)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }

// UnknownMoveError reports a move whose face letter is not one of the six
// recognized faces.
type UnknownMoveError struct {
	Token string
}

func (e *UnknownMoveError) Error() string {
	return fmt.Sprintf("cubekit: unknown move face in %q", e.Token)
}

func (e *UnknownMoveError) Unwrap() error { return ErrUnknownMove }

// InvalidMoveTokenError reports a token that matches neither FACE, FACE',
// nor FACE2.
type InvalidMoveTokenError struct {
	Token string
}

func (e *InvalidMoveTokenError) Error() string {
	return fmt.Sprintf("cubekit: invalid move token %q", e.Token)
}

func (e *InvalidMoveTokenError) Unwrap() error { return ErrInvalidMoveToken }

// RangeError reports a numeric parameter outside its allowed bounds.
type RangeError struct {
	Param string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cubekit: %s must be between %d and %d, got %d", e.Param, e.Min, e.Max, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrMoveCountRange }

// UnknownFormatError reports an unrecognized output format name.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("cubekit: unknown output format %q", e.Format)
}

func (e *UnknownFormatError) Unwrap() error { return ErrUnknownFormat }
