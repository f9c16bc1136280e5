// Package errors provides standardized error handling for flashd.
// It defines the error kinds the deck, image and configuration layers
// produce, plus helpers for consistent creation, wrapping and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrEmptyDeck = NewDeckError("deck must contain at least one card", -1, EmptyDeck, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Deck error kinds
	EmptyDeck
	InvalidCard
	InvalidDeck
	DeckNotFound
	// Image error kinds
	ImageOpenFailed
	ImageDecodeFailed
	// Config error kinds
	InvalidConfig
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// DeckError represents errors raised while building or loading a deck.
// card is the zero-based card index, or -1 when the error concerns the
// deck as a whole.
type DeckError struct {
	ApplicationError
	card   int
	source string
}

// NewDeckError creates a new deck error
func NewDeckError(msg string, card int, kind ErrorKind, err error) *DeckError {
	return &DeckError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		card: card,
	}
}

// WithSource records the deck file the error came from
func (e *DeckError) WithSource(path string) *DeckError {
	e.source = path
	return e
}

// Error returns the deck error message
func (e *DeckError) Error() string {
	msg := e.msg
	if e.source != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.source)
	}
	if e.card >= 0 {
		msg = fmt.Sprintf("%s: card %d", msg, e.card)
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

// Is matches deck errors by kind so callers can test against the
// package-level sentinels with errors.Is.
func (e *DeckError) Is(target error) bool {
	t, ok := target.(*DeckError)
	if !ok {
		return false
	}
	return t.kind == e.kind
}

// Card returns the card index associated with the error
func (e *DeckError) Card() int {
	return e.card
}

// Source returns the deck file associated with the error
func (e *DeckError) Source() string {
	return e.source
}

// ImageError represents a failure to open or decode an image side
type ImageError struct {
	ApplicationError
	path string
}

// NewImageError creates a new image error
func NewImageError(msg string, path string, kind ErrorKind, err error) *ImageError {
	return &ImageError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the image error message
func (e *ImageError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the image path associated with the error
func (e *ImageError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the first kind other than Unknown found in err's chain.
// Wrap and Wrapf add Unknown layers, so the whole chain is searched.
func KindOf(err error) ErrorKind {
	type kinded interface{ Kind() ErrorKind }
	for e := err; e != nil; e = errors.Unwrap(e) {
		if k, ok := e.(kinded); ok && k.Kind() != Unknown {
			return k.Kind()
		}
	}
	return Unknown
}

// IsEmptyDeck checks if the error is an empty deck error
func IsEmptyDeck(err error) bool {
	var deckErr *DeckError
	if errors.As(err, &deckErr) {
		return deckErr.Kind() == EmptyDeck
	}
	return false
}

// IsInvalidCard checks if the error is an invalid card error
func IsInvalidCard(err error) bool {
	var deckErr *DeckError
	if errors.As(err, &deckErr) {
		return deckErr.Kind() == InvalidCard
	}
	return false
}

// IsImageError checks if the error came from loading an image side
func IsImageError(err error) bool {
	var imgErr *ImageError
	return errors.As(err, &imgErr)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
