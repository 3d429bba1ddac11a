package errors

import (
	"errors"
	"fmt"
	"time"
)

// Error types for the lexical matching engine
type ErrorType string

const (
	// Input contract errors
	ErrorTypeContract ErrorType = "contract"
	ErrorTypeFrozen   ErrorType = "frozen"

	// Loading errors
	ErrorTypeFixture ErrorType = "fixture"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// ErrPhraseFrozen is matched by errors.Is for every PhraseFrozenError
var ErrPhraseFrozen = errors.New("search phrase is frozen")

// ContractError reports input from the annotation pipeline or parser that
// violates the unit model, e.g. an empty direct representation set.
type ContractError struct {
	Type      ErrorType
	Unit      string // "token", "multiword", "subword", "search_phrase_token", "search_phrase"
	Index     int
	Violation string
	Timestamp time.Time
}

// NewContractError creates a new contract error for the unit at index
func NewContractError(unit string, index int, violation string) *ContractError {
	return &ContractError{
		Type:      ErrorTypeContract,
		Unit:      unit,
		Index:     index,
		Violation: violation,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation in %s %d: %s", e.Unit, e.Index, e.Violation)
}

// PhraseFrozenError is returned when a search phrase is mutated after compilation
type PhraseFrozenError struct {
	Type      ErrorType
	Phrase    string
	Word      string
	Timestamp time.Time
}

// NewPhraseFrozenError creates a new frozen phrase error
func NewPhraseFrozenError(phrase, word string) *PhraseFrozenError {
	return &PhraseFrozenError{
		Type:      ErrorTypeFrozen,
		Phrase:    phrase,
		Word:      word,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *PhraseFrozenError) Error() string {
	return fmt.Sprintf("cannot register %q on search phrase %q: %v", e.Word, e.Phrase, ErrPhraseFrozen)
}

// Unwrap returns ErrPhraseFrozen for errors.Is
func (e *PhraseFrozenError) Unwrap() error {
	return ErrPhraseFrozen
}

// FixtureError represents a failure reading or decoding a fixture file
type FixtureError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewFixtureError creates a new fixture error
func NewFixtureError(op, path string, err error) *FixtureError {
	return &FixtureError{
		Type:       ErrorTypeFixture,
		Path:       path,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *FixtureError) Error() string {
	return fmt.Sprintf("fixture %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *FixtureError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	// Filter out nil errors
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// ErrorOrNil returns nil when no errors were collected
func (e *MultiError) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}
