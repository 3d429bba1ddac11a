package errors

import (
	"errors"
	"testing"
)

func TestContractError(t *testing.T) {
	err := NewContractError("token", 3, "direct representations are empty")

	if err.Type != ErrorTypeContract {
		t.Errorf("Expected Type to be ErrorTypeContract, got %v", err.Type)
	}

	if err.Unit != "token" || err.Index != 3 {
		t.Errorf("Expected unit token 3, got %s %d", err.Unit, err.Index)
	}

	expectedMsg := "contract violation in token 3: direct representations are empty"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestPhraseFrozenError(t *testing.T) {
	err := NewPhraseFrozenError("decision phrase", "decide")

	if !errors.Is(err, ErrPhraseFrozen) {
		t.Errorf("Expected error to match ErrPhraseFrozen")
	}

	var frozen *PhraseFrozenError
	if !errors.As(err, &frozen) {
		t.Fatalf("Expected errors.As to find PhraseFrozenError")
	}
	if frozen.Word != "decide" {
		t.Errorf("Expected Word decide, got %s", frozen.Word)
	}

	expectedMsg := `cannot register "decide" on search phrase "decision phrase": search phrase is frozen`
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestFixtureError(t *testing.T) {
	underlying := errors.New("unexpected EOF")
	err := NewFixtureError("decode", "fixtures/doc.toml", underlying)

	if err.Type != ErrorTypeFixture {
		t.Errorf("Expected Type to be ErrorTypeFixture, got %v", err.Type)
	}

	if !errors.Is(err, underlying) {
		t.Errorf("Expected error to unwrap to underlying error")
	}

	expectedMsg := "fixture decode failed for fixtures/doc.toml: unexpected EOF"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestConfigError(t *testing.T) {
	underlying := errors.New("unknown strategy")
	err := NewConfigError("matching.strategies", "fuzzy", underlying)

	if !errors.Is(err, underlying) {
		t.Errorf("Expected error to unwrap to underlying error")
	}

	expectedMsg := "config error for field matching.strategies (value fuzzy): unknown strategy"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestMultiError(t *testing.T) {
	err1 := errors.New("error 1")
	err2 := errors.New("error 2")

	// Test with nil errors filtered out
	multi := NewMultiError([]error{err1, nil, err2, nil})
	if len(multi.Errors) != 2 {
		t.Errorf("Expected 2 errors after filtering nils, got %d", len(multi.Errors))
	}

	if !errors.Is(multi, err1) || !errors.Is(multi, err2) {
		t.Errorf("Expected multi error to match both errors")
	}

	// Test single error message passthrough
	single := NewMultiError([]error{err1})
	if single.Error() != "error 1" {
		t.Errorf("Expected single error message, got %q", single.Error())
	}

	// Test ErrorOrNil
	if NewMultiError(nil).ErrorOrNil() != nil {
		t.Errorf("Expected ErrorOrNil to return nil for empty multi error")
	}
	if multi.ErrorOrNil() == nil {
		t.Errorf("Expected ErrorOrNil to return the multi error")
	}
}
