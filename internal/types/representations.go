package types

import (
	"fmt"

	lmerrors "github.com/standardbeagle/lexmatch/internal/errors"
)

// Representations is an optional ordered set of matching representations.
// The zero value is absent. Absent and present-but-empty are distinct:
// absent triggers fallback to the direct set, empty is a contract violation.
type Representations struct {
	values  []string
	present bool
}

// Present returns a present representation set holding a copy of values
func Present(values ...string) Representations {
	cp := make([]string, len(values))
	copy(cp, values)
	return Representations{values: cp, present: true}
}

// Absent returns the absent representation set
func Absent() Representations {
	return Representations{}
}

// IsPresent reports whether the pipeline supplied this set
func (r Representations) IsPresent() bool {
	return r.present
}

// Values returns the representations in pipeline order, nil when absent.
// The slice is shared and must not be modified.
func (r Representations) Values() []string {
	return r.values
}

// Len returns the number of representations
func (r Representations) Len() int {
	return len(r.values)
}

// String returns a debug representation
func (r Representations) String() string {
	if !r.present {
		return "<absent>"
	}
	return fmt.Sprintf("%q", r.values)
}

// MatchingReprs holds the two representation sets every annotatable unit carries
type MatchingReprs struct {
	Direct     []string
	Derivation Representations
}

// HasDerivation reports whether derivation representations are present
func (m MatchingReprs) HasDerivation() bool {
	return m.Derivation.IsPresent()
}

// DerivationOrDirect returns the derivation set if present, else the direct set
func (m MatchingReprs) DerivationOrDirect() []string {
	if m.Derivation.IsPresent() {
		return m.Derivation.Values()
	}
	return m.Direct
}

// Validate checks the representation invariants for the unit at index
func (m MatchingReprs) Validate(unit string, index int) error {
	if len(m.Direct) == 0 {
		return lmerrors.NewContractError(unit, index, "direct representations are empty")
	}
	if m.Derivation.IsPresent() && m.Derivation.Len() == 0 {
		return lmerrors.NewContractError(unit, index, "derivation representations are present but empty")
	}
	return nil
}
