package transforms

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/deep1010/matrix"
)

// Fields is the set of auxiliary values an Instance carries next to its trial.
type Fields uint8

const (
	// FieldMask is the per-channel used mask produced by MappingDeep1010.
	FieldMask Fields = 1 << iota
	// FieldLabel is the target class.
	FieldLabel
	// FieldID is the instance identifier.
	FieldID
)

// Has reports whether every field of x is present.
func (f Fields) Has(x Fields) bool { return f&x == x }

// String renders "trial+mask+label+id" style listings.
func (f Fields) String() string {
	parts := []string{"trial"}
	if f.Has(FieldMask) {
		parts = append(parts, "mask")
	}
	if f.Has(FieldLabel) {
		parts = append(parts, "label")
	}
	if f.Has(FieldID) {
		parts = append(parts, "id")
	}

	return strings.Join(parts, "+")
}

// Instance is one fetched unit of model input: the trial tensor plus the
// auxiliary values listed in Fields. Values of fields not in Fields are ignored.
type Instance struct {
	Trial  *matrix.Dense
	Mask   []bool
	Label  int
	ID     string
	Fields Fields
}

// NewInstance wraps a labelled trial and gives it a fresh random ID.
func NewInstance(trial *matrix.Dense, label int) Instance {
	return Instance{
		Trial:  trial,
		Label:  label,
		ID:     uuid.NewString(),
		Fields: FieldLabel | FieldID,
	}
}

// Validate checks the record against its own schema.
func (in Instance) Validate() error {
	if in.Trial == nil {
		return fmt.Errorf("Instance: nil trial: %w", ErrShapeMismatch)
	}
	if in.Fields.Has(FieldMask) && len(in.Mask) != in.Trial.Rows() {
		return fmt.Errorf("Instance: mask has %d entries for %d channels: %w",
			len(in.Mask), in.Trial.Rows(), ErrShapeMismatch)
	}
	if in.Fields.Has(FieldID) && in.ID == "" {
		return fmt.Errorf("Instance: empty id: %w", ErrConfiguration)
	}

	return nil
}
