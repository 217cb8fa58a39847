package order

import (
	"strings"

	"barista/internal/pkg/errs"
)

// Update carries a partial set of attributes extracted from one
// conversational turn. Nil fields are left untouched by a merge; non-nil
// fields overwrite the prior value entirely. Extras are replaced wholesale -
// the caller resends the full cumulative list each time it changes.
type Update struct {
	ItemType      *string
	Size          *string
	Modifier      *string
	Extras        *[]string
	SubmitterName *string
}

// IsEmpty reports whether the update carries no attributes at all.
func (u Update) IsEmpty() bool {
	return u.ItemType == nil && u.Size == nil && u.Modifier == nil &&
		u.Extras == nil && u.SubmitterName == nil
}

// Snapshot is a read-only copy of a draft's raw captured attributes.
// Values are exactly as supplied by the caller; no normalization has been
// applied. Extras is never nil.
type Snapshot struct {
	ItemType      string   `json:"item_type"`
	Size          string   `json:"size"`
	Modifier      string   `json:"modifier"`
	Extras        []string `json:"extras"`
	SubmitterName string   `json:"submitter_name"`
}

// Draft is the in-progress order record for one conversation. It accepts
// raw attribute values across an arbitrarily long, unordered sequence of
// turns with field-wise last-write-wins semantics, and defers all
// validation and normalization to commit time.
//
// The zero value is a valid empty draft. Draft is not safe for concurrent
// use; the owning ledger serializes access.
type Draft struct {
	itemType      string
	size          string
	modifier      string
	extras        []string
	submitterName string
}

// Apply merges an update into the draft and returns the resulting snapshot.
// Fields absent from the update are left untouched; fields present replace
// the prior value, including replacement by an empty value.
func (d *Draft) Apply(update Update) Snapshot {
	if update.ItemType != nil {
		d.itemType = *update.ItemType
	}
	if update.Size != nil {
		d.size = *update.Size
	}
	if update.Modifier != nil {
		d.modifier = *update.Modifier
	}
	if update.Extras != nil {
		d.extras = append([]string(nil), (*update.Extras)...)
	}
	if update.SubmitterName != nil {
		d.submitterName = *update.SubmitterName
	}

	return d.Snapshot()
}

// Snapshot returns a copy of the draft's current raw state.
func (d *Draft) Snapshot() Snapshot {
	extras := make([]string, len(d.extras))
	copy(extras, d.extras)

	return Snapshot{
		ItemType:      d.itemType,
		Size:          d.size,
		Modifier:      d.modifier,
		Extras:        extras,
		SubmitterName: d.submitterName,
	}
}

// IsComplete reports whether the draft would currently pass required-field
// validation. Pure query with no side effects.
func (d *Draft) IsComplete() bool {
	return ValidateRequired(d.Snapshot()) == nil
}

// ValidateRequired checks that every required attribute is present and
// acceptable. Checks run in a fixed order - item_type, size, modifier,
// submitter_name - and the first failure is returned, so callers can ask a
// targeted follow-up question for one field at a time. Extras have no
// presence requirement.
//
// Determinism: identical input always yields an identical result.
func ValidateRequired(s Snapshot) error {
	if strings.TrimSpace(s.ItemType) == "" {
		return errs.NewValueIsRequiredError("item_type")
	}
	if _, err := NormalizeSize(s.Size); err != nil {
		return err
	}
	if strings.TrimSpace(s.Modifier) == "" {
		return errs.NewValueIsRequiredError("modifier")
	}
	if strings.TrimSpace(s.SubmitterName) == "" {
		return errs.NewValueIsRequiredError("submitter_name")
	}
	return nil
}
