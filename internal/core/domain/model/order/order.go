package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method. This ensures all committed orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents one committed customer order. It is the immutable,
// fully-validated record produced when a draft passes required-field
// validation at commit time.
//
// Order follows these invariants:
//   - Must have a valid OrderID assigned by the ledger
//   - item_type, modifier and submitter_name are non-empty after trimming
//   - size is one of the canonical Size values
//   - extras preserve mention order verbatim and are never nil
//   - created_at is assigned by the ledger, never by the caller
//   - Can only be created through NewOrder or ParseOrder
//
// The struct uses private fields to ensure a committed record is never
// mutated in place; corrections require a new record.
type Order struct {
	// id is the collision-safe identifier derived from createdAt
	id kernel.OrderID

	// itemType is the kind of drink ordered, trimmed
	itemType string

	// size is the normalized drink size
	size Size

	// modifier is the business-defined customization, trimmed
	modifier string

	// extras are optional add-ons in the order they were mentioned
	extras []string

	// submitterName is the customer name, trimmed
	submitterName string

	// createdAt is the commit instant, UTC, whole-second granularity
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// orderJSON is the persisted wire shape of a committed order. The order id
// lives in the file name, not in the record itself.
type orderJSON struct {
	ItemType      string   `json:"item_type"`
	Size          string   `json:"size"`
	Modifier      string   `json:"modifier"`
	Extras        []string `json:"extras"`
	SubmitterName string   `json:"submitter_name"`
	Timestamp     string   `json:"timestamp"`
}

// NewOrder validates and normalizes a draft snapshot into a committed Order.
// This is the only way the ledger produces a committed record, ensuring all
// business invariants are maintained.
//
// Validation runs in the fixed required-field order and the first failure is
// returned unchanged from ValidateRequired. Normalization applied on
// success: item_type, modifier and submitter_name are trimmed; size takes
// its canonical lowercase form; extras are copied verbatim, duplicates and
// mention order preserved.
//
// Parameters:
//   - id: identifier assigned by the ledger (must be constructed)
//   - snapshot: the draft's raw captured attributes
//   - createdAt: commit instant assigned by the ledger
//
// Returns:
//   - *Order: the committed record if validation passes
//   - error: the first missing/invalid field otherwise
func NewOrder(id kernel.OrderID, snapshot Snapshot, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateRequired(snapshot); err != nil {
		return nil, err
	}

	// ValidateRequired already proved the size normalizes.
	size, _ := NormalizeSize(snapshot.Size)

	return &Order{
		id:            id,
		itemType:      strings.TrimSpace(snapshot.ItemType),
		size:          size,
		modifier:      strings.TrimSpace(snapshot.Modifier),
		extras:        append([]string{}, snapshot.Extras...),
		submitterName: strings.TrimSpace(snapshot.SubmitterName),
		createdAt:     createdAt.UTC().Truncate(time.Second),
		isConstructed: true,
	}, nil
}

// ParseOrder reconstructs a committed Order from its persisted JSON bytes
// and the OrderID recovered from the file name. Used when reading committed
// orders back from the store.
func ParseOrder(id kernel.OrderID, data []byte) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var record orderJSON
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order record", err)
	}

	createdAt, err := time.Parse(time.RFC3339, record.Timestamp)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("timestamp", err)
	}

	return NewOrder(id, Snapshot{
		ItemType:      record.ItemType,
		Size:          record.Size,
		Modifier:      record.Modifier,
		Extras:        record.Extras,
		SubmitterName: record.SubmitterName,
	}, createdAt)
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating the
// struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's collision-safe identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// ItemType returns the kind of drink ordered.
func (o *Order) ItemType() string {
	return o.itemType
}

// Size returns the normalized drink size.
func (o *Order) Size() Size {
	return o.size
}

// Modifier returns the drink customization.
func (o *Order) Modifier() string {
	return o.modifier
}

// Extras returns a copy of the optional add-ons in mention order.
func (o *Order) Extras() []string {
	extras := make([]string, len(o.extras))
	copy(extras, o.extras)
	return extras
}

// SubmitterName returns the customer name the order was taken for.
func (o *Order) SubmitterName() string {
	return o.submitterName
}

// CreatedAt returns the commit instant assigned by the ledger.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarshalJSON renders the persisted wire shape of the record. Extras
// serialize as an empty array, never null, so absence reads as "none
// requested".
func (o *Order) MarshalJSON() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	extras := o.extras
	if extras == nil {
		extras = []string{}
	}

	return json.Marshal(orderJSON{
		ItemType:      o.itemType,
		Size:          o.size.String(),
		Modifier:      o.modifier,
		Extras:        extras,
		SubmitterName: o.submitterName,
		Timestamp:     o.createdAt.Format(time.RFC3339),
	})
}

// String returns a short human-readable summary, e.g.
// "medium latte (oat milk) for Alex".
func (o *Order) String() string {
	return fmt.Sprintf("%s %s (%s) for %s", o.size, o.itemType, o.modifier, o.submitterName)
}
