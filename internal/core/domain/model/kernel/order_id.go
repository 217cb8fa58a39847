package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"barista/internal/pkg/errs"
	"barista/internal/pkg/guard"
)

const (
	orderIDPrefix    = "order"
	orderIDTimeStamp = "20060102_150405"
	orderIDExtension = ".json"
)

// ErrOrderIDIsNotConstructed is returned when attempting to use an improperly
// initialized OrderID. OrderIDs must be created via NewOrderID or
// OrderIDFromFilename.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromFilename")

var orderFilenamePattern = regexp.MustCompile(`^order_(\d{8}_\d{6})(?:_(\d+))?\.json$`)

// OrderID is a value object identifying a committed order. It encodes the
// commit time at whole-second granularity in a lexicographically sortable
// form, plus a numeric disambiguator for orders committed within the same
// second. The disambiguator is omitted from the string form when zero.
//
// The zero value of OrderID is invalid - use the constructors.
//
// Example:
//
//	id := kernel.NewOrderID(commitTime)
//	fmt.Println(id.String())   // "order_20260830_142501"
//	fmt.Println(id.Filename()) // "order_20260830_142501.json"
//	next := id.WithSuffix(1)   // "order_20260830_142501_1"
type OrderID struct { //nolint:recvcheck //using for validation
	stamp  string
	suffix int
	guard  guard.ConstructorGuard
}

// NewOrderID creates the base OrderID for a commit instant.
// The timestamp is rendered in UTC; the disambiguator starts at zero.
func NewOrderID(t time.Time) OrderID {
	return OrderID{
		stamp: t.UTC().Format(orderIDTimeStamp),
		guard: guard.NewConstructorGuard(),
	}
}

// OrderIDFromFilename parses an OrderID back from a persisted file name of
// the form "order_<YYYYMMDD>_<HHMMSS>[_<n>].json". Used when reading
// committed orders back from the store.
func OrderIDFromFilename(name string) (OrderID, error) {
	m := orderFilenamePattern.FindStringSubmatch(name)
	if m == nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order filename",
			fmt.Errorf("%q does not match order_<date>_<time>[_<n>]%s", name, orderIDExtension))
	}

	suffix := 0
	if m[2] != "" {
		parsed, err := strconv.Atoi(m[2])
		if err != nil {
			return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order filename", err)
		}
		suffix = parsed
	}

	return OrderID{
		stamp:  m[1],
		suffix: suffix,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// WithSuffix returns a copy of the OrderID carrying the given same-second
// disambiguator. Used by the commit collision-retry loop.
func (id OrderID) WithSuffix(n int) OrderID {
	id.suffix = n
	return id
}

// Suffix returns the same-second disambiguator (zero for the base id).
func (id OrderID) Suffix() int {
	return id.suffix
}

// String returns the canonical id, e.g. "order_20260830_142501" or
// "order_20260830_142501_2" when disambiguated.
func (id OrderID) String() string {
	var b strings.Builder
	b.WriteString(orderIDPrefix)
	b.WriteByte('_')
	b.WriteString(id.stamp)
	if id.suffix > 0 {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(id.suffix))
	}
	return b.String()
}

// Filename returns the file name the committed record is stored under.
func (id OrderID) Filename() string {
	return id.String() + orderIDExtension
}

// IsEqual compares two OrderIDs for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.stamp == other.stamp && id.suffix == other.suffix
}

// Validate checks if the OrderID is properly constructed.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}
