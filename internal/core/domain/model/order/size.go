package order

import (
	"fmt"
	"strings"

	"barista/internal/pkg/errs"
)

// Size represents the closed set of drink sizes a customer can order.
// Caller-supplied free text must be normalized to one of the three valid
// values; unrecognized input is rejected, never silently coerced.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	// This value (0) helps catch uninitialized Size values.
	SizeUnknown Size = iota

	// SizeSmall is the small drink size.
	SizeSmall

	// SizeMedium is the medium drink size.
	SizeMedium

	// SizeLarge is the large drink size.
	SizeLarge
)

// getSizeStrings returns a map of Size values to their canonical string
// representations as persisted in committed records.
func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeSmall:  "small",
		SizeMedium: "medium",
		SizeLarge:  "large",
	}
}

// NormalizeSize maps raw caller-supplied text to a Size. Matching is
// case-insensitive and ignores surrounding whitespace; identical input
// always yields an identical result.
//
// Returns:
//   - a "value is required" error for empty or whitespace-only input
//   - a "value is invalid" error for any text outside {small, medium, large}
//
// Example:
//
//	size, err := order.NormalizeSize(" Medium ")
//	// size == order.SizeMedium, err == nil
func NormalizeSize(raw string) (Size, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return SizeUnknown, errs.NewValueIsRequiredError("size")
	}

	for size, name := range getSizeStrings() {
		if strings.EqualFold(trimmed, name) {
			return size, nil
		}
	}

	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause("size",
		fmt.Errorf("%q is not a recognized size", trimmed))
}

// Validate checks if the Size value is valid.
// Valid sizes are SizeSmall, SizeMedium and SizeLarge; SizeUnknown and any
// other values are invalid.
func (s Size) Validate() error {
	if _, ok := getSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the canonical lowercase name of the size, or "unknown" for
// invalid values. Implements fmt.Stringer and is safe on any Size value.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "unknown"
}
