package variants

import (
	"github.com/lumora-labs/storefront-backend/pkg/types"
)

// Apply returns the selection with name set to value. Other attributes are
// untouched; changing color never clears size. Re-selecting the current
// value returns the input unchanged, so callers can detect no-op taps. The
// write always succeeds even when the resulting combination matches no
// variant; dead ends are legal state the UI surfaces as unavailable.
func Apply(selection types.AttributeSet, name, value string) types.AttributeSet {
	return selection.With(name, value)
}

// IsSelectionComplete reports whether every required attribute is present
// with a non-empty value.
func IsSelectionComplete(selection types.AttributeSet, required []string) bool {
	for _, name := range required {
		if !selection.Has(name) {
			return false
		}
	}
	return true
}
