package lib

import "fmt"

// WrapError adds context to an error keeping both errors visible to errors.Is
func WrapError(outer error, inner error) error {
	return fmt.Errorf("%w: %w", outer, inner)
}
