// Package media stores uploaded recipe images. The service only ever deals
// in opaque references; where the bytes live (local disk, S3-compatible
// object storage) is a driver concern.
package media

import (
	"context"
	"io"
)

// Store persists image payloads and returns stable references for them.
type Store interface {
	// Save writes the payload under the given object name and returns the
	// reference to store on the recipe.
	Save(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error)

	// Remove deletes a previously saved object. Removing a reference that
	// no longer exists is not an error.
	Remove(ctx context.Context, ref string) error
}
