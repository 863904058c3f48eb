package media

import (
	"errors"
	"image"
	"strconv"
)

var (
	// ErrNotFound indicates that a source path does not exist or is not a regular file.
	ErrNotFound = errors.New("not found")
	// ErrDecode indicates that an image could not be decoded or resampled.
	ErrDecode = errors.New("decode failed")
	// ErrEmptySequence indicates that there are no images to show.
	ErrEmptySequence = errors.New("empty image sequence")
	// ErrInvalidConfig indicates a non-positive frame rate or target size, or another unusable setting.
	ErrInvalidConfig = errors.New("invalid config")
)

// LoadError records which source failed to load and why. It unwraps to both the error kind (one of the sentinel
// errors in this package) and the underlying cause, if there is one.
type LoadError struct {
	Index int
	Path  string
	Kind  error
	Err   error
}

func (e *LoadError) Error() string {
	msg := "image " + strconv.Itoa(e.Index) + " (" + e.Path + "): " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func errSize(got image.Rectangle, want Size) error {
	return errors.New("invalid image size " + got.String() + ", want " + want.Rect().String())
}
