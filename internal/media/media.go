package media

import (
	"image"
	"os"
)

// Load loads every path with the codec and resamples it to size. The returned images are in the same order as paths.
//
// The first failure aborts the load and no images are returned. Failures are reported as *LoadError, wrapping
// ErrNotFound for a missing path or one that isn't a regular file, and ErrDecode for anything the codec rejects.
func Load(codec Codec, paths []string, size Size) ([]image.Image, error) {
	if !size.Valid() {
		return nil, ErrInvalidConfig
	}
	if len(paths) == 0 {
		return nil, ErrEmptySequence
	}

	imgs := make([]image.Image, 0, len(paths))
	for i, path := range paths {
		img, err := loadImage(codec, i, path, size)
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

func loadImage(codec Codec, i int, path string, size Size) (image.Image, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Index: i, Path: path, Kind: ErrNotFound, Err: err}
	}
	if !fi.Mode().IsRegular() {
		return nil, &LoadError{Index: i, Path: path, Kind: ErrNotFound}
	}

	img, err := codec.Decode(path)
	if err != nil {
		return nil, &LoadError{Index: i, Path: path, Kind: ErrDecode, Err: err}
	}

	img, err = codec.Resample(img, size)
	if err != nil {
		return nil, &LoadError{Index: i, Path: path, Kind: ErrDecode, Err: err}
	}

	if img.Bounds() != size.Rect() {
		return nil, &LoadError{Index: i, Path: path, Kind: ErrDecode, Err: errSize(img.Bounds(), size)}
	}
	return img, nil
}
