package slicon

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image"
	_ "image/png"
	"os"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
)

// equivalentDistance is the largest perceptual hash distance at which two
// icons still count as the same picture.
const equivalentDistance = 5

// Image is an encoded PNG icon.
type Image struct {
	i        image.Image
	b        []byte // Raw image data
	width    int
	height   int
	checksum uint32
	pHash    *goimagehash.ImageHash
}

// NewImage reads a PNG icon from p.
func NewImage(p string) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", p, err)
	}
	i, err := newImageFromBytes(b)
	if err != nil {
		return nil, fmt.Errorf("failed to create image from %s: %w", p, err)
	}
	return i, nil
}

func newImageFromBytes(b []byte) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if format != "png" {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	return &Image{
		b:      b,
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

// Size returns the pixel dimensions from the PNG header.
func (i *Image) Size() (int, int) {
	if i == nil {
		return 0, 0
	}
	return i.width, i.height
}

// Equivalent reports whether ii shows the same picture as i, along with the
// perceptual hash distance used to decide. Identical bytes have distance 0.
func (i *Image) Equivalent(ii *Image) (bool, int) {
	if i == nil || ii == nil {
		return false, -1
	}
	if i.width != ii.width || i.height != ii.height {
		return false, -1
	}
	if i.Checksum() == ii.Checksum() && bytes.Equal(i.b, ii.b) {
		return true, 0
	}
	aHash, err := i.PHash()
	if err != nil {
		return false, -1
	}
	bHash, err := ii.PHash()
	if err != nil {
		return false, -1
	}
	distance, err := aHash.Distance(bHash)
	if err != nil {
		return false, -1
	}
	return distance < equivalentDistance, distance
}

func (i *Image) Checksum() uint32 {
	if i == nil {
		return 0
	}
	if i.checksum == 0 {
		i.checksum = crc32.ChecksumIEEE(i.b)
	}
	return i.checksum
}

func (i *Image) Image() (image.Image, error) {
	if i == nil {
		return nil, fmt.Errorf("image is nil")
	}
	if i.i == nil {
		img, _, err := image.Decode(bytes.NewReader(i.b))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		i.i = img
	}
	return i.i, nil
}

func (i *Image) PHash() (_ *goimagehash.ImageHash, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if i == nil {
		return nil, fmt.Errorf("image is nil")
	}
	if i.i == nil {
		if _, err := i.Image(); err != nil {
			return nil, err
		}
	}
	if i.pHash == nil {
		pHash, err := goimagehash.PerceptionHash(i.i)
		if err != nil {
			return nil, fmt.Errorf("failed to compute perceptual hash: %w", err)
		}
		i.pHash = pHash
	}
	return i.pHash, nil
}

func (i *Image) Bytes() []byte {
	if i == nil {
		return nil
	}
	return i.b
}
