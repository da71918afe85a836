package psd

// Size is a width/height pair in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// Image is an interleaved RGBA raster: one byte per channel, four channels
// per pixel, rows padded to BytesPerRow.
type Image struct {
	Size        Size
	BytesPerRow uint32
	Data        []byte
}

// NewImage allocates a zeroed (fully transparent) image of the given size,
// with no row padding.
func NewImage(size Size) *Image {
	bytesPerRow := size.Width * 4
	return &Image{
		Size:        size,
		BytesPerRow: bytesPerRow,
		Data:        make([]byte, int(bytesPerRow)*int(size.Height)),
	}
}
