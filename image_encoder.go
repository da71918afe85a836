package psd

// deinterleave splits an interleaved RGBA raster into four channel planes
// in Red, Green, Blue, Alpha order.
func deinterleave(img *Image) (red, green, blue, alpha *ColorChannel) {
	width := img.Size.Width
	height := img.Size.Height
	dataLength := int(width * height)

	red = NewColorChannel(ColorChannelRed, dataLength)
	green = NewColorChannel(ColorChannelGreen, dataLength)
	blue = NewColorChannel(ColorChannelBlue, dataLength)
	alpha = NewColorChannel(ColorChannelAlpha, dataLength)

	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			target := int(y*width + x)
			source := int(y*img.BytesPerRow + x*4)
			red.Data[target] = img.Data[source]
			green.Data[target] = img.Data[source+1]
			blue.Data[target] = img.Data[source+2]
			alpha.Data[target] = img.Data[source+3]
		}
	}

	return red, green, blue, alpha
}

// EncodeImage returns the whole-image payload for a flattened preview:
// a big-endian compression tag followed by the channel data. Raw output
// concatenates the four planes in R, G, B, A order; RLE output emits all
// four line-length tables first (R, G, B, A), then all four data buffers
// (R, G, B, A), as PSD's image-data section requires.
func EncodeImage(img *Image, compression ImageCompression) ([]byte, error) {
	if compression == CompressionZipWithoutPrediction || compression == CompressionZipWithPrediction {
		return nil, ErrUnsupportedCompression
	}

	red, green, blue, alpha := deinterleave(img)

	w := newByteWriter()
	w.WriteInt16(int16(compression))

	if compression == CompressionRawData {
		w.WriteBytes(red.Data)
		w.WriteBytes(green.Data)
		w.WriteBytes(blue.Data)
		w.WriteBytes(alpha.Data)
		return w.Bytes(), nil
	}

	channels := [4]*ColorChannel{red, green, blue, alpha}
	components := make([]RLEComponents, 4)
	for i, ch := range channels {
		c, err := ch.RLEEncodedComponents(img.Size.Height)
		if err != nil {
			return nil, err
		}
		components[i] = c
	}

	for _, c := range components {
		w.WriteBytes(c.LineLengths)
	}
	for _, c := range components {
		w.WriteBytes(c.Data)
	}

	return w.Bytes(), nil
}
