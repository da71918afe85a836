package psd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(width, height uint32, r, g, b, a byte) *Image {
	img := NewImage(Size{Width: width, Height: height})
	for i := 0; i < len(img.Data); i += 4 {
		img.Data[i] = r
		img.Data[i+1] = g
		img.Data[i+2] = b
		img.Data[i+3] = a
	}
	return img
}

func TestEncodeImageRawData(t *testing.T) {
	img := solidImage(2, 1, 0x10, 0x20, 0x30, 0xff)

	data, err := EncodeImage(img, CompressionRawData)
	require.NoError(t, err)

	expected := []byte{
		0x00, 0x00, // compression tag
		0x10, 0x10, // red plane
		0x20, 0x20, // green plane
		0x30, 0x30, // blue plane
		0xff, 0xff, // alpha plane
	}
	assert.Equal(t, expected, data)
}

func TestEncodeImageRLERejectsZipCompression(t *testing.T) {
	img := solidImage(2, 1, 0, 0, 0, 0)
	_, err := EncodeImage(img, CompressionZipWithoutPrediction)
	assert.ErrorIs(t, err, ErrUnsupportedCompression)

	_, err = EncodeImage(img, CompressionZipWithPrediction)
	assert.ErrorIs(t, err, ErrUnsupportedCompression)
}

func TestEncodeImageRLEOrdersLineLengthsThenData(t *testing.T) {
	img := solidImage(4, 4, 0x42, 0x42, 0x42, 0x42)

	data, err := EncodeImage(img, CompressionRLE)
	require.NoError(t, err)

	assert.Equal(t, byte(0x00), data[0])
	assert.Equal(t, byte(0x01), data[1])

	// four channels * four 2-byte line lengths = 32 bytes of line-length
	// tables before any channel data begins.
	lineLengthsEnd := 2 + 4*4*2
	require.Greater(t, len(data), lineLengthsEnd+1)

	// Each 4-byte row of 0x42 encodes to the 2-byte repeat packet FD 42, so
	// every line length is 2 and the data section starts with that packet.
	for pos := 2; pos < lineLengthsEnd; pos += 2 {
		assert.Equal(t, []byte{0x00, 0x02}, data[pos:pos+2])
	}
	assert.Equal(t, []byte{0xFD, 0x42}, data[lineLengthsEnd:lineLengthsEnd+2])
}

func TestDeinterleaveSplitsChannelsInRGBAOrder(t *testing.T) {
	img := NewImage(Size{Width: 1, Height: 1})
	img.Data = []byte{0x11, 0x22, 0x33, 0x44}

	red, green, blue, alpha := deinterleave(img)
	assert.Equal(t, []byte{0x11}, red.Data)
	assert.Equal(t, []byte{0x22}, green.Data)
	assert.Equal(t, []byte{0x33}, blue.Data)
	assert.Equal(t, []byte{0x44}, alpha.Data)
}
