package psd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorChannelCompressedDataTwoBytesStaysRaw(t *testing.T) {
	channel := NewColorChannel(ColorChannelRed, 2)
	channel.Data = []byte{0xac, 0x00}

	result, err := channel.CompressedData(1)
	require.NoError(t, err)

	assert.Equal(t, CompressionRawData, result.Compression)
	assert.Equal(t, []byte{0xac, 0x00}, result.Data)
}

func TestColorChannelCompressedDataUsesRLEAboveTwoBytes(t *testing.T) {
	channel := NewColorChannel(ColorChannelRed, 4)
	channel.Data = []byte{0xfb, 0xe5, 0x42, 0x20}

	result, err := channel.CompressedData(2)
	require.NoError(t, err)

	assert.Equal(t, CompressionRLE, result.Compression)

	expected := []byte{
		0x00, 0x03,
		0x00, 0x03,
		0x01, 0xfb, 0xe5,
		0x01, 0x42, 0x20,
	}
	assert.Equal(t, expected, result.Data)
}

func TestColorChannelCompressedDataIsCached(t *testing.T) {
	channel := NewColorChannel(ColorChannelRed, 4)
	channel.Data = []byte{0xfb, 0xe5, 0x42, 0x20}

	first, err := channel.CompressedData(2)
	require.NoError(t, err)

	channel.Data[0] = 0x00 // mutating after the first call must not change the cached result
	second, err := channel.CompressedData(2)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestColorChannelRLEEncodedComponentsRejectsZeroHeight(t *testing.T) {
	channel := NewColorChannel(ColorChannelRed, 4)
	_, err := channel.RLEEncodedComponents(0)
	assert.ErrorIs(t, err, ErrInvalidImage)
}
