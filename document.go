package psd

import (
	"fmt"
	"math"
)

// Document is a Photoshop document ready to be written out as a PSD (v1)
// file: a flattened preview image plus an ordered layer tree.
type Document struct {
	Size             Size
	NumberOfChannels uint16
	BitsPerChannel   uint16
	ColorMode        ColorMode

	// PreviewImage is the flattened composite written to the image-data
	// section. A document with no layers still needs one; a document
	// with layers typically carries the same flattened render here, since
	// Photoshop itself generates it rather than deriving it from layers.
	PreviewImage *Image

	Layers []Layer
}

// NewDocument creates a document of the given size with the defaults
// Photoshop expects for writer output: four channels, 8 bits per channel,
// RGB colour mode.
func NewDocument(size Size) *Document {
	return &Document{
		Size:             size,
		NumberOfChannels: 4,
		BitsPerChannel:   8,
		ColorMode:        ColorModeRGB,
	}
}

// numberOfLayers returns the flattened layer count across the whole tree.
func (d *Document) numberOfLayers() int {
	count := 0
	for i := range d.Layers {
		count += d.Layers[i].numberOfLayers()
	}
	return count
}

// FileData assembles the complete byte stream for the document: header,
// image resources, layer and mask information, then the flattened image
// data.
func (d *Document) FileData() ([]byte, error) {
	if d.Size.Width == 0 || d.Size.Height == 0 {
		return nil, fmt.Errorf("psd: %w: document has zero width or height", ErrInvalidImage)
	}
	if d.Size.Width > maxDocumentDimension || d.Size.Height > maxDocumentDimension {
		return nil, fmt.Errorf("psd: %w: document dimensions exceed %d", ErrInvalidImage, maxDocumentDimension)
	}

	layerCount := d.numberOfLayers()
	if layerCount > math.MaxInt16 {
		return nil, fmt.Errorf("psd: %w: %d layers exceeds the format's signed 16-bit count", ErrInvalidImage, layerCount)
	}

	for i := range d.Layers {
		d.Layers[i].promoteZeroBounds(d.Size)
	}

	w := newByteWriter()

	if err := d.writeHeader(w); err != nil {
		return nil, err
	}

	writeImageResources(w, layerCount)

	if err := d.writeLayerAndMaskInfo(w, layerCount); err != nil {
		return nil, err
	}

	if err := d.writeImageData(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

func (d *Document) writeHeader(w *byteWriter) error {
	w.WriteString(fileSignature)
	w.WriteUint16(versionNumber)
	w.WriteZeros(6)
	w.WriteUint16(d.NumberOfChannels)
	w.WriteUint32(d.Size.Height)
	w.WriteUint32(d.Size.Width)
	// Depth and colour mode: output is always 8 bits per channel, RGB.
	w.WriteInt16(8)
	w.WriteInt16(int16(ColorModeRGB))
	w.WriteUint32(0) // colour mode data, always empty for RGB output
	return nil
}

// writeLayerAndMaskInfo writes the layer-and-mask-information section: a
// u32 length prefix, the layer-info sub-section (negative layer count
// followed by every flattened layer record, then every flattened layer's
// image data, zero-padded to an even length), and the global layer mask
// info length, always zero.
func (d *Document) writeLayerAndMaskInfo(w *byteWriter, layerCount int) error {
	body := newByteWriter()

	layerInfo := newByteWriter()
	layerInfo.WriteInt16(int16(-layerCount))

	for i := range d.Layers {
		data, err := d.Layers[i].recordData()
		if err != nil {
			return fmt.Errorf("psd: layer %d: %w", i, err)
		}
		layerInfo.WriteBytes(data)
	}

	for i := range d.Layers {
		data, err := d.Layers[i].encodedImage()
		if err != nil {
			return fmt.Errorf("psd: layer %d: %w", i, err)
		}
		layerInfo.WriteBytes(data)
	}

	layerInfo.padEven()

	body.WriteUint32(uint32(layerInfo.Len()))
	body.WriteBytes(layerInfo.Bytes())

	body.WriteUint32(0) // global layer mask info: absent

	w.WriteUint32(uint32(body.Len()))
	w.WriteBytes(body.Bytes())
	return nil
}

// writeImageData writes the final section: the whole-document preview,
// RLE-encoded. A document with no preview image writes an empty section.
func (d *Document) writeImageData(w *byteWriter) error {
	if d.PreviewImage == nil {
		return nil
	}

	data, err := EncodeImage(d.PreviewImage, CompressionRLE)
	if err != nil {
		return fmt.Errorf("psd: preview image: %w", err)
	}
	w.WriteBytes(data)
	return nil
}
