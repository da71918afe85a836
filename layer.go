package psd

// Layer is a single layer in a Photoshop document: either a raster image
// or a group of child layers.
type Layer struct {
	// Bounds, in document coordinates.
	Top, Left, Bottom, Right int32

	NumberOfChannels int16
	BlendMode        BlendMode
	Opacity          uint8
	IsHidden         bool
	Name             string

	// Image is the layer's raster content. Only meaningful when the layer
	// is not a group.
	Image *Image

	// AdditionalLayerInformation is appended to the layer record's extra
	// data verbatim, after the Pascal and Unicode name blocks.
	AdditionalLayerInformation []byte

	// Children, when non-nil, makes this a group layer. IsOpen records
	// whether the group should start expanded; the writer does not use
	// it (a group's opener record carries no section-divider block, so
	// the expanded state is not written), but callers may inspect it.
	Children []Layer
	IsOpen   bool

	channels []*ColorChannel
}

// NewLayer creates an image layer with the given bounds.
func NewLayer(top, left, bottom, right int32) Layer {
	return Layer{
		Top:              top,
		Left:             left,
		Bottom:           bottom,
		Right:            right,
		NumberOfChannels: 4,
		BlendMode:        BlendModeNormal,
		Opacity:          255,
	}
}

// NewGroupLayer creates a group layer containing the given children.
func NewGroupLayer(children []Layer, isOpen bool) Layer {
	l := NewLayer(0, 0, 0, 0)
	l.Children = children
	l.IsOpen = isOpen
	return l
}

// IsGroup reports whether the layer is a group.
func (l *Layer) IsGroup() bool {
	return l.Children != nil
}

// Width returns the layer's width in pixels.
func (l *Layer) Width() int32 {
	return l.Right - l.Left
}

// Height returns the layer's height in pixels.
func (l *Layer) Height() int32 {
	return l.Bottom - l.Top
}

// numberOfLayers returns the flattened layer count this layer contributes:
// 1 for an image layer, or 2 plus its descendants' count for a group
// (one opener record, one synthetic end-marker record).
func (l *Layer) numberOfLayers() int {
	if !l.IsGroup() {
		return 1
	}
	count := 2
	for i := range l.Children {
		count += l.Children[i].numberOfLayers()
	}
	return count
}

// isZeroBounds reports whether the layer's bounds are the zero rectangle.
func (l *Layer) isZeroBounds() bool {
	return l.Top == 0 && l.Left == 0 && l.Bottom == 0 && l.Right == 0
}

// promoteZeroBounds expands a zero-rectangle image layer to the
// document's full extent; some consumers (Procreate among them) can't
// handle a zero-sized layer. Groups keep zero bounds, since their bounds
// have no pixel meaning.
func (l *Layer) promoteZeroBounds(docSize Size) {
	if l.IsGroup() || !l.isZeroBounds() {
		return
	}
	l.Bottom = int32(docSize.Height)
	l.Right = int32(docSize.Width)
}

// populateChannels builds the layer's four channel planes from Image,
// de-interleaving it the same way the whole-image encoder does. A layer
// with no image (including a zero-bounds one, such as a group marker)
// gets an empty image synthesized first. Channels are stored in Alpha,
// Red, Green, Blue order, the order consumers expect for per-layer
// channel data, distinct from the R, G, B, A order used by the
// whole-image section.
func (l *Layer) populateChannels() {
	if l.channels != nil {
		return
	}

	if l.Image == nil {
		l.Image = NewImage(Size{Width: uint32(l.Width()), Height: uint32(l.Height())})
	}

	red, green, blue, alpha := deinterleave(l.Image)
	l.channels = []*ColorChannel{alpha, red, green, blue}
}

// groupMarkerChannelTypes is the channel order used by group openers and
// their synthetic end markers: Alpha, Red, Green, Blue, matching the
// per-layer channel storage order.
var groupMarkerChannelTypes = [4]ColorChannelType{
	ColorChannelAlpha, ColorChannelRed, ColorChannelGreen, ColorChannelBlue,
}

// recordData returns the layer's metadata record(s) in flattened
// depth-first post-order: for an image layer, its own layer record; for
// a group, the end-marker's record, then each child's recordData, then
// the group's own opener record.
func (l *Layer) recordData() ([]byte, error) {
	w := newByteWriter()

	if l.IsGroup() {
		marker := groupEndMarker()
		markerData, err := marker.layerRecordData()
		if err != nil {
			return nil, err
		}
		w.WriteBytes(markerData)

		for i := range l.Children {
			childData, err := l.Children[i].recordData()
			if err != nil {
				return nil, err
			}
			w.WriteBytes(childData)
		}

		openerData, err := l.layerRecordData()
		if err != nil {
			return nil, err
		}
		w.WriteBytes(openerData)
		return w.Bytes(), nil
	}

	data, err := l.layerRecordData()
	if err != nil {
		return nil, err
	}
	w.WriteBytes(data)
	return w.Bytes(), nil
}

// encodedImage returns the layer's per-channel image data in the same
// flattened order as recordData: for an image layer, its own channel
// data; for a group, four zero compression tags (the end marker's empty
// image), each child's encodedImage, then four more zero tags (the
// opener's empty image).
func (l *Layer) encodedImage() ([]byte, error) {
	w := newByteWriter()

	if l.IsGroup() {
		for i := 0; i < 4; i++ {
			w.WriteInt16(0)
		}
		for i := range l.Children {
			childData, err := l.Children[i].encodedImage()
			if err != nil {
				return nil, err
			}
			w.WriteBytes(childData)
		}
		for i := 0; i < 4; i++ {
			w.WriteInt16(0)
		}
		return w.Bytes(), nil
	}

	l.populateChannels()
	height := uint32(l.Height())
	for _, ch := range l.channels {
		compressed, err := ch.CompressedData(height)
		if err != nil {
			return nil, err
		}
		w.WriteInt16(int16(compressed.Compression))
		w.WriteBytes(compressed.Data)
	}

	return w.Bytes(), nil
}

// layerRecordData returns the flat metadata record for exactly this
// layer: bounds, channel table, blend mode, opacity/flags, and the
// extra-data block. For a group, this is the opener's own row: four
// empty channel entries, since a group carries no pixel data itself.
func (l *Layer) layerRecordData() ([]byte, error) {
	w := newByteWriter()

	w.WriteInt32(l.Top)
	w.WriteInt32(l.Left)
	w.WriteInt32(l.Bottom)
	w.WriteInt32(l.Right)

	w.WriteInt16(l.NumberOfChannels)

	if l.IsGroup() {
		for _, ct := range groupMarkerChannelTypes {
			w.WriteInt16(int16(ct))
			w.WriteUint32(2) // empty channel data plus the compression tag
		}
	} else {
		l.populateChannels()
		for _, ch := range l.channels {
			w.WriteInt16(int16(ch.ColorType))
			compressed, err := ch.CompressedData(uint32(l.Height()))
			if err != nil {
				return nil, err
			}
			w.WriteUint32(uint32(len(compressed.Data)) + 2)
		}
	}

	w.WriteString(resourceSignature)
	w.WriteString(l.BlendMode.Tag())

	w.WriteByte(l.Opacity)
	w.WriteByte(0) // clipping

	var flags byte
	if l.IsHidden {
		flags = 0b00000010
	}
	w.WriteByte(flags)
	w.WriteByte(0) // filler

	extra := newByteWriter()
	extra.WriteUint32(0) // layer mask data: no masks
	extra.WriteUint32(0) // layer blending ranges: none

	writePascalName(extra, l.Name)
	writeUnicodeName(extra, l.Name)

	if l.AdditionalLayerInformation != nil {
		extra.WriteBytes(l.AdditionalLayerInformation)
	}

	w.WriteUint32(uint32(extra.Len()))
	w.WriteBytes(extra.Bytes())

	return w.Bytes(), nil
}

// groupEndMarker returns the synthetic layer that closes a group: zero
// bounds, four empty channels, the conventional "</Layer group>" name,
// and an "lsct" additional-info block signalling the end of the section.
func groupEndMarker() Layer {
	l := NewLayer(0, 0, 0, 0)
	l.Name = "</Layer group>"

	info := newByteWriter()
	writeGroupSectionDivider(info)
	l.AdditionalLayerInformation = info.Bytes()

	return l
}
