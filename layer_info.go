package psd

import "unicode/utf16"

// Additional-layer-information keys this writer emits.
const (
	layerInfoUnicodeName    = "luni" // Unicode layer name
	layerInfoSectionDivider = "lsct" // Layer section divider (group marker)
)

// sectionDividerType values for the "lsct" block.
const (
	sectionDividerOther        int32 = 0
	sectionDividerOpenFolder   int32 = 1
	sectionDividerClosedFolder int32 = 2
	sectionDividerBoundingEnd  int32 = 3 // end-of-group marker
)

// writePascalName writes the Pascal-style name field used in a layer
// record's extra data: a one-byte length (max 255) followed by the UTF-8
// bytes, then zero-padded so the field's total length is a multiple of 4.
// An absent name is written as two zero bytes.
func writePascalName(w *byteWriter, name string) {
	if name == "" {
		w.WriteZeros(2)
		return
	}

	data := []byte(name)
	if len(data) > 255 {
		data = data[:255]
	}

	start := w.Len()
	w.WriteByte(byte(len(data)))
	w.WriteBytes(data)
	for (w.Len()-start)%4 != 0 {
		w.WriteByte(0)
	}
}

// writeUnicodeName writes the "8BIM luni" additional-layer-information
// block: signature, key, block length, UTF-16 code-unit count, then each
// code unit as a big-endian uint16. No trailing padding.
func writeUnicodeName(w *byteWriter, name string) {
	units := utf16.Encode([]rune(name))

	body := newByteWriter()
	body.WriteUint32(uint32(len(units)))
	for _, u := range units {
		body.WriteUint16(u)
	}

	w.WriteString(resourceSignature)
	w.WriteString(layerInfoUnicodeName)
	w.WriteUint32(uint32(body.Len()))
	w.WriteBytes(body.Bytes())
}

// writeGroupSectionDivider writes the "8BIM lsct" block that marks the
// synthetic layer closing a group: a 4-byte section-divider type, here
// always the end-of-section value.
func writeGroupSectionDivider(w *byteWriter) {
	w.WriteString(resourceSignature)
	w.WriteString(layerInfoSectionDivider)
	w.WriteUint32(4)
	w.WriteInt32(sectionDividerBoundingEnd)
}
