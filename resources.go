package psd

// writeImageResources writes the image-resources block: a u32 length
// prefix followed by three sub-resources, each introduced by "8BIM", a
// resource ID, an empty Pascal name, and a length-prefixed payload.
func writeImageResources(w *byteWriter, layerCount int) {
	body := newByteWriter()

	writeResolutionInformation(body)
	writeLayerState(body)
	writeLayersGroupInformation(body, layerCount)

	w.WriteUint32(uint32(body.Len()))
	w.WriteBytes(body.Bytes())
}

func writeResourceHeader(w *byteWriter, id int16, dataLength uint32) {
	w.WriteString(resourceSignature)
	w.WriteInt16(id)
	w.WriteInt16(0) // name, always empty
	w.WriteUint32(dataLength)
}

// writeResolutionInformation writes resource 0x03ED with its fixed
// 16-byte payload (72 dpi, no fractional part, inches as display unit).
func writeResolutionInformation(w *byteWriter) {
	data := []byte{
		0x00, 0x48, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01,
		0x00, 0x48, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01,
	}
	writeResourceHeader(w, resourceIDResolutionInformation, uint32(len(data)))
	w.WriteBytes(data)
}

// writeLayerState writes resource 0x0400: the index of the selected
// layer, always 0.
func writeLayerState(w *byteWriter) {
	writeResourceHeader(w, resourceIDLayerState, 2)
	w.WriteUint16(0)
}

// writeLayersGroupInformation writes resource 0x0402: one group ID per
// layer (each group counted twice, opener and marker), always 0.
func writeLayersGroupInformation(w *byteWriter, layerCount int) {
	writeResourceHeader(w, resourceIDLayersGroupInformation, uint32(layerCount)*2)
	for i := 0; i < layerCount; i++ {
		w.WriteInt16(0)
	}
}
