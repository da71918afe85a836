package psd

// File-level signatures, per the Photoshop file format specification
// (http://www.adobe.com/devnet-apps/photoshop/fileformatashtml/).
const (
	fileSignature     = "8BPS"
	resourceSignature = "8BIM"
	versionNumber     = 1
)

// ColorMode is the colour mode recorded in a document's header.
type ColorMode int16

// Color mode codes. The writer always emits Rgb; indexed, CMYK, Lab,
// grayscale and duotone output are not supported.
const (
	ColorModeBitmap       ColorMode = 0
	ColorModeGrayscale    ColorMode = 1
	ColorModeIndexed      ColorMode = 2
	ColorModeRGB          ColorMode = 3
	ColorModeCMYK         ColorMode = 4
	ColorModeMultichannel ColorMode = 7
	ColorModeDuotone      ColorMode = 8
	ColorModeLab          ColorMode = 9
)

// Resource identifiers used in the image-resources block.
const (
	resourceIDResolutionInformation  int16 = 0x03ED
	resourceIDLayerState             int16 = 0x0400
	resourceIDLayersGroupInformation int16 = 0x0402
)

// maxDocumentDimension is the largest width or height a PSD (version 1)
// document may declare.
const maxDocumentDimension = 30000
