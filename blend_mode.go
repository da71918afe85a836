package psd

// BlendMode is the blend mode recorded in a layer record. Several of these
// variants (Dissolve, LinearBurn, DarkerColor, LinearDodge, LighterColor,
// VividLight, LinearLight, PinLight, HardMix) have no equivalent in most
// compositing pipelines; that's a concern for callers rendering the
// result, not for writing the tag out. The writer always emits exactly
// the tag the caller asked for.
type BlendMode int

const (
	BlendModePassThrough BlendMode = iota
	BlendModeNormal
	BlendModeDissolve
	BlendModeDarken
	BlendModeMultiply
	BlendModeColorBurn
	BlendModeLinearBurn
	BlendModeDarkerColor
	BlendModeLighten
	BlendModeScreen
	BlendModeColorDodge
	BlendModeLinearDodge
	BlendModeLighterColor
	BlendModeOverlay
	BlendModeSoftLight
	BlendModeHardLight
	BlendModeVividLight
	BlendModeLinearLight
	BlendModePinLight
	BlendModeHardMix
	BlendModeDifference
	BlendModeExclusion
	BlendModeSubtract
	BlendModeDivide
	BlendModeHue
	BlendModeSaturation
	BlendModeColor
	BlendModeLuminosity
)

var blendModeTags = map[BlendMode]string{
	BlendModePassThrough:  "pass",
	BlendModeNormal:       "norm",
	BlendModeDissolve:     "diss",
	BlendModeDarken:       "dark",
	BlendModeMultiply:     "mul ",
	BlendModeColorBurn:    "idiv",
	BlendModeLinearBurn:   "lbrn",
	BlendModeDarkerColor:  "dkCl",
	BlendModeLighten:      "lite",
	BlendModeScreen:       "scrn",
	BlendModeColorDodge:   "div ",
	BlendModeLinearDodge:  "lddg",
	BlendModeLighterColor: "lgCl",
	BlendModeOverlay:      "over",
	BlendModeSoftLight:    "sLit",
	BlendModeHardLight:    "hLit",
	BlendModeVividLight:   "vLit",
	BlendModeLinearLight:  "lLit",
	BlendModePinLight:     "pLit",
	BlendModeHardMix:      "hMix",
	BlendModeDifference:   "diff",
	BlendModeExclusion:    "smud",
	BlendModeSubtract:     "fsub",
	BlendModeDivide:       "fdiv",
	BlendModeHue:          "hue ",
	BlendModeSaturation:   "sat ",
	BlendModeColor:        "colr",
	BlendModeLuminosity:   "lum ",
}

var blendModeByTag = func() map[string]BlendMode {
	m := make(map[string]BlendMode, len(blendModeTags))
	for mode, tag := range blendModeTags {
		m[tag] = mode
	}
	return m
}()

// Tag returns the 4-byte ASCII tag for the blend mode.
func (b BlendMode) Tag() string {
	if tag, ok := blendModeTags[b]; ok {
		return tag
	}
	return blendModeTags[BlendModeNormal]
}

// BlendModeFromTag returns the blend mode for a 4-byte tag. An unrecognized
// tag maps to Normal.
func BlendModeFromTag(tag string) BlendMode {
	if mode, ok := blendModeByTag[tag]; ok {
		return mode
	}
	return BlendModeNormal
}
