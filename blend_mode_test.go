package psd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlendModeTagRoundTrip(t *testing.T) {
	for mode, tag := range blendModeTags {
		assert.Equal(t, tag, mode.Tag())
		assert.Equal(t, mode, BlendModeFromTag(tag))
	}
}

func TestBlendModeFromTagUnknownDefaultsToNormal(t *testing.T) {
	assert.Equal(t, BlendModeNormal, BlendModeFromTag("xxxx"))
}

func TestBlendModeKnownTags(t *testing.T) {
	assert.Equal(t, "norm", BlendModeNormal.Tag())
	assert.Equal(t, "mul ", BlendModeMultiply.Tag())
	assert.Equal(t, "hue ", BlendModeHue.Tag())
	assert.Equal(t, "lum ", BlendModeLuminosity.Tag())
	assert.Equal(t, "pass", BlendModePassThrough.Tag())
}
