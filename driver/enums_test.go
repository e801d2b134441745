// SPDX-License-Identifier: Unlicense OR MIT

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumText(t *testing.T) {
	var w Wrap
	require.NoError(t, w.UnmarshalText([]byte("Repeat")))
	assert.Equal(t, WrapRepeat, w)

	var f Filter
	require.NoError(t, f.UnmarshalText([]byte(" linear ")))
	assert.Equal(t, FilterLinear, f)

	var p PixelFormat
	require.NoError(t, p.UnmarshalText([]byte("rg")))
	assert.Equal(t, PixelFormatRG, p)

	var d DataType
	require.NoError(t, d.UnmarshalText([]byte("half")))
	assert.Equal(t, DataTypeHalfFloat, d)

	err := d.UnmarshalText([]byte("double"))
	assert.ErrorContains(t, err, "unknown data type")

	b, err := PixelFormatRGB.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "rgb", string(b))
}

func TestEnumString(t *testing.T) {
	assert.Equal(t, "clamp", WrapClampToEdge.String())
	assert.Equal(t, "Wrap(9)", Wrap(9).String())
	assert.Equal(t, "OneMinusSrcAlpha", BlendFactorOneMinusSrcAlpha.String())
	assert.Equal(t, "Color|Depth|Accum", (ClearColor | ClearDepth | ClearAccum).String())
	assert.Equal(t, "0", ClearBits(0).String())
}

func TestTextureProperties(t *testing.T) {
	props := TextureProperties{
		Wrap:      WrapClampToEdge,
		MinFilter: FilterLinear,
		MagFilter: FilterNearest,
		Format:    PixelFormatRGBA,
		Type:      DataTypeFloat,
	}
	require.NoError(t, props.Validate())
	assert.Equal(t, 16, props.BytesPerPixel())

	props.Format = PixelFormatRed
	props.Type = DataTypeUnsignedByte
	assert.Equal(t, 1, props.BytesPerPixel())

	props.MagFilter = Filter(7)
	assert.Error(t, props.Validate())
}
