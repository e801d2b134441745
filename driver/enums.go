// SPDX-License-Identifier: Unlicense OR MIT

package driver

import (
	"fmt"
	"strings"
)

type (
	Wrap        uint8
	Filter      uint8
	PixelFormat uint8
	DataType    uint8
	BlendFactor uint8
	Face        uint8
	ClearBits   uint8
)

const (
	WrapClampToEdge Wrap = iota
	WrapRepeat
	WrapMirroredRepeat
	wrapCount
)

const (
	FilterNearest Filter = iota
	FilterLinear
	filterCount
)

const (
	PixelFormatRGBA PixelFormat = iota
	PixelFormatRGB
	PixelFormatRG
	PixelFormatRed
	pixelFormatCount
)

const (
	DataTypeUnsignedByte DataType = iota
	DataTypeFloat
	DataTypeHalfFloat
	dataTypeCount
)

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstColor
)

const (
	FaceBack Face = iota
	FaceFront
	FaceFrontAndBack
)

const (
	ClearColor ClearBits = 1 << iota
	ClearDepth
	// ClearAccum clears the accumulation buffer where the context has one.
	ClearAccum
)

var (
	wrapNames        = [...]string{"clamp", "repeat", "mirror"}
	filterNames      = [...]string{"nearest", "linear"}
	pixelFormatNames = [...]string{"rgba", "rgb", "rg", "red"}
	dataTypeNames    = [...]string{"ubyte", "float", "half"}
)

func enumString(names []string, v uint8, kind string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

func parseEnum(names []string, text []byte, kind string) (uint8, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == s {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("driver: unknown %s %q (want one of %s)", kind, s, strings.Join(names, ", "))
}

func (w Wrap) String() string { return enumString(wrapNames[:], uint8(w), "Wrap") }

func (w Wrap) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *Wrap) UnmarshalText(text []byte) error {
	v, err := parseEnum(wrapNames[:], text, "wrap mode")
	*w = Wrap(v)
	return err
}

func (f Filter) String() string { return enumString(filterNames[:], uint8(f), "Filter") }

func (f Filter) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Filter) UnmarshalText(text []byte) error {
	v, err := parseEnum(filterNames[:], text, "filter")
	*f = Filter(v)
	return err
}

func (p PixelFormat) String() string {
	return enumString(pixelFormatNames[:], uint8(p), "PixelFormat")
}

func (p PixelFormat) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PixelFormat) UnmarshalText(text []byte) error {
	v, err := parseEnum(pixelFormatNames[:], text, "pixel format")
	*p = PixelFormat(v)
	return err
}

// Channels returns the number of components of the format.
func (p PixelFormat) Channels() int {
	switch p {
	case PixelFormatRGBA:
		return 4
	case PixelFormatRGB:
		return 3
	case PixelFormatRG:
		return 2
	case PixelFormatRed:
		return 1
	}
	panic("unknown pixel format")
}

func (d DataType) String() string { return enumString(dataTypeNames[:], uint8(d), "DataType") }

func (d DataType) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *DataType) UnmarshalText(text []byte) error {
	v, err := parseEnum(dataTypeNames[:], text, "data type")
	*d = DataType(v)
	return err
}

// Size returns the size in bytes of one component.
func (d DataType) Size() int {
	switch d {
	case DataTypeUnsignedByte:
		return 1
	case DataTypeHalfFloat:
		return 2
	case DataTypeFloat:
		return 4
	}
	panic("unknown data type")
}

func (b BlendFactor) String() string {
	switch b {
	case BlendFactorZero:
		return "Zero"
	case BlendFactorOne:
		return "One"
	case BlendFactorSrcAlpha:
		return "SrcAlpha"
	case BlendFactorOneMinusSrcAlpha:
		return "OneMinusSrcAlpha"
	case BlendFactorDstColor:
		return "DstColor"
	}
	return fmt.Sprintf("BlendFactor(%d)", uint8(b))
}

func (f Face) String() string {
	switch f {
	case FaceBack:
		return "Back"
	case FaceFront:
		return "Front"
	case FaceFrontAndBack:
		return "FrontAndBack"
	}
	return fmt.Sprintf("Face(%d)", uint8(f))
}

func (c ClearBits) String() string {
	var parts []string
	if c&ClearColor != 0 {
		parts = append(parts, "Color")
	}
	if c&ClearDepth != 0 {
		parts = append(parts, "Depth")
	}
	if c&ClearAccum != 0 {
		parts = append(parts, "Accum")
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}
