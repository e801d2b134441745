// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/glscope/fbo"
	"github.com/glscope/fbo/driver"
)

// config is the TOML document read by -config. Zero target dimensions
// inherit the window size.
type config struct {
	Window struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"window"`
	Target struct {
		Width       int                `toml:"width"`
		Height      int                `toml:"height"`
		Attachments int                `toml:"attachments"`
		DepthBits   int                `toml:"depth_bits"`
		Wrap        driver.Wrap        `toml:"wrap"`
		MinFilter   driver.Filter      `toml:"min_filter"`
		MagFilter   driver.Filter      `toml:"mag_filter"`
		Format      driver.PixelFormat `toml:"format"`
		Type        driver.DataType    `toml:"type"`
	} `toml:"target"`
	Pass struct {
		Clear    [4]float32 `toml:"clear"`
		Blending string     `toml:"blending"`
		Cull     bool       `toml:"cull"`
	} `toml:"pass"`
}

func defaultConfig() config {
	var c config
	c.Window.Width, c.Window.Height = 800, 600
	d := fbo.DefaultConfig()
	c.Target.Attachments = d.Attachments
	c.Target.Wrap = d.Texture.Wrap
	c.Target.MinFilter = d.Texture.MinFilter
	c.Target.MagFilter = d.Texture.MagFilter
	c.Target.Format = d.Texture.Format
	c.Target.Type = d.Texture.Type
	c.Pass.Clear = [4]float32{0, 0, 0, 1}
	return c
}

// decodeConfig reads a TOML document over the defaults. Unknown keys are
// errors.
func decodeConfig(r io.Reader) (config, error) {
	c := defaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.validate(); err != nil {
		return config{}, err
	}
	return c, nil
}

func loadConfig(path string) (config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	return decodeConfig(f)
}

func (c config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Pass.Blending {
	case "", "none", "additive", "alpha":
	default:
		return fmt.Errorf("config: unknown blending %q", c.Pass.Blending)
	}
	return c.targetConfig().Validate()
}

func (c config) targetConfig() fbo.Config {
	t := c.Target
	return fbo.Config{
		Width:       t.Width,
		Height:      t.Height,
		Attachments: t.Attachments,
		DepthBits:   t.DepthBits,
		Texture: driver.TextureProperties{
			Wrap:      t.Wrap,
			MinFilter: t.MinFilter,
			MagFilter: t.MagFilter,
			Format:    t.Format,
			Type:      t.Type,
		},
	}
}
