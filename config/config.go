// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct shared by
// the tutorial programs and the gltut tool, with loading and
// saving in TOML or YAML format.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/gltut/base/errors"
	"cogentcore.org/gltut/base/fsx"
	"cogentcore.org/gltut/base/reflectx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownExt is returned when a config file extension is not
// one of .toml, .yaml or .yml.
var ErrUnknownExt = errors.New("config: unknown file extension")

// Config is the main config struct for the tutorials.
type Config struct {

	// Width is the window width in pixels.
	Width int `default:"1024"`

	// Height is the window height in pixels.
	Height int `default:"768"`

	// Title is the window title.
	Title string `default:"Tutorial"`

	// AssetDir is the directory that textures and models are loaded from.
	AssetDir string `default:"."`

	// InvertV negates the v texture coordinate of loaded meshes,
	// as needed for DDS textures.
	InvertV bool `default:"true"`

	// Camera holds the projection and movement settings.
	Camera Camera
}

// Camera holds the camera settings of a [Config].
type Camera struct {

	// FOV is the initial vertical field of view in degrees.
	FOV float32 `default:"45"`

	// Near is the near clip plane distance.
	Near float32 `default:"0.1"`

	// Far is the far clip plane distance.
	Far float32 `default:"100"`

	// Speed is the movement speed in units per millisecond.
	Speed float32 `default:"0.0005"`

	// MouseSpeed is the look speed in radians per millisecond per pixel.
	MouseSpeed float32 `default:"0.0005"`
}

// New returns a new [Config] with default values set.
func New() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}

// Aspect returns the width / height aspect ratio of the window,
// or 4:3 if either dimension is not positive.
func (c *Config) Aspect() float32 {
	if c.Width <= 0 || c.Height <= 0 {
		return 4.0 / 3.0
	}
	return float32(c.Width) / float32(c.Height)
}

// AssetPath returns the path to the given asset file within [Config.AssetDir].
func (c *Config) AssetPath(name string) string {
	return filepath.Join(c.AssetDir, name)
}

// Open reads the given config object from the given file,
// using TOML or YAML depending on the file extension.
func Open(cfg any, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return Read(cfg, b, filepath.Ext(file))
}

// Read reads the given config object from the given bytes, in the
// format given by ext (".toml", ".yaml" or ".yml").
func Read(cfg any, b []byte, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.NewDecoder(bytes.NewReader(b)).Decode(cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, cfg)
	}
	return fmt.Errorf("%w: %q", ErrUnknownExt, ext)
}

// Save writes the given config object to the given file,
// using TOML or YAML depending on the file extension.
func Save(cfg any, file string) error {
	var b bytes.Buffer
	if err := Encode(&b, cfg, filepath.Ext(file)); err != nil {
		return err
	}
	return os.WriteFile(file, b.Bytes(), 0666)
}

// Encode writes the given config object to the given writer, in the
// format given by ext (".toml", ".yaml" or ".yml").
func Encode(w io.Writer, cfg any, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.NewEncoder(w).Encode(cfg)
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownExt, ext)
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// OpenPaths looks for the given file on the given paths and opens the
// config from each one found, in order, so that later files override
// earlier ones. It returns an error if the file is not found on any path.
func OpenPaths(cfg any, paths []string, file string) error {
	files := fsx.FindFilesOnPaths(paths, file)
	if len(files) == 0 {
		return fmt.Errorf("config.OpenPaths: no files found for %q", file)
	}
	var errs []error
	for _, fn := range files {
		if err := Open(cfg, fn); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
