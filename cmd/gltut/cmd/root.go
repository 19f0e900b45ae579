// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"cogentcore.org/gltut/base/errors"
	"cogentcore.org/gltut/config"
	"cogentcore.org/gltut/logx"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// ConfigFile is the name of the config file looked for on [ConfigPaths].
const ConfigFile = "gltut.toml"

// ConfigPaths returns the directories searched for [ConfigFile]
// when no config file is given: the user config directory and then
// the current directory, which takes precedence.
func ConfigPaths() []string {
	paths := []string{}
	if dir := errors.Log1(homedir.Expand("~/.config/gltut")); dir != "" {
		paths = append(paths, dir)
	}
	return append(paths, ".")
}

// Root returns the root command with all of the subcommands.
func Root() *cobra.Command {
	var (
		vv, v, q   bool
		configFile string
	)
	cfg := config.New()

	root := &cobra.Command{
		Use:           "gltut",
		Short:         "Inspect the OpenGL tutorial transforms and assets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
			if configFile != "" {
				return config.Open(cfg, configFile)
			}
			err := config.OpenPaths(cfg, ConfigPaths(), ConfigFile)
			if err != nil {
				slog.Debug("gltut: using default config", "err", err)
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "very verbose: show debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "verbose: show info messages")
	pf.BoolVarP(&q, "quiet", "q", false, "quiet: only show errors")
	pf.StringVar(&configFile, "config", "", "config file (.toml, .yaml or .yml)")

	root.AddCommand(mvpCmd(cfg), ddsCmd(cfg), objCmd(cfg), textureCmd(cfg), configCmd(cfg))
	return root
}

func mvpCmd(cfg *config.Config) *cobra.Command {
	var tut int
	var ndc bool
	c := &cobra.Command{
		Use:   "mvp",
		Short: "Print the model, view and projection matrices of a tutorial",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return MVP(c.OutOrStdout(), cfg, tut, ndc)
		},
	}
	c.Flags().IntVar(&tut, "tut", 4, "tutorial number")
	c.Flags().BoolVar(&ndc, "ndc", false, "also print the vertices in normalized device coordinates")
	return c
}

func ddsCmd(cfg *config.Config) *cobra.Command {
	var strict bool
	c := &cobra.Command{
		Use:   "dds FILE",
		Short: "Print the format and mip levels of a DDS texture",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return DDS(c.OutOrStdout(), cfg, args[0], strict)
		},
	}
	c.Flags().BoolVar(&strict, "strict", false, "require the full payload declared by the header")
	return c
}

func objCmd(cfg *config.Config) *cobra.Command {
	var invertV bool
	c := &cobra.Command{
		Use:   "obj FILE",
		Short: "Print the counts and warnings of an OBJ model",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			inv := cfg.InvertV
			if c.Flags().Changed("invert-v") {
				inv = invertV
			}
			return OBJ(c.OutOrStdout(), cfg, args[0], inv)
		},
	}
	c.Flags().BoolVar(&invertV, "invert-v", false, "negate the v texture coordinates (default from config)")
	return c
}

func textureCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "texture FILE",
		Short: "Detect and decode a DDS, BMP, PNG or JPEG texture",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return Texture(c.OutOrStdout(), cfg, args[0])
		},
	}
}

func configCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config [FILE]",
		Short: "Print the config in TOML, or save it to the given file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 1 {
				return config.Save(cfg, args[0])
			}
			return config.Encode(c.OutOrStdout(), cfg, ".toml")
		},
	}
}
