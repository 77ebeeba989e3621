// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	altyaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewDiffFlags returns the flag set for the diff command. cfgFile, when
// non-empty, is appended to each string flag's value source chain so
// config-file values fill in behind env vars.
func NewDiffFlags(ns string, cfgFile string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:  "exit-code",
			Usage: "exit with status 1 when the documents differ",
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated ops and/or path prefixes to keep",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "document format (toml, json, yaml, hcl); inferred from the file extension when unset",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CONFDIFF_FORMAT"),
			),
			Validator: func(value string) error {
				return FormatValidator(value)
			},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return OutputValidator(value)
			},
		},
		&cli.IntFlag{
			Name:  "padding",
			Usage: "extra left padding between table columns",
			Value: 2,
		},
		&cli.StringFlag{
			Name:  "passphrase",
			Usage: "passphrase for encrypted snapshots",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CONFDIFF_PASSPHRASE"),
			),
		},
		&cli.StringFlag{
			Name:  "path",
			Usage: "dotted path to a subtree to diff instead of the whole document",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show column titles with table output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:  "tui",
			Usage: "page the report in an interactive viewer",
			Value: false,
		},
	}

	profile := &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS shared config profile for s3:// documents",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CONFDIFF_AWS_PROFILE"),
			cli.EnvVar("AWS_PROFILE"),
		),
	}
	region := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region for s3:// documents",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CONFDIFF_AWS_REGION"),
			cli.EnvVar("AWS_REGION"),
		),
	}

	if cfgFile != "" {
		profile = NameSpacedValueChainFlagFromConfigFile(ns, cfgFile, profile)
		region = NameSpacedValueChainFlagFromConfigFile(ns, cfgFile, region)
	}
	flags = append(flags, profile, region)

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global
// config file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := altyaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = altyaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
