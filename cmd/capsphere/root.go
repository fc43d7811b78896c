// SPDX-License-Identifier: MIT
// Package: capsphere/cmd/capsphere
//
// root.go: the root command, configuration and shared state.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/capsphere/config"
	"github.com/katalvlaran/capsphere/engine"
	"github.com/katalvlaran/capsphere/observability"
)

// app is the state shared by all subcommands after PersistentPreRunE.
type app struct {
	cfgFile string
	format  string

	cfg    *config.Config
	log    *zap.Logger
	engine *engine.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "capsphere",
		Short:         "Capability sphere layout, graph and mesh generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", formatText, "output format: text, json or yaml")

	root.AddCommand(
		newLayoutCmd(a),
		newGraphCmd(a),
		newMeshCmd(a),
		newSummaryCmd(a),
		newFontCmd(a),
	)

	return root
}

// init loads configuration, the logger and the engine.
func (a *app) init() error {
	if err := checkFormat(a.format); err != nil {
		return err
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	observability.InitializeLogger(cfg.Logger)
	a.log = observability.GetLogger()

	a.engine, err = engine.New(engine.WithLogger(a.log))
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	a.log.Debug("configuration loaded", zap.String("file", a.cfgFile), zap.String("format", a.format))

	return nil
}
