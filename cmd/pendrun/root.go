// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"code.hybscloud.com/pend/internal/demo"
	"code.hybscloud.com/pend/internal/driver"
)

var (
	configPath string

	cfg *driver.Config
	drv *driver.Driver

	rootCmd = &cobra.Command{
		Use:          "pendrun",
		Short:        "Run effectful reference programs through the pend driver",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := driver.LoadConfig(configPath)
			switch {
			case err == nil:
				cfg = loaded
			case errors.Is(err, fs.ErrNotExist):
				cfg = driver.DefaultConfig()
			default:
				return err
			}

			logger, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			drv = driver.New(logger)
			for _, p := range demo.Programs() {
				if err := drv.Register(p); err != nil {
					return err
				}
			}
			return nil
		},
	}

	runCmd = &cobra.Command{
		Use:   "run [program...]",
		Short: "Run the named programs, or the configured queue",
		Long: `Run drains a queue of programs in order. The queue is the named
programs, the config file's queue when none are named, or every registered
program when both are empty. A failing program is logged and the drain
continues; a panicking program stops it.`,
		RunE: runPrograms,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the registered programs",
		RunE:  listPrograms,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "pendrun.yaml",
		"path to the YAML configuration")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}

func runPrograms(cmd *cobra.Command, args []string) error {
	queue := args
	if len(queue) == 0 {
		queue = cfg.Queue
	}
	if len(queue) == 0 {
		for _, p := range drv.Programs() {
			queue = append(queue, p.Name)
		}
	}

	outcomes, err := drv.Drain(queue)
	for _, out := range outcomes {
		if out.Err != nil {
			fmt.Printf("%s: error: %v\n", out.Program, out.Err)
			continue
		}
		fmt.Printf("%s: %s\n", out.Program, out.Output)
	}
	return err
}

func listPrograms(cmd *cobra.Command, args []string) error {
	for _, p := range drv.Programs() {
		fmt.Printf("%-10s %s\n", p.Name, p.Description)
	}
	return nil
}
