// main.go - redboy-mon: a thin command-line driver over package redboy

/*
 ####   ##### ####  ####   ####  #   #
 #   #  #     #   # #   # #   #  # #
 ####   ####  #   # ####  #   #   #
 #   #  #     #   # #   # #   #   #
 #   #  ##### ####  ####   ####    #

(c) 2025 - 2026 Zayn Otley
https://github.com/zaynotley/redboy

License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zaynotley/redboy"
	"github.com/zaynotley/redboy/internal/monitor"
)

var (
	debug      bool
	configPath string
)

func main() {
	root := &cobra.Command{
		Use:   "redboy-mon",
		Short: "A Virtual Boy core driver and interactive monitor",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable core diagnostic logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML monitor config file")

	var frames int
	runCmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Free-run a ROM for a fixed number of frames and print a register dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := loadCore(args[0])
			if err != nil {
				return err
			}
			for i := 0; i < frames; i++ {
				core.Step()
			}
			printRegs(core)
			return nil
		},
	}
	runCmd.Flags().IntVar(&frames, "frames", 60, "number of frames to run before stopping")

	monitorCmd := &cobra.Command{
		Use:   "monitor <rom>",
		Short: "Load a ROM and drop into the interactive monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := loadCore(args[0])
			if err != nil {
				return err
			}
			cfg, err := monitor.LoadConfig(configPath)
			if err != nil {
				return err
			}
			mon := monitor.New(core)
			mon.LoadBreakpoints(cfg.Breakpoints)
			return mon.Run()
		},
	}

	root.AddCommand(runCmd, monitorCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadCore(romPath string) (*redboy.Core, error) {
	data, err := os.ReadFile(romPath)
	if err != nil {
		return nil, fmt.Errorf("redboy-mon: read rom: %w", err)
	}
	core := redboy.NewCore()
	core.Debug = debug
	if err := core.LoadROM(data); err != nil {
		return nil, fmt.Errorf("redboy-mon: load rom: %w", err)
	}
	fmt.Printf("loaded %q\n", core.RomTitle())
	return core, nil
}

func printRegs(core *redboy.Core) {
	regs := core.Registers()
	for i := 0; i < 32; i += 4 {
		fmt.Printf("r%-2d=%08X r%-2d=%08X r%-2d=%08X r%-2d=%08X\n",
			i, regs[i], i+1, regs[i+1], i+2, regs[i+2], i+3, regs[i+3])
	}
	fmt.Printf("pc=%08X\n", core.CPU.PC)
}
