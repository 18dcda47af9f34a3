package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var interval time.Duration
	var stylePath string
	var logFile string
	var dumpFrames int
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/diagviz/config.yml)")
	flag.DurationVar(&interval, "interval", 0, "override the sampling interval")
	flag.StringVar(&stylePath, "style", "", "override the chart style file")
	flag.StringVar(&logFile, "log-file", "", "override the log file written while the TUI runs")
	flag.IntVar(&dumpFrames, "dump", 0, "simulate N frames without a terminal and print the drawing calls")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("diagviz - live diagnostics charts\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if interval > 0 {
		cfg.Interval = interval
	}
	if stylePath != "" {
		cfg.StyleFile = stylePath
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	if dumpFrames > 0 {
		err = runDump(cfg, dumpFrames, os.Stdout)
	} else {
		err = runTUI(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
