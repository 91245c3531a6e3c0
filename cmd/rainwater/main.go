package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/drake/rainwater/config"
	"github.com/drake/rainwater/debug"
	"github.com/drake/rainwater/export"
	"github.com/drake/rainwater/internal/log"
	"github.com/drake/rainwater/session"
	"github.com/drake/rainwater/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "rainwater:", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags
	simpleUI := flag.Bool("simple", false, "Use simple console UI instead of TUI")
	debugLog := flag.Bool("debug", false, "Enable debug logging")
	initFile := flag.String("config", config.InitFile(), "Path to init.lua")
	heights := flag.String("heights", "", "Compute these heights once and exit (batch mode)")
	format := flag.String("format", "text", "Batch output format: text, json or msgpack")
	svgFile := flag.String("svg", "", "Batch mode: also write the bar chart to this SVG file")
	htmlFile := flag.String("html", "", "Batch mode: also write the grid table to this HTML file")
	flag.Parse()

	batch := *heights != ""

	// The TUI owns the terminal, so it logs to a file
	logPath := ""
	if !batch && !*simpleUI {
		logPath = config.LogFile()
	}
	if err := log.Init(*debugLog, logPath); err != nil {
		return err
	}
	defer log.Sync()

	engine, opts, err := session.Boot(*initFile)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctrl := session.New(opts, engine, log.Sugar())

	if batch {
		return runBatch(ctrl, *heights, *format, *svgFile, *htmlFile)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debug.NewMonitor(ctx, ctrl, log.Sugar()).Start()

	log.Infow("starting", "simple", *simpleUI, "init", *initFile)
	if *simpleUI {
		return ui.NewConsole(ctrl, os.Stdin, os.Stdout).Run()
	}
	return ui.Run(ctrl)
}

func runBatch(ctrl *session.Controller, text, formatName, svgFile, htmlFile string) error {
	f, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	snap := ctrl.Render(text)
	if err := export.Write(os.Stdout, f, snap.Heights, snap.Profile); err != nil {
		return err
	}
	if snap.Status != "" {
		fmt.Fprintln(os.Stderr, snap.Status)
	}

	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(ctrl.SVG()), 0o644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	}
	if htmlFile != "" {
		if err := os.WriteFile(htmlFile, []byte(ctrl.HTML()), 0o644); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
	}
	return nil
}
