package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/mytube-icon/internal/app"
	"github.com/rook-computer/mytube-icon/internal/config"
)

const envStdioLog = "MYTUBE_ICON_STDIO_LOG"

func main() {
	// Flags
	configPath := flag.String("config", "", "YAML icon definition; built-in mytube icon when empty")
	fullRes := flag.String("out", "", "full-resolution PNG path; also configurable via "+config.EnvFullRes)
	resRoot := flag.String("res", "", "root of the density folders; also configurable via "+config.EnvResRoot)
	filter := flag.String("filter", "", "resample filter: lanczos | catmullrom | linear | nearest; also configurable via "+config.EnvFilter)
	icoPath := flag.String("ico", "", "also write a 256px Windows icon to this path")
	noSmooth := flag.Bool("no-smooth", false, "skip the final smoothing pass")
	previewDev := flag.String("preview", "", "show the rendered icon on this framebuffer device, e.g. /dev/fb0")
	dumpConfig := flag.Bool("dump-config", false, "print the effective configuration as YAML and exit")
	debug := flag.Bool("debug", false, "enable debug logging to stderr")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			os.Exit(2)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if *fullRes != "" {
		cfg.Export.FullRes = *fullRes
	}
	if *resRoot != "" {
		cfg.Export.ResRoot = *resRoot
	}
	if *filter != "" {
		cfg.Export.Filter = *filter
	}
	if *icoPath != "" {
		cfg.Export.ICO = *icoPath
	}
	if *noSmooth {
		cfg.Icon.Smooth = false
	}

	if *dumpConfig {
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "config error:", err)
			os.Exit(2)
		}
		os.Stdout.Write(data)
		return
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		logger = app.NewConsoleLogger(os.Stderr)
		logger.Infof("main", "debug logging enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	a.Logger = logger
	a.Preview = *previewDev
	a.Debug = *debug

	if err := a.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
