// cmd/pacectl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tamzrod/pacemaker-monitor/internal/config"
	"github.com/tamzrod/pacemaker-monitor/internal/packet"
	"github.com/tamzrod/pacemaker-monitor/internal/params"
	"github.com/tamzrod/pacemaker-monitor/internal/serialport"
	"github.com/tamzrod/pacemaker-monitor/internal/telemetry"
)

const usage = `usage: pacectl <config.yaml> <command> [args]

commands:
  probe              report whether the device port can be opened
  layout [mode]      print the download payload layout
  download [mode]    send the parameter set (default: configured mode)
  egram <seconds>    stream egram samples for a while
  stop               ask the device to stop streaming`

func main() {
	if len(os.Args) < 3 {
		log.Fatal(usage)
	}

	cfgPath := os.Args[1]
	cmd, args := os.Args[2], os.Args[3:]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	if cfg.Log.File != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
		})
	}

	// --------------------
	// Parameter registry
	// --------------------

	reg, err := params.Default()
	if err != nil {
		log.Fatalf("parameter table invalid: %v", err)
	}
	if err := reg.Apply(cfg.Parameters); err != nil {
		log.Fatalf("parameter overrides rejected: %v", err)
	}
	modes := params.DefaultModes()

	// --------------------
	// Link
	// --------------------

	open := serialport.NewOpener(serialport.Config{
		Address:  cfg.Device.Address,
		BaudRate: cfg.Device.BaudRate,
		Timeout:  cfg.Device.Timeout(),
	})
	ch := telemetry.NewChannel(open, reg, modes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ok := run(ctx, cmd, args, cfg, reg, modes, ch)
	stop()
	if !ok {
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	cmd string,
	args []string,
	cfg *config.Config,
	reg *params.Registry,
	modes params.ModeTable,
	ch *telemetry.Channel,
) bool {
	switch cmd {
	case "probe":
		if ch.Probe() {
			fmt.Printf("%s: connected\n", cfg.Device.Address)
			return true
		}
		fmt.Printf("%s: disconnected (%s)\n", cfg.Device.Address, ch.Status())
		return false

	case "layout":
		var err error
		if len(args) > 0 {
			err = packet.WriteModeLayout(os.Stdout, reg, modes, args[0])
		} else {
			err = packet.WriteLayout(os.Stdout, reg, modes)
		}
		if err != nil {
			log.Printf("layout failed: %v", err)
			return false
		}
		return true

	case "download":
		mode := reg.Mode()
		if len(args) > 0 {
			mode = args[0]
		}
		if !ch.DownloadParams(mode) {
			log.Printf("download failed (mode=%s)", mode)
			return false
		}
		log.Printf("parameters downloaded (mode=%s)", mode)
		return true

	case "egram":
		if len(args) < 1 {
			log.Print(usage)
			return false
		}
		secs, err := strconv.Atoi(args[0])
		if err != nil || secs <= 0 {
			log.Printf("egram: invalid duration %q", args[0])
			return false
		}
		return streamEgram(ctx, ch, cfg.Egram, time.Duration(secs)*time.Second)

	case "stop":
		return ch.StopEgram()

	default:
		log.Print(usage)
		return false
	}
}

// streamEgram requests the stream, drains the reader every poll interval
// and prints what arrived.
func streamEgram(ctx context.Context, ch *telemetry.Channel, ecfg config.EgramConfig, d time.Duration) bool {
	if !ch.RequestEgram() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	r := ch.StartReader(ctx, ecfg.BufferDepth)

	ticker := time.NewTicker(ecfg.PollInterval())
	defer ticker.Stop()

	ok := true
loop:
	for {
		select {
		case <-ctx.Done():
			break loop

		case <-r.Done():
			ok = r.Err() == nil
			break loop

		case <-ticker.C:
			printBatch(r.PollAndClear())
		}
	}

	r.Stop()
	printBatch(r.PollAndClear())

	st := r.Stats()
	log.Printf("egram done (samples=%d discarded=%d reads=%d)", st.Samples, st.Discarded, st.Reads)
	if err := r.Err(); err != nil {
		log.Printf("egram reader failed: %v", err)
	}

	if !ch.StopEgram() {
		ok = false
	}
	return ok
}

func printBatch(b telemetry.Batch) {
	for _, s := range b.Samples() {
		fmt.Printf("%d\t%d\n", s.VRaw, s.ARaw)
	}
}
