// cmd/replay/main.go
//
// replay прогоняет TOML-сценарии ввода без окна и печатает итоговое
// состояние и его контрольную сумму.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go-topdown-shooter/internal/config"
	"go-topdown-shooter/internal/logging"
	"go-topdown-shooter/internal/replay"

	"go.uber.org/zap"
)

func main() {
	level := flag.String("log-level", "warn", "debug, info, warn or error")
	asJSON := flag.Bool("json", false, "print the final snapshot as JSON")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] scenario.toml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := logging.New(config.Log{Level: *level, Format: "console"})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	failed := false
	for _, path := range flag.Args() {
		s, err := replay.LoadScenario(path)
		if err != nil {
			logger.Error("failed to load scenario", zap.String("path", path), zap.Error(err))
			failed = true
			continue
		}
		snap, err := replay.Run(s, logger.With(zap.String("scenario", path)), nil)
		if err != nil {
			logger.Error("scenario failed", zap.String("path", path), zap.Error(err))
			failed = true
			continue
		}

		if *asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(snap); err != nil {
				logger.Error("failed to encode snapshot", zap.Error(err))
				failed = true
			}
			continue
		}
		fmt.Printf("%s (%s)\n", path, s.Name)
		fmt.Printf("  player: (%g, %g)  gun: (%g, %g) rot %.4f\n",
			snap.Player.X, snap.Player.Y, snap.GunLocal.X, snap.GunLocal.Y, snap.GunLocal.Rotation)
		fmt.Printf("  %s\n", strings.Join(snap.Stats.Lines(), "  "))
		fmt.Printf("  checksum: %016x\n", snap.Checksum())
	}
	if failed {
		os.Exit(1)
	}
}
