// primesieve is a command-line front end for the segmented sieve in
// pkg/primesieve. It counts, prints, fingerprints or counts k-tuplets
// over a range of 64-bit integers.
//
// Usage Examples
// ==============
//
// Count primes up to a billion:
//
//	primesieve -mode=count -stop=1000000000
//
// Print every prime in a range:
//
//	primesieve -mode=print -start=100 -stop=200
//
// Count twin primes, splitting the work across all CPUs:
//
//	primesieve -mode=tuplet -pattern=twins -stop=1000000000 -workers=0
//
// Fingerprint a range (useful for diffing results across machines or
// sieveSize settings without transferring the prime list):
//
//	primesieve -mode=digest -stop=1000000000
//
// Output Formats
// ===============
//
// -format=text (default) prints human-readable lines. -format=json
// prints a single JSON object on stdout via github.com/sugawarayuuta/sonnet.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sugawarayuuta/sonnet"

	"sieve.tuplets.dev/pkg/parallelsieve"
	"sieve.tuplets.dev/pkg/primesieve"
)

type config struct {
	mode      string
	format    string
	start     uint64
	stop      uint64
	sieveSize int
	pattern   string
	workers   int
	verbose   bool
}

type result struct {
	Mode     string `json:"mode"`
	Start    uint64 `json:"start"`
	Stop     uint64 `json:"stop"`
	Count    uint64 `json:"count,omitempty"`
	Digest   uint64 `json:"digest,omitempty"`
	Duration string `json:"duration"`
}

var patterns = map[string]primesieve.Pattern{
	"twins":        primesieve.Twins,
	"triplets1":    primesieve.Triplets1,
	"triplets2":    primesieve.Triplets2,
	"quadruplets":  primesieve.Quadruplets,
	"quintuplets1": primesieve.Quintuplets1,
	"quintuplets2": primesieve.Quintuplets2,
	"sextuplets":   primesieve.Sextuplets,
	"septuplets1":  primesieve.Septuplets1,
	"septuplets2":  primesieve.Septuplets2,
}

func main() {
	var cfg config

	flag.StringVar(&cfg.mode, "mode", "count", "what to do: count, print, tuplet, digest")
	flag.StringVar(&cfg.format, "format", "text", "output format: text or json")
	flag.Uint64Var(&cfg.start, "start", 0, "range start, inclusive")
	flag.Uint64Var(&cfg.stop, "stop", 1000000, "range stop, inclusive")
	flag.IntVar(&cfg.sieveSize, "sieveSize", 0, "bytes per segment (0 selects a cache-sized default)")
	flag.StringVar(&cfg.pattern, "pattern", "twins", "k-tuplet pattern for -mode=tuplet")
	flag.IntVar(&cfg.workers, "workers", 1, "goroutines to split the range across (0 selects GOMAXPROCS)")
	flag.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(primesieve.Version())
		return
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(cfg config) error {
	log := slog.Default()
	sieveCfg := primesieve.Config{
		SieveSize: cfg.sieveSize,
		Logger:    log,
	}
	if cfg.verbose {
		sieveCfg.Progress = func(fraction float64) {
			log.Debug("sieve progress", "percent", fmt.Sprintf("%.1f", fraction*100))
		}
	}
	start := time.Now()

	switch cfg.mode {
	case "count":
		var n uint64
		var err error
		if cfg.workers != 1 {
			n, err = parallelsieve.Count(cfg.start, cfg.stop, parallelsieve.Config{Workers: cfg.workers, SieveConfig: sieveCfg})
		} else {
			n, err = primesieve.New(sieveCfg).Count(cfg.start, cfg.stop)
		}
		if err != nil {
			return err
		}
		return emit(cfg, result{Mode: cfg.mode, Start: cfg.start, Stop: cfg.stop, Count: n, Duration: time.Since(start).String()})

	case "print":
		return primesieve.New(sieveCfg).Print(os.Stdout, cfg.start, cfg.stop)

	case "tuplet":
		pat, ok := patterns[cfg.pattern]
		if !ok {
			return fmt.Errorf("unknown pattern %q", cfg.pattern)
		}
		var n uint64
		var err error
		if cfg.workers != 1 {
			n, err = parallelsieve.CountTuplet(cfg.start, cfg.stop, pat, parallelsieve.Config{Workers: cfg.workers, SieveConfig: sieveCfg})
		} else {
			n, err = primesieve.New(sieveCfg).CountTuplet(cfg.start, cfg.stop, pat)
		}
		if err != nil {
			return err
		}
		return emit(cfg, result{Mode: cfg.mode, Start: cfg.start, Stop: cfg.stop, Count: n, Duration: time.Since(start).String()})

	case "digest":
		d, err := primesieve.New(sieveCfg).Digest(cfg.start, cfg.stop)
		if err != nil {
			return err
		}
		return emit(cfg, result{Mode: cfg.mode, Start: cfg.start, Stop: cfg.stop, Digest: d, Duration: time.Since(start).String()})

	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

func emit(cfg config, r result) error {
	if cfg.format == "json" {
		b, err := sonnet.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(b))
		return err
	}
	if r.Digest != 0 {
		fmt.Printf("[%d,%d] digest=%016x (%s)\n", r.Start, r.Stop, r.Digest, r.Duration)
		return nil
	}
	fmt.Printf("[%d,%d] count=%d (%s)\n", r.Start, r.Stop, r.Count, r.Duration)
	return nil
}
