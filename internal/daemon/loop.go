//go:build linux

package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ja7ad/jitterentropy/pkg/jent"
	"github.com/ja7ad/jitterentropy/pkg/platform"
)

// Run starts the feeding loop and blocks until ctx is canceled or an
// unrecoverable error occurs. It owns the collector, the PID file, and
// the /dev/random fd for its entire lifetime.
func Run(ctx context.Context, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.PoolSize == PoolSizeDefault {
		cfg.PoolSize = readPoolSize()
	}

	clock := platform.NewSystemClock()
	if err := jent.Init(clock); err != nil {
		return fmt.Errorf("daemon: startup health test: %w", err)
	}

	alloc := platform.NewHeapAllocator()
	fips := platform.NewFIPSMode()

	col, err := jent.Alloc(alloc, clock, fips, cfg.OSR, cfg.Flags)
	if err != nil {
		return fmt.Errorf("daemon: alloc collector: %w", err)
	}
	// col may be replaced mid-loop on a FIPS failure (see feedIfLow); the
	// closure re-reads it at return time so the *current* collector is
	// always the one freed, not whichever was live when Run started.
	defer func() { col.Free(alloc) }()

	inj, err := newInjector()
	if err != nil {
		return err
	}
	defer func() {
		_ = inj.Close()
	}()

	if err := writePIDFile(cfg.PIDFile); err != nil {
		return err
	}
	defer removePIDFile(cfg.PIDFile)

	ctx, stop, hup := notifyContext(ctx)
	defer stop()

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("daemon started",
		"poll_interval", cfg.PollInterval,
		"low_watermark_bits", cfg.lowBits(),
		"high_watermark_bits", cfg.highBits(),
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("daemon stopping")
			return nil

		case <-hup:
			slog.Info("SIGHUP received, polling immediately")
			col, err = feedIfLow(ctx, col, alloc, clock, fips, cfg, inj)
			if err != nil {
				return err
			}

		case <-ticker.C:
			col, err = feedIfLow(ctx, col, alloc, clock, fips, cfg, inj)
			if err != nil {
				return err
			}
		}
	}
}

// feedIfLow checks the kernel's entropy estimate and, if below the low
// watermark, reads from col and injects until the high watermark is
// reached. If col has permanently failed its FIPS continuous test, it is
// freed and replaced with a fresh collector before feeding continues,
// the one piece of self-healing the daemon is responsible for, since
// pkg/jent is explicitly forbidden from doing it itself.
func feedIfLow(ctx context.Context, col *jent.Collector, alloc platform.Allocator, clock platform.Clock, fips platform.FIPSMode, cfg *Config, inj *injector) (*jent.Collector, error) {
	avail, err := readEntropyAvail()
	if err != nil {
		slog.Warn("read entropy_avail failed", "err", err)
		return col, nil
	}
	if avail >= cfg.lowBits() {
		return col, nil
	}

	buf := make([]byte, 8)
	for avail < cfg.highBits() {
		select {
		case <-ctx.Done():
			return col, nil
		default:
		}

		n, rerr := col.Read(buf)
		if rerr != nil {
			if errors.Is(rerr, jent.ErrFipsContinuousFail) {
				slog.Error("collector FIPS continuous test failed, replacing", "err", rerr)
				col.Free(alloc)
				col, err = jent.Alloc(alloc, clock, fips, cfg.OSR, cfg.Flags)
				if err != nil {
					return nil, fmt.Errorf("daemon: re-alloc collector: %w", err)
				}
				continue
			}
			return col, fmt.Errorf("daemon: read entropy: %w", rerr)
		}

		if err := inj.feed(buf[:n]); err != nil {
			slog.Warn("inject entropy failed", "err", err)
			return col, nil
		}

		avail, err = readEntropyAvail()
		if err != nil {
			slog.Warn("read entropy_avail failed", "err", err)
			return col, nil
		}
	}

	return col, nil
}
