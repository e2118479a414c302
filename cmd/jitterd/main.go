//go:build linux

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ja7ad/jitterentropy/internal/daemon"
	"github.com/ja7ad/jitterentropy/pkg/jent"
	"github.com/ja7ad/jitterentropy/pkg/platform"
)

// flagsValue adapts jent.Flags to pflag.Value so --disable can take a
// comma-separated list of switch names instead of a raw bitmask.
type flagsValue struct {
	f *jent.Flags
}

func (v flagsValue) String() string {
	if v.f == nil || *v.f == 0 {
		return ""
	}
	var parts []string
	if v.f.Has(jent.DisableMemoryAccess) {
		parts = append(parts, "memory-access")
	}
	if v.f.Has(jent.DisableStir) {
		parts = append(parts, "stir")
	}
	if v.f.Has(jent.DisableUnbias) {
		parts = append(parts, "unbias")
	}
	return strings.Join(parts, ",")
}

func (v flagsValue) Set(s string) error {
	*v.f = 0
	if s == "" {
		return nil
	}
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(name) {
		case "memory-access":
			*v.f |= jent.DisableMemoryAccess
		case "stir":
			*v.f |= jent.DisableStir
		case "unbias":
			*v.f |= jent.DisableUnbias
		default:
			return fmt.Errorf("unknown switch %q (want memory-access, stir, or unbias)", name)
		}
	}
	return nil
}

func (v flagsValue) Type() string { return "switches" }

var _ pflag.Value = flagsValue{}

func main() {
	root := &cobra.Command{
		Use:   "jitterd",
		Short: "CPU-timing-jitter entropy collector and kernel-feed daemon",
		Long: `jitterd harvests entropy from CPU instruction and memory-access timing
jitter and, in run mode, feeds the Linux kernel's entropy pool whenever
it drops below a configurable watermark.

* GitHub: https://github.com/ja7ad/jitterentropy`,
	}

	root.AddCommand(newRunCmd(), newSelftestCmd(), newBenchCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	cfg := &daemon.Config{
		PollInterval:  time.Second,
		LowWatermark:  0.25,
		HighWatermark: 0.75,
		PoolSize:      daemon.PoolSizeDefault,
		OSR:           1,
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run the feeding daemon until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return daemon.Run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().DurationVarP(&cfg.PollInterval, "interval", "i", cfg.PollInterval, "poll interval for entropy_avail")
	cmd.Flags().Float64Var(&cfg.LowWatermark, "low-watermark", cfg.LowWatermark, "fraction of the pool below which feeding starts [0,1]")
	cmd.Flags().Float64Var(&cfg.HighWatermark, "high-watermark", cfg.HighWatermark, "fraction of the pool at which feeding stops [0,1]")
	cmd.Flags().UintVar(&cfg.OSR, "osr", cfg.OSR, "collector oversampling rate")
	cmd.Flags().StringVar(&cfg.PIDFile, "pidfile", "", "PID file path (empty disables PID-file management)")
	cmd.Flags().Var(flagsValue{f: &cfg.Flags}, "disable", "comma-separated switches to disable: memory-access,stir,unbias")

	return cmd
}

func newSelftestCmd() *cobra.Command {
	var osr uint

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "run the startup health test plus one alloc/read/free cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := platform.NewSystemClock()

			start := time.Now()
			report, err := jent.RunHealthTest(clock)
			elapsed := time.Since(start)
			if err != nil {
				return fmt.Errorf("selftest: health test: %w", err)
			}
			fmt.Printf("health test passed in %s (time_backwards=%d count_mod=%d count_var=%d delta_sum=%d)\n",
				elapsed, report.TimeBackwards, report.CountMod, report.CountVar, report.DeltaSum)

			alloc := platform.NewHeapAllocator()
			fips := platform.NewFIPSMode()

			col, err := jent.Alloc(alloc, clock, fips, osr, 0)
			if err != nil {
				return fmt.Errorf("selftest: alloc: %w", err)
			}
			defer col.Free(alloc)

			buf := make([]byte, 32)
			if _, err := col.Read(buf); err != nil {
				return fmt.Errorf("selftest: read: %w", err)
			}

			fmt.Printf("read %d bytes ok: %x\n", len(buf), buf)
			return nil
		},
	}

	cmd.Flags().UintVar(&osr, "osr", 1, "collector oversampling rate")
	return cmd
}

func newBenchCmd() *cobra.Command {
	var (
		osr   uint
		n     int
		chunk int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "read N bytes in chunks and report throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			clock := platform.NewSystemClock()
			if err := jent.Init(clock); err != nil {
				return fmt.Errorf("bench: health test: %w", err)
			}

			alloc := platform.NewHeapAllocator()
			fips := platform.NewFIPSMode()

			col, err := jent.Alloc(alloc, clock, fips, osr, 0)
			if err != nil {
				return fmt.Errorf("bench: alloc: %w", err)
			}
			defer col.Free(alloc)

			buf := make([]byte, chunk)
			start := time.Now()
			read := 0
			for read < n {
				want := chunk
				if n-read < want {
					want = n - read
				}
				if _, err := col.Read(buf[:want]); err != nil {
					return fmt.Errorf("bench: read: %w", err)
				}
				read += want
			}
			elapsed := time.Since(start)

			tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "BYTES\tOSR\tELAPSED\tTHROUGHPUT")
			fmt.Fprintf(tw, "%d\t%d\t%s\t%.1f B/s\n", read, osr, elapsed, float64(read)/elapsed.Seconds())
			return tw.Flush()
		},
	}

	cmd.Flags().UintVar(&osr, "osr", 1, "collector oversampling rate")
	cmd.Flags().IntVarP(&n, "bytes", "n", 4096, "total bytes to read")
	cmd.Flags().IntVar(&chunk, "chunk", 64, "bytes per Read call")

	return cmd
}
