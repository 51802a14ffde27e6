// Command fitdump is the thin consumer counterpart of cmd/n2kreader
// (SPEC_FULL §11.4): it decodes a FIT file (or a live antstream.Device)
// and prints the resulting messages as JSON, CSV, or a human-readable
// table, optionally filtered by message name. It contains no decode logic
// of its own — only flag/config handling and output formatting, per
// spec §1's "thin iterator/filter wrapper" framing.
package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	fit "github.com/messeiro/gofit"
	"github.com/messeiro/gofit/antstream"
	"github.com/messeiro/gofit/fitfile"
	"github.com/messeiro/gofit/profile"
)

func main() {
	var (
		configPath     string
		outputFormat   string
		messageFilter  string
		includeUnknown bool
		localOffset    int64
		device         string
		baud           int
	)

	root := &cobra.Command{
		Use:   "fitdump [file.fit]",
		Short: "Decode and print ANT+ FIT files",
		Long:  "fitdump decodes a FIT activity file and prints its messages as JSON, CSV, or a table.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config %q: %w", configPath, err)
			}
			if outputFormat != "" {
				cfg.OutputFormat = outputFormat
			}
			if cmd.Flags().Changed("local-offset") {
				cfg.LocalOffsetSeconds = localOffset
			}
			if cmd.Flags().Changed("include-unknown") {
				cfg.IncludeUnknown = includeUnknown
			}

			switch cfg.OutputFormat {
			case "json", "csv", "table":
			default:
				return fmt.Errorf("unknown output format %q", cfg.OutputFormat)
			}

			fit.SetLocalDateTimeOffset(cfg.LocalOffsetSeconds)

			data, err := readInput(args, device, baud)
			if err != nil {
				return err
			}

			msgs, err := fit.Decode(data)
			if err != nil && len(msgs) == 0 {
				return fmt.Errorf("decode failed: %w", err)
			}
			if err != nil {
				log.Printf("# decode stopped early: %v (showing %d messages already emitted)\n", err, len(msgs))
			}

			if messageFilter != "" {
				mt := profile.MessageTypeByName(messageFilter)
				msgs = msgs.Filter(mt)
			}

			return printMessages(os.Stdout, msgs, cfg.OutputFormat)
		},
	}

	root.Flags().StringVar(&configPath, "config", "fitdump.toml", "path to fitdump config file")
	root.Flags().StringVar(&outputFormat, "format", "", "output format: json, csv, table (overrides config)")
	root.Flags().StringVar(&messageFilter, "message", "", "only print messages of this type, e.g. record, session, lap")
	root.Flags().BoolVar(&includeUnknown, "include-unknown", false, "sets include_unknown; has no effect on output, since messages of unknown type are never decoded")
	root.Flags().Int64Var(&localOffset, "local-offset", 0, "seconds to adjust LocalDateTime fields by (spec Open Question)")
	root.Flags().StringVar(&device, "device", "", "read a live FIT stream from this serial device instead of a file")
	root.Flags().IntVar(&baud, "baud", 115200, "baud rate for --device")

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func readInput(args []string, device string, baud int) ([]byte, error) {
	if device != "" {
		return readDevice(device, baud)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("missing FIT file path (or pass --device)")
	}

	f, err := fitfile.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", args[0], err)
	}
	defer f.Close()

	out := make([]byte, len(f.Bytes()))
	copy(out, f.Bytes())
	return out, nil
}

func readDevice(name string, baud int) ([]byte, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dev, err := antstream.Open(name, baud, antstream.Config{ReadIdleTimeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open device %q: %w", name, err)
	}
	defer dev.Close()

	fmt.Printf("# Reading FIT stream from %v until idle\n", name)
	return dev.ReadSession(ctx)
}

func printMessages(w *os.File, msgs fit.Messages, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		for _, m := range msgs {
			if err := enc.Encode(m); err != nil {
				return err
			}
		}
		return nil
	case "csv":
		return printCSV(w, msgs)
	default:
		return printTable(w, msgs)
	}
}

func printCSV(w *os.File, msgs fit.Messages) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"kind", "field_num", "value"}); err != nil {
		return err
	}
	for _, m := range msgs {
		kind := m.Kind.String()
		for _, fv := range m.Values() {
			if err := cw.Write([]string{kind, strconv.Itoa(int(fv.FieldNum)), fmt.Sprintf("%v", fv.Value)}); err != nil {
				return err
			}
		}
	}
	return nil
}

func printTable(w *os.File, msgs fit.Messages) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	counts := msgs.Counts()
	kinds := make([]profile.MessageType, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	fmt.Fprintf(bw, "# %d messages decoded\n", len(msgs))
	for _, k := range kinds {
		fmt.Fprintf(bw, "#   %-20s %d\n", k.String(), counts[k])
	}
	fmt.Fprintln(bw, strings.Repeat("-", 40))

	for _, m := range msgs {
		fmt.Fprintf(bw, "%s\n", m.Kind)
		for _, fv := range m.Values() {
			fmt.Fprintf(bw, "  %3d: %v\n", fv.FieldNum, fv.Value)
		}
		for _, dv := range m.DevValues {
			fmt.Fprintf(bw, "  dev(%d,%d): %v\n", dv.DeveloperDataIndex, dv.FieldNum, dv.Value)
		}
	}
	return nil
}
