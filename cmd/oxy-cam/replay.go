package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Carmen-Shannon/oxy-control/engine/preset"
	"github.com/Carmen-Shannon/oxy-control/engine/replay"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	replayPresets string
	replayFormat  string
	replayOut     string
)

var replayCmd = &cobra.Command{
	Use:   "replay [scenario.yaml]",
	Short: "Run a scenario and print the camera state after every tick",
	Long: `Replay loads a scenario, applies its timed events, resolves the controller
once per tick and writes one frame per tick. Controller failures are reported
on the frame and do not stop the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayPresets, "presets", "", "YAML presets file merged over the built-in presets")
	replayCmd.Flags().StringVarP(&replayFormat, "format", "f", "text", "output format: text, yaml, json")
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "", "write frames to a file instead of stdout")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	sc, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	presets := preset.Defaults()
	if replayPresets != "" {
		file, err := preset.Load(replayPresets)
		if err != nil {
			return err
		}
		presets = presets.Merge(file)
	}

	var out io.Writer = cmd.OutOrStdout()
	if replayOut != "" {
		f, err := os.Create(replayOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", replayOut, err)
		}
		defer f.Close()
		out = f
	}

	sink, flush, err := frameWriter(replayFormat, out)
	if err != nil {
		return err
	}
	if err := replay.Run(cmd.Context(), sc, sink, replay.WithPresets(presets)); err != nil {
		return err
	}
	return flush()
}

// frameWriter returns a sink encoding frames in the given format and a flush
// function to call once the run ends.
func frameWriter(format string, w io.Writer) (replay.Sink, func() error, error) {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return func(f replay.Frame) error { return enc.Encode(f) }, enc.Close, nil
	case "json":
		enc := json.NewEncoder(w)
		return func(f replay.Frame) error { return enc.Encode(f) }, func() error { return nil }, nil
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "tick\tcamera\tscale\tcontrolled\terror")
		return func(f replay.Frame) error {
			_, err := fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%.3f\t%s\n", f.Tick, f.Camera, f.Scale, f.Controlled, f.Error)
			return err
		}, tw.Flush, nil
	}
	return nil, nil, fmt.Errorf("unknown format %q", format)
}
