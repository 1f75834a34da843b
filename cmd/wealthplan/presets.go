package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/store"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage certified simulation presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets, newest first",
	Args:  cobra.NoArgs,
	RunE:  runPresetsList,
}

var presetsShowCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Print one preset as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsShow,
}

var presetsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default presets into an empty store",
	Args:  cobra.NoArgs,
	RunE:  runPresetsSeed,
}

func init() {
	presetsCmd.AddCommand(presetsListCmd, presetsShowCmd, presetsSeedCmd)
	rootCmd.AddCommand(presetsCmd)
}

func openStore(ctx context.Context, settings config.Settings) (*store.Store, error) {
	s, err := store.Open(ctx, settings.Store.Driver, settings.Store.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening preset store: %w", err)
	}
	return s, nil
}

func runPresetsList(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	s, err := openStore(cmd.Context(), settings)
	if err != nil {
		return err
	}
	defer s.Close()

	presets, err := s.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(presets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No presets stored. Run `wealthplan presets seed` to add the defaults.")
		return nil
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tTITLE\tBADGE\tGOALS")
	for _, p := range presets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.Slug, p.Title, p.Badge, len(p.Input.Goals))
	}
	return tw.Flush()
}

func runPresetsShow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	s, err := openStore(cmd.Context(), settings)
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := s.GetBySlug(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func runPresetsSeed(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	s, err := openStore(cmd.Context(), settings)
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.Seed(cmd.Context(), store.DefaultPresets())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d presets\n", n)
	return nil
}
