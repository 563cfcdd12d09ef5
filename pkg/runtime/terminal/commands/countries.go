package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/pe-tools/impact-atlas/pkg/runtime/terminal/export"
	"github.com/pe-tools/impact-atlas/pkg/services/config"

	"github.com/spf13/cobra"
)

type CountriesCmd struct {
	profilesPath string
	reporter     *export.Reporter
}

func NewCountriesCmd(reporter *export.Reporter) *cobra.Command {
	cc := &CountriesCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List supported country contexts",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profilesPath, "profiles", "", "Path to the country profiles ini file")
	_ = cmd.MarkFlagRequired("profiles")

	return cmd
}

func (cc *CountriesCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	registry, err := config.NewRegistry(cc.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load country profiles: %w", err)
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list country profiles: %w", err)
	}

	return cc.reporter.HandleProfiles(profiles)
}
