package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/hospital_backend/config"
	"github.com/Alijeyrad/hospital_backend/internal/gateway"
)

// NewPingCommand checks that the upstream hospital API answers before a
// deploy flips traffic over to it.
func NewPingCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check upstream hospital API reachability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}
			if !cfg.Upstream.Enabled {
				fmt.Println("upstream disabled in config, nothing to ping")
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			gw := gateway.New(cfg.Upstream)
			start := time.Now()
			patients, err := gw.ListPatients(ctx)
			if err != nil {
				return fmt.Errorf("upstream unreachable: %w", err)
			}

			fmt.Printf("upstream OK: %d patients in %s\n", len(patients), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Give up after this long")

	return cmd
}
