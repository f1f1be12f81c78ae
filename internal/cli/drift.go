package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/wire"
)

// DriftCmd returns the drift command.
func DriftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drift",
		Short: "Compare where attention went against the stated priorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, _ := cmd.Flags().GetInt("weeks")
			return wire.DriftAdapter().Show(cmd.Context(), weeks, time.Now())
		},
	}
	cmd.Flags().Int("weeks", 4, "Trailing window in weeks")
	return cmd
}
