package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/scheduler"
	"github.com/example/senryaku/internal/wire"
)

// BriefingCmd returns the briefing command.
func BriefingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "briefing",
		Short: "Generate the day's briefing from your check-in",
		Long: `Generates the ordered, capacity-bounded selection of queued sorties.
Energy and blocks come from today's check-in; flags override, and
defaults (green, 4 blocks) apply when neither exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			energy, blocks, err := capacityFor(cmd, now)
			if err != nil {
				return err
			}
			return wire.BriefingAdapter().Generate(cmd.Context(), energy, blocks, now)
		},
	}
	cmd.Flags().String("energy", "", "Override energy (green, yellow, red)")
	cmd.Flags().Int("blocks", -1, "Override available blocks")
	return cmd
}

// NowCmd returns the now command: the single next sortie.
func NowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "What should I do right now?",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			energy, _, err := capacityFor(cmd, now)
			if err != nil {
				return err
			}
			return wire.BriefingAdapter().Now(cmd.Context(), energy, now)
		},
	}
	cmd.Flags().String("energy", "", "Override energy (green, yellow, red)")
	cmd.Flags().Int("blocks", -1, "Ignored; present for flag symmetry with briefing")
	return cmd
}

// capacityFor resolves the day's energy and blocks: flags beat the
// check-in, the check-in beats the defaults.
func capacityFor(cmd *cobra.Command, now time.Time) (models.EnergyLevel, int, error) {
	energy := scheduler.DefaultEnergy
	blocks := scheduler.DefaultAvailableBlocks

	checkin, err := wire.CheckInService().GetCheckIn(cmd.Context(), now)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read check-in: %w", err)
	}
	if checkin != nil {
		energy = checkin.Energy
		blocks = checkin.AvailableBlocks
	}

	if flag, _ := cmd.Flags().GetString("energy"); flag != "" {
		parsed, err := models.ParseEnergyLevel(flag)
		if err != nil {
			return "", 0, err
		}
		energy = parsed
	}
	if flag, _ := cmd.Flags().GetInt("blocks"); flag >= 0 {
		blocks = flag
	}

	return energy, blocks, nil
}
