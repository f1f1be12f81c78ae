package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/tmux"
	"github.com/example/senryaku/internal/wire"
)

// SortieCmd returns the sortie command group.
func SortieCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sortie",
		Short: "Manage sorties (atomic units of schedulable work)",
	}
	cmd.AddCommand(sortieCreateCmd())
	cmd.AddCommand(sortieUpdateCmd())
	cmd.AddCommand(sortieStartCmd())
	cmd.AddCommand(sortieCompleteCmd())
	cmd.AddCommand(sortieAbandonCmd())
	cmd.AddCommand(sortieMoveCmd())
	return cmd
}

func sortieCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [mission-id] [title]",
		Short: "Queue a new sortie under a mission",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			loadFlag, _ := cmd.Flags().GetString("load")
			blocks, _ := cmd.Flags().GetInt("blocks")

			load, err := models.ParseCognitiveLoad(loadFlag)
			if err != nil {
				return err
			}

			sortie, err := wire.SortieService().CreateSortie(cmd.Context(), primary.CreateSortieRequest{
				MissionID:       args[0],
				Title:           args[1],
				Description:     description,
				Load:            load,
				EstimatedBlocks: blocks,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Queued sortie %s: %s (%s, %d blocks)\n",
				sortie.ID, sortie.Title, sortie.Load, sortie.EstimatedBlocks)
			return nil
		},
	}
	cmd.Flags().String("description", "", "Sortie description")
	cmd.Flags().String("load", "medium", "Cognitive load (deep, medium, light)")
	cmd.Flags().Int("blocks", 1, "Estimated blocks")
	return cmd
}

func sortieUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [sortie-id]",
		Short: "Edit a queued or active sortie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			loadFlag, _ := cmd.Flags().GetString("load")
			blocks, _ := cmd.Flags().GetInt("blocks")

			var load models.CognitiveLoad
			if loadFlag != "" {
				parsed, err := models.ParseCognitiveLoad(loadFlag)
				if err != nil {
					return err
				}
				load = parsed
			}

			sortie, err := wire.SortieService().UpdateSortie(cmd.Context(), primary.UpdateSortieRequest{
				SortieID:        args[0],
				Title:           title,
				Description:     description,
				Load:            load,
				EstimatedBlocks: blocks,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Updated sortie %s: %s (%s, %d blocks)\n",
				sortie.ID, sortie.Title, sortie.Load, sortie.EstimatedBlocks)
			return nil
		},
	}
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("load", "", "New cognitive load (deep, medium, light)")
	cmd.Flags().Int("blocks", 0, "New estimated blocks")
	return cmd
}

func sortieStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start [sortie-id]",
		Short: "Start a queued sortie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			focus, _ := cmd.Flags().GetBool("focus")

			sortie, err := wire.SortieService().StartSortie(cmd.Context(), args[0], time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("✓ Started sortie %s: %s\n", sortie.ID, sortie.Title)

			if focus {
				runner, err := tmux.NewGotmuxAdapter()
				if err != nil {
					return fmt.Errorf("focus session unavailable: %w", err)
				}
				instructions, err := runner.OpenFocusSession(sortie.ID, sortie.Title)
				if err != nil {
					return fmt.Errorf("failed to open focus session: %w", err)
				}
				fmt.Println(instructions)
			}
			return nil
		},
	}
	cmd.Flags().Bool("focus", false, "Open a tmux focus session for the sortie")
	return cmd
}

func sortieCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete [sortie-id]",
		Short: "Complete an active sortie and file its after-action report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcomeFlag, _ := cmd.Flags().GetString("outcome")
			beforeFlag, _ := cmd.Flags().GetString("energy-before")
			afterFlag, _ := cmd.Flags().GetString("energy-after")
			blocks, _ := cmd.Flags().GetInt("blocks")
			notes, _ := cmd.Flags().GetString("notes")

			outcome, err := models.ParseAAROutcome(outcomeFlag)
			if err != nil {
				return err
			}
			before, err := models.ParseEnergyLevel(beforeFlag)
			if err != nil {
				return err
			}
			after, err := models.ParseEnergyLevel(afterFlag)
			if err != nil {
				return err
			}

			sortie, err := wire.SortieService().CompleteSortie(cmd.Context(), primary.CompleteSortieRequest{
				SortieID:     args[0],
				Outcome:      outcome,
				EnergyBefore: before,
				EnergyAfter:  after,
				ActualBlocks: blocks,
				Notes:        notes,
				Now:          time.Now(),
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Sortie %s closed as %s (%d blocks logged)\n", sortie.ID, sortie.Status, blocks)
			return nil
		},
	}
	cmd.Flags().String("outcome", "completed", "Outcome (completed, partial, blocked, pivoted)")
	cmd.Flags().String("energy-before", "green", "Energy going in (green, yellow, red)")
	cmd.Flags().String("energy-after", "green", "Energy coming out (green, yellow, red)")
	cmd.Flags().Int("blocks", 1, "Actual blocks spent")
	cmd.Flags().String("notes", "", "After-action notes")
	return cmd
}

func sortieAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon [sortie-id]",
		Short: "Abandon a queued or active sortie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.SortieService().AbandonSortie(cmd.Context(), args[0], time.Now()); err != nil {
				return err
			}
			fmt.Printf("✓ Sortie %s abandoned\n", args[0])
			return nil
		},
	}
}

func sortieMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [sortie-id] [mission-id]",
		Short: "Move a sortie to a different mission",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.SortieService().MoveSortie(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("✓ Sortie %s moved to %s\n", args[0], args[1])
			return nil
		},
	}
}
