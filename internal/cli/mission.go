package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/wire"
)

// MissionCmd returns the mission command group.
func MissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Manage missions (milestones within a campaign)",
	}
	cmd.AddCommand(missionCreateCmd())
	cmd.AddCommand(missionListCmd())
	cmd.AddCommand(missionShowCmd())
	cmd.AddCommand(missionUpdateCmd())
	cmd.AddCommand(missionStatusCmd())
	return cmd
}

func missionCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [campaign-id] [name]",
		Short: "Create a new mission under a campaign",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			due, _ := cmd.Flags().GetString("due")

			req := primary.CreateMissionRequest{
				CampaignID:  args[0],
				Name:        args[1],
				Description: description,
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid --due date %q (want YYYY-MM-DD)", due)
				}
				req.TargetDate = &d
			}

			mission, err := wire.MissionService().CreateMission(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created mission %s: %s\n", mission.ID, mission.Name)
			return nil
		},
	}
	cmd.Flags().String("description", "", "Mission description")
	cmd.Flags().String("due", "", "Target date (YYYY-MM-DD)")
	return cmd
}

func missionListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			campaignID, _ := cmd.Flags().GetString("campaign")
			statusFlag, _ := cmd.Flags().GetString("status")

			filters := primary.MissionFilters{CampaignID: campaignID}
			if statusFlag != "" {
				status, err := models.ParseMissionStatus(statusFlag)
				if err != nil {
					return err
				}
				filters.Status = status
			}

			missions, err := wire.MissionService().ListMissions(cmd.Context(), filters)
			if err != nil {
				return err
			}
			if len(missions) == 0 {
				fmt.Println("No missions found")
				return nil
			}

			fmt.Printf("\n%-10s %-10s %-12s %s\n", "ID", "CAMPAIGN", "STATUS", "NAME")
			fmt.Println("────────────────────────────────────────────────────────────────")
			for _, m := range missions {
				fmt.Printf("%-10s %-10s %-12s %s\n", m.ID, m.CampaignID, m.Status, m.Name)
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().String("campaign", "", "Filter by campaign ID")
	cmd.Flags().String("status", "", "Filter by status (not_started, in_progress, blocked, completed)")
	return cmd
}

func missionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [mission-id]",
		Short: "Show mission details with its sortie queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mission, err := wire.MissionService().GetMission(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nMission: %s\n", mission.ID)
			fmt.Printf("Name:    %s\n", mission.Name)
			fmt.Printf("Status:  %s\n", mission.Status)
			if mission.Description != "" {
				fmt.Printf("Description: %s\n", mission.Description)
			}
			if mission.TargetDate != nil {
				fmt.Printf("Due:     %s\n", mission.TargetDate.Format("2006-01-02"))
			}
			if mission.CompletedAt != nil {
				fmt.Printf("Completed: %s\n", mission.CompletedAt.Format("2006-01-02 15:04"))
			}
			fmt.Println()

			sorties, err := wire.SortieService().ListSorties(cmd.Context(), mission.ID)
			if err == nil && len(sorties) > 0 {
				fmt.Println("Sorties:")
				for _, s := range sorties {
					fmt.Printf("  - %s [%s, %s] %s\n", s.ID, s.Status, s.Load, s.Title)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func missionUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [mission-id]",
		Short: "Edit a mission's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")
			due, _ := cmd.Flags().GetString("due")

			req := primary.UpdateMissionRequest{
				MissionID:   args[0],
				Name:        name,
				Description: description,
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid --due date %q (want YYYY-MM-DD)", due)
				}
				req.TargetDate = &d
			}

			mission, err := wire.MissionService().UpdateMission(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Updated mission %s: %s\n", mission.ID, mission.Name)
			return nil
		},
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("due", "", "New target date (YYYY-MM-DD)")
	return cmd
}

func missionStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [mission-id] [status]",
		Short: "Change a mission's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := models.ParseMissionStatus(args[1])
			if err != nil {
				return err
			}
			if err := wire.MissionService().UpdateMissionStatus(cmd.Context(), args[0], status); err != nil {
				return err
			}
			fmt.Printf("✓ Mission %s is now %s\n", args[0], status)
			return nil
		},
	}
}
