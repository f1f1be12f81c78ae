// Package cli defines the cobra command tree. Commands are thin: they
// parse flags and arguments, then delegate to the wired services and
// output adapters.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/wire"
)

// CampaignCmd returns the campaign command group.
func CampaignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Manage campaigns (ranked areas of intent)",
	}
	cmd.AddCommand(campaignCreateCmd())
	cmd.AddCommand(campaignListCmd())
	cmd.AddCommand(campaignShowCmd())
	cmd.AddCommand(campaignUpdateCmd())
	cmd.AddCommand(campaignStatusCmd())
	cmd.AddCommand(campaignRerankCmd())
	return cmd
}

func campaignCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new campaign at the bottom of the ranking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			target, _ := cmd.Flags().GetInt("target")
			colour, _ := cmd.Flags().GetString("colour")
			tags, _ := cmd.Flags().GetString("tags")
			due, _ := cmd.Flags().GetString("due")

			req := primary.CreateCampaignRequest{
				Name:              args[0],
				Description:       description,
				WeeklyBlockTarget: target,
				Colour:            colour,
				Tags:              tags,
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid --due date %q (want YYYY-MM-DD)", due)
				}
				req.TargetDate = &d
			}

			campaign, err := wire.CampaignService().CreateCampaign(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created campaign %s: %s (rank %d, %d blocks/week)\n",
				campaign.ID, campaign.Name, campaign.PriorityRank, campaign.WeeklyBlockTarget)
			return nil
		},
	}
	cmd.Flags().String("description", "", "Campaign description")
	cmd.Flags().Int("target", 0, "Weekly block target")
	cmd.Flags().String("colour", "", "Display colour")
	cmd.Flags().String("tags", "", "Comma-separated tags")
	cmd.Flags().String("due", "", "Target date (YYYY-MM-DD)")
	return cmd
}

func campaignListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns by priority rank",
		RunE: func(cmd *cobra.Command, args []string) error {
			statusFlag, _ := cmd.Flags().GetString("status")

			filters := primary.CampaignFilters{}
			if statusFlag != "" {
				status, err := models.ParseCampaignStatus(statusFlag)
				if err != nil {
					return err
				}
				filters.Status = status
			}

			campaigns, err := wire.CampaignService().ListCampaigns(cmd.Context(), filters)
			if err != nil {
				return err
			}
			if len(campaigns) == 0 {
				fmt.Println("No campaigns found")
				return nil
			}

			fmt.Printf("\n%-4s %-10s %-10s %-8s %s\n", "RANK", "ID", "STATUS", "TARGET", "NAME")
			fmt.Println("────────────────────────────────────────────────────────────────")
			for _, c := range campaigns {
				fmt.Printf("%-4d %-10s %-10s %-8d %s\n",
					c.PriorityRank, c.ID, c.Status, c.WeeklyBlockTarget, c.Name)
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().String("status", "", "Filter by status (active, paused, completed, archived)")
	return cmd
}

func campaignShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [campaign-id]",
		Short: "Show campaign details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaign, err := wire.CampaignService().GetCampaign(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nCampaign: %s\n", campaign.ID)
			fmt.Printf("Name:     %s\n", campaign.Name)
			fmt.Printf("Status:   %s\n", campaign.Status)
			fmt.Printf("Rank:     %d\n", campaign.PriorityRank)
			fmt.Printf("Target:   %d blocks/week\n", campaign.WeeklyBlockTarget)
			if campaign.Description != "" {
				fmt.Printf("Description: %s\n", campaign.Description)
			}
			if campaign.Tags != "" {
				fmt.Printf("Tags:     %s\n", campaign.Tags)
			}
			if campaign.TargetDate != nil {
				fmt.Printf("Due:      %s\n", campaign.TargetDate.Format("2006-01-02"))
			}
			fmt.Printf("Created:  %s\n\n", campaign.CreatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func campaignUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [campaign-id]",
		Short: "Edit a campaign's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")
			target, _ := cmd.Flags().GetInt("target")
			colour, _ := cmd.Flags().GetString("colour")
			tags, _ := cmd.Flags().GetString("tags")
			due, _ := cmd.Flags().GetString("due")

			req := primary.UpdateCampaignRequest{
				CampaignID:        args[0],
				Name:              name,
				Description:       description,
				WeeklyBlockTarget: target,
				Colour:            colour,
				Tags:              tags,
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid --due date %q (want YYYY-MM-DD)", due)
				}
				req.TargetDate = &d
			}

			campaign, err := wire.CampaignService().UpdateCampaign(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Updated campaign %s: %s\n", campaign.ID, campaign.Name)
			return nil
		},
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().Int("target", -1, "New weekly block target")
	cmd.Flags().String("colour", "", "New display colour")
	cmd.Flags().String("tags", "", "New comma-separated tags")
	cmd.Flags().String("due", "", "New target date (YYYY-MM-DD)")
	return cmd
}

func campaignStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [campaign-id] [status]",
		Short: "Change a campaign's lifecycle status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := models.ParseCampaignStatus(args[1])
			if err != nil {
				return err
			}
			if err := wire.CampaignService().UpdateCampaignStatus(cmd.Context(), args[0], status); err != nil {
				return err
			}
			fmt.Printf("✓ Campaign %s is now %s\n", args[0], status)
			return nil
		},
	}
}

func campaignRerankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rerank [campaign-id...]",
		Short: "Rewrite priority ranks in the order given (all active campaigns)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.CampaignService().RerankCampaigns(cmd.Context(), args); err != nil {
				return err
			}
			fmt.Println("✓ Campaigns reranked")
			return nil
		},
	}
}
