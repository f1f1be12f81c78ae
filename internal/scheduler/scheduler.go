// Package scheduler runs the recurring jobs: the morning briefing push
// and the weekly review push. It is only active in watch mode.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/example/senryaku/internal/models"
	"github.com/example/senryaku/internal/ports/primary"
	"github.com/example/senryaku/internal/ports/secondary"
)

// Defaults used when no check-in exists for the day.
const (
	DefaultEnergy          = models.EnergyGreen
	DefaultAvailableBlocks = 4
)

// Scheduler owns the cron runner and the jobs it fires.
type Scheduler struct {
	briefingService primary.BriefingService
	checkinService  primary.CheckInService
	reviewService   primary.ReviewService
	notifier        secondary.Notifier
	cron            *cron.Cron
	logger          *log.Logger
}

// New creates a scheduler with the given services and notifier.
func New(
	briefingService primary.BriefingService,
	checkinService primary.CheckInService,
	reviewService primary.ReviewService,
	notifier secondary.Notifier,
	logger *log.Logger,
) *Scheduler {
	return &Scheduler{
		briefingService: briefingService,
		checkinService:  checkinService,
		reviewService:   reviewService,
		notifier:        notifier,
		cron:            cron.New(),
		logger:          logger,
	}
}

// Start registers the jobs and starts the cron runner.
func (s *Scheduler) Start(briefingSpec, reviewSpec string) error {
	if _, err := s.cron.AddFunc(briefingSpec, s.runMorningBriefing); err != nil {
		return fmt.Errorf("failed to schedule briefing job: %w", err)
	}
	if _, err := s.cron.AddFunc(reviewSpec, s.runWeeklyReview); err != nil {
		return fmt.Errorf("failed to schedule review job: %w", err)
	}

	s.cron.Start()
	s.logger.Printf("scheduler started: briefing %q, review %q", briefingSpec, reviewSpec)
	return nil
}

// Stop halts the cron runner and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Print("scheduler stopped")
}

// runMorningBriefing pushes the day's briefing. Capacity comes from
// today's check-in when one exists, otherwise the defaults.
func (s *Scheduler) runMorningBriefing() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	now := time.Now()

	energy := DefaultEnergy
	blocks := DefaultAvailableBlocks
	checkin, err := s.checkinService.GetCheckIn(ctx, now)
	if err != nil {
		s.logger.Printf("briefing job: failed to read check-in: %v", err)
	} else if checkin != nil {
		energy = checkin.Energy
		blocks = checkin.AvailableBlocks
	}

	briefing, err := s.briefingService.GenerateBriefing(ctx, primary.GenerateBriefingRequest{
		Energy:          energy,
		AvailableBlocks: blocks,
		Now:             now,
	})
	if err != nil {
		s.logger.Printf("briefing job: failed to generate briefing: %v", err)
		return
	}

	title := fmt.Sprintf("Morning Briefing (%s, %d blocks)", energy, blocks)
	if err := s.notifier.Send(ctx, title, formatBriefing(briefing)); err != nil {
		s.logger.Printf("briefing job: failed to notify: %v", err)
		return
	}
	s.logger.Printf("briefing job: delivered %d sorties", len(briefing.Items))
}

// runWeeklyReview pushes the review for the week ending today.
func (s *Scheduler) runWeeklyReview() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	review, err := s.reviewService.GenerateWeeklyReview(ctx, time.Now())
	if err != nil {
		s.logger.Printf("review job: failed to generate review: %v", err)
		return
	}

	if err := s.notifier.Send(ctx, "Weekly Review", review.Markdown()); err != nil {
		s.logger.Printf("review job: failed to notify: %v", err)
		return
	}
	s.logger.Print("review job: delivered")
}

func formatBriefing(b *primary.Briefing) string {
	if len(b.Items) == 0 {
		return "Nothing eligible today. Queue a sortie or adjust your check-in."
	}

	var sb strings.Builder
	for i, item := range b.Items {
		fmt.Fprintf(&sb, "%d. [%s] %s (%s, %d blocks)\n",
			i+1, item.CampaignName, item.Title, item.Load, item.EstimatedBlocks)
	}
	fmt.Fprintf(&sb, "\n%d of %d blocks planned", b.BlocksPlanned, b.AvailableBlocks)
	return sb.String()
}
