// Package wire provides dependency injection for the senryaku
// application. It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/senryaku/internal/adapters/cli"
	"github.com/example/senryaku/internal/adapters/sqlite"
	"github.com/example/senryaku/internal/app"
	"github.com/example/senryaku/internal/config"
	"github.com/example/senryaku/internal/db"
	"github.com/example/senryaku/internal/ports/primary"
)

var (
	campaignService primary.CampaignService
	missionService  primary.MissionService
	sortieService   primary.SortieService
	checkinService  primary.CheckInService
	briefingService primary.BriefingService
	healthService   primary.HealthService
	driftService    primary.DriftService
	reviewService   primary.ReviewService
	once            sync.Once
)

// CampaignService returns the singleton CampaignService instance.
func CampaignService() primary.CampaignService {
	once.Do(initServices)
	return campaignService
}

// MissionService returns the singleton MissionService instance.
func MissionService() primary.MissionService {
	once.Do(initServices)
	return missionService
}

// SortieService returns the singleton SortieService instance.
func SortieService() primary.SortieService {
	once.Do(initServices)
	return sortieService
}

// CheckInService returns the singleton CheckInService instance.
func CheckInService() primary.CheckInService {
	once.Do(initServices)
	return checkinService
}

// BriefingService returns the singleton BriefingService instance.
func BriefingService() primary.BriefingService {
	once.Do(initServices)
	return briefingService
}

// HealthService returns the singleton HealthService instance.
func HealthService() primary.HealthService {
	once.Do(initServices)
	return healthService
}

// DriftService returns the singleton DriftService instance.
func DriftService() primary.DriftService {
	once.Do(initServices)
	return driftService
}

// ReviewService returns the singleton ReviewService instance.
func ReviewService() primary.ReviewService {
	once.Do(initServices)
	return reviewService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// The DB path override must land before the first connection.
	if cfg, err := config.Load(); err == nil && cfg.DBPath != "" {
		db.SetPath(cfg.DBPath)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports)
	campaignRepo := sqlite.NewCampaignRepository(database)
	missionRepo := sqlite.NewMissionRepository(database)
	sortieRepo := sqlite.NewSortieRepository(database)
	aarRepo := sqlite.NewAARRepository(database)
	checkinRepo := sqlite.NewCheckInRepository(database)

	// Services (primary ports implementation)
	campaignService = app.NewCampaignService(campaignRepo)
	missionService = app.NewMissionService(missionRepo, campaignRepo)
	sortieService = app.NewSortieService(sortieRepo, missionRepo, aarRepo)
	checkinService = app.NewCheckInService(checkinRepo)
	briefingService = app.NewBriefingService(campaignRepo, missionRepo, sortieRepo, aarRepo)
	healthService = app.NewHealthService(campaignRepo, missionRepo, sortieRepo, aarRepo)
	driftService = app.NewDriftService(campaignRepo, aarRepo)
	reviewService = app.NewReviewService(campaignRepo, missionRepo, sortieRepo, aarRepo, checkinRepo)
}

// BriefingAdapter returns a new BriefingAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func BriefingAdapter() *cliadapter.BriefingAdapter {
	return BriefingAdapterWithOutput(os.Stdout)
}

// BriefingAdapterWithOutput returns a BriefingAdapter writing to the
// given output, for testing or alternate destinations.
func BriefingAdapterWithOutput(out io.Writer) *cliadapter.BriefingAdapter {
	once.Do(initServices)
	return cliadapter.NewBriefingAdapter(briefingService, out)
}

// DashboardAdapter returns a new DashboardAdapter writing to stdout.
func DashboardAdapter() *cliadapter.DashboardAdapter {
	return DashboardAdapterWithOutput(os.Stdout)
}

// DashboardAdapterWithOutput returns a DashboardAdapter writing to the
// given output.
func DashboardAdapterWithOutput(out io.Writer) *cliadapter.DashboardAdapter {
	once.Do(initServices)
	return cliadapter.NewDashboardAdapter(healthService, out)
}

// DriftAdapter returns a new DriftAdapter writing to stdout.
func DriftAdapter() *cliadapter.DriftAdapter {
	return DriftAdapterWithOutput(os.Stdout)
}

// DriftAdapterWithOutput returns a DriftAdapter writing to the given
// output.
func DriftAdapterWithOutput(out io.Writer) *cliadapter.DriftAdapter {
	once.Do(initServices)
	return cliadapter.NewDriftAdapter(driftService, out)
}
