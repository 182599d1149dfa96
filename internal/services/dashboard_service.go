package services

import (
	"fmt"

	"github.com/jamil/mission-control-api/internal/dto"
	"github.com/jamil/mission-control-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// DashboardService serves the aggregate read: all five collections in one
// call, fetched concurrently.
type DashboardService struct {
	taskRepo     repository.TaskRepository
	contentRepo  repository.ContentRepository
	calendarRepo repository.CalendarRepository
	memoryRepo   repository.MemoryRepository
	teamRepo     repository.TeamRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	taskRepo repository.TaskRepository,
	contentRepo repository.ContentRepository,
	calendarRepo repository.CalendarRepository,
	memoryRepo repository.MemoryRepository,
	teamRepo repository.TeamRepository,
) *DashboardService {
	return &DashboardService{
		taskRepo:     taskRepo,
		contentRepo:  contentRepo,
		calendarRepo: calendarRepo,
		memoryRepo:   memoryRepo,
		teamRepo:     teamRepo,
	}
}

// Snapshot fetches the five lists with a fixed-size concurrent fan-out and
// waits for all of them. Each list keeps its own sort order; no cross-entity
// computation happens here.
func (s *DashboardService) Snapshot() (*dto.DashboardData, error) {
	var data dto.DashboardData
	var g errgroup.Group

	g.Go(func() (err error) {
		data.Tasks, err = s.taskRepo.List()
		return err
	})
	g.Go(func() (err error) {
		data.Content, err = s.contentRepo.List()
		return err
	})
	g.Go(func() (err error) {
		data.Calendar, err = s.calendarRepo.List()
		return err
	})
	g.Go(func() (err error) {
		data.Memories, err = s.memoryRepo.List()
		return err
	})
	g.Go(func() (err error) {
		data.Team, err = s.teamRepo.List()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}
	return &data, nil
}
