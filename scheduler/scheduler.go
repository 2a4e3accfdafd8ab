// Package scheduler wraps gocron with per-job status tracking so the API
// can report when background refreshes last ran and whether they failed.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
)

// JobStatus represents the status of a job.
type JobStatus string

const (
	JobStatusScheduled JobStatus = "scheduled"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// JobInfo describes a scheduled job and its run history.
type JobInfo struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Status     JobStatus  `json:"status"`
	LastRun    time.Time  `json:"lastRun"`
	NextRun    time.Time  `json:"nextRun"`
	RunCount   int        `json:"runCount"`
	ErrorCount int        `json:"errorCount"`
	LastError  string     `json:"lastError,omitempty"`
	job        gocron.Job `json:"-"`
}

// JobFunc is a schedulable unit of work.
type JobFunc func(ctx context.Context) error

// Scheduler manages the background jobs.
type Scheduler struct {
	gocron gocron.Scheduler
	jobs   map[string]*JobInfo
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates an idle scheduler.
func New() (*Scheduler, error) {
	gs, err := gocron.NewScheduler(gocron.WithLogger(gocronLogger{log.Default().WithPrefix("scheduler")}))
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		gocron: gs,
		jobs:   make(map[string]*JobInfo),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// AddIntervalJob registers fn to run every interval. With runNow set the job
// also fires immediately after Start.
func (s *Scheduler) AddIntervalJob(id, name string, interval time.Duration, fn JobFunc, runNow bool) error {
	info := &JobInfo{ID: id, Name: name, Status: JobStatusScheduled}

	opts := []gocron.JobOption{gocron.WithSingletonMode(gocron.LimitModeReschedule)}
	if runNow {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}
	job, err := s.gocron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.wrap(info, fn)),
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", id, err)
	}
	info.job = job
	s.jobs[id] = info
	log.Info("Added job to scheduler", "id", id, "name", name, "interval", interval)
	return nil
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.gocron.Start()
	for id, info := range s.jobs {
		if nextRun, err := info.job.NextRun(); err == nil {
			info.NextRun = nextRun
		} else {
			log.Warn("Failed to get next run time for job", "id", id, "error", err)
		}
	}
	log.Info("Job scheduler started")
}

// Stop cancels running jobs and shuts the scheduler down.
func (s *Scheduler) Stop() error {
	s.cancel()
	return s.gocron.Shutdown()
}

// RunJobNow triggers a job outside its schedule.
func (s *Scheduler) RunJobNow(id string) error {
	info, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job %s not found", id)
	}
	return info.job.RunNow()
}

// GetJobs returns all job information.
func (s *Scheduler) GetJobs() map[string]*JobInfo {
	return s.jobs
}

func (s *Scheduler) wrap(info *JobInfo, fn JobFunc) func() {
	return func() {
		info.Status = JobStatusRunning
		info.LastRun = time.Now()
		info.RunCount++

		err := fn(s.ctx)

		if nextRun, nerr := info.job.NextRun(); nerr == nil {
			info.NextRun = nextRun
		}
		if err != nil {
			log.Error("Job failed", "id", info.ID, "name", info.Name, "error", err)
			info.Status = JobStatusFailed
			info.ErrorCount++
			info.LastError = err.Error()
			return
		}
		info.Status = JobStatusCompleted
		info.LastError = ""
	}
}

// gocronLogger adapts charmbracelet/log to gocron's logger interface.
type gocronLogger struct {
	log *log.Logger
}

func (l gocronLogger) Debug(msg string, args ...any) { l.log.Debug(msg, args...) }
func (l gocronLogger) Error(msg string, args ...any) { l.log.Error(msg, args...) }
func (l gocronLogger) Info(msg string, args ...any)  { l.log.Info(msg, args...) }
func (l gocronLogger) Warn(msg string, args ...any)  { l.log.Warn(msg, args...) }
