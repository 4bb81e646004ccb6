package services

import (
	"time"

	"github.com/sirupsen/logrus"
)

// CleanupTask removes data older than the cutoff and reports how much it removed
type CleanupTask struct {
	Name string
	Run  func(cutoff time.Time) (int64, error)
}

// CleanupService periodically purges old activity entries and export files
type CleanupService struct {
	tasks     []CleanupTask
	retention time.Duration
	interval  time.Duration
	stopChan  chan struct{}
	now       func() time.Time
}

func NewCleanupService(interval time.Duration, retentionDays int, tasks ...CleanupTask) *CleanupService {
	return &CleanupService{
		tasks:     tasks,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		interval:  interval,
		stopChan:  make(chan struct{}),
		now:       time.Now,
	}
}

// Start starts the cleanup service
func (s *CleanupService) Start() {
	go s.run()
	logrus.Infof("Cleanup service started (interval: %v, retention: %v)", s.interval, s.retention)
}

// Stop stops the cleanup service
func (s *CleanupService) Stop() {
	close(s.stopChan)
	logrus.Info("Cleanup service stopped")
}

// run runs the cleanup loop
func (s *CleanupService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Run initial cleanup
	s.RunOnce()

	for {
		select {
		case <-ticker.C:
			s.RunOnce()
		case <-s.stopChan:
			return
		}
	}
}

// RunOnce executes every task with the current cutoff
func (s *CleanupService) RunOnce() {
	cutoff := s.now().Add(-s.retention)
	for _, task := range s.tasks {
		removed, err := task.Run(cutoff)
		if err != nil {
			logrus.Errorf("Cleanup of %s failed: %v", task.Name, err)
			continue
		}
		if removed > 0 {
			logrus.Infof("Cleanup of %s completed: removed %d item(s) older than %s", task.Name, removed, cutoff.Format(time.RFC3339))
		} else {
			logrus.Debugf("Cleanup of %s completed: nothing to remove", task.Name)
		}
	}
}
