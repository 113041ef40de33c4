package backup

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"namecard/internal/backup/interfaces"
	"namecard/internal/providers"
	"namecard/internal/structures"
)

type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	writer  *SnapshotWriter
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	if err := os.MkdirAll(s.config.Backup.Dir, 0o755); err != nil {
		s.logger.Errorf(providers.TypeApp, "Create backup dir %s: %s", s.config.Backup.Dir, err)
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Backup.Interval), func() {
		if err := s.snapshot(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Backup snapshot failed: %s", err)
		}
	})
	s.cron.Start()
}

func (s *Scheduler) snapshot() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	path, err := s.writer.Write(context.Background(), s.config.Backup.Dir)
	if err != nil {
		return err
	}
	s.metrics.ObserveBackupDuration(time.Since(start))
	s.logger.Infof(providers.TypeApp, "Backup snapshot written to %s", path)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Persist writes one final snapshot on shutdown.
func (s *Scheduler) Persist() error {
	return s.snapshot()
}

func NewScheduler(config *structures.Config, logger providers.Logger, writer *SnapshotWriter, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	if !config.Backup.Enabled || config.Backup.Interval <= 0 {
		logger.Infof(providers.TypeApp, "Backup disabled")
		return &noopScheduler{}
	}
	return &Scheduler{
		config:  config,
		logger:  logger,
		writer:  writer,
		metrics: metrics,
	}
}

type noopScheduler struct{}

func (n *noopScheduler) Init()          {}
func (n *noopScheduler) Stop()          {}
func (n *noopScheduler) Persist() error { return nil }
