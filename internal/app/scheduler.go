package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/model"
)

// Sweeper снимает с продвижения салоны с истёкшим сроком
type Sweeper interface {
	Sweep(ctx context.Context) ([]model.FeaturedStore, error)
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(sweeper Sweeper, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Duration("sweep_interval", s.interval))

	go s.runSweepTask(ctx)
}

// Stop останавливает фоновые задачи и ждёт завершения текущего прохода
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
	})
	<-s.done
}

// runSweepTask проверяет сроки продвижения сразу при старте и затем по тикеру
func (s *Scheduler) runSweepTask(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("Featured sweep task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Featured sweep task cancelled")
			return
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	expired, err := s.sweeper.Sweep(ctx)
	if err != nil {
		s.logger.Error("Failed to sweep featured stores", zap.Error(err))
		return
	}

	if len(expired) > 0 {
		s.logger.Info("Featured sweep completed", zap.Int("expired", len(expired)))
	}
}
