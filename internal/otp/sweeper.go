package otp

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Sweeper периодически удаляет давно истёкшие коды из хранилища
type Sweeper struct {
	cron   *cron.Cron
	store  Store
	logger *logrus.Logger
}

// NewSweeper регистрирует задачу очистки по расписанию cron (поддерживает "@every 1m")
func NewSweeper(store Store, schedule string, logger *logrus.Logger) (*Sweeper, error) {
	s := &Sweeper{
		cron:   cron.New(),
		store:  store,
		logger: logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("invalid otp sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.logger.Info("Starting otp sweeper...")
	s.cron.Start()
}

// Stop останавливает планировщик и ждёт завершения текущего прохода
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Otp sweeper stopped.")
}

func (s *Sweeper) sweep() {
	removed, err := s.store.Sweep(context.Background())
	if err != nil {
		s.logger.WithError(err).Error("Failed to sweep expired otp challenges")
		return
	}
	if removed > 0 {
		s.logger.WithField("removed", removed).Debug("Expired otp challenges swept")
	}
}
