package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_notification_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// PollerService drives the poll cycle: fetch changes since the cursor,
// validate the response, format each changed homework and deliver one
// notification per item. It owns the timestamp cursor and the
// duplicate-failure suppression state; both live for the process lifetime
// and are touched only by Run's goroutine.
type PollerService struct {
	api      homework.Client
	notifier *Notifier
	log      *logrus.Logger
	interval time.Duration

	cursor   int64
	lastKind homework.Kind
}

func NewPollerService(
	api homework.Client,
	notifier *Notifier,
	log *logrus.Logger,
	interval time.Duration,
	startFrom int64,
) *PollerService {
	return &PollerService{
		api:      api,
		notifier: notifier,
		log:      log,
		interval: interval,
		cursor:   startFrom,
	}
}

// Run polls until ctx is canceled. The delay is fixed and counted from the
// end of each iteration, so iterations never overlap.
func (s *PollerService) Run(ctx context.Context) {
	s.log.WithField("interval", s.interval.String()).Info("Poller started")
	for {
		s.pollOnce(ctx)
		select {
		case <-ctx.Done():
			s.log.Info("Poller stopped")
			return
		case <-time.After(s.interval):
		}
	}
}

// pollOnce performs exactly one poll cycle. Every failure is reported and
// contained here; nothing escapes to Run.
func (s *PollerService) pollOnce(ctx context.Context) {
	resp, err := s.api.HomeworkStatuses(ctx, s.cursor)
	if err != nil {
		s.reportFailure(err)
		return
	}

	// The cursor moves as soon as the response shape is known to be good,
	// before any per-homework work: a single malformed record must not
	// cause the same batch to be re-delivered forever.
	s.cursor = resp.CurrentDate

	homeworks, err := homework.CheckResponse(resp)
	if err != nil {
		if errors.Is(err, homework.ErrNoStatusChange) {
			s.log.WithField("cursor", s.cursor).Debug("No homework status changes since last poll")
			return
		}
		s.reportFailure(err)
		return
	}

	for _, hw := range homeworks {
		message, err := homework.ParseStatus(hw)
		if err != nil {
			s.reportFailure(err)
			continue
		}
		s.notifier.Notify(message)
	}
}

// reportFailure logs an iteration failure and alerts the operator chat,
// unless the immediately preceding failure was of the same kind. The
// comparison is by kind identity only: two different non-200 codes count
// as a repeat and the second alert is suppressed.
func (s *PollerService) reportFailure(err error) {
	kind := homework.KindOf(err)
	s.log.WithError(err).WithField("kind", string(kind)).Error("Poll iteration failed")

	if kind == s.lastKind {
		s.log.WithField("kind", string(kind)).Debug("Repeated failure kind, operator alert suppressed")
		return
	}
	s.lastKind = kind
	s.notifier.Notify(fmt.Sprintf("Сбой в работе программы: %v", err))
}
