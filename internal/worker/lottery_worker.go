package worker

import (
	"context"
	"errors"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/logger"
	"github.com/luckstr/luckstr-go/internal/lottery"
)

// AnnounceJob publishes a new round announcement on schedule.
type AnnounceJob struct {
	Service lottery.Service
}

func (j *AnnounceJob) Process(ctx context.Context) error {
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)
	log.Info(LogMsgScheduledAnnouncement)

	_, err := j.Service.PublishAnnouncement(ctx)
	return err
}

// DrawJob runs the draw pipeline on schedule. Expected no-op conditions
// (no open round, nothing zapped yet, round already drawn) are logged at
// info level and not treated as job failures.
type DrawJob struct {
	Service lottery.Service
}

func (j *DrawJob) Process(ctx context.Context) error {
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)
	log.Info(LogMsgScheduledDraw)

	outcome := j.Service.RunDraw(ctx)
	if outcome.Success {
		return nil
	}

	switch outcome.Kind {
	case domain.KindNoActiveRound, domain.KindNoContributions,
		domain.KindNoVerifiedContributions, domain.KindRoundAlreadyComplete,
		domain.KindNoPrize:
		log.Info(LogMsgScheduledDrawSkipped, "kind", outcome.Kind)
		return nil
	}

	return errors.New(outcome.Kind)
}
