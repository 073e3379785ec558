package utils

import (
	"time"

	"github.com/mvault/mvault"
	"go.uber.org/zap"
)

// Logging logs every request with its message path, duration and outcome
// through the logger carried in the context.
type Logging struct{}

var _ mvault.Decorator = Logging{}

// NewLogging creates a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Check logs the call and passes it through.
func (l Logging) Check(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx, next mvault.Checker) (*mvault.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	l.log(ctx, "check", mvault.GetPath(tx), start, err)
	return res, err
}

// Deliver logs the call and passes it through.
func (l Logging) Deliver(ctx mvault.Context, db mvault.KVStore, tx mvault.Tx, next mvault.Deliverer) (*mvault.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	l.log(ctx, "deliver", mvault.GetPath(tx), start, err)
	return res, err
}

func (l Logging) log(ctx mvault.Context, phase, path string, start time.Time, err error) {
	logger := mvault.GetLogger(ctx).With(
		zap.String("phase", phase),
		zap.String("path", path),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		logger.Info("rejected", zap.Error(err))
	} else {
		logger.Info("processed")
	}
}
