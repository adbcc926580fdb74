package observe

import (
	"time"

	"go.uber.org/zap"

	"github.com/lguimbarda/min-text/text/core"
)

// Logged wraps t so that every evaluation is logged on logger under label.
// Successful evaluations are logged at debug level with the result length,
// failures at warn level with the error. A nil logger logs nothing.
func Logged(t core.Text, logger *zap.Logger, label string) core.Text {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("text", label))

	return core.Envelop(func() (string, error) {
		if t == nil {
			return "", core.ErrNilSource
		}

		start := time.Now()
		s, err := t.AsString()
		if err != nil {
			logger.Warn("text evaluation failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
			return "", err
		}
		logger.Debug("text evaluated", zap.Int("length", len(s)), zap.Duration("duration", time.Since(start)))
		return s, nil
	})
}
