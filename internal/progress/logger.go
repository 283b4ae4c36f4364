package progress

import (
	"go.uber.org/zap"

	"github.com/born-ml/ricenet/internal/train"
)

// EpochLogger is a train.Observer that logs finished epochs.
//
// Only every Nth epoch and the final one are logged.
type EpochLogger struct {
	logger *zap.SugaredLogger
	every  int
}

// NewEpochLogger logs one line every `every` epochs. Values below 1 log every epoch.
func NewEpochLogger(logger *zap.SugaredLogger, every int) *EpochLogger {
	if every < 1 {
		every = 1
	}
	return &EpochLogger{logger: logger, every: every}
}

// EpochCompleted implements train.Observer.
func (l *EpochLogger) EpochCompleted(e train.EpochEvent) {
	if e.Epoch%l.every != 0 && e.Epoch != e.Epochs {
		return
	}
	l.logger.Infow("Epoch completed",
		"epoch", e.Epoch,
		"epochs", e.Epochs,
		"mean_loss", e.MeanLoss,
	)
}
