package train

// EpochEvent is emitted once per completed epoch.
type EpochEvent struct {
	Epoch    int     // 1-based index of the epoch that just finished
	Epochs   int     // Total number of epochs in the run
	MeanLoss float64 // Mean pre-update squared error over the epoch
}

// Observer receives per-epoch notifications. It decides how, or whether, to
// display them.
type Observer interface {
	EpochCompleted(EpochEvent)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(EpochEvent)

// EpochCompleted calls f(e).
func (f ObserverFunc) EpochCompleted(e EpochEvent) {
	f(e)
}

type nopObserver struct{}

func (nopObserver) EpochCompleted(EpochEvent) {}
