package progress

import (
	"bytes"
	"context"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/born-ml/ricenet/internal/train"
)

type fakeSpinner struct {
	mu        sync.Mutex
	started   string
	texts     []string
	successes []string
}

func (s *fakeSpinner) factory(text string) (Spinner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = text
	return s, nil
}

func (s *fakeSpinner) UpdateText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
}

func (s *fakeSpinner) Success(msg ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range msg {
		s.successes = append(s.successes, m.(string))
	}
}

func (s *fakeSpinner) snapshot() (texts, successes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.texts...), append([]string(nil), s.successes...)
}

func TestIndicator_StartStop(t *testing.T) {
	mock := clock.NewMock()
	fake := &fakeSpinner{}
	ind := NewIndicator(WithClock(mock), WithSpinnerFactory(fake.factory))

	require.NoError(t, ind.Start(context.Background()))
	for i := 0; i < 6; i++ {
		mock.Add(defaultInterval)
	}
	require.NoError(t, ind.Stop())

	texts, successes := fake.snapshot()
	assert.Equal(t, defaultText, fake.started)
	assert.LessOrEqual(t, len(texts), 6)
	for _, text := range texts {
		assert.True(t, strings.HasPrefix(text, defaultText), text)
		assert.LessOrEqual(t, len(text)-len(defaultText), 3)
	}
	assert.Equal(t, []string{defaultDoneText}, successes)

	// Acknowledged: nothing runs after Stop returns.
	mock.Add(10 * defaultInterval)
	after, _ := fake.snapshot()
	assert.Equal(t, len(texts), len(after))
}

// captureStdout redirects os.Stdout until the returned function is called,
// which restores it and returns everything written meanwhile.
func captureStdout(t *testing.T) func() string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = io.Copy(&buf, r)
	}()

	return func() string {
		os.Stdout = orig
		require.NoError(t, w.Close())
		<-done
		require.NoError(t, r.Close())
		return buf.String()
	}
}

func TestIndicator_DefaultSpinnerStopsAllOutput(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	restore := captureStdout(t)
	baseline := runtime.NumGoroutine()

	ind := NewIndicator(WithInterval(5 * time.Millisecond))
	require.NoError(t, ind.Start(context.Background()))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, ind.Stop())

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= baseline
	}, 50*time.Millisecond, time.Millisecond, "a goroutine outlived Stop")

	// Longer than any spinner frame delay, so a stray renderer would show up.
	time.Sleep(300 * time.Millisecond)
	out := restore()

	assert.Contains(t, out, defaultText+".")
	idx := strings.LastIndex(out, defaultDoneText)
	require.GreaterOrEqual(t, idx, 0, "done line missing")
	assert.Empty(t, strings.TrimSpace(out[idx+len(defaultDoneText):]), "output after the done line")
}

func TestIndicator_StopIdempotent(t *testing.T) {
	fake := &fakeSpinner{}
	ind := NewIndicator(WithClock(clock.NewMock()), WithSpinnerFactory(fake.factory))

	require.NoError(t, ind.Stop())
	require.NoError(t, ind.Start(context.Background()))
	require.NoError(t, ind.Stop())
	require.NoError(t, ind.Stop())

	_, successes := fake.snapshot()
	assert.Len(t, successes, 1)
}

func TestIndicator_Restart(t *testing.T) {
	fake := &fakeSpinner{}
	ind := NewIndicator(WithClock(clock.NewMock()), WithSpinnerFactory(fake.factory))

	require.NoError(t, ind.Start(context.Background()))
	assert.ErrorIs(t, ind.Start(context.Background()), ErrAlreadyStarted)
	require.NoError(t, ind.Stop())
	require.NoError(t, ind.Start(context.Background()))
	require.NoError(t, ind.Stop())

	_, successes := fake.snapshot()
	assert.Len(t, successes, 2)
}

func TestIndicator_ParentCancel(t *testing.T) {
	fake := &fakeSpinner{}
	ind := NewIndicator(WithClock(clock.NewMock()), WithSpinnerFactory(fake.factory))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, ind.Start(ctx))
	cancel()
	require.NoError(t, ind.Stop())

	_, successes := fake.snapshot()
	assert.Len(t, successes, 1)
}

func TestIndicator_FactoryError(t *testing.T) {
	boom := errors.New("no terminal")
	ind := NewIndicator(WithSpinnerFactory(func(string) (Spinner, error) {
		return nil, boom
	}))

	err := ind.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, ind.Stop())
}

func TestIndicator_Options(t *testing.T) {
	fake := &fakeSpinner{}
	ind := NewIndicator(
		WithClock(clock.NewMock()),
		WithSpinnerFactory(fake.factory),
		WithText("Working", "Done"),
		WithInterval(time.Second),
		WithInterval(-1),
	)
	assert.Equal(t, time.Second, ind.interval)

	require.NoError(t, ind.Start(context.Background()))
	require.NoError(t, ind.Stop())

	_, successes := fake.snapshot()
	assert.Equal(t, "Working", fake.started)
	assert.Equal(t, []string{"Done"}, successes)
}

func TestNopSpinnerFactory(t *testing.T) {
	ind := NewIndicator(WithClock(clock.NewMock()), WithSpinnerFactory(NopSpinnerFactory))
	require.NoError(t, ind.Start(context.Background()))
	assert.NoError(t, ind.Stop())
}

func TestEpochLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewEpochLogger(zap.New(core).Sugar(), 3)

	for epoch := 1; epoch <= 7; epoch++ {
		l.EpochCompleted(train.EpochEvent{Epoch: epoch, Epochs: 7, MeanLoss: 1 / float64(epoch)})
	}

	entries := logs.FilterMessage("Epoch completed").All()
	require.Len(t, entries, 3)
	var epochs []int64
	for _, e := range entries {
		epochs = append(epochs, e.ContextMap()["epoch"].(int64))
	}
	assert.Equal(t, []int64{3, 6, 7}, epochs)
}

func TestEpochLogger_EveryEpoch(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewEpochLogger(zap.New(core).Sugar(), 0)

	for epoch := 1; epoch <= 4; epoch++ {
		l.EpochCompleted(train.EpochEvent{Epoch: epoch, Epochs: 4})
	}
	assert.Equal(t, 4, logs.Len())
}
