package kafka

import (
	"context"
	"math/rand"
	"time"
)

// backoff — экспоненциальная пауза с equal-jitter: половина фиксирована, половина случайна.
// Не потокобезопасен: им владеет один цикл Run.
type backoff struct {
	initial time.Duration
	max     time.Duration
	rnd     *rand.Rand

	current time.Duration
}

func newBackoff(initial, maxDelay time.Duration, seed int64) *backoff {
	return &backoff{
		initial: initial,
		max:     maxDelay,
		rnd:     rand.New(rand.NewSource(seed)),
		current: initial,
	}
}

// next — пауза для очередной попытки; следующая будет вдвое длиннее (до max).
func (b *backoff) next() time.Duration {
	d := b.jitter(b.current)
	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}
	return d
}

// reset — после успеха снова с initial.
func (b *backoff) reset() { b.current = b.initial }

func (b *backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

// sleep — ждёт d; false, если контекст отменён раньше.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
