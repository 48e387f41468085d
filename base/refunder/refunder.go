package refunder

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/goauction/base/backoff"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/goroutine"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain/auction"
)

var met = metrics.New("refunder")

type RefunderCfg struct {
	Auction   auction.UseCase
	BatchSize int
	Workers   int
	Interval  time.Duration
	Backoff   *backoff.Backoff
}

// Refunder pushes pending returns that could not be paid right after the
// operation that created them. Returns that keep failing stay claimable
// through Withdraw.
type Refunder struct {
	auction   auction.UseCase
	batchSize int
	workers   int
	interval  time.Duration
	backoff   *backoff.Backoff
	stoppedCh chan interface{}
}

func New(cfg *RefunderCfg) *Refunder {
	r := &Refunder{
		auction:   cfg.Auction,
		batchSize: cfg.BatchSize,
		workers:   cfg.Workers,
		interval:  cfg.Interval,
		backoff:   cfg.Backoff,
		stoppedCh: make(chan interface{}),
	}
	if r.batchSize <= 0 {
		r.batchSize = 100
	}
	if r.workers <= 0 {
		r.workers = 8
	}
	if r.backoff == nil {
		r.backoff = backoff.NewExponential(time.Second, time.Minute)
	}
	return r
}

func (r *Refunder) Start(ctx bCtx.Ctx) {
	goroutine.RecoverableGo(
		func() { r.loop(ctx) },
		goroutine.WithName("refunder"),
		goroutine.WithAfterEnded(func() { close(r.stoppedCh) }),
	)
}

func (r *Refunder) Wait() {
	<-r.stoppedCh
}

func (r *Refunder) loop(ctx bCtx.Ctx) {
	nextTick := time.Second * 0
	offset := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(nextTick):
			next, more, err := r.runOnce(ctx, offset)
			if err != nil {
				if err := r.backoff.Backoff(ctx); err != nil {
					return
				}
				nextTick = 0
				continue
			}
			r.backoff.Reset()
			offset = next
			if more {
				nextTick = 0
			} else {
				offset = 0
				nextTick = r.interval
			}
		}
	}
}

// runOnce pushes one page of pending returns starting at offset. It returns
// the offset of the next page and whether the page was full.
func (r *Refunder) runOnce(ctx bCtx.Ctx, offset int) (int, bool, error) {
	returns, err := r.auction.FindPendingReturns(ctx, offset, r.batchSize)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"offset": offset,
		}).Error("auction.FindPendingReturns failed")
		return offset, false, err
	}
	if len(returns) == 0 {
		return offset, false, nil
	}

	b := goroutines.NewBatch(r.workers, goroutines.WithBatchSize(len(returns)))
	defer b.Close()
	for i := 0; i < len(returns); i++ {
		id := returns[i].ToId()
		b.Queue(func() (interface{}, error) {
			return r.auction.PushPendingReturn(ctx, id)
		})
	}
	b.QueueComplete()

	paid := 0
	for ret := range b.Results() {
		if ret.Error() != nil {
			ctx.WithField("err", ret.Error()).Warn("auction.PushPendingReturn failed")
			continue
		}
		if ok, _ := ret.Value().(bool); ok {
			paid++
		}
	}
	met.BumpSum("paid", float64(paid))
	met.BumpSum("unpaid", float64(len(returns)-paid))

	// paid returns are removed. The rest keep their place since the store
	// orders by creation time, which a failed attempt does not touch.
	return offset + len(returns) - paid, len(returns) == r.batchSize, nil
}
