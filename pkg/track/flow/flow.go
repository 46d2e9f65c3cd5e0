package flow

import (
	"context"
	"sync"

	"github.com/ib-77/twotrack/pkg/track"
)

// Stage applies one pipeline step to a single element's Result. Stages are
// built from the track combinators and are applied to each element
// independently of its siblings.
type Stage[In, Out any] func(track.Result[In]) track.Result[Out]

// Source feeds the given values into a channel as successes.
func Source[T any](ctx context.Context, values ...T) <-chan track.Result[T] {
	in := make(chan track.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- track.Succeed(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func SourceSlice[T any](ctx context.Context, values []T) <-chan track.Result[T] {
	return Source(ctx, values...)
}

// pump drains inputCh through the stage until the input closes or ctx is done
func pump[In, Out any](ctx context.Context, inputCh <-chan track.Result[In],
	outCh chan<- track.Result[Out], stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case outCh <- stage(in):
			case <-ctx.Done():
				return
			}
		}
	}
}

// Run fans the stage out over the given number of workers. Elements are
// processed independently and completion order is unspecified; the output
// channel closes once all workers drain. A worker count below 1 runs as a
// single worker so the input is never silently discarded.
func Run[In, Out any](ctx context.Context, inputCh <-chan track.Result[In],
	stage Stage[In, Out], workers int) <-chan track.Result[Out] {

	if workers < 1 {
		workers = 1
	}

	out := make(chan track.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go pump(ctx, inputCh, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Finally maps each Result to a plain value through the two handlers,
// exactly one of which runs per element.
func Finally[In, Out any](ctx context.Context, inputCh <-chan track.Result[In],
	onSuccess func(In) Out, onFailure func(track.Failure) Out) <-chan Out {

	out := make(chan Out)
	finalize := track.Finally(onSuccess, onFailure)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				select {
				case out <- finalize(in):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Collect gathers values until the channel closes or ctx is done.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
