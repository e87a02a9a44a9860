// Package relayhost runs the native messaging host that relays theme state
// from theme-control to the browser extension over stdin/stdout.
package relayhost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/theme-control/internal/application/usecase"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/infrastructure/browser"
	"github.com/bnema/theme-control/internal/infrastructure/nativemsg"
	"github.com/bnema/theme-control/internal/logging"
)

// DefaultRequestWait is how long one-shot mode waits for an optional request.
const DefaultRequestWait = 250 * time.Millisecond

// Options configures a host run.
type Options struct {
	// Watch keeps the host running and forwards every new state.
	Watch      bool
	StatePath  string
	SocketPath string

	Stdin  io.Reader
	Stdout io.Writer

	// RequestWait bounds the optional request read in one-shot mode.
	RequestWait time.Duration
}

// Run executes the host in one-shot or watch mode.
func Run(ctx context.Context, opts Options) error {
	if opts.Watch {
		return runWatch(ctx, opts)
	}
	return runOnce(ctx, opts)
}

// runOnce: read request (optional), read state, send one response.
func runOnce(ctx context.Context, opts Options) error {
	log := logging.FromContext(ctx)

	wait := opts.RequestWait
	if wait <= 0 {
		wait = DefaultRequestWait
	}
	if req, ok := readRequest(opts.Stdin, wait); ok {
		log.Debug().Int("bytes", len(req)).Msg("received request")
	}

	store := browser.NewStateFile(opts.StatePath)
	msg := usecase.NewRelayThemeUseCase(store).Execute(ctx)

	if err := nativemsg.NewWriter(opts.Stdout).WriteMessage(msg); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}
	return nil
}

// readRequest returns the first framed message on r if one arrives within
// wait. A browser using sendNativeMessage sends one; a bare launch does not.
func readRequest(r io.Reader, wait time.Duration) ([]byte, bool) {
	if r == nil {
		return nil, false
	}

	type result struct {
		body []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		body, err := nativemsg.ReadRaw(r)
		ch <- result{body: body, err: err}
	}()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, false
		}
		return res.body, true
	case <-timer.C:
		return nil, false
	}
}

// runWatch sends the current state, then forwards every new state seen on
// the state file or the push socket until stdin closes or ctx ends.
func runWatch(ctx context.Context, opts Options) error {
	log := logging.FromContext(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := browser.NewStateFile(opts.StatePath)
	relay := usecase.NewWatchRelayUseCase(store, nativemsg.NewWriter(opts.Stdout))

	if err := relay.SendCurrent(ctx); err != nil {
		return err
	}

	// The browser closes stdin when the extension disconnects. The reader
	// stays outside the group since a blocked Read cannot be interrupted.
	if opts.Stdin != nil {
		go func() {
			drainRequests(ctx, opts.Stdin)
			cancel()
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	forward := func(state theme.State) {
		if _, err := relay.Forward(gctx, state); err != nil {
			log.Error().Err(err).Msg("relay failed, stopping")
			cancel()
		}
	}

	g.Go(func() error {
		return browser.NewStateWatcher(store).Watch(gctx, forward)
	})

	if opts.SocketPath != "" {
		listener, err := browser.Listen(opts.SocketPath)
		if err != nil {
			log.Warn().Err(err).Str("socket", opts.SocketPath).Msg("push socket unavailable, watching state file only")
		} else {
			defer listener.Close()
			g.Go(func() error {
				return listener.Serve(gctx, forward)
			})
		}
	}

	log.Info().Str("state", store.Path()).Str("socket", opts.SocketPath).Msg("relay host watching")
	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// drainRequests consumes messages until r is closed. The extension has
// nothing to ask in watch mode, so messages are only logged.
func drainRequests(ctx context.Context, r io.Reader) {
	log := logging.FromContext(ctx)
	for {
		body, err := nativemsg.ReadRaw(r)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug().Err(err).Msg("stdin closed")
			}
			return
		}
		log.Debug().Int("bytes", len(body)).Msg("ignoring request in watch mode")
	}
}
