package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"path/filepath"

	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/logging"
)

// maxPushSize bounds a single pushed document.
const maxPushSize = 1 << 20

// Listener accepts theme pushes on a unix domain socket.
type Listener struct {
	path string
	ln   net.Listener
}

// Listen binds path, replacing a stale socket file left by a previous run.
func Listen(path string) (*Listener, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to remove stale socket %s: %w", path, err)
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", path, err)
	}
	return &Listener{path: path, ln: ln}, nil
}

// Path returns the socket path.
func (l *Listener) Path() string {
	return l.path
}

// Serve accepts connections until ctx is cancelled, calling handle for every
// valid state received. Connections are handled one at a time.
func (l *Listener) Serve(ctx context.Context, handle func(theme.State)) error {
	log := logging.FromContext(ctx)

	go func() {
		<-ctx.Done()
		l.ln.Close()
	}()

	for {
		conn, err := l.ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept on %s: %w", l.path, err)
		}
		l.handleConn(ctx, conn, handle)
		log.Debug().Msg("browser helper connection closed")
	}
}

func (l *Listener) handleConn(ctx context.Context, conn net.Conn, handle func(theme.State)) {
	defer conn.Close()
	log := logging.FromContext(ctx)

	dec := json.NewDecoder(io.LimitReader(conn, maxPushSize))
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug().Err(err).Msg("invalid push on socket")
			}
			return
		}
		state, err := DecodeState(raw)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring invalid theme state")
			continue
		}
		handle(state)
	}
}

// Close stops listening and removes the socket file.
func (l *Listener) Close() error {
	err := l.ln.Close()
	if rmErr := os.Remove(l.path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		return rmErr
	}
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}
