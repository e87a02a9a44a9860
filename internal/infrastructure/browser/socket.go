package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"

	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/logging"
)

// SocketPusher implements port.ThemePusher over a unix domain socket.
type SocketPusher struct {
	path string
}

// NewSocketPusher creates a pusher for the socket at path.
func NewSocketPusher(path string) *SocketPusher {
	return &SocketPusher{path: path}
}

// Push sends state as one JSON document and closes the connection.
// A missing socket or a refused connection means nobody is listening; both
// are logged at debug and reported as success.
func (p *SocketPusher) Push(ctx context.Context, state theme.State) error {
	log := logging.FromContext(ctx)

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode theme state: %w", err)
	}

	if _, err := os.Stat(p.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("socket", p.path).Msg("no browser helper listening")
			return nil
		}
		log.Debug().Err(err).Str("socket", p.path).Msg("cannot stat browser helper socket")
		return nil
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", p.path)
	if err != nil {
		log.Debug().Err(err).Str("socket", p.path).Msg("did not connect to browser helper")
		return nil
	}
	defer conn.Close()

	if _, err := conn.Write(append(data, '\n')); err != nil {
		log.Debug().Err(err).Str("socket", p.path).Msg("failed to push theme to browser helper")
		return nil
	}

	log.Debug().Str("socket", p.path).Msg("pushed theme to browser helper")
	return nil
}
