package message

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tinyland-inc/qguild/pkg/logger"
)

// Transport is the HTTP capability the dispatcher consumes. The
// implementation owns base-URL resolution and auth header injection; the
// dispatcher supplies the fully formed path, body and per-request
// headers.
type Transport interface {
	Post(ctx context.Context, path string, body any, headers map[string]string) ([]byte, error)
}

// Dispatcher delivers one canonical request to one canonical target,
// issuing one POST per identifier against
// POST /{dms|channels}/{id}/messages.
type Dispatcher struct {
	transport Transport
}

// NewDispatcher returns a dispatcher bound to the given transport.
func NewDispatcher(t Transport) *Dispatcher {
	return &Dispatcher{transport: t}
}

// Dispatch sends req to every identifier of t. The returned slice is in
// identifier order with one element per identifier; a single-identifier
// target yields exactly one. Identifier lists are posted concurrently,
// all requests issued before any is waited on. Transport failures are
// returned as-is — no retry here — and the first one fails the whole
// call.
func (d *Dispatcher) Dispatch(ctx context.Context, t Target, req *MessageRequest) ([]*Message, error) {
	segment, err := t.Category.segment()
	if err != nil {
		return nil, err
	}

	// The encoding is target-independent, so it is built once and
	// replayed per identifier.
	enc, err := Encode(req)
	if err != nil {
		return nil, err
	}

	if len(t.IDs) == 0 {
		msg, err := d.post(ctx, segment, t.ID, enc)
		if err != nil {
			return nil, err
		}
		return []*Message{msg}, nil
	}

	results := make([]*Message, len(t.IDs))
	var g errgroup.Group
	for i, id := range t.IDs {
		i, id := i, id
		g.Go(func() error {
			msg, err := d.post(ctx, segment, id, enc)
			if err != nil {
				return err
			}
			results[i] = msg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (d *Dispatcher) post(ctx context.Context, segment, id string, enc *Encoding) (*Message, error) {
	path := fmt.Sprintf("/%s/%s/messages", segment, id)

	body, err := d.transport.Post(ctx, path, enc.Body, enc.Headers)
	if err != nil {
		return nil, err
	}

	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("decoding message response from %s: %w", path, err)
	}

	logger.DebugCF("message", "Message delivered", map[string]any{
		"path":       path,
		"message_id": msg.ID,
	})
	return &msg, nil
}
