// Package message implements destination resolution and dispatch for the
// guild open API's message-create endpoints.
//
// Destinations and payloads arrive in loose shapes — a bare identifier
// string, a structured target, a plain content string, a full request —
// and are resolved into canonical form before one POST is issued per
// resolved identifier. The Sender is the entry point; Dispatcher,
// Resolve and Normalize are exported for callers that need the pieces
// separately.
package message

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Sender resolves loosely-shaped destinations and payloads, fans out
// through the dispatcher, and aggregates responses in input order.
//
// A Sender optionally carries a fixed category. Private and Channel
// return narrowed senders that supply the category for bare-identifier
// targets:
//
//	sender.Channel().Send(ctx, message.ID("42"), message.Text("hi"))
//
// Senders are stateless beyond the transport handle and safe for
// concurrent use; narrowing never affects the sender it was called on.
type Sender struct {
	dispatcher *Dispatcher
	category   Category
}

// NewSender returns an unnarrowed sender bound to the given transport.
// Bare-identifier targets passed to an unnarrowed sender fail with
// MissingCategoryError; narrow first or pass structured targets.
func NewSender(t Transport) *Sender {
	return &Sender{dispatcher: NewDispatcher(t)}
}

// Private returns a sender fixed to the private-message category.
func (s *Sender) Private() *Sender {
	return &Sender{dispatcher: s.dispatcher, category: CategoryPrivate}
}

// Channel returns a sender fixed to the channel category.
func (s *Sender) Channel() *Sender {
	return &Sender{dispatcher: s.dispatcher, category: CategoryChannel}
}

// Send delivers one request to one logical target. The returned slice is
// in identifier order, one element per identifier the target resolves to.
// Resolution and normalization failures return before any network call
// is made.
func (s *Sender) Send(ctx context.Context, target TargetInput, input RequestInput) ([]*Message, error) {
	t, err := Resolve(target, s.category)
	if err != nil {
		return nil, err
	}
	return s.dispatcher.Dispatch(ctx, t, Normalize(input))
}

// SendAll fans one request out to several targets concurrently and
// flattens the responses into one slice ordered by target, then by
// identifier within each target. Targets are resolved and dispatched
// independently; the first failure — resolution or transport — fails the
// whole call, though sibling dispatches already in flight run to
// completion. Use SendEach to observe per-target outcomes.
func (s *Sender) SendAll(ctx context.Context, targets []TargetInput, input RequestInput) ([]*Message, error) {
	req := Normalize(input)

	grouped := make([][]*Message, len(targets))
	var g errgroup.Group
	for i, in := range targets {
		i, in := i, in
		g.Go(func() error {
			t, err := in.resolve(s.category)
			if err != nil {
				return err
			}
			msgs, err := s.dispatcher.Dispatch(ctx, t, req)
			if err != nil {
				return err
			}
			grouped[i] = msgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []*Message
	for _, msgs := range grouped {
		out = append(out, msgs...)
	}
	return out, nil
}

// SendResult is the per-target outcome of SendEach. Exactly one of
// Messages and Err is set.
type SendResult struct {
	Input    TargetInput
	Messages []*Message
	Err      error
}

// SendEach fans one request out to several targets concurrently and
// reports each target's outcome separately, so a failure on one target
// does not mask deliveries that succeeded. Results are in target order.
func (s *Sender) SendEach(ctx context.Context, targets []TargetInput, input RequestInput) []SendResult {
	req := Normalize(input)

	results := make([]SendResult, len(targets))
	var wg sync.WaitGroup
	for i, in := range targets {
		i, in := i, in
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i].Input = in
			t, err := in.resolve(s.category)
			if err != nil {
				results[i].Err = err
				return
			}
			results[i].Messages, results[i].Err = s.dispatcher.Dispatch(ctx, t, req)
		}()
	}
	wg.Wait()
	return results
}

// Reply sends a request quoting the message identified by msgID. Any
// msg_id already present on the request input is overwritten.
func (s *Sender) Reply(ctx context.Context, msgID string, target TargetInput, input RequestInput) ([]*Message, error) {
	req := Normalize(input)
	req.MsgID = msgID
	return s.Send(ctx, target, req)
}
