package telegram

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Poller long-polls getUpdates and hands each update to the handler in
// arrival order. Telegram preserves per-chat ordering, so sequential
// delivery here keeps the dispatch-boundary ordering guarantee.
type Poller struct {
	client  *Client
	handle  func(Update)
	timeout int
	log     zerolog.Logger
}

func NewPoller(client *Client, timeout int, handle func(Update), log zerolog.Logger) *Poller {
	return &Poller{
		client:  client,
		handle:  handle,
		timeout: timeout,
		log:     log,
	}
}

// Run polls until ctx is cancelled. Poll failures are logged and
// retried after a short backoff; a failing Telegram API must not kill
// the event stream.
func (p *Poller) Run(ctx context.Context) {
	var offset int64

	p.log.Info().Msg("poller started")
	for {
		updates, err := p.client.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil {
				p.log.Info().Msg("poller stopped")
				return
			}
			p.log.Error().Err(err).Msg("get updates")
			select {
			case <-ctx.Done():
				p.log.Info().Msg("poller stopped")
				return
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for _, upd := range updates {
			offset = upd.UpdateID + 1
			p.handle(upd)
		}
	}
}
