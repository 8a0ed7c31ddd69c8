// Package bot drives chat channels through the intent dispatcher.
package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/channel"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/intent"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/metrics"
)

type Loop struct {
	dispatcher *intent.Dispatcher
	logger     *slog.Logger
}

func NewLoop(dispatcher *intent.Dispatcher, logger *slog.Logger) *Loop {
	return &Loop{dispatcher: dispatcher, logger: logger}
}

// Run consumes an adapter's inbound messages until the context ends
// or the adapter closes its channel.
func (l *Loop) Run(ctx context.Context, adapter channel.Adapter) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-adapter.Incoming():
			if !ok {
				return
			}
			l.Process(ctx, msg, adapter)
		}
	}
}

// Process handles one chat message: parse the command, dispatch the
// intent, send the reply. Failures become the same apologies the
// webhook path uses.
func (l *Loop) Process(ctx context.Context, msg *channel.Message, adapter channel.Adapter) {
	metrics.ChannelMessages.WithLabelValues(msg.Channel).Inc()

	var content string
	name, params, ok := channel.ParseCommand(msg.Content)
	if !ok {
		content = channel.Usage
	} else {
		reply, err := l.dispatcher.Handle(ctx, name, params)
		switch {
		case errors.Is(err, intent.ErrUnknownIntent):
			content = intent.ReplyUnknownIntent
		case err != nil:
			l.logger.Error("Fulfillment failed", "channel", msg.Channel, "intent", name, "error", err)
			content = intent.ReplyFailure
		default:
			content = reply
		}
	}

	if err := adapter.SendMessage(msg.UserID, &channel.Response{Content: content}); err != nil {
		l.logger.Error("Send failed", "channel", msg.Channel, "user", msg.UserID, "error", err)
	}
}
