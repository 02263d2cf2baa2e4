package client

import (
	"context"
)

// Session gates recall and capture on the autoRecall/autoCapture flags so a
// host can call it unconditionally on every conversation turn.
type Session struct {
	client *Client
}

func NewSession(client *Client) *Session {
	return &Session{client: client}
}

// MaybeRecall recalls memories for query, or returns (nil, nil) when
// auto-recall is disabled.
func (s *Session) MaybeRecall(ctx context.Context, query string) ([]ScoredMemory, error) {
	if !s.client.conf.AutoRecall {
		s.client.logger.Debug("auto-recall disabled, skipping recall")
		return nil, nil
	}
	return s.client.Recall(ctx, query)
}

// MaybeCapture captures content into memory, or returns (nil, nil) when
// auto-capture is disabled.
func (s *Session) MaybeCapture(ctx context.Context, content string) (*Memory, error) {
	if !s.client.conf.AutoCapture {
		s.client.logger.Debug("auto-capture disabled, skipping capture")
		return nil, nil
	}
	return s.client.Capture(ctx, content)
}
