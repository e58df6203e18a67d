package queue_test

import (
	"testing"

	"github.com/mshahid/portfolio-server/pkg/queue"
)

// TestContactEventRoundTrip 测试信封编码后能从 watermill 消息还原.
func TestContactEventRoundTrip(t *testing.T) {
	payload := queue.ContactReceivedPayload{
		MessageID: 42,
		Name:      "Jane",
		Email:     "jane@example.com",
		Subject:   "Hello",
		Message:   "A message long enough to be real.",
		IPAddress: "203.0.113.7",
	}

	msg, err := queue.NewWatermillMessage(queue.TopicContactReceived, payload,
		queue.WithProducer("portfolio-server"), queue.WithTraceID("trace-1"))
	if err != nil {
		t.Fatalf("build message: %v", err)
	}

	if msg.Metadata.Get("topic") != queue.TopicContactReceived {
		t.Errorf("unexpected topic metadata: %q", msg.Metadata.Get("topic"))
	}

	env, err := queue.ParseContactReceived(msg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if env.Header.Topic != queue.TopicContactReceived {
		t.Errorf("unexpected header topic: %q", env.Header.Topic)
	}

	if env.Header.Producer != "portfolio-server" || env.Header.TraceID != "trace-1" {
		t.Errorf("unexpected header: %+v", env.Header)
	}

	if env.Payload != payload {
		t.Errorf("payload mismatch: %+v", env.Payload)
	}

	if env.Header.OccurredAt.IsZero() {
		t.Error("expected occurred_at to be set")
	}
}
