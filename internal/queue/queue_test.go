package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryPublishConsume(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := NewInMemory(4)
	assert.NoError(t, q.Publish(ctx, Message{Type: "checkin", Body: []byte("evt-1")}))
	assert.NoError(t, q.Publish(ctx, Message{Type: "checkin", Body: []byte("evt-2")}))

	msgs, err := q.Consume(ctx)
	assert.NoError(t, err)

	first := <-msgs
	assert.Equal(t, "checkin", first.Type)
	assert.Equal(t, []byte("evt-1"), first.Body)

	second := <-msgs
	assert.Equal(t, []byte("evt-2"), second.Body)
}

func TestInMemoryPublishHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := NewInMemory(1)
	assert.NoError(t, q.Publish(ctx, Message{Type: "checkin"}))

	cancel()
	err := q.Publish(ctx, Message{Type: "checkin"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMessageEnvelopeRoundTrip(t *testing.T) {
	msg := Message{Type: "checkin", Body: []byte(`{"bus_id":"b1"}`)}

	envelope, err := json.Marshal(msg)
	assert.NoError(t, err)

	var out Message
	assert.NoError(t, json.Unmarshal(envelope, &out))
	assert.Equal(t, msg, out)
}

func TestMessageEnvelopeRejectsGarbage(t *testing.T) {
	var out Message
	assert.Error(t, json.Unmarshal([]byte("raw-payload"), &out))
}
