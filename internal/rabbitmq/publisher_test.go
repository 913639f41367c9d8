package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChannel struct {
	declared   []string
	published  []amqp.Publishing
	keys       []string
	declareErr error
	publishErr error
	closed     bool
}

func (c *recordingChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	c.declared = append(c.declared, name+":"+kind)
	return c.declareErr
}

func (c *recordingChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if c.publishErr != nil {
		return c.publishErr
	}
	c.keys = append(c.keys, exchange+"/"+key)
	c.published = append(c.published, msg)
	return nil
}

func (c *recordingChannel) Close() error {
	c.closed = true
	return nil
}

func TestNewPublisherWithChannel_DeclaresDirectExchange(t *testing.T) {
	channel := &recordingChannel{}

	publisher, err := NewPublisherWithChannel(channel, "bankpulse", "detections", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"bankpulse:direct"}, channel.declared)
	assert.Equal(t, "bankpulse", publisher.GetExchange())
	assert.Equal(t, "detections", publisher.GetRoutingKey())
	assert.True(t, publisher.IsConnected())
}

func TestNewPublisherWithChannel_DeclareFailureClosesChannel(t *testing.T) {
	channel := &recordingChannel{declareErr: errors.New("access refused")}

	_, err := NewPublisherWithChannel(channel, "bankpulse", "detections", nil)

	require.Error(t, err)
	assert.True(t, channel.closed)
}

func TestPublish_SendsPersistentJSON(t *testing.T) {
	channel := &recordingChannel{}
	publisher, err := NewPublisherWithChannel(channel, "bankpulse", "detections", nil)
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), map[string]int{"batch_index": 3})
	require.NoError(t, err)

	require.Len(t, channel.published, 1)
	msg := channel.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, []string{"bankpulse/detections"}, channel.keys)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, 3, decoded["batch_index"])
}

func TestPublish_WrapsChannelError(t *testing.T) {
	channel := &recordingChannel{publishErr: amqp.ErrClosed}
	publisher, err := NewPublisherWithChannel(channel, "bankpulse", "detections", nil)
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), "x")

	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestPublish_CancelledContext(t *testing.T) {
	channel := &recordingChannel{}
	publisher, err := NewPublisherWithChannel(channel, "bankpulse", "detections", nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = publisher.Publish(ctx, "x")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, channel.published)
}

func TestClose_ThenPublishFails(t *testing.T) {
	channel := &recordingChannel{}
	publisher, err := NewPublisherWithChannel(channel, "bankpulse", "detections", nil)
	require.NoError(t, err)

	require.NoError(t, publisher.Close())

	assert.True(t, channel.closed)
	assert.False(t, publisher.IsConnected())
	assert.ErrorIs(t, publisher.Publish(context.Background(), "x"), ErrPublisherClosed)
}
