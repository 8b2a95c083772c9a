package bootstrap

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NewEventBus builds the in-process bus for document changes. Every message
// carries a full document, so Publish waits for the consumer's ack to keep
// viewers on the latest snapshot.
func NewEventBus(log watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		log,
	)
}
