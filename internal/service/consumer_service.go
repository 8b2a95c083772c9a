package service

import (
	"context"
	"encoding/json"

	"mockup-editor-be/internal/dto"
	"mockup-editor-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

// DocumentDelivery pushes a serialized document to everyone watching a
// session. The WebSocket hub implements it.
type DocumentDelivery interface {
	SendToSession(sessionID string, data []byte)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	delivery   DocumentDelivery
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	delivery DocumentDelivery,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		delivery:   delivery,
		logger:     log,
	}
}

// Consume subscribes to the changes topic and forwards every document to
// the live viewers. It returns once the subscription is set up.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.DocumentChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal document change", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	data, err := json.Marshal(map[string]interface{}{
		"type":   "document",
		"reason": payload.Reason,
		"data":   payload.Document,
	})
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to encode live update", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	cs.delivery.SendToSession(payload.SessionId, data)
	msg.Ack()
}
