package bootstrap

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mockup-editor-be/internal/dto"
	"mockup-editor-be/internal/pkg/logger"
	"mockup-editor-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type positionRecorder chan int

func (r positionRecorder) SendToSession(_ string, data []byte) {
	var frame struct {
		Data dto.DocumentResponse `json:"data"`
	}
	if err := json.Unmarshal(data, &frame); err == nil {
		r <- frame.Data.Position
	}
}

func TestEventBusDeliversChangesInPublishOrder(t *testing.T) {
	const changes = 300

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewEventBus(watermill.NopLogger{})
	defer bus.Close()

	out := make(positionRecorder, changes)
	consumer := service.NewConsumerService(bus, "document.changed", out, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := service.NewPublisherService("document.changed", bus)
	for i := 0; i < changes; i++ {
		err := publisher.PublishDocumentChanged(ctx, dto.DocumentChangedMessage{
			SessionId: "s1",
			Reason:    service.MutationStyle,
			Document:  dto.DocumentResponse{SessionId: "s1", Position: i},
		})
		require.NoError(t, err)
	}

	got := make([]int, 0, changes)
	for len(got) < changes {
		select {
		case p := <-out:
			got = append(got, p)
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d of %d changes delivered", len(got), changes)
		}
	}

	for i, p := range got {
		assert.Equal(t, i, p, "change %d delivered out of order", i)
	}
}
