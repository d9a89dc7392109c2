package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
)

func newMockedProducer(t *testing.T) (*Producer, *mocks.SyncProducer) {
	t.Helper()

	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := &Producer{
		producer: mockProducer,
		logger:   log.WithField("component", "kafka-producer-test"),
	}
	return producer, mockProducer
}

func TestProducerConfig(t *testing.T) {
	config := producerConfig()

	if !config.Producer.Idempotent {
		t.Error("producer must be idempotent")
	}
	if config.Producer.RequiredAcks != sarama.WaitForAll {
		t.Errorf("expected acks from all in-sync replicas, got %v", config.Producer.RequiredAcks)
	}
	if config.Net.MaxOpenRequests != 1 {
		t.Errorf("idempotent mode requires MaxOpenRequests=1, got %d", config.Net.MaxOpenRequests)
	}
}

func TestProducer_PublishEvent(t *testing.T) {
	producer, mockProducer := newMockedProducer(t)

	mockProducer.ExpectSendMessageAndSucceed()

	event := NewOrderPlacedEvent(42, 7, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), []PlacedItem{
		{ShopID: 2, BookID: 1, Quantity: 3},
	})

	if err := producer.PublishEvent(TopicOrderEvents, "42", event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	producer, mockProducer := newMockedProducer(t)

	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	event := NewOrderPlacedEvent(42, 7, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil)

	if err := producer.PublishEvent(TopicOrderEvents, "42", event); err == nil {
		t.Fatal("expected publish error")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_MessagePayload(t *testing.T) {
	producer, mockProducer := newMockedProducer(t)

	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var event OrderPlacedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeOrderPlaced {
			t.Errorf("expected event type %q, got %q", EventTypeOrderPlaced, event.EventType)
		}
		if event.OrderID != 42 || event.UserID != 7 {
			t.Errorf("unexpected identifiers in event: %+v", event)
		}
		return nil
	})

	event := NewOrderPlacedEvent(42, 7, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), []PlacedItem{
		{ShopID: 2, BookID: 1, Quantity: 3},
	})

	if err := producer.PublishEvent(TopicOrderEvents, "42", event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}
