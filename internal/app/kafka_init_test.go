package app

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestInitKafkaProducer_EmptyBrokers(t *testing.T) {
	logger := log.WithField("component", "test")

	producer, err := initKafkaProducer("", logger)
	if err != nil {
		t.Fatalf("expected no error for empty brokers, got %v", err)
	}
	if producer != nil {
		t.Fatal("expected nil producer for empty brokers")
	}
}

func TestSplitBrokers(t *testing.T) {
	cases := []struct {
		name    string
		brokers string
		want    int
	}{
		{name: "empty", brokers: "", want: 0},
		{name: "blank elements", brokers: " , ,", want: 0},
		{name: "two addresses", brokers: "kafka-1:9092, kafka-2:9092", want: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := splitBrokers(tc.brokers); len(got) != tc.want {
				t.Fatalf("expected %d brokers, got %v", tc.want, got)
			}
		})
	}
}

func TestCloseKafka_NilProducer(t *testing.T) {
	// nil producer не должен приводить к панике
	closeKafka(nil, log.WithField("component", "test"))
}
