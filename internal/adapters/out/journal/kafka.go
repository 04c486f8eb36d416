// Package journal records order events durably for downstream consumers.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the journal uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaJournal appends every order event to one Kafka topic, keyed by order id
// so that the events of an order stay in one partition and in order. The event
// topic travels in the "event" header.
type KafkaJournal struct {
	writer MessageWriter
	now    func() time.Time
}

// NewKafkaWriter builds the writer for brokers and topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaJournal(writer MessageWriter) *KafkaJournal {
	return &KafkaJournal{writer: writer, now: time.Now}
}

func (j *KafkaJournal) Record(ctx context.Context, topic, key string, payload []byte) error {
	err := j.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(topic)},
		},
		Time: j.now(),
	})
	if err != nil {
		return fmt.Errorf("journal %s for %s: %w", topic, key, err)
	}
	return nil
}

func (j *KafkaJournal) Close() error {
	return j.writer.Close()
}
