package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Заголовки сообщений, общие для всех сервисов платформы
const (
	headerEventID   = "event-id"
	headerEventType = "event-type"
	headerSource    = "source"
)

const sourceName = "agenda-service"

// Producer публикует события по записям в Kafka.
// Ключ сообщения - appointment_id: hash-балансировка сохраняет порядок
// событий одной записи внутри партиции.
type Producer struct {
	writer *kafka.Writer
	log    Logger
}

// NewProducer создает producer для топика appointments
func NewProducer(brokers []string, topic string, log Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...interface{}) {}),
		ErrorLogger:  kafka.LoggerFunc(log.Error),
	}

	return &Producer{
		writer: writer,
		log:    log,
	}
}

// PublishAppointmentEvent публикует событие по записи
func (p *Producer) PublishAppointmentEvent(ctx context.Context, evt AppointmentEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("events: failed to encode %s event: %w", evt.EventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.AppointmentID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(uuid.NewString())},
			{Key: headerEventType, Value: []byte(evt.EventType)},
			{Key: headerSource, Value: []byte(sourceName)},
		},
		Time: evt.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("events: failed to publish %s event for appointment id=%d: %w",
			evt.EventType, evt.AppointmentID, err)
	}

	p.log.Info("Published %s event for appointment id=%d", evt.EventType, evt.AppointmentID)
	return nil
}

// Close останавливает producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// NopPublisher заглушка, используемая при выключенной Kafka
type NopPublisher struct{}

// PublishAppointmentEvent ничего не делает
func (NopPublisher) PublishAppointmentEvent(ctx context.Context, evt AppointmentEvent) error {
	return nil
}
