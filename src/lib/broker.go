package lib

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const brokerExchange = "tbs.events"

var brokerChannel *amqp.Channel

// GetBrokerChannel returns the shared AMQP channel, or nil when
// RABBITMQ_URL is not configured. Publishing is best-effort; requests
// never fail because the broker is away.
func GetBrokerChannel() *amqp.Channel {
	if brokerChannel != nil {
		return brokerChannel
	}
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		return nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("[broker] dial failed: %s\n", err.Error())
		return nil
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Printf("[broker] channel open failed: %s\n", err.Error())
		conn.Close()
		return nil
	}
	if err := ch.ExchangeDeclare(brokerExchange, "topic", true, false, false, false, nil); err != nil {
		log.Printf("[broker] exchange declare failed: %s\n", err.Error())
		ch.Close()
		conn.Close()
		return nil
	}
	brokerChannel = ch
	return ch
}

// NewBrokerChannel Replace broker channel with custom implementation
func NewBrokerChannel(ch *amqp.Channel) *amqp.Channel {
	brokerChannel = ch
	return brokerChannel
}

// PublishEvent sends a JSON event on the topic exchange. Errors are
// logged and swallowed.
func PublishEvent(ctx context.Context, routingKey string, payload any) {
	ch := GetBrokerChannel()
	if ch == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[broker] marshal failed for %s: %s\n", routingKey, err.Error())
		return
	}
	err = ch.PublishWithContext(ctx, brokerExchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Printf("[broker] publish failed for %s: %s\n", routingKey, err.Error())
	}
}
