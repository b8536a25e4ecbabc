package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartTicketConsumer connects to RabbitMQ, declares the ticket.issued and
// ticket.paid queues, and appends each message to logs/tickets.log in a
// single-line format. It runs a reconnect loop with exponential backoff and
// never returns under normal operation; processing errors reject the
// message without requeueing so the loop cannot spin.
func StartTicketConsumer() error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Printf("ticket-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn); err != nil {
			log.Printf("ticket-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("ticket-consumer: set QoS failed: %v", err)
	}

	for _, name := range []string{issuedQueueName, paidQueueName} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			return fmt.Errorf("queue declare %s: %w", name, err)
		}
	}

	issued, err := ch.Consume(issuedQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", issuedQueueName, err)
	}
	paid, err := ch.Consume(paidQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", paidQueueName, err)
	}

	for {
		var d amqp.Delivery
		var ok bool
		var handle func([]byte) error
		select {
		case d, ok = <-issued:
			handle = handleIssued
		case d, ok = <-paid:
			handle = handlePaid
		}
		if !ok {
			return errors.New("deliveries channel closed")
		}
		if err := handle(d.Body); err != nil {
			log.Printf("ticket-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
}

func handleIssued(body []byte) error {
	var ev TicketsIssuedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	line := fmt.Sprintf("[%s] Tickets issued | lot_id=%s | lot=%q | activity_id=%d | range=%d-%d | count=%d | unit_price=%s\n",
		ev.IssuedAt, ev.LotID, ev.LotName, ev.ActivityID, ev.RangeStart, ev.RangeEnd, ev.Count, ev.UnitPrice)
	return appendLog(line)
}

func handlePaid(body []byte) error {
	var ev TicketPaidEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	line := fmt.Sprintf("[%s] Ticket paid | ticket_id=%s | lot_id=%s | number=%d | member_id=%s | unit_price=%s | payment_date=%s\n",
		ev.PaidAt, ev.TicketID, ev.LotID, ev.Number, ev.MemberID, ev.UnitPrice, ev.PaymentDate)
	return appendLog(line)
}

func appendLog(line string) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "tickets.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
