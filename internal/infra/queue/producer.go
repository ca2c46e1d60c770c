package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"
)

// NotificationPayload is the wire form of a captured lead. It carries every
// field the notification emails render, so the worker never reads the store.
type NotificationPayload struct {
	LeadID    string    `json:"lead_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Program   string    `json:"program"`
	State     string    `json:"state"`
	City      string    `json:"city"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (p NotificationPayload) ToLead() *entity.Lead {
	return &entity.Lead{
		ID:        p.LeadID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Program:   p.Program,
		State:     p.State,
		City:      p.City,
		Message:   p.Message,
		CreatedAt: p.CreatedAt,
	}
}

type NotificationProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *NotificationProducer {
	return &NotificationProducer{
		Conn: conn,
		Ch:   ch,
	}
}

// NotifyLeadCaptured publishes the lead for the notification worker. The
// publish is durable, but a failure here is still best-effort from the
// intake flow's point of view.
func (p *NotificationProducer) NotifyLeadCaptured(ctx context.Context, lead *entity.Lead) error {
	payload := NotificationPayload{
		LeadID:    lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Program:   lead.Program,
		State:     lead.State,
		City:      lead.City,
		Message:   lead.Message,
		CreatedAt: lead.CreatedAt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode notification payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish lead notification: %w", err)
	}
	return nil
}
