package queue

import (
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/infra/http/middleware"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/usecase"
)

// Worker drains the notification queue and sends the intake emails. It is
// fully decoupled from the database: everything it needs rides in the
// message body.
type Worker struct {
	Channel *amqp.Channel
	Emails  usecase.EmailService
}

func NewWorker(ch *amqp.Channel, emails usecase.EmailService) *Worker {
	return &Worker{
		Channel: ch,
		Emails:  emails,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("❌ failed to register RabbitMQ consumer: %s", err)
	}

	log.Printf(" [*] notification worker waiting on queue '%s'", queueName)

	for d := range msgs {
		var payload NotificationPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("❌ [WORKER] malformed notification payload: %s", err)
			middleware.RecordNotificationError("payload")
			// Poison message. Reject without requeue so it dead-letters.
			d.Nack(false, false)
			continue
		}

		if err := w.process(payload); err != nil {
			log.Printf("⚠️ [WORKER] notification for lead %s failed: %s", payload.LeadID, err)
			d.Nack(false, false)
		} else {
			d.Ack(false)
		}
	}
}

// process sends both emails; one failing does not stop the other. The lead
// is long since persisted, so errors here are only worth the DLQ.
func (w *Worker) process(payload NotificationPayload) error {
	lead := payload.ToLead()
	return errors.Join(w.Emails.SendLeadAlert(lead), w.Emails.SendConfirmation(lead))
}
