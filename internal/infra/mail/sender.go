package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"text/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"
	"github.com/BrishbhanSinghBhadoriya/cuonline/internal/infra/http/middleware"
)

func NewEmailSender(host string, port int, user, password, from, adminEmail, appURL string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		AdminEmail: adminEmail,
		AppURL:     appURL,
	}
}

// SendLeadAlert mails the operations mailbox about a freshly captured lead.
func (s *EmailSender) SendLeadAlert(lead *entity.Lead) error {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		ist = time.UTC
	}

	data := LeadAlertData{
		Lead:         lead,
		ReceivedAt:   lead.CreatedAt.In(ist).Format("02 Jan 2006, 3:04 PM"),
		DashboardURL: s.AppURL + "/admin/leads",
		Year:         time.Now().Year(),
	}

	body, err := renderTemplate("lead_alert.html", data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("🎓 New Lead: %s — %s", lead.Name, lead.Program)
	return s.send(s.AdminEmail, subject, body)
}

// SendConfirmation mails the acknowledgement to the submitter.
func (s *EmailSender) SendConfirmation(lead *entity.Lead) error {
	data := ConfirmationData{
		Lead: lead,
		Year: time.Now().Year(),
	}

	body, err := renderTemplate("lead_confirmation.html", data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("✅ Enquiry Confirmed — %s | CU Online", lead.Program)
	return s.send(lead.Email, subject, body)
}

// NotifyLeadCaptured dispatches both intake emails. Each is attempted even
// when the other fails; the combined error is for logging only, the lead is
// already persisted by the time this runs.
func (s *EmailSender) NotifyLeadCaptured(_ context.Context, lead *entity.Lead) error {
	return errors.Join(s.SendLeadAlert(lead), s.SendConfirmation(lead))
}

func (s *EmailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		middleware.RecordNotificationError("smtp")
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

func renderTemplate(name string, data interface{}) (string, error) {
	t, err := template.ParseFiles(filepath.Join("templates", name))
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("render email template %s: %w", name, err)
	}
	return body.String(), nil
}
