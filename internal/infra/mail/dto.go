package mail

import "github.com/BrishbhanSinghBhadoriya/cuonline/internal/entity"

type LeadAlertData struct {
	Lead         *entity.Lead
	ReceivedAt   string // IST wall-clock time for the counsellor team
	DashboardURL string
	Year         int
}

type ConfirmationData struct {
	Lead *entity.Lead
	Year int
}

type EmailSender struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	AdminEmail string
	AppURL     string
}
