package mailer

import (
	"context"
	"fmt"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender}
}

// Send delivers a plain-text email via Mailgun.
func (m *Mailgun) Send(ctx context.Context, to, subject, text string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}

// Render produces the subject and body for a queued job. Jobs with an
// explicit subject/text pass through unchanged.
func Render(job EmailJob) (subject, text string) {
	if job.Subject != "" {
		return job.Subject, job.Text
	}
	name, _ := job.Data["name"].(string)
	switch job.Template {
	case "welcome":
		return "Welcome to CarePoint", fmt.Sprintf("Hi %s,\n\nYour CarePoint account is ready. You can now book appointments and order medicines.\n", name)
	case "appointment_scheduled":
		date, _ := job.Data["date"].(string)
		return "Your appointment is scheduled", fmt.Sprintf("Hi %s,\n\nYour appointment on %s has been scheduled.\n", name, date)
	case "appointment_updated":
		status, _ := job.Data["status"].(string)
		return "Your appointment was updated", fmt.Sprintf("Hi %s,\n\nYour appointment is now %s.\n", name, status)
	default:
		return "Notification", job.Text
	}
}
