package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue. Template names
// the notification kind ("welcome", "appointment_scheduled",
// "appointment_updated"); Data carries template-specific fields.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
