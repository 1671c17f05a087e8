package models

// MailMessage is a rendered email handed to the mail relay.
type MailMessage struct {
	Subject string
	HTML    string
	ReplyTo string
}
