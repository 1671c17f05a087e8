package handlers

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"

	"storefront-bff/internal/middlewares"
	"storefront-bff/internal/models"
)

// POSTContactHandler relays the contact form to the shop owner.
func POSTContactHandler(ctx *middlewares.AppContext) {
	if ctx.Mailer == nil || ctx.Config.Mail == nil {
		ctx.Logger.Error("contact form submitted but mail is not configured")
		ctx.SetJSONError(http.StatusInternalServerError, "mail is not configured")
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&req); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FirstName == "" || req.Email == "" || req.Message == "" {
		ctx.SetJSONError(http.StatusBadRequest, "firstName, email and message are required")
		return
	}

	msg := models.MailMessage{
		Subject: fmt.Sprintf("Contact form: %s %s", req.FirstName, req.LastName),
		HTML:    contactBody(req),
		ReplyTo: req.Email,
	}

	if err := ctx.Mailer.Send(ctx, msg); err != nil {
		ctx.Logger.Error("failed to relay contact form", "error", err, "from", RedactEmail(req.Email))
		ctx.SetJSONError(http.StatusInternalServerError, "failed to send message")
		return
	}

	ctx.Logger.Info("contact form relayed", "from", RedactEmail(req.Email))

	ctx.WriteJSON(http.StatusOK, map[string]bool{"success": true})
}

// POSTConsultaHandler relays the appointment form. Same shape as the
// contact form plus the pet fields.
func POSTConsultaHandler(ctx *middlewares.AppContext) {
	if ctx.Mailer == nil || ctx.Config.Mail == nil {
		ctx.Logger.Error("appointment form submitted but mail is not configured")
		ctx.SetJSONError(http.StatusInternalServerError, "mail is not configured")
		return
	}

	var req ConsultaRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&req); err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FirstName == "" || req.Email == "" || req.PetName == "" {
		ctx.SetJSONError(http.StatusBadRequest, "firstName, email and petName are required")
		return
	}

	msg := models.MailMessage{
		Subject: fmt.Sprintf("Appointment request: %s (%s)", req.PetName, req.FirstName),
		HTML:    consultaBody(req),
		ReplyTo: req.Email,
	}

	if err := ctx.Mailer.Send(ctx, msg); err != nil {
		ctx.Logger.Error("failed to relay appointment form", "error", err, "from", RedactEmail(req.Email))
		ctx.SetJSONError(http.StatusInternalServerError, "failed to send message")
		return
	}

	ctx.Logger.Info("appointment form relayed", "from", RedactEmail(req.Email))

	ctx.WriteJSON(http.StatusOK, map[string]bool{"success": true})
}

func contactBody(req ContactRequest) string {
	return fmt.Sprintf(
		"<h2>Contact form submission</h2>"+
			"<p><strong>Name:</strong> %s %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Phone:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(req.FirstName),
		html.EscapeString(req.LastName),
		html.EscapeString(req.Email),
		html.EscapeString(req.Phone),
		html.EscapeString(req.Message),
	)
}

func consultaBody(req ConsultaRequest) string {
	return contactBody(req.ContactRequest) + fmt.Sprintf(
		"<h3>Pet</h3>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Breed:</strong> %s</p>"+
			"<p><strong>Age:</strong> %s</p>"+
			"<p><strong>Details:</strong></p><p>%s</p>",
		html.EscapeString(req.PetName),
		html.EscapeString(req.Breed),
		html.EscapeString(req.Age),
		html.EscapeString(req.Details),
	)
}
