package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/Clara4555/ROOFTY/internal/mail"
	"github.com/Clara4555/ROOFTY/pkg/models"
)

type ContactHandler struct {
	mailer mail.Mailer
}

func NewContactHandler(mailer mail.Mailer) *ContactHandler {
	return &ContactHandler{mailer: mailer}
}

func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeMessage(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		writeMessage(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	ref, err := h.mailer.Send(r.Context(), msg)
	if err != nil {
		logger.Error("send contact message", slog.Any("err", err))
		writeMessage(w, http.StatusInternalServerError, "Failed to send message")
		return
	}
	logger.Info("contact message accepted", slog.String("reference", ref))

	writeMessage(w, http.StatusOK, "Thank you for your message. We'll get back to you soon!")
}
