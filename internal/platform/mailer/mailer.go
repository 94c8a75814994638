// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

/*
Package mailer dispatches transactional email over SMTP.

It carries the out-of-band half of the login second factor (one-time codes)
and the password recovery flow (reset links).

Architecture:

  - Mailer: A thin, stateless SMTP client configured once at startup.
  - Injection: Domain services depend on the [Sender] interface, never on
    this concrete type, so tests can capture outbound mail in memory.
  - Delivery: Synchronous, no retries. A slow or failing provider surfaces
    as a ServerError to the caller and is logged with detail server-side.
*/
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Sender is the outbound email contract consumed by domain services.
type Sender interface {
	// Send dispatches a single plain-text message to one recipient.
	Send(to, subject, body string) error
}

// Mailer sends mail through a single configured SMTP relay.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	logger   *slog.Logger
}

// Config holds the SMTP relay coordinates.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// New constructs a [Mailer] from relay configuration.
func New(cfg Config, logger *slog.Logger) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		logger:   logger,
	}
}

// Send dispatches a single plain-text message to one recipient.
func (mailer *Mailer) Send(to, subject, body string) error {
	message := strings.Join([]string{
		"From: " + mailer.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := mailer.host + ":" + mailer.port
	auth := smtp.PlainAuth("", mailer.username, mailer.password, mailer.host)

	if err := smtp.SendMail(addr, auth, mailer.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("mailer: failed to send to %s: %w", to, err)
	}

	mailer.logger.Info("email_dispatched",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}
