// Package email renders and delivers transactional email over SMTP.
package email

import (
	"context"
	"log/slog"
	"strings"

	"foodbridge/config"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"

	"github.com/wneessen/go-mail"
)

// mailClient is the part of *mail.Client the sender uses.
type mailClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type smtpSender struct {
	client    mailClient
	from      string
	batchSize int
	logger    *slog.Logger
}

// NewSMTPSender builds a go-mail client from the email config section.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	emailCfg := cfg.Email
	if emailCfg == nil || emailCfg.Host == "" {
		return nil, errors.New("email.host is required")
	}
	if emailCfg.From == "" {
		return nil, errors.New("email.from is required")
	}

	opts := []mail.Option{
		mail.WithTLSPortPolicy(tlsPolicy(emailCfg.TLS)),
	}
	if emailCfg.Port > 0 {
		opts = append(opts, mail.WithPort(emailCfg.Port))
	}
	if emailCfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(emailCfg.Timeout))
	}
	if emailCfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(emailCfg.Username),
			mail.WithPassword(emailCfg.Password),
		)
	}

	client, err := mail.NewClient(emailCfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return newSMTPSender(client, emailCfg.From, emailCfg.BatchSize, logger), nil
}

func newSMTPSender(client mailClient, from string, batchSize int, logger *slog.Logger) *smtpSender {
	if batchSize <= 0 {
		batchSize = constants.EmailBatchSize
	}

	return &smtpSender{
		client:    client,
		from:      from,
		batchSize: batchSize,
		logger:    logger,
	}
}

func tlsPolicy(name string) mail.TLSPolicy {
	switch strings.ToLower(name) {
	case "mandatory":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}

// SendBatch sends messages in chunks of batchSize, one SMTP session per chunk.
// Messages with an unusable address, rejected by the server, or in a chunk whose
// session failed are reported in Failed and the remaining chunks are still sent.
// An error is returned only when a session failed and nothing was delivered, so a
// retried batch never duplicates mail that already went out.
func (s *smtpSender) SendBatch(ctx context.Context, messages []*service.EmailMessage) (*service.EmailBatchResult, error) {
	result := &service.EmailBatchResult{Failed: []string{}}
	var sessionErr error

	for start := 0; start < len(messages); start += s.batchSize {
		end := min(start+s.batchSize, len(messages))

		msgs := make([]*mail.Msg, 0, end-start)
		recipients := make([]string, 0, end-start)
		for _, message := range messages[start:end] {
			msg, err := s.buildMsg(message)
			if err != nil {
				s.logger.WarnContext(ctx, "Skipping email with invalid address",
					slog.String("to", message.To),
					slog.Any("error", err),
				)
				result.Failed = append(result.Failed, message.To)

				continue
			}
			msgs = append(msgs, msg)
			recipients = append(recipients, message.To)
		}
		if len(msgs) == 0 {
			continue
		}

		sendErr := s.client.DialAndSendWithContext(ctx, msgs...)

		failed := 0
		for i, msg := range msgs {
			if msg.HasSendError() {
				failed++
				result.Failed = append(result.Failed, recipients[i])
				s.logger.WarnContext(ctx, "Email delivery failed",
					slog.String("to", recipients[i]),
					slog.Any("error", msg.SendError()),
				)
			}
		}

		if sendErr != nil && failed == 0 {
			s.logger.WarnContext(ctx, "SMTP session failed",
				slog.Int("recipients", len(recipients)),
				slog.Any("error", sendErr),
			)
			result.Failed = append(result.Failed, recipients...)
			sessionErr = sendErr

			continue
		}
		result.Sent += len(msgs) - failed
	}

	if sessionErr != nil && result.Sent == 0 {
		return result, errors.Wrap(sessionErr, "smtp session failed")
	}

	return result, nil
}

func (s *smtpSender) buildMsg(message *service.EmailMessage) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, errors.Wrap(err, "invalid from address")
	}
	if err := msg.To(message.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(message.Subject)

	switch {
	case message.HTMLBody != "":
		msg.SetBodyString(mail.TypeTextHTML, message.HTMLBody)
		if message.TextBody != "" {
			msg.AddAlternativeString(mail.TypeTextPlain, message.TextBody)
		}
	default:
		msg.SetBodyString(mail.TypeTextPlain, message.TextBody)
	}

	return msg, nil
}
