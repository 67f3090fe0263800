package services

import (
	"context"
	"fmt"
	"html"

	"github.com/hashonecareers/backend/internal/models"
	"go.uber.org/zap"
)

// Mailer is the interface that wraps the outbound email send
type Mailer interface {
	// Method Send sends an HTML email.
	//
	// If the SMTP round trip fails, the error will be returned; there is no retry.
	Send(to, subject, body string) error
}

// enquiryService relays contact form submissions by email
type enquiryService struct {
	mailer Mailer
	to     string
	logger *zap.Logger
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(mailer Mailer, to string, logger *zap.Logger) *enquiryService {
	return &enquiryService{
		mailer: mailer,
		to:     to,
		logger: logger,
	}
}

// Send validates the enquiry and relays it in one synchronous SMTP
// round trip. The ctx parameter keeps the service signature uniform;
// the mail dial itself is not cancellable.
func (s *enquiryService) Send(ctx context.Context, enquiry *models.Enquiry) error {
	if err := requireFields(map[string]string{
		"name":    enquiry.Name,
		"email":   enquiry.Email,
		"message": enquiry.Message,
	}, []string{"name", "email", "message"}); err != nil {
		return err
	}

	subject := fmt.Sprintf("New enquiry from %s", enquiry.Name)
	body := fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Phone:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(enquiry.Name),
		html.EscapeString(enquiry.Email),
		html.EscapeString(enquiry.Phone),
		html.EscapeString(enquiry.Message),
	)

	if err := s.mailer.Send(s.to, subject, body); err != nil {
		s.logger.Error("failed to relay enquiry", zap.Error(err), zap.String("from", enquiry.Email))
		return err
	}

	s.logger.Info("enquiry relayed", zap.String("from", enquiry.Email))
	return nil
}
