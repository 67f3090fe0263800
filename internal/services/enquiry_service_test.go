package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hashonecareers/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockMailer is a mock implementation of Mailer
type mockMailer struct {
	err         error
	sentTo      string
	sentSubject string
	sentBody    string
	sendCalled  bool
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.sendCalled = true
	if m.err != nil {
		return m.err
	}
	m.sentTo = to
	m.sentSubject = subject
	m.sentBody = body
	return nil
}

func validEnquiry() *models.Enquiry {
	return &models.Enquiry{
		Name:    "Priya",
		Email:   "priya@example.com",
		Phone:   "+91 98765 43210",
		Message: "I'd like to know more about your services.",
	}
}

func TestEnquiryService_Send(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name          string
		mutate        func(*models.Enquiry)
		mailer        *mockMailer
		expectedError string
		expectSend    bool
	}{
		{
			name:       "success",
			mutate:     func(e *models.Enquiry) {},
			mailer:     &mockMailer{},
			expectSend: true,
		},
		{
			name:       "phone is optional",
			mutate:     func(e *models.Enquiry) { e.Phone = "" },
			mailer:     &mockMailer{},
			expectSend: true,
		},
		{
			name:          "missing name",
			mutate:        func(e *models.Enquiry) { e.Name = "" },
			mailer:        &mockMailer{},
			expectedError: "name is required",
		},
		{
			name:          "missing email",
			mutate:        func(e *models.Enquiry) { e.Email = "" },
			mailer:        &mockMailer{},
			expectedError: "email is required",
		},
		{
			name:          "missing message",
			mutate:        func(e *models.Enquiry) { e.Message = "" },
			mailer:        &mockMailer{},
			expectedError: "message is required",
		},
		{
			name:          "smtp failure propagates",
			mutate:        func(e *models.Enquiry) {},
			mailer:        &mockMailer{err: errors.New("dial tcp: connection refused")},
			expectedError: "connection refused",
			expectSend:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enquiry := validEnquiry()
			tt.mutate(enquiry)

			svc := NewEnquiryService(tt.mailer, "careers@hashone.example", logger)

			err := svc.Send(context.Background(), enquiry)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectSend, tt.mailer.sendCalled)
		})
	}
}

func TestEnquiryService_Send_Content(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("mail goes to the configured recipient", func(t *testing.T) {
		mailer := &mockMailer{}
		svc := NewEnquiryService(mailer, "careers@hashone.example", logger)

		err := svc.Send(context.Background(), validEnquiry())
		require.NoError(t, err)
		assert.Equal(t, "careers@hashone.example", mailer.sentTo)
		assert.Equal(t, "New enquiry from Priya", mailer.sentSubject)
		assert.Contains(t, mailer.sentBody, "priya@example.com")
		assert.Contains(t, mailer.sentBody, "I&#39;d like to know more")
	})

	t.Run("html in fields is escaped", func(t *testing.T) {
		mailer := &mockMailer{}
		svc := NewEnquiryService(mailer, "careers@hashone.example", logger)

		enquiry := validEnquiry()
		enquiry.Message = `<script>alert("x")</script>`
		err := svc.Send(context.Background(), enquiry)
		require.NoError(t, err)
		assert.NotContains(t, mailer.sentBody, "<script>")
		assert.Contains(t, mailer.sentBody, "&lt;script&gt;")
	})
}
