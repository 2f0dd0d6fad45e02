package mailer

import (
	"sync"
	"time"
)

type Email struct {
	Recipient    string
	TemplateFile string
	Data         any
}

// MockMailer records emails instead of delivering them. Emails are usually
// sent from a background goroutine, so tests wait for them with WaitForEmails.
type MockMailer struct {
	mu     sync.Mutex
	emails []Email
	sent   chan struct{}

	// Err, when set, is returned from Send and no email is recorded.
	Err error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{
		emails: make([]Email, 0),
		sent:   make(chan struct{}, 64),
	}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	m.emails = append(m.emails, Email{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})
	m.mu.Unlock()

	select {
	case m.sent <- struct{}{}:
	default:
	}

	return nil
}

func (m *MockMailer) GetSentEmails() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()

	emails := make([]Email, len(m.emails))
	copy(emails, m.emails)
	return emails
}

// WaitForEmails blocks until at least count emails were recorded or timeout
// elapses, and returns what has been recorded so far.
func (m *MockMailer) WaitForEmails(count int, timeout time.Duration) []Email {
	deadline := time.After(timeout)

	for {
		emails := m.GetSentEmails()
		if len(emails) >= count {
			return emails
		}

		select {
		case <-m.sent:
		case <-deadline:
			return m.GetSentEmails()
		}
	}
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails = make([]Email, 0)

	for {
		select {
		case <-m.sent:
		default:
			return
		}
	}
}
