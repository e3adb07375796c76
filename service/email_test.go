package service

import (
	"testing"

	"financas/config"

	"github.com/stretchr/testify/assert"
)

func TestSendWelcomeEmailDisabled(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: false})
	err := s.SendWelcomeEmail("ana@x.com", "Ana")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestGenerateWelcomeEmailBody(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{})
	body := s.generateWelcomeEmailBody("Ana")
	assert.Contains(t, body, "Ana")
	assert.Contains(t, body, "Personal Finances")
	assert.Contains(t, body, "do not reply")
}
