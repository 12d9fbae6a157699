package create_reservation

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNumber(t *testing.T) {
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "SALO-20260311-007", GenerateNumber("SALO", date, 7))
	assert.Equal(t, "HANA-20260311-999", GenerateNumber("HANA", date, 999))
	assert.Equal(t, "REST-20260311-000", GenerateNumber("REST", date, 1000))
	assert.Regexp(t, regexp.MustCompile(`^CLIN-20260311-\d{3}$`), GenerateNumber("CLIN", date, 42))
}
