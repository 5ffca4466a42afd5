package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeChecksum(v any) (string, error) {
	return "checksum", nil
}

func TestSealStampsDerivedFields(t *testing.T) {
	event := &Event{Type: EventTypePathParameterManipulation, UserID: 1, Severity: SeverityCritical}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	err := event.Seal(now, fakeChecksum)

	require.NoError(t, err)
	assert.Equal(t, now, event.Timestamp)
	assert.Equal(t, now.Add(anonymizationWindow), event.AnonymizationDate)
	assert.Equal(t, now.Add(retentionWindow), event.RetentionExpiryDate)
	assert.Equal(t, "checksum", event.Checksum)
}
