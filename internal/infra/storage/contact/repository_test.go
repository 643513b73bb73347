package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

func TestBuildInsert(t *testing.T) {
	query, args, err := buildInsert(&domain.ContactRequest{
		Reference: "ref-2",
		Message: domain.ContactMessage{
			Name:      "Grace",
			Email:     "grace@example.com",
			Subject:   "Kitchen",
			Message:   "Please call me back",
			Subscribe: true,
		},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO contact_requests (reference,name,email,phone,subject,message,subscribe) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at",
		query)
	assert.Equal(t, []interface{}{"ref-2", "Grace", "grace@example.com", "", "Kitchen", "Please call me back", true}, args)
}
