package psqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarPlaceholders(t *testing.T) {
	query, args, err := Insert("booking_requests").
		Columns("reference", "full_name").
		Values("ref-1", "Ada").
		Values("ref-2", "Grace").
		Suffix("RETURNING id").
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO booking_requests (reference,full_name) VALUES ($1,$2),($3,$4) RETURNING id", query)
	assert.Equal(t, []interface{}{"ref-1", "Ada", "ref-2", "Grace"}, args)
}
