package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(files, "sql/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	var up, down int
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			up++
		case strings.HasSuffix(name, ".down.sql"):
			down++
		default:
			t.Fatalf("unexpected migration file %s", name)
		}
	}
	assert.Equal(t, up, down)
}

func TestSourceOrder(t *testing.T) {
	source, err := iofs.New(files, "sql")
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := source.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)
}
