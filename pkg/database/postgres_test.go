package database

import (
	"testing"

	"book-catalog/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	config := utils.DatabaseConfig{
		Host:     "db.internal",
		Port:     "6543",
		Name:     "catalog",
		User:     "reader",
		Password: "secret",
	}

	poolConfig, err := pgxpool.ParseConfig(ConnString(config))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", poolConfig.ConnConfig.Host)
	assert.Equal(t, uint16(6543), poolConfig.ConnConfig.Port)
	assert.Equal(t, "catalog", poolConfig.ConnConfig.Database)
	assert.Equal(t, "reader", poolConfig.ConnConfig.User)
	assert.Equal(t, "secret", poolConfig.ConnConfig.Password)
}
