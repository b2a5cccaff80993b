package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAllRecipients_SQL(t *testing.T) {
	query, args, err := selectAllRecipients().ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT recipient_id, name, email, phone, address, capacity FROM recipients ORDER BY recipient_id",
		query,
	)
	assert.Empty(t, args)
}

func TestSelectAllFoods_SQL(t *testing.T) {
	query, args, err := selectAllFoods().ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT food_id, name, quantity, urgency FROM foods ORDER BY food_id",
		query,
	)
	assert.Empty(t, args)
}
