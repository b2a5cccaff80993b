package store

import sq "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (username, email, password)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password, created_at
    FROM users
    WHERE email = $1;`

	createRecipient = `INSERT INTO recipients (name, email, phone, address)
    VALUES ($1, $2, $3, $4)
    RETURNING recipient_id, name, email, phone, address, capacity;`
)

// psql is the statement builder shared by all list queries. PostgreSQL
// expects dollar placeholders, not the squirrel default question marks.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectAllRecipients builds the bulk recipient listing used by both the
// listing endpoint and the matching engine. Storage order (primary key) is
// the input order the matching tie-break depends on.
func selectAllRecipients() sq.SelectBuilder {
	return psql.
		Select("recipient_id", "name", "email", "phone", "address", "capacity").
		From("recipients").
		OrderBy("recipient_id")
}

// selectAllFoods builds the bulk food listing used by both the listing
// endpoint and the matching engine.
func selectAllFoods() sq.SelectBuilder {
	return psql.
		Select("food_id", "name", "quantity", "urgency").
		From("foods").
		OrderBy("food_id")
}
