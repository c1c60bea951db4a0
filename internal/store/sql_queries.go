package store

import "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// placeholders. The vault repository builds its queries with it instead of
// hand-numbering $n parameters.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// vaultColumns is the column list scanned into models.VaultItem, in scan
// order.
var vaultColumns = []string{
	"id",
	"user_id",
	"title",
	"username",
	"password",
	"url",
	"notes",
	"created_at",
	"updated_at",
}
