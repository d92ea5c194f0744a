package store

import (
	"github.com/MKhiriev/go-sign-gate/models"
	"github.com/Masterminds/squirrel"
)

var accountsTable = models.Account{}.TableName()

// buildFindAccountQuery selects the account whose username equals username
// exactly.
func buildFindAccountQuery(placeholder squirrel.PlaceholderFormat, username string) (string, []any, error) {
	return squirrel.StatementBuilder.
		PlaceholderFormat(placeholder).
		Select("username", "password_hash", "created_at").
		From(accountsTable).
		Where(squirrel.Eq{"username": username}).
		ToSql()
}

// buildInsertAccountQuery inserts a new account row. created_at is filled by
// the column default.
func buildInsertAccountQuery(placeholder squirrel.PlaceholderFormat, account models.Account) (string, []any, error) {
	return squirrel.StatementBuilder.
		PlaceholderFormat(placeholder).
		Insert(accountsTable).
		Columns("username", "password_hash").
		Values(account.Username, account.PasswordHash).
		ToSql()
}
