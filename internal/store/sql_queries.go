// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	credentialsTable = "credentials"

	// tokenKey is the only key the client ever writes.
	tokenKey = "token"
)

var sqliteQB = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectCredentialQuery(key string) (string, []any, error) {
	return sqliteQB.
		Select("value").
		From(credentialsTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

// buildUpsertCredentialQuery replaces the value stored under key.
func buildUpsertCredentialQuery(key, value string) (string, []any, error) {
	return sqliteQB.
		Insert(credentialsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteCredentialQuery(key string) (string, []any, error) {
	return sqliteQB.
		Delete(credentialsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
