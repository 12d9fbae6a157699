package reservation

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Schema возвращает DDL таблицы бронирований
func Schema() string {
	return schemaSQL
}

// Migrate применяет схему (идемпотентно)
func Migrate(ctx context.Context, db DBExecutor) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("%w: Migrate - apply schema: %v", ErrExecQuery, err)
	}
	return nil
}
