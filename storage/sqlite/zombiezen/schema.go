package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

const (
	DocumentsSchema = "documents.sql"

	// TokensSchema replaces any previous tokens table.
	TokensSchema = "tokens.sql"
)

// CreateSchema executes the embedded script schemaName on a pool connection.
func CreateSchema(ctx context.Context, pool *sqlitex.Pool, schemaName string) error {
	conn, err := pool.Take(ctx)
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	return executeSchema(conn, schemaName)
}

func executeSchema(conn *sqlite.Conn, schemaName string) error {
	scriptPath := path.Join("sql", schemaName)

	script, err := sqlFiles.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file %s: %w", scriptPath, err)
	}

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute script %s: %w", schemaName, err)
	}

	return nil
}
