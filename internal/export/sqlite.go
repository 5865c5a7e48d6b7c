package export

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	_ "github.com/mattn/go-sqlite3"
)

// WriteSQLite writes df into table inside the SQLite database at path,
// replacing any existing table of that name. Missing cells become NULL.
func WriteSQLite(path, table string, df dataframe.DataFrame) error {
	if df.Ncol() == 0 {
		return fmt.Errorf("%w: cannot create table %q", ErrEmptyTable, table)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer db.Close()

	names := df.Names()
	cols := make([][]any, len(names))
	defs := make([]string, len(names))
	for i, name := range names {
		col := df.Col(name)
		cols[i] = columnValues(col)
		defs[i] = quoteIdent(name) + " " + sqlType(col.Type())
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DROP TABLE IF EXISTS " + quoteIdent(table)); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(defs, ", "))
	if _, err := tx.Exec(create); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quoteIdent(name)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), placeholders)

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(names))
	for r := 0; r < df.Nrow(); r++ {
		for c := range cols {
			args[c] = cols[c][r]
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", r, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func sqlType(t series.Type) string {
	switch t {
	case series.Float:
		return "REAL"
	case series.Int, series.Bool:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
