package repository

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/danielkoh/property-launches/domain"
)

type SQLiteLeadRepository struct {
	db *sql.DB
}

func OpenSQLiteLeadRepository(path string) (*SQLiteLeadRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	repo := &SQLiteLeadRepository{db: db}
	if err := repo.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteLeadRepository) Close() error { return r.db.Close() }

func (r *SQLiteLeadRepository) ensureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS leads (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL,
  source TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP NOT NULL
);
`
	if _, err := r.db.Exec(createTable); err != nil {
		return err
	}
	if _, err := r.db.Exec(`CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);`); err != nil {
		return err
	}
	return nil
}

func (r *SQLiteLeadRepository) Save(lead domain.Lead) error {
	_, err := r.db.Exec(`
INSERT INTO leads (id, name, email, phone, source, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`, lead.ID, lead.Name, lead.Email, lead.Phone, lead.Source, lead.CreatedAt)
	return err
}

func (r *SQLiteLeadRepository) CountLeads() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM leads`).Scan(&n)
	return n, err
}
