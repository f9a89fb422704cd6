package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with a sample prompt and its generated website
// so a fresh development install has something to list and preview.
// It is a no-op when any prompt already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM prompts").Scan(&count); err != nil {
		return fmt.Errorf("seed check prompts: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	var promptID string
	err := db.QueryRow(`
		INSERT INTO prompts (prompt_text, status)
		VALUES ($1, 'completed')
		RETURNING id
	`, "A single-page portfolio for a freelance photographer").Scan(&promptID)
	if err != nil {
		return fmt.Errorf("seed insert prompt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO generated_websites (prompt_id, title, description, html_content, css_content, js_content)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, promptID,
		"Sample Portfolio",
		"A demo website seeded for development",
		`<main><h1>Sample Portfolio</h1><p>Seeded demo site.</p></main>`,
		`main{max-width:40rem;margin:0 auto;font-family:sans-serif}`,
		"",
	)
	if err != nil {
		return fmt.Errorf("seed insert website: %w", err)
	}

	slog.Info("database seeded with sample prompt and website")
	return nil
}
