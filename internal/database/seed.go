package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdminEmail is the login created for a fresh development database.
const SeedAdminEmail = "admin@apigs.local"

// Seed populates the database with initial development data.
// It creates a default admin user and the starter categories if the
// respective tables are empty. The admin will be prompted to set up 2FA
// on first login (totp_enabled = false).
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed bcrypt: %w", err)
		}

		_, err = db.Exec(`
			INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
			VALUES ($1, $2, $3, $4, $5)
		`, SeedAdminEmail, string(hash), "Admin", "admin", false)
		if err != nil {
			return fmt.Errorf("seed insert admin: %w", err)
		}

		slog.Info("database seeded with default admin user",
			"email", SeedAdminEmail,
			"password", "admin",
		)
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if count > 0 {
		slog.Info("categories already seeded, skipping")
		return nil
	}

	// Starter taxonomy for the portfolio and services pages.
	_, err := db.Exec(`
		INSERT INTO categories (name, slug, description, type, color, sort_order) VALUES
			('Web Development', 'web-development', 'Websites and web applications', 'portfolio', '#2563eb', 1),
			('Mobile Apps', 'mobile-apps', 'iOS and Android applications', 'portfolio', '#16a34a', 2),
			('UI/UX Design', 'ui-ux-design', 'Product and interface design', 'service', '#db2777', 1),
			('IT Consulting', 'it-consulting', 'Architecture and technology advisory', 'service', '#ea580c', 2)
		ON CONFLICT (slug) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("seed insert categories: %w", err)
	}

	slog.Info("database seeded with starter categories")
	return nil
}
