package sqlstore

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		created_at TEXT NOT NULL,
		expires_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id TEXT PRIMARY KEY,
		owner_user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		characteristics TEXT NOT NULL DEFAULT '',
		age DOUBLE PRECISION NOT NULL DEFAULT 0,
		weight DOUBLE PRECISION NOT NULL DEFAULT 0,
		health_status TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS pets_owner_idx ON pets (owner_user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS exercise_entries (
		id TEXT PRIMARY KEY,
		pet_id TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		calories DOUBLE PRECISION NOT NULL,
		exercise_type TEXT NOT NULL,
		intensity TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS exercise_entries_pet_date_idx ON exercise_entries (pet_id, entry_date)`,
	`CREATE TABLE IF NOT EXISTS mood_entries (
		pet_id TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		mood TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		recorded_at TEXT NOT NULL,
		PRIMARY KEY (pet_id, entry_date)
	)`,
	`CREATE TABLE IF NOT EXISTS preferences (
		user_id TEXT PRIMARY KEY,
		active_pet_id TEXT NOT NULL DEFAULT '',
		dark_mode BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS shares (
		id TEXT PRIMARY KEY,
		pet_id TEXT NOT NULL,
		owner_user_id TEXT NOT NULL,
		token TEXT NOT NULL UNIQUE,
		scopes TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		expires_at TEXT,
		revoked_at TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS shares_pet_idx ON shares (pet_id)`,
}
