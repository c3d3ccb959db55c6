package sqlite

import "database/sql"

// Schema mirrors the storage contract: per-kind AUTOINCREMENT ids and UNIQUE
// constraints backing the slug/username/pageKey invariants. Timestamps are
// RFC 3339 text.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    username  TEXT NOT NULL UNIQUE,
    password  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL,
    slug          TEXT NOT NULL UNIQUE,
    icon          TEXT NOT NULL,
    icon_bg_color TEXT NOT NULL,
    icon_color    TEXT NOT NULL,
    agent_count   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS agents (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    name             TEXT NOT NULL,
    slug             TEXT NOT NULL UNIQUE,
    description      TEXT NOT NULL,
    image_url        TEXT NOT NULL,
    website_url      TEXT NOT NULL,
    rating           INTEGER NOT NULL DEFAULT 0,
    user_count       INTEGER NOT NULL DEFAULT 0,
    featured         INTEGER NOT NULL DEFAULT 0,
    is_free          INTEGER NOT NULL DEFAULT 0,
    is_new           INTEGER NOT NULL DEFAULT 0,
    category_id      INTEGER NOT NULL,
    premium_price    TEXT,
    enterprise_price TEXT,
    added_date       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS agent_features (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    agent_id INTEGER NOT NULL,
    feature  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS agent_use_cases (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    agent_id    INTEGER NOT NULL,
    title       TEXT NOT NULL,
    description TEXT NOT NULL,
    icon        TEXT NOT NULL,
    icon_color  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS page_content (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    page_key         TEXT NOT NULL UNIQUE,
    title            TEXT NOT NULL,
    description      TEXT,
    banner_title     TEXT,
    banner_subtitle  TEXT,
    banner_image_url TEXT,
    meta_title       TEXT,
    meta_description TEXT,
    content          TEXT,
    last_updated     TEXT NOT NULL
);
`

// EnsureSchema creates the catalog tables if they do not exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
