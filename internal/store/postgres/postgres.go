// Package postgres is a durable store.Store on PostgreSQL via the pgx stdlib
// driver. Semantics match the in-memory reference implementation; unique
// invariants are enforced by the schema.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
)

// Open opens a PostgreSQL connection and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id       INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    id            INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    name          TEXT NOT NULL,
    slug          TEXT NOT NULL UNIQUE,
    icon          TEXT NOT NULL,
    icon_bg_color TEXT NOT NULL,
    icon_color    TEXT NOT NULL,
    agent_count   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS agents (
    id               INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    name             TEXT NOT NULL,
    slug             TEXT NOT NULL UNIQUE,
    description      TEXT NOT NULL,
    image_url        TEXT NOT NULL,
    website_url      TEXT NOT NULL,
    rating           INTEGER NOT NULL DEFAULT 0,
    user_count       INTEGER NOT NULL DEFAULT 0,
    featured         BOOLEAN NOT NULL DEFAULT FALSE,
    is_free          BOOLEAN NOT NULL DEFAULT FALSE,
    is_new           BOOLEAN NOT NULL DEFAULT FALSE,
    category_id      INTEGER NOT NULL,
    premium_price    TEXT,
    enterprise_price TEXT,
    added_date       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS agent_features (
    id       INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    agent_id INTEGER NOT NULL,
    feature  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS agent_use_cases (
    id          INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    agent_id    INTEGER NOT NULL,
    title       TEXT NOT NULL,
    description TEXT NOT NULL,
    icon        TEXT NOT NULL,
    icon_color  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS page_content (
    id               INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    page_key         TEXT NOT NULL UNIQUE,
    title            TEXT NOT NULL,
    description      TEXT,
    banner_title     TEXT,
    banner_subtitle  TEXT,
    banner_image_url TEXT,
    meta_title       TEXT,
    meta_description TEXT,
    content          TEXT,
    last_updated     TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the catalog tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// NewWithDB constructs a postgres-backed store from an existing connection.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users           { return &users{db: s.db} }
func (s *pgStore) Categories() store.Categories { return &categories{db: s.db} }
func (s *pgStore) Agents() store.Agents         { return &agents{db: s.db} }
func (s *pgStore) Features() store.Features     { return &features{db: s.db} }
func (s *pgStore) UseCases() store.UseCases     { return &useCases{db: s.db} }
func (s *pgStore) Pages() store.Pages           { return &pages{db: s.db} }

// HealthPing implements health.Pinger.
func (s *pgStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, in *model.User) (*model.User, error) {
	out := *in
	err := u.db.QueryRowContext(ctx, `
        INSERT INTO users (username, password) VALUES ($1,$2) RETURNING id
    `, in.Username, in.Password).Scan(&out.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

func (u *users) Get(ctx context.Context, id int32) (*model.User, error) {
	var out model.User
	err := u.db.QueryRowContext(ctx, `SELECT id, username, password FROM users WHERE id=$1`, id).
		Scan(&out.ID, &out.Username, &out.Password)
	if err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

func (u *users) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var out model.User
	err := u.db.QueryRowContext(ctx, `SELECT id, username, password FROM users WHERE username=$1 ORDER BY id LIMIT 1`, username).
		Scan(&out.ID, &out.Username, &out.Password)
	if err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

// --- Categories ---

type categories struct{ db *sql.DB }

const categoryCols = `id, name, slug, icon, icon_bg_color, icon_color, agent_count`

func (c *categories) Create(ctx context.Context, in *model.Category) (*model.Category, error) {
	out := *in
	err := c.db.QueryRowContext(ctx, `
        INSERT INTO categories (name, slug, icon, icon_bg_color, icon_color, agent_count)
        VALUES ($1,$2,$3,$4,$5,$6) RETURNING id
    `, in.Name, in.Slug, in.Icon, in.IconBgColor, in.IconColor, in.AgentCount).Scan(&out.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

func (c *categories) Get(ctx context.Context, id int32) (*model.Category, error) {
	return c.one(ctx, `SELECT `+categoryCols+` FROM categories WHERE id=$1`, id)
}

func (c *categories) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return c.one(ctx, `SELECT `+categoryCols+` FROM categories WHERE slug=$1 ORDER BY id LIMIT 1`, slug)
}

func (c *categories) one(ctx context.Context, q string, arg interface{}) (*model.Category, error) {
	var out model.Category
	err := c.db.QueryRowContext(ctx, q, arg).
		Scan(&out.ID, &out.Name, &out.Slug, &out.Icon, &out.IconBgColor, &out.IconColor, &out.AgentCount)
	if err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

func (c *categories) List(ctx context.Context) ([]*model.Category, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT `+categoryCols+` FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Category
	for rows.Next() {
		var rec model.Category
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Slug, &rec.Icon, &rec.IconBgColor, &rec.IconColor, &rec.AgentCount); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (c *categories) Update(ctx context.Context, id int32, p *model.CategoryPatch) (*model.Category, error) {
	// Single statement: COALESCE folds nil patch fields into the stored row,
	// so concurrent patches to different fields both land. RETURNING gives
	// back the merged row without a second round trip.
	var out model.Category
	err := c.db.QueryRowContext(ctx, `
        UPDATE categories SET
            name=COALESCE($1, name), slug=COALESCE($2, slug), icon=COALESCE($3, icon),
            icon_bg_color=COALESCE($4, icon_bg_color), icon_color=COALESCE($5, icon_color),
            agent_count=COALESCE($6, agent_count)
        WHERE id=$7
        RETURNING `+categoryCols+`
    `, p.Name, p.Slug, p.Icon, p.IconBgColor, p.IconColor, p.AgentCount, id).
		Scan(&out.ID, &out.Name, &out.Slug, &out.Icon, &out.IconBgColor, &out.IconColor, &out.AgentCount)
	if err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

// --- Agents ---

type agents struct{ db *sql.DB }

const agentCols = `id, name, slug, description, image_url, website_url, rating, user_count,
       featured, is_free, is_new, category_id, premium_price, enterprise_price, added_date`

func (a *agents) Create(ctx context.Context, in *model.Agent) (*model.Agent, error) {
	out := *in
	var added time.Time
	err := a.db.QueryRowContext(ctx, `
        INSERT INTO agents (name, slug, description, image_url, website_url, rating, user_count,
                            featured, is_free, is_new, category_id, premium_price, enterprise_price)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, added_date
    `, in.Name, in.Slug, in.Description, in.ImageURL, in.WebsiteURL, in.Rating, in.UserCount,
		in.Featured, in.IsFree, in.IsNew, in.CategoryID, in.PremiumPrice, in.EnterprisePrice).
		Scan(&out.ID, &added)
	if err != nil {
		return nil, mapErr(err)
	}
	out.AddedDate = added
	return &out, nil
}

func (a *agents) Get(ctx context.Context, id int32) (*model.Agent, error) {
	return a.one(ctx, `SELECT `+agentCols+` FROM agents WHERE id=$1`, id)
}

func (a *agents) GetBySlug(ctx context.Context, slug string) (*model.Agent, error) {
	return a.one(ctx, `SELECT `+agentCols+` FROM agents WHERE slug=$1 ORDER BY id LIMIT 1`, slug)
}

func (a *agents) List(ctx context.Context) ([]*model.Agent, error) {
	return a.query(ctx, `SELECT `+agentCols+` FROM agents ORDER BY id`)
}

func (a *agents) ListByCategory(ctx context.Context, categoryID int32) ([]*model.Agent, error) {
	return a.query(ctx, `SELECT `+agentCols+` FROM agents WHERE category_id=$1 ORDER BY id`, categoryID)
}

func (a *agents) ListFeatured(ctx context.Context, limit int) ([]*model.Agent, error) {
	return a.ranked(ctx, "featured", limit)
}

func (a *agents) ListNew(ctx context.Context, limit int) ([]*model.Agent, error) {
	return a.ranked(ctx, "is_new", limit)
}

func (a *agents) ranked(ctx context.Context, flagCol string, limit int) ([]*model.Agent, error) {
	q := `SELECT ` + agentCols + ` FROM agents WHERE ` + flagCol + ` ORDER BY rating DESC, id ASC`
	if limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", limit)
	}
	return a.query(ctx, q)
}

func (a *agents) Search(ctx context.Context, query string) ([]*model.Agent, error) {
	return a.query(ctx, `
        SELECT `+agentCols+` FROM agents
        WHERE position(lower($1) IN lower(name)) > 0 OR position(lower($1) IN lower(description)) > 0
        ORDER BY id
    `, query)
}

func (a *agents) Update(ctx context.Context, id int32, p *model.AgentPatch) (*model.Agent, error) {
	// Single statement: COALESCE folds nil patch fields into the stored row,
	// so concurrent patches to different fields both land. added_date is not
	// in the column list; it is immutable.
	rec, err := scanAgent(a.db.QueryRowContext(ctx, `
        UPDATE agents SET
            name=COALESCE($1, name), slug=COALESCE($2, slug), description=COALESCE($3, description),
            image_url=COALESCE($4, image_url), website_url=COALESCE($5, website_url),
            rating=COALESCE($6, rating), user_count=COALESCE($7, user_count),
            featured=COALESCE($8, featured), is_free=COALESCE($9, is_free), is_new=COALESCE($10, is_new),
            category_id=COALESCE($11, category_id),
            premium_price=COALESCE($12, premium_price), enterprise_price=COALESCE($13, enterprise_price)
        WHERE id=$14
        RETURNING `+agentCols+`
    `, p.Name, p.Slug, p.Description, p.ImageURL, p.WebsiteURL,
		p.Rating, p.UserCount, p.Featured, p.IsFree, p.IsNew,
		p.CategoryID, p.PremiumPrice, p.EnterprisePrice, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return rec, nil
}

func (a *agents) one(ctx context.Context, q string, arg interface{}) (*model.Agent, error) {
	rec, err := scanAgent(a.db.QueryRowContext(ctx, q, arg))
	if err != nil {
		return nil, mapErr(err)
	}
	return rec, nil
}

func (a *agents) query(ctx context.Context, q string, args ...interface{}) ([]*model.Agent, error) {
	rows, err := a.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Agent
	for rows.Next() {
		rec, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAgent(r rowScanner) (*model.Agent, error) {
	var rec model.Agent
	var premium, enterprise sql.NullString
	if err := r.Scan(&rec.ID, &rec.Name, &rec.Slug, &rec.Description, &rec.ImageURL, &rec.WebsiteURL,
		&rec.Rating, &rec.UserCount, &rec.Featured, &rec.IsFree, &rec.IsNew, &rec.CategoryID,
		&premium, &enterprise, &rec.AddedDate); err != nil {
		return nil, err
	}
	if premium.Valid {
		rec.PremiumPrice = &premium.String
	}
	if enterprise.Valid {
		rec.EnterprisePrice = &enterprise.String
	}
	return &rec, nil
}

// --- Features ---

type features struct{ db *sql.DB }

func (f *features) Create(ctx context.Context, in *model.AgentFeature) (*model.AgentFeature, error) {
	out := *in
	err := f.db.QueryRowContext(ctx, `
        INSERT INTO agent_features (agent_id, feature) VALUES ($1,$2) RETURNING id
    `, in.AgentID, in.Feature).Scan(&out.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

func (f *features) ListByAgent(ctx context.Context, agentID int32) ([]*model.AgentFeature, error) {
	rows, err := f.db.QueryContext(ctx, `SELECT id, agent_id, feature FROM agent_features WHERE agent_id=$1 ORDER BY id`, agentID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.AgentFeature
	for rows.Next() {
		var rec model.AgentFeature
		if err := rows.Scan(&rec.ID, &rec.AgentID, &rec.Feature); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// --- Use cases ---

type useCases struct{ db *sql.DB }

func (u *useCases) Create(ctx context.Context, in *model.AgentUseCase) (*model.AgentUseCase, error) {
	out := *in
	err := u.db.QueryRowContext(ctx, `
        INSERT INTO agent_use_cases (agent_id, title, description, icon, icon_color)
        VALUES ($1,$2,$3,$4,$5) RETURNING id
    `, in.AgentID, in.Title, in.Description, in.Icon, in.IconColor).Scan(&out.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

func (u *useCases) ListByAgent(ctx context.Context, agentID int32) ([]*model.AgentUseCase, error) {
	rows, err := u.db.QueryContext(ctx, `
        SELECT id, agent_id, title, description, icon, icon_color FROM agent_use_cases WHERE agent_id=$1 ORDER BY id
    `, agentID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.AgentUseCase
	for rows.Next() {
		var rec model.AgentUseCase
		if err := rows.Scan(&rec.ID, &rec.AgentID, &rec.Title, &rec.Description, &rec.Icon, &rec.IconColor); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// --- Pages ---

type pages struct{ db *sql.DB }

const pageCols = `id, page_key, title, description, banner_title, banner_subtitle,
       banner_image_url, meta_title, meta_description, content, last_updated`

func (p *pages) Create(ctx context.Context, in *model.PageContent) (*model.PageContent, error) {
	out := *in
	err := p.db.QueryRowContext(ctx, `
        INSERT INTO page_content (page_key, title, description, banner_title, banner_subtitle,
                                  banner_image_url, meta_title, meta_description, content)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, last_updated
    `, in.PageKey, in.Title, in.Description, in.BannerTitle, in.BannerSubtitle,
		in.BannerImageURL, in.MetaTitle, in.MetaDescription, in.Content).
		Scan(&out.ID, &out.LastUpdated)
	if err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

func (p *pages) GetByKey(ctx context.Context, pageKey string) (*model.PageContent, error) {
	rec, err := scanPage(p.db.QueryRowContext(ctx, `SELECT `+pageCols+` FROM page_content WHERE page_key=$1 ORDER BY id LIMIT 1`, pageKey))
	if err != nil {
		return nil, mapErr(err)
	}
	return rec, nil
}

func (p *pages) List(ctx context.Context) ([]*model.PageContent, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT `+pageCols+` FROM page_content ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.PageContent
	for rows.Next() {
		rec, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (p *pages) Update(ctx context.Context, pageKey string, patch *model.PageContentPatch) (*model.PageContent, error) {
	// Single statement: COALESCE folds nil patch fields into the stored row,
	// so concurrent patches to different fields both land.
	rec, err := scanPage(p.db.QueryRowContext(ctx, `
        UPDATE page_content SET
            page_key=COALESCE($1, page_key), title=COALESCE($2, title),
            description=COALESCE($3, description), banner_title=COALESCE($4, banner_title),
            banner_subtitle=COALESCE($5, banner_subtitle), banner_image_url=COALESCE($6, banner_image_url),
            meta_title=COALESCE($7, meta_title), meta_description=COALESCE($8, meta_description),
            content=COALESCE($9, content), last_updated=now()
        WHERE page_key=$10
        RETURNING `+pageCols+`
    `, patch.PageKey, patch.Title, patch.Description, patch.BannerTitle, patch.BannerSubtitle,
		patch.BannerImageURL, patch.MetaTitle, patch.MetaDescription, patch.Content, pageKey))
	if err != nil {
		return nil, mapErr(err)
	}
	return rec, nil
}

func scanPage(r rowScanner) (*model.PageContent, error) {
	var rec model.PageContent
	var desc, bTitle, bSub, bImg, mTitle, mDesc, content sql.NullString
	if err := r.Scan(&rec.ID, &rec.PageKey, &rec.Title, &desc, &bTitle, &bSub, &bImg, &mTitle, &mDesc, &content, &rec.LastUpdated); err != nil {
		return nil, err
	}
	rec.Description = nullable(desc)
	rec.BannerTitle = nullable(bTitle)
	rec.BannerSubtitle = nullable(bSub)
	rec.BannerImageURL = nullable(bImg)
	rec.MetaTitle = nullable(mTitle)
	rec.MetaDescription = nullable(mDesc)
	rec.Content = nullable(content)
	return &rec, nil
}

// --- helpers ---

func nullable(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// mapErr translates driver errors into the contract's sentinel errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return model.ErrConflict
	}
	return err
}
