// Package sqlite is a durable store.Store backed by modernc.org/sqlite.
// It preserves the in-memory semantics exactly: server-assigned monotonic ids
// per kind (AUTOINCREMENT), absence as model.ErrNotFound, merge-patch updates
// and UNIQUE-backed slug/username/pageKey invariants.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
)

// Open opens (or creates) the database file and applies the schema.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Store operations are short; a single connection sidesteps
	// SQLITE_BUSY under concurrent writers.
	db.SetMaxOpenConns(1)
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a sqlite-backed store from an existing connection.
func NewWithDB(db *sql.DB) store.Store { return &sqlStore{db: db} }

type sqlStore struct{ db *sql.DB }

func (s *sqlStore) Users() store.Users           { return &users{db: s.db} }
func (s *sqlStore) Categories() store.Categories { return &categories{db: s.db} }
func (s *sqlStore) Agents() store.Agents         { return &agents{db: s.db} }
func (s *sqlStore) Features() store.Features     { return &features{db: s.db} }
func (s *sqlStore) UseCases() store.UseCases     { return &useCases{db: s.db} }
func (s *sqlStore) Pages() store.Pages           { return &pages{db: s.db} }

// HealthPing implements health.Pinger.
func (s *sqlStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, in *model.User) (*model.User, error) {
	res, err := u.db.ExecContext(ctx, `INSERT INTO users (username, password) VALUES (?,?)`, in.Username, in.Password)
	if err != nil {
		return nil, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *in
	out.ID = int32(id)
	return &out, nil
}

func (u *users) Get(ctx context.Context, id int32) (*model.User, error) {
	return scanUser(u.db.QueryRowContext(ctx, `SELECT id, username, password FROM users WHERE id=?`, id))
}

func (u *users) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(u.db.QueryRowContext(ctx, `SELECT id, username, password FROM users WHERE username=? ORDER BY id LIMIT 1`, username))
}

func scanUser(row *sql.Row) (*model.User, error) {
	var out model.User
	if err := row.Scan(&out.ID, &out.Username, &out.Password); err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

// --- Categories ---

type categories struct{ db *sql.DB }

const categoryCols = `id, name, slug, icon, icon_bg_color, icon_color, agent_count`

func (c *categories) Create(ctx context.Context, in *model.Category) (*model.Category, error) {
	res, err := c.db.ExecContext(ctx, `
        INSERT INTO categories (name, slug, icon, icon_bg_color, icon_color, agent_count)
        VALUES (?,?,?,?,?,?)
    `, in.Name, in.Slug, in.Icon, in.IconBgColor, in.IconColor, in.AgentCount)
	if err != nil {
		return nil, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *in
	out.ID = int32(id)
	return &out, nil
}

func (c *categories) Get(ctx context.Context, id int32) (*model.Category, error) {
	return scanCategory(c.db.QueryRowContext(ctx, `SELECT `+categoryCols+` FROM categories WHERE id=?`, id))
}

func (c *categories) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return scanCategory(c.db.QueryRowContext(ctx, `SELECT `+categoryCols+` FROM categories WHERE slug=? ORDER BY id LIMIT 1`, slug))
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
	// so concurrent patches to different fields both land.
	res, err := c.db.ExecContext(ctx, `
        UPDATE categories SET
            name=COALESCE(?, name), slug=COALESCE(?, slug), icon=COALESCE(?, icon),
            icon_bg_color=COALESCE(?, icon_bg_color), icon_color=COALESCE(?, icon_color),
            agent_count=COALESCE(?, agent_count)
        WHERE id=?
    `, p.Name, p.Slug, p.Icon, p.IconBgColor, p.IconColor, p.AgentCount, id)
	if err != nil {
		return nil, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, model.ErrNotFound
	}
	return c.Get(ctx, id)
}

func scanCategory(row *sql.Row) (*model.Category, error) {
	var out model.Category
	if err := row.Scan(&out.ID, &out.Name, &out.Slug, &out.Icon, &out.IconBgColor, &out.IconColor, &out.AgentCount); err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

// --- Agents ---

type agents struct{ db *sql.DB }

const agentCols = `id, name, slug, description, image_url, website_url, rating, user_count,
       featured, is_free, is_new, category_id, premium_price, enterprise_price, added_date`

func (a *agents) Create(ctx context.Context, in *model.Agent) (*model.Agent, error) {
	now := time.Now().UTC()
	res, err := a.db.ExecContext(ctx, `
        INSERT INTO agents (name, slug, description, image_url, website_url, rating, user_count,
                            featured, is_free, is_new, category_id, premium_price, enterprise_price, added_date)
        VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)
    `, in.Name, in.Slug, in.Description, in.ImageURL, in.WebsiteURL, in.Rating, in.UserCount,
		in.Featured, in.IsFree, in.IsNew, in.CategoryID, in.PremiumPrice, in.EnterprisePrice,
		now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *in
	out.ID = int32(id)
	out.AddedDate = now
	return &out, nil
}

func (a *agents) Get(ctx context.Context, id int32) (*model.Agent, error) {
	return scanAgent(a.db.QueryRowContext(ctx, `SELECT `+agentCols+` FROM agents WHERE id=?`, id))
}

func (a *agents) GetBySlug(ctx context.Context, slug string) (*model.Agent, error) {
	return scanAgent(a.db.QueryRowContext(ctx, `SELECT `+agentCols+` FROM agents WHERE slug=? ORDER BY id LIMIT 1`, slug))
}

func (a *agents) List(ctx context.Context) ([]*model.Agent, error) {
	return a.query(ctx, `SELECT `+agentCols+` FROM agents ORDER BY id`)
}

func (a *agents) ListByCategory(ctx context.Context, categoryID int32) ([]*model.Agent, error) {
	return a.query(ctx, `SELECT `+agentCols+` FROM agents WHERE category_id=? ORDER BY id`, categoryID)
}

func (a *agents) ListFeatured(ctx context.Context, limit int) ([]*model.Agent, error) {
	return a.ranked(ctx, "featured", limit)
}

func (a *agents) ListNew(ctx context.Context, limit int) ([]*model.Agent, error) {
	return a.ranked(ctx, "is_new", limit)
}

func (a *agents) ranked(ctx context.Context, flagCol string, limit int) ([]*model.Agent, error) {
	// Rating descending, ties in insertion order; matches the in-memory
	// stable sort.
	q := `SELECT ` + agentCols + ` FROM agents WHERE ` + flagCol + `=1 ORDER BY rating DESC, id ASC`
	if limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", limit)
	}
	return a.query(ctx, q)
}

func (a *agents) Search(ctx context.Context, query string) ([]*model.Agent, error) {
	q := strings.ToLower(query)
	return a.query(ctx, `
        SELECT `+agentCols+` FROM agents
        WHERE instr(lower(name), ?) > 0 OR instr(lower(description), ?) > 0
        ORDER BY id
    `, q, q)
}

func (a *agents) Update(ctx context.Context, id int32, p *model.AgentPatch) (*model.Agent, error) {
	// Single statement: COALESCE folds nil patch fields into the stored row,
	// so concurrent patches to different fields both land. added_date is not
	// in the column list; it is immutable.
	res, err := a.db.ExecContext(ctx, `
        UPDATE agents SET
            name=COALESCE(?, name), slug=COALESCE(?, slug), description=COALESCE(?, description),
            image_url=COALESCE(?, image_url), website_url=COALESCE(?, website_url),
            rating=COALESCE(?, rating), user_count=COALESCE(?, user_count),
            featured=COALESCE(?, featured), is_free=COALESCE(?, is_free), is_new=COALESCE(?, is_new),
            category_id=COALESCE(?, category_id),
            premium_price=COALESCE(?, premium_price), enterprise_price=COALESCE(?, enterprise_price)
        WHERE id=?
    `, p.Name, p.Slug, p.Description, p.ImageURL, p.WebsiteURL,
		p.Rating, p.UserCount, p.Featured, p.IsFree, p.IsNew,
		p.CategoryID, p.PremiumPrice, p.EnterprisePrice, id)
	if err != nil {
		return nil, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, model.ErrNotFound
	}
	return a.Get(ctx, id)
}

func (a *agents) query(ctx context.Context, q string, args ...interface{}) ([]*model.Agent, error) {
	rows, err := a.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Agent
	for rows.Next() {
		rec, err := scanAgentRow(rows)
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

func scanAgent(row *sql.Row) (*model.Agent, error) {
	rec, err := scanAgentRow(row)
	if err != nil {
		return nil, mapErr(err)
	}
	return rec, nil
}

func scanAgentRow(r rowScanner) (*model.Agent, error) {
	var rec model.Agent
	var premium, enterprise sql.NullString
	var added string
	if err := r.Scan(&rec.ID, &rec.Name, &rec.Slug, &rec.Description, &rec.ImageURL, &rec.WebsiteURL,
		&rec.Rating, &rec.UserCount, &rec.Featured, &rec.IsFree, &rec.IsNew, &rec.CategoryID,
		&premium, &enterprise, &added); err != nil {
		return nil, err
	}
	if premium.Valid {
		rec.PremiumPrice = &premium.String
	}
	if enterprise.Valid {
		rec.EnterprisePrice = &enterprise.String
	}
	t, err := time.Parse(time.RFC3339Nano, added)
	if err != nil {
		return nil, fmt.Errorf("parse added_date: %w", err)
	}
	rec.AddedDate = t
	return &rec, nil
}

// --- Features ---

type features struct{ db *sql.DB }

func (f *features) Create(ctx context.Context, in *model.AgentFeature) (*model.AgentFeature, error) {
	res, err := f.db.ExecContext(ctx, `INSERT INTO agent_features (agent_id, feature) VALUES (?,?)`, in.AgentID, in.Feature)
	if err != nil {
		return nil, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *in
	out.ID = int32(id)
	return &out, nil
}

func (f *features) ListByAgent(ctx context.Context, agentID int32) ([]*model.AgentFeature, error) {
	rows, err := f.db.QueryContext(ctx, `SELECT id, agent_id, feature FROM agent_features WHERE agent_id=? ORDER BY id`, agentID)
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
	res, err := u.db.ExecContext(ctx, `
        INSERT INTO agent_use_cases (agent_id, title, description, icon, icon_color) VALUES (?,?,?,?,?)
    `, in.AgentID, in.Title, in.Description, in.Icon, in.IconColor)
	if err != nil {
		return nil, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *in
	out.ID = int32(id)
	return &out, nil
}

func (u *useCases) ListByAgent(ctx context.Context, agentID int32) ([]*model.AgentUseCase, error) {
	rows, err := u.db.QueryContext(ctx, `
        SELECT id, agent_id, title, description, icon, icon_color FROM agent_use_cases WHERE agent_id=? ORDER BY id
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
	now := time.Now().UTC()
	res, err := p.db.ExecContext(ctx, `
        INSERT INTO page_content (page_key, title, description, banner_title, banner_subtitle,
                                  banner_image_url, meta_title, meta_description, content, last_updated)
        VALUES (?,?,?,?,?,?,?,?,?,?)
    `, in.PageKey, in.Title, in.Description, in.BannerTitle, in.BannerSubtitle,
		in.BannerImageURL, in.MetaTitle, in.MetaDescription, in.Content, now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *in
	out.ID = int32(id)
	out.LastUpdated = now
	return &out, nil
}

func (p *pages) GetByKey(ctx context.Context, pageKey string) (*model.PageContent, error) {
	rec, err := scanPage(p.db.QueryRowContext(ctx, `SELECT `+pageCols+` FROM page_content WHERE page_key=? ORDER BY id LIMIT 1`, pageKey))
	if err != nil {
		return nil, err
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
		rec, err := scanPageRow(rows)
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
	now := time.Now().UTC()
	res, err := p.db.ExecContext(ctx, `
        UPDATE page_content SET
            page_key=COALESCE(?, page_key), title=COALESCE(?, title),
            description=COALESCE(?, description), banner_title=COALESCE(?, banner_title),
            banner_subtitle=COALESCE(?, banner_subtitle), banner_image_url=COALESCE(?, banner_image_url),
            meta_title=COALESCE(?, meta_title), meta_description=COALESCE(?, meta_description),
            content=COALESCE(?, content), last_updated=?
        WHERE page_key=?
    `, patch.PageKey, patch.Title, patch.Description, patch.BannerTitle, patch.BannerSubtitle,
		patch.BannerImageURL, patch.MetaTitle, patch.MetaDescription, patch.Content,
		now.Format(time.RFC3339Nano), pageKey)
	if err != nil {
		return nil, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, model.ErrNotFound
	}
	key := pageKey
	if patch.PageKey != nil {
		key = *patch.PageKey
	}
	return p.GetByKey(ctx, key)
}

func scanPage(row *sql.Row) (*model.PageContent, error) {
	rec, err := scanPageRow(row)
	if err != nil {
		return nil, mapErr(err)
	}
	return rec, nil
}

func scanPageRow(r rowScanner) (*model.PageContent, error) {
	var rec model.PageContent
	var desc, bTitle, bSub, bImg, mTitle, mDesc, content sql.NullString
	var updated string
	if err := r.Scan(&rec.ID, &rec.PageKey, &rec.Title, &desc, &bTitle, &bSub, &bImg, &mTitle, &mDesc, &content, &updated); err != nil {
		return nil, err
	}
	rec.Description = nullable(desc)
	rec.BannerTitle = nullable(bTitle)
	rec.BannerSubtitle = nullable(bSub)
	rec.BannerImageURL = nullable(bImg)
	rec.MetaTitle = nullable(mTitle)
	rec.MetaDescription = nullable(mDesc)
	rec.Content = nullable(content)
	t, err := time.Parse(time.RFC3339Nano, updated)
	if err != nil {
		return nil, fmt.Errorf("parse last_updated: %w", err)
	}
	rec.LastUpdated = t
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
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return model.ErrNotFound
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return model.ErrConflict
	default:
		return err
	}
}
