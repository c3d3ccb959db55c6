package service

import (
	"context"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
)

// ContentService handles CMS-style page content.
type ContentService struct {
	store store.Store
}

func NewContentService(s store.Store) *ContentService { return &ContentService{store: s} }

func (s *ContentService) ListPageContent(ctx context.Context) ([]*model.PageContent, error) {
	return s.store.Pages().List(ctx)
}

func (s *ContentService) GetPageContent(ctx context.Context, pageKey string) (*model.PageContent, error) {
	return s.store.Pages().GetByKey(ctx, pageKey)
}

func (s *ContentService) CreatePageContent(ctx context.Context, p *model.PageContent) (*model.PageContent, error) {
	return s.store.Pages().Create(ctx, p)
}

func (s *ContentService) UpdatePageContent(ctx context.Context, pageKey string, p *model.PageContentPatch) (*model.PageContent, error) {
	return s.store.Pages().Update(ctx, pageKey, p)
}
