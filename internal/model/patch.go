package model

// Patch types carry partial updates. A nil field means "leave unchanged";
// only non-nil fields overwrite the stored record. The record id is never
// part of a patch.

type CategoryPatch struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Icon        *string `json:"icon"`
	IconBgColor *string `json:"iconBgColor"`
	IconColor   *string `json:"iconColor"`
	AgentCount  *int32  `json:"agentCount"`
}

// AgentPatch deliberately has no addedDate field: the creation timestamp is
// immutable through the public contract.
type AgentPatch struct {
	Name            *string `json:"name"`
	Slug            *string `json:"slug"`
	Description     *string `json:"description"`
	ImageURL        *string `json:"imageUrl"`
	WebsiteURL      *string `json:"websiteUrl"`
	Rating          *int32  `json:"rating"`
	UserCount       *int32  `json:"userCount"`
	Featured        *bool   `json:"featured"`
	IsFree          *bool   `json:"isFree"`
	IsNew           *bool   `json:"isNew"`
	CategoryID      *int32  `json:"categoryId"`
	PremiumPrice    *string `json:"premiumPrice"`
	EnterprisePrice *string `json:"enterprisePrice"`
}

type PageContentPatch struct {
	PageKey         *string `json:"pageKey"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	BannerTitle     *string `json:"bannerTitle"`
	BannerSubtitle  *string `json:"bannerSubtitle"`
	BannerImageURL  *string `json:"bannerImageUrl"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	Content         *string `json:"content"`
}

// Apply merges the patch over c in place.
func (p *CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.IconBgColor != nil {
		c.IconBgColor = *p.IconBgColor
	}
	if p.IconColor != nil {
		c.IconColor = *p.IconColor
	}
	if p.AgentCount != nil {
		c.AgentCount = *p.AgentCount
	}
}

// Apply merges the patch over a in place.
func (p *AgentPatch) Apply(a *Agent) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Slug != nil {
		a.Slug = *p.Slug
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.WebsiteURL != nil {
		a.WebsiteURL = *p.WebsiteURL
	}
	if p.Rating != nil {
		a.Rating = *p.Rating
	}
	if p.UserCount != nil {
		a.UserCount = *p.UserCount
	}
	if p.Featured != nil {
		a.Featured = *p.Featured
	}
	if p.IsFree != nil {
		a.IsFree = *p.IsFree
	}
	if p.IsNew != nil {
		a.IsNew = *p.IsNew
	}
	if p.CategoryID != nil {
		a.CategoryID = *p.CategoryID
	}
	if p.PremiumPrice != nil {
		a.PremiumPrice = p.PremiumPrice
	}
	if p.EnterprisePrice != nil {
		a.EnterprisePrice = p.EnterprisePrice
	}
}

// Apply merges the patch over pc in place. LastUpdated is the store's
// responsibility, not the patch's.
func (p *PageContentPatch) Apply(pc *PageContent) {
	if p.PageKey != nil {
		pc.PageKey = *p.PageKey
	}
	if p.Title != nil {
		pc.Title = *p.Title
	}
	if p.Description != nil {
		pc.Description = p.Description
	}
	if p.BannerTitle != nil {
		pc.BannerTitle = p.BannerTitle
	}
	if p.BannerSubtitle != nil {
		pc.BannerSubtitle = p.BannerSubtitle
	}
	if p.BannerImageURL != nil {
		pc.BannerImageURL = p.BannerImageURL
	}
	if p.MetaTitle != nil {
		pc.MetaTitle = p.MetaTitle
	}
	if p.MetaDescription != nil {
		pc.MetaDescription = p.MetaDescription
	}
	if p.Content != nil {
		pc.Content = p.Content
	}
}
