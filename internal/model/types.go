package model

import "time"

// User is a submitter/admin account. Passwords are stored as-is; there is no
// session model, the field exists only so the store contract is complete.
type User struct {
	ID       int32  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// Category groups agents and carries the icon tokens the frontend renders.
type Category struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	IconBgColor string `json:"iconBgColor"`
	IconColor   string `json:"iconColor"`
	// AgentCount is denormalized and set at creation time only; agent
	// creation does not maintain it.
	AgentCount int32 `json:"agentCount"`
}

// Agent is a single directory listing.
// Rating is stored scaled by ten (0-50); display rating = Rating / 10.
type Agent struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	WebsiteURL  string `json:"websiteUrl"`
	Rating      int32  `json:"rating"`
	UserCount   int32  `json:"userCount"`
	Featured    bool   `json:"featured"`
	IsFree      bool   `json:"isFree"`
	IsNew       bool   `json:"isNew"`
	CategoryID  int32  `json:"categoryId"`
	// Optional pricing text; nil means the tier is not offered.
	PremiumPrice    *string   `json:"premiumPrice"`
	EnterprisePrice *string   `json:"enterprisePrice"`
	AddedDate       time.Time `json:"addedDate"`
}

// AgentFeature is a single bullet fact about an agent.
type AgentFeature struct {
	ID      int32  `json:"id"`
	AgentID int32  `json:"agentId"`
	Feature string `json:"feature"`
}

// AgentUseCase describes one audience an agent serves.
type AgentUseCase struct {
	ID          int32  `json:"id"`
	AgentID     int32  `json:"agentId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IconColor   string `json:"iconColor"`
}

// PageContent is a CMS-style record addressed by a logical page key.
type PageContent struct {
	ID              int32     `json:"id"`
	PageKey         string    `json:"pageKey"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	BannerTitle     *string   `json:"bannerTitle"`
	BannerSubtitle  *string   `json:"bannerSubtitle"`
	BannerImageURL  *string   `json:"bannerImageUrl"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	Content         *string   `json:"content"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// AgentDetail is the composite payload for the agent detail endpoint.
type AgentDetail struct {
	Agent    *Agent          `json:"agent"`
	Features []*AgentFeature `json:"features"`
	UseCases []*AgentUseCase `json:"useCases"`
}

// ListAgentsRequest captures the query parameters of the agent listing
// endpoint. Exactly one query path is taken; precedence is Search, then
// CategorySlug, then Featured, then New, then unfiltered.
type ListAgentsRequest struct {
	Search       string
	CategorySlug string
	Featured     bool
	New          bool
	Limit        int
}
