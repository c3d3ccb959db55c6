package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/store"
)

// Summary reports how many records a Load call created.
type Summary struct {
	Categories int `json:"categories"`
	Agents     int `json:"agents"`
	Features   int `json:"features"`
	UseCases   int `json:"useCases"`
}

// Load inserts the demo catalog into an empty store. It refuses to run twice:
// a store that already holds categories gets model.ErrConflict back. Ids are
// assigned by the store, so child records are wired up through the slugs of
// the parents they belong to.
func Load(ctx context.Context, st store.Store) (*Summary, error) {
	existing, err := st.Categories().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("demo catalog already loaded: %w", model.ErrConflict)
	}

	sum := &Summary{}
	categoryIDs := make(map[string]int32, len(demoCategories))
	for i := range demoCategories {
		c := demoCategories[i]
		out, err := st.Categories().Create(ctx, &c)
		if err != nil {
			return nil, fmt.Errorf("seed category %q: %w", c.Slug, err)
		}
		categoryIDs[out.Slug] = out.ID
		sum.Categories++
	}

	agentIDs := make(map[string]int32, len(demoAgents))
	for i := range demoAgents {
		a := demoAgents[i].agent
		a.CategoryID = categoryIDs[demoAgents[i].categorySlug]
		out, err := st.Agents().Create(ctx, &a)
		if err != nil {
			return nil, fmt.Errorf("seed agent %q: %w", a.Slug, err)
		}
		agentIDs[out.Slug] = out.ID
		sum.Agents++
	}

	for _, f := range demoFeatures {
		rec := &model.AgentFeature{AgentID: agentIDs[f.agentSlug], Feature: f.feature}
		if _, err := st.Features().Create(ctx, rec); err != nil {
			return nil, fmt.Errorf("seed feature for %q: %w", f.agentSlug, err)
		}
		sum.Features++
	}

	for i := range demoUseCases {
		rec := demoUseCases[i].useCase
		rec.AgentID = agentIDs[demoUseCases[i].agentSlug]
		if _, err := st.UseCases().Create(ctx, &rec); err != nil {
			return nil, fmt.Errorf("seed use case for %q: %w", demoUseCases[i].agentSlug, err)
		}
		sum.UseCases++
	}

	zerolog.Ctx(ctx).Info().
		Int("categories", sum.Categories).
		Int("agents", sum.Agents).
		Int("features", sum.Features).
		Int("useCases", sum.UseCases).
		Msg("demo catalog loaded")
	return sum, nil
}

func ptr(v string) *string { return &v }

var demoCategories = []model.Category{
	{Name: "Chatbots", Slug: "chatbots", Icon: "message-circle", IconBgColor: "bg-purple-100", IconColor: "text-purple-700", AgentCount: 48},
	{Name: "Image Generation", Slug: "image-generation", Icon: "image", IconBgColor: "bg-pink-100", IconColor: "text-pink-700", AgentCount: 36},
	{Name: "Writing", Slug: "writing", Icon: "pen", IconBgColor: "bg-indigo-100", IconColor: "text-indigo-700", AgentCount: 42},
	{Name: "Productivity", Slug: "productivity", Icon: "check-square", IconBgColor: "bg-green-100", IconColor: "text-green-700", AgentCount: 29},
	{Name: "Development", Slug: "development", Icon: "code", IconBgColor: "bg-amber-100", IconColor: "text-amber-700", AgentCount: 33},
	{Name: "Data Analysis", Slug: "data-analysis", Icon: "bar-chart", IconBgColor: "bg-blue-100", IconColor: "text-blue-700", AgentCount: 25},
}

type demoAgent struct {
	categorySlug string
	agent        model.Agent
}

var demoAgents = []demoAgent{
	{"chatbots", model.Agent{
		Name:            "ConversAI",
		Slug:            "conversai",
		Description:     "A powerful conversational AI that can answer questions, draft emails, and assist with creative writing tasks.",
		ImageURL:        "https://images.unsplash.com/photo-1527430253228-e93688616381?auto=format&fit=crop&w=800&q=80",
		WebsiteURL:      "https://conversai.example.com",
		Rating:          45,
		UserCount:       100000,
		Featured:        true,
		IsFree:          true,
		PremiumPrice:    ptr("$9.99/month"),
		EnterprisePrice: ptr("Custom pricing"),
	}},
	{"image-generation", model.Agent{
		Name:            "PixelMind",
		Slug:            "pixelmind",
		Description:     "Create stunning, realistic images from text descriptions with this state-of-the-art AI image generator.",
		ImageURL:        "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?auto=format&fit=crop&w=800&q=80",
		WebsiteURL:      "https://pixelmind.example.com",
		Rating:          40,
		UserCount:       75000,
		IsNew:           true,
		PremiumPrice:    ptr("$12.99/month"),
		EnterprisePrice: ptr("Custom pricing"),
	}},
	{"writing", model.Agent{
		Name:            "ProseGenius",
		Slug:            "prosegenius",
		Description:     "An AI writing assistant that helps you craft compelling content, from blog posts to marketing copy.",
		ImageURL:        "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?auto=format&fit=crop&w=800&q=80",
		WebsiteURL:      "https://prosegenius.example.com",
		Rating:          50,
		UserCount:       120000,
		IsFree:          true,
		PremiumPrice:    ptr("$14.99/month"),
		EnterprisePrice: ptr("$199/month"),
	}},
	{"data-analysis", model.Agent{
		Name:            "DataSense AI",
		Slug:            "datasense-ai",
		Description:     "Transform raw data into actionable insights with this powerful AI-powered analytics platform.",
		ImageURL:        "https://images.unsplash.com/photo-1647427060118-4911c9821b82?auto=format&fit=crop&w=800&q=80",
		WebsiteURL:      "https://datasense.example.com",
		Rating:          47,
		UserCount:       65000,
		PremiumPrice:    ptr("$19.99/month"),
		EnterprisePrice: ptr("Custom pricing"),
	}},
	{"development", model.Agent{
		Name:            "CodeCompanion",
		Slug:            "codecompanion",
		Description:     "An AI coding assistant that helps developers write better code faster with smart suggestions and debugging.",
		ImageURL:        "https://images.unsplash.com/photo-1581472723648-909f4851d4ae?auto=format&fit=crop&w=800&q=80",
		WebsiteURL:      "https://codecompanion.example.com",
		Rating:          42,
		UserCount:       85000,
		IsFree:          true,
		PremiumPrice:    ptr("$15.99/month"),
		EnterprisePrice: ptr("$299/month"),
	}},
	{"productivity", model.Agent{
		Name:            "TimeWizard",
		Slug:            "timewizard",
		Description:     "An intelligent scheduling assistant that optimizes your calendar and helps you make the most of your time.",
		ImageURL:        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=800&q=80",
		WebsiteURL:      "https://timewizard.example.com",
		Rating:          49,
		UserCount:       95000,
		Featured:        true,
		IsFree:          true,
		PremiumPrice:    ptr("$8.99/month"),
		EnterprisePrice: ptr("$149/month"),
	}},
	{"chatbots", model.Agent{
		Name:            "VoiceGenius",
		Slug:            "voicegenius",
		Description:     "Convert speech to text and generate natural-sounding voiceovers with this advanced AI voice tool.",
		ImageURL:        "https://images.unsplash.com/photo-1589254065909-b7086229d08c?auto=format&fit=crop&w=800&q=80",
		WebsiteURL:      "https://voicegenius.example.com",
		Rating:          44,
		UserCount:       55000,
		IsNew:           true,
		PremiumPrice:    ptr("$11.99/month"),
		EnterprisePrice: ptr("Custom pricing"),
	}},
	{"productivity", model.Agent{
		Name:            "IntelliSlide",
		Slug:            "intellislide",
		Description:     "Create professional presentations in seconds with AI-powered slide generation and design.",
		ImageURL:        "https://images.unsplash.com/photo-1611162616475-46b635cb6868?auto=format&fit=crop&w=800&q=80",
		WebsiteURL:      "https://intellislide.example.com",
		Rating:          43,
		UserCount:       60000,
		IsFree:          true,
		PremiumPrice:    ptr("$9.99/month"),
		EnterprisePrice: ptr("$179/month"),
	}},
}

type demoFeature struct {
	agentSlug string
	feature   string
}

var demoFeatures = []demoFeature{
	{"conversai", "Natural language understanding with context awareness"},
	{"conversai", "Email drafting with tone adjustment (formal, friendly, persuasive)"},
	{"conversai", "Creative writing assistance for stories, poems, and scripts"},
	{"conversai", "Multi-language support (40+ languages)"},
	{"conversai", "Knowledge database integration for specialized domains"},
	{"pixelmind", "Text-to-image generation with precise control"},
	{"pixelmind", "Style customization (photorealistic, artistic, cartoon)"},
	{"pixelmind", "High-resolution output (up to 4K)"},
	{"pixelmind", "Batch processing for multiple images"},
	{"pixelmind", "Image editing and enhancement tools"},
	{"prosegenius", "Content generation for multiple formats (blog, social media, email)"},
	{"prosegenius", "Tone and style adjustment to match brand voice"},
	{"prosegenius", "SEO optimization suggestions"},
	{"prosegenius", "Plagiarism-free content with citation support"},
	{"prosegenius", "Content editing and improvement recommendations"},
}

type demoUseCase struct {
	agentSlug string
	useCase   model.AgentUseCase
}

var demoUseCases = []demoUseCase{
	{"conversai", model.AgentUseCase{
		Title:       "Business Professionals",
		Description: "Draft professional emails, prepare meeting notes, and create business documents quickly.",
		Icon:        "briefcase",
		IconColor:   "text-purple-700",
	}},
	{"conversai", model.AgentUseCase{
		Title:       "Writers & Content Creators",
		Description: "Get help with creative writing, overcome writer's block, and generate content ideas.",
		Icon:        "pen-tool",
		IconColor:   "text-pink-700",
	}},
	{"conversai", model.AgentUseCase{
		Title:       "Students & Educators",
		Description: "Research assistance, explanations of complex topics, and learning aid for various subjects.",
		Icon:        "book-open",
		IconColor:   "text-indigo-700",
	}},
	{"pixelmind", model.AgentUseCase{
		Title:       "Designers & Artists",
		Description: "Generate concept art, visualize ideas, and create inspiration for creative projects.",
		Icon:        "palette",
		IconColor:   "text-pink-700",
	}},
	{"pixelmind", model.AgentUseCase{
		Title:       "Marketing Teams",
		Description: "Create eye-catching visuals for social media, ads, and marketing materials.",
		Icon:        "trending-up",
		IconColor:   "text-amber-700",
	}},
	{"pixelmind", model.AgentUseCase{
		Title:       "Game Developers",
		Description: "Generate game assets, character designs, and environment concepts quickly.",
		Icon:        "gamepad",
		IconColor:   "text-green-700",
	}},
}
