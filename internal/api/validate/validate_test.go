package validate

import (
	"strings"
	"testing"

	"github.com/agentdir/directory/internal/model"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name        string
		slug        string
		expectError bool
	}{
		{name: "valid slug", slug: "image-generation"},
		{name: "single word", slug: "chatbots"},
		{name: "digits", slug: "agent-2"},
		{name: "empty", slug: "", expectError: true},
		{name: "uppercase", slug: "Chatbots", expectError: true},
		{name: "spaces", slug: "image generation", expectError: true},
		{name: "leading hyphen", slug: "-chatbots", expectError: true},
		{name: "trailing hyphen", slug: "chatbots-", expectError: true},
		{name: "double hyphen", slug: "chat--bots", expectError: true},
		{name: "too long", slug: strings.Repeat("a", 101), expectError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Slug(tt.slug)
			if tt.expectError && err == nil {
				t.Fatalf("expected error for slug %q", tt.slug)
			}
			if !tt.expectError && err != nil {
				t.Fatalf("unexpected error for slug %q: %v", tt.slug, err)
			}
		})
	}
}

func TestRating(t *testing.T) {
	for _, v := range []int32{0, 1, 45, 50} {
		if err := Rating(v); err != nil {
			t.Fatalf("unexpected error for rating %d: %v", v, err)
		}
	}
	for _, v := range []int32{-1, 51, 100} {
		if err := Rating(v); err == nil {
			t.Fatalf("expected error for rating %d", v)
		}
	}
}

func validAgent() *model.Agent {
	return &model.Agent{
		Name: "ConversAI", Slug: "conversai", Description: "Answers questions.",
		Rating: 45, UserCount: 100, CategoryID: 1,
	}
}

func TestCreateAgent(t *testing.T) {
	if err := CreateAgent(validAgent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := validAgent()
	a.Name = ""
	if err := CreateAgent(a); err == nil {
		t.Fatalf("expected error for missing name")
	}

	a = validAgent()
	a.Rating = 60
	if err := CreateAgent(a); err == nil {
		t.Fatalf("expected error for out-of-range rating")
	}

	a = validAgent()
	a.CategoryID = 0
	if err := CreateAgent(a); err == nil {
		t.Fatalf("expected error for missing categoryId")
	}

	a = validAgent()
	a.UserCount = -1
	if err := CreateAgent(a); err == nil {
		t.Fatalf("expected error for negative userCount")
	}
}

func TestCreateCategory(t *testing.T) {
	c := &model.Category{
		Name: "Chatbots", Slug: "chatbots", Icon: "message-circle",
		IconBgColor: "bg-purple-100", IconColor: "text-purple-700",
	}
	if err := CreateCategory(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Icon = ""
	if err := CreateCategory(c); err == nil {
		t.Fatalf("expected error for missing icon")
	}
}

func TestCreatePageContent(t *testing.T) {
	if err := CreatePageContent(&model.PageContent{PageKey: "home", Title: "Home"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CreatePageContent(&model.PageContent{Title: "Home"}); err == nil {
		t.Fatalf("expected error for missing pageKey")
	}
	if err := CreatePageContent(&model.PageContent{PageKey: "Home Page", Title: "Home"}); err == nil {
		t.Fatalf("expected error for invalid pageKey")
	}
}

func TestCreateUser(t *testing.T) {
	if err := CreateUser("admin", "s3cret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CreateUser("", "s3cret"); err == nil {
		t.Fatalf("expected error for missing username")
	}
	if err := CreateUser("admin", ""); err == nil {
		t.Fatalf("expected error for missing password")
	}
	if err := CreateUser(strings.Repeat("a", 51), "pw"); err == nil {
		t.Fatalf("expected error for long username")
	}
}

func TestPatchAgent(t *testing.T) {
	if err := PatchAgent(&model.AgentPatch{}); err != nil {
		t.Fatalf("empty patch should be valid: %v", err)
	}
	bad := int32(51)
	if err := PatchAgent(&model.AgentPatch{Rating: &bad}); err == nil {
		t.Fatalf("expected error for out-of-range rating")
	}
	slug := "New-Slug"
	if err := PatchAgent(&model.AgentPatch{Slug: &slug}); err == nil {
		t.Fatalf("expected error for invalid slug")
	}
}
