package validate

import (
	"fmt"
	"regexp"

	"github.com/agentdir/directory/internal/model"
)

// slugRx: lowercase kebab-case, the shape every seed slug and every frontend
// route segment uses.
var slugRx = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slug validates a URL path segment used to address a category or agent.
func Slug(v string) error {
	if v == "" {
		return fmt.Errorf("slug is required")
	}
	if len(v) > 100 {
		return fmt.Errorf("slug exceeds 100 characters")
	}
	if !slugRx.MatchString(v) {
		return fmt.Errorf("slug must be lowercase letters, digits and hyphens")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field string, v *string, limit int) error {
	if v == nil {
		return nil
	}
	if len(*v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// Rating is stored scaled by ten, so a five-star scale spans 0-50.
func Rating(v int32) error {
	if v < 0 || v > 50 {
		return fmt.Errorf("rating must be between 0 and 50")
	}
	return nil
}

// -------- Request specific helpers ----------

func CreateCategory(c *model.Category) error {
	if err := NonEmpty("name", c.Name); err != nil {
		return err
	}
	if err := Slug(c.Slug); err != nil {
		return err
	}
	if err := NonEmpty("icon", c.Icon); err != nil {
		return err
	}
	if err := NonEmpty("iconBgColor", c.IconBgColor); err != nil {
		return err
	}
	if err := NonEmpty("iconColor", c.IconColor); err != nil {
		return err
	}
	if c.AgentCount < 0 {
		return fmt.Errorf("agentCount must not be negative")
	}
	return nil
}

func CreateAgent(a *model.Agent) error {
	if err := NonEmpty("name", a.Name); err != nil {
		return err
	}
	if err := Slug(a.Slug); err != nil {
		return err
	}
	if err := NonEmpty("description", a.Description); err != nil {
		return err
	}
	if err := Rating(a.Rating); err != nil {
		return err
	}
	if a.UserCount < 0 {
		return fmt.Errorf("userCount must not be negative")
	}
	if a.CategoryID <= 0 {
		return fmt.Errorf("categoryId is required")
	}
	if err := MaxLen("premiumPrice", a.PremiumPrice, 50); err != nil {
		return err
	}
	return MaxLen("enterprisePrice", a.EnterprisePrice, 50)
}

func PatchAgent(p *model.AgentPatch) error {
	if p.Slug != nil {
		if err := Slug(*p.Slug); err != nil {
			return err
		}
	}
	if p.Rating != nil {
		if err := Rating(*p.Rating); err != nil {
			return err
		}
	}
	return nil
}

func PatchCategory(p *model.CategoryPatch) error {
	if p.Slug != nil {
		return Slug(*p.Slug)
	}
	return nil
}

func CreateFeature(f *model.AgentFeature) error {
	if f.AgentID <= 0 {
		return fmt.Errorf("agentId is required")
	}
	return NonEmpty("feature", f.Feature)
}

func CreateUseCase(u *model.AgentUseCase) error {
	if u.AgentID <= 0 {
		return fmt.Errorf("agentId is required")
	}
	if err := NonEmpty("title", u.Title); err != nil {
		return err
	}
	return NonEmpty("description", u.Description)
}

func CreatePageContent(p *model.PageContent) error {
	if err := NonEmpty("pageKey", p.PageKey); err != nil {
		return err
	}
	if !slugRx.MatchString(p.PageKey) {
		return fmt.Errorf("pageKey must be lowercase letters, digits and hyphens")
	}
	return NonEmpty("title", p.Title)
}

func CreateUser(username, password string) error {
	if err := NonEmpty("username", username); err != nil {
		return err
	}
	if len(username) > 50 {
		return fmt.Errorf("username exceeds 50 characters")
	}
	return NonEmpty("password", password)
}
