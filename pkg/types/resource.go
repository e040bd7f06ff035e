package types

import (
	"time"

	"github.com/samber/lo"
)

const (
	COLLECTION_RESOURCES = "resources"

	DEFAULT_LIST_LIMIT = 100
)

// GetCurrentTime is the service clock. BSON datetimes keep milliseconds, so
// the value is truncated to match what a later read returns.
var GetCurrentTime = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

type Resource struct {
	ID        string    `json:"id"`         // store generated, hex encoded
	Name      string    `json:"name"`       // display name
	Type      string    `json:"type"`       // content category, e.g. prompt, snippet
	Content   string    `json:"content"`    // payload
	CreatedAt time.Time `json:"created_at"` // set once at creation
}

type CreateResource struct {
	Name    *string `json:"name"`
	Type    *string `json:"type"`
	Content *string `json:"content"`
}

// Validate checks field presence. name and type must also be non-empty,
// content may be an empty string.
func (c CreateResource) Validate() []string {
	var problems []string
	if c.Name == nil || *c.Name == "" {
		problems = append(problems, "name is required")
	}
	if c.Type == nil || *c.Type == "" {
		problems = append(problems, "type is required")
	}
	if c.Content == nil {
		problems = append(problems, "content is required")
	}
	return problems
}

// UpdateResource is the partial update input. A nil field means no change.
type UpdateResource struct {
	Name    *string `json:"name"`
	Type    *string `json:"type"`
	Content *string `json:"content"`
}

func (u UpdateResource) Validate() []string {
	var problems []string
	if u.Name != nil && *u.Name == "" {
		problems = append(problems, "name must not be empty")
	}
	if u.Type != nil && *u.Type == "" {
		problems = append(problems, "type must not be empty")
	}
	return problems
}

// ChangeSet maps stored field names to the values to write.
type ChangeSet map[string]string

func (u UpdateResource) ChangeSet() ChangeSet {
	fields := map[string]*string{
		"name":    u.Name,
		"type":    u.Type,
		"content": u.Content,
	}
	set := lo.PickBy(fields, func(_ string, v *string) bool {
		return v != nil
	})
	return lo.MapValues(set, func(v *string, _ string) string {
		return *v
	})
}

func (c ChangeSet) IsEmpty() bool {
	return len(c) == 0
}

// Apply writes the change-set onto r and reports whether any value differed.
func (c ChangeSet) Apply(r *Resource) bool {
	changed := false
	for field, v := range c {
		var target *string
		switch field {
		case "name":
			target = &r.Name
		case "type":
			target = &r.Type
		case "content":
			target = &r.Content
		default:
			continue
		}
		if *target != v {
			*target = v
			changed = true
		}
	}
	return changed
}

type DeleteResourceResult struct {
	Message string `json:"message"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
