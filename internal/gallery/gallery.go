package gallery

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/pkg/components"
	tailkiterrors "github.com/alexisbeaulieu97/tailkit/pkg/errors"
	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// Story is one rendered example in the gallery. Component is a factory so
// stateful widgets start from a fresh instance on every render.
type Story struct {
	// ID uniquely names the story, group-prefixed ("button/primary").
	ID          string
	Title       string
	Group       string
	Description string
	Component   func() templ.Component
}

var storyIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*(?:/[a-z0-9][a-z0-9-]*)*$`)

// Registry holds stories keyed by ID. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	stories map[string]Story
}

// NewRegistry creates an empty story registry.
func NewRegistry() *Registry {
	return &Registry{stories: make(map[string]Story)}
}

// Register adds a story. IDs must be unique and group-prefixed kebab-case.
func (r *Registry) Register(s Story) error {
	if s.ID == "" {
		return tailkiterrors.NewStoryError("", errors.New("story id is required"))
	}
	if !storyIDRegex.MatchString(s.ID) {
		return tailkiterrors.NewStoryError(s.ID, fmt.Errorf("story id %q is not group-prefixed kebab-case", s.ID))
	}
	if s.Component == nil {
		return tailkiterrors.NewStoryError(s.ID, errors.New("story has no component"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stories[s.ID]; exists {
		return tailkiterrors.NewStoryError(s.ID, errors.New("story already registered"))
	}

	r.stories[s.ID] = s
	return nil
}

// Get retrieves a story by ID.
func (r *Registry) Get(id string) (Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stories[id]
	if !ok {
		return Story{}, tailkiterrors.NewStoryError(id, errors.New("story not found"))
	}
	return s, nil
}

// List returns all stories sorted by ID.
func (r *Registry) List() []Story {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Story, 0, len(r.stories))
	for _, s := range r.stories {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Groups returns the distinct group names, sorted.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var groups []string
	for _, s := range r.stories {
		if _, ok := seen[s.Group]; ok {
			continue
		}
		seen[s.Group] = struct{}{}
		groups = append(groups, s.Group)
	}
	sort.Strings(groups)
	return groups
}

// Filter returns the stories whose ID, title, group, or description
// contains the query, case-insensitively. An empty query matches all.
func (r *Registry) Filter(query string) []Story {
	all := r.List()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all
	}

	var matched []Story
	for _, s := range all {
		haystack := strings.ToLower(s.ID + " " + s.Title + " " + s.Group + " " + s.Description)
		if strings.Contains(haystack, query) {
			matched = append(matched, s)
		}
	}
	return matched
}

// Len reports the number of registered stories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stories)
}

// Render produces the story's markup with the given class builder injected
// into the render context.
func Render(ctx context.Context, story Story, builder *tailwind.Builder) (string, error) {
	if story.Component == nil {
		return "", tailkiterrors.NewStoryError(story.ID, errors.New("story has no component"))
	}

	var sb strings.Builder
	ctx = components.WithBuilder(ctx, builder)
	if err := story.Component().Render(ctx, &sb); err != nil {
		return "", tailkiterrors.NewRenderError(story.ID, err)
	}
	return sb.String(), nil
}
