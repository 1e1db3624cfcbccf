package server

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
	"github.com/alexisbeaulieu97/tailkit/pkg/components"
	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// The gallery chrome is composed from the library's own components, so the
// pages double as a living smoke test for them.

func htmlPage(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(title)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</title><script src=\"https://cdn.tailwindcss.com\"></script></head><body class=\"bg-gray-50 text-gray-900\">"); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func anchor(href, label, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<a href=\""+templ.EscapeString(href)+"\""); err != nil {
			return err
		}
		if class != "" {
			if _, err := io.WriteString(w, " class=\""+templ.EscapeString(class)+"\""); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ">"+templ.EscapeString(label)+"</a>")
		return err
	})
}

func markupBlock(markup string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<pre class=\"overflow-x-auto rounded-md bg-gray-900 p-4 text-sm text-gray-100\"><code>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(markup)); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</code></pre>")
		return err
	})
}

func themeQuery(theme string) string {
	if theme == "" || theme == "default" {
		return ""
	}
	return "?theme=" + url.QueryEscape(theme)
}

func storyHref(id, theme string) string {
	return "/story/" + id + themeQuery(theme)
}

// themeNav renders the theme switcher for the given page path.
func themeNav(path string, themes []string, active string) templ.Component {
	if len(themes) < 2 {
		return components.Fragment()
	}

	items := make([]components.NavItem, 0, len(themes))
	for _, name := range themes {
		href := path
		if q := themeQuery(name); q != "" {
			href += q
		}
		items = append(items, components.NavItem{Label: name, Href: href, Active: name == active})
	}

	return components.Navigation(components.NavigationProps{Items: items, Label: "Themes"})
}

type storyGroup struct {
	name    string
	stories []gallery.Story
}

// groupStories splits a sorted story list into its groups, preserving order.
func groupStories(stories []gallery.Story) []storyGroup {
	var groups []storyGroup
	for _, s := range stories {
		if len(groups) == 0 || groups[len(groups)-1].name != s.Group {
			groups = append(groups, storyGroup{name: s.Group})
		}
		groups[len(groups)-1].stories = append(groups[len(groups)-1].stories, s)
	}
	return groups
}

func indexPage(stories []gallery.Story, themes []string, theme string) templ.Component {
	var cards []templ.Component
	for _, group := range groupStories(stories) {
		var links []templ.Component
		for _, s := range group.stories {
			links = append(links, components.Container(components.ContainerProps{},
				anchor(storyHref(s.ID, theme), s.Title, "text-blue-600 hover:underline"),
				components.Text(components.TextProps{
					Content: s.Description,
					Style:   tailwind.TextProps{Size: tailwind.FontSizeSM, Color: tailwind.ColorMuted},
				}),
			))
		}

		cards = append(cards, components.Card(components.CardProps{Title: group.name},
			components.Container(components.ContainerProps{
				Style: tailwind.ContainerProps{
					Display:   tailwind.DisplayFlex,
					Direction: tailwind.DirectionCol,
					Gap:       "3",
				},
			}, links...),
		))
	}

	body := components.Container(components.ContainerProps{
		Tag: "main",
		Style: tailwind.ContainerProps{
			Display:   tailwind.DisplayFlex,
			Direction: tailwind.DirectionCol,
			Gap:       "6",
			Spacing:   tailwind.Spacing{Padding: tailwind.Edges{All: "8"}},
			Class:     "mx-auto max-w-3xl",
		},
	},
		components.Text(components.TextProps{
			Content: "tailkit gallery",
			Tag:     "h1",
			Style:   tailwind.TextProps{Size: tailwind.FontSize2XL, Weight: tailwind.WeightBold},
		}),
		themeNav("/", themes, theme),
		components.Fragment(cards...),
	)

	return htmlPage("tailkit gallery", body)
}

func storyPage(story gallery.Story, markup string, stories []gallery.Story, themes []string, theme string) templ.Component {
	var sidebar []templ.Component
	sidebar = append(sidebar, anchor("/"+themeQuery(theme), "All stories", "text-sm font-semibold text-gray-900 hover:underline"))
	for _, s := range stories {
		class := "text-sm text-blue-600 hover:underline"
		if s.ID == story.ID {
			class = "text-sm font-semibold text-gray-900"
		}
		sidebar = append(sidebar, anchor(storyHref(s.ID, theme), s.ID, class))
	}

	preview := components.Card(components.CardProps{Title: story.Title, Subtitle: story.Description},
		components.Container(components.ContainerProps{
			Style: tailwind.ContainerProps{Spacing: tailwind.Spacing{Padding: tailwind.Edges{All: "4"}}},
		}, components.Raw(markup)),
	)

	source := components.Card(components.CardProps{Title: "Markup"}, markupBlock(markup))

	body := components.Container(components.ContainerProps{
		Tag: "main",
		Style: tailwind.ContainerProps{
			Display: tailwind.DisplayFlex,
			Gap:     "8",
			Spacing: tailwind.Spacing{Padding: tailwind.Edges{All: "8"}},
		},
	},
		components.Container(components.ContainerProps{
			Tag:  "aside",
			Role: "navigation",
			Style: tailwind.ContainerProps{
				Display:   tailwind.DisplayFlex,
				Direction: tailwind.DirectionCol,
				Gap:       "2",
				Class:     "w-56 shrink-0",
			},
		}, sidebar...),
		components.Container(components.ContainerProps{
			Style: tailwind.ContainerProps{
				Display:   tailwind.DisplayFlex,
				Direction: tailwind.DirectionCol,
				Gap:       "6",
				Class:     "grow",
			},
		},
			themeNav("/story/"+story.ID, themes, theme),
			preview,
			source,
		),
	)

	return htmlPage(story.Title+" | tailkit gallery", body)
}

func rawPage(story gallery.Story, markup string) templ.Component {
	body := components.Container(components.ContainerProps{
		Tag:   "main",
		Style: tailwind.ContainerProps{Spacing: tailwind.Spacing{Padding: tailwind.Edges{All: "8"}}},
	}, components.Raw(markup))

	return htmlPage(story.Title, body)
}
