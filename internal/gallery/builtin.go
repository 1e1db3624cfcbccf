package gallery

import (
	"github.com/a-h/templ"

	"github.com/alexisbeaulieu97/tailkit/pkg/components"
	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// Builtin returns a registry preloaded with the library's own stories, one
// per component state worth looking at.
func Builtin() *Registry {
	r := NewRegistry()
	for _, s := range builtinStories() {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

func builtinStories() []Story {
	stories := []Story{
		{
			ID:          "text/heading",
			Title:       "Heading",
			Group:       "text",
			Description: "Large bold page heading.",
			Component: func() templ.Component {
				return components.Text(components.TextProps{
					Content: "Ship interfaces faster",
					Tag:     "h1",
					Style:   tailwind.TextProps{Size: tailwind.FontSize2XL, Weight: tailwind.WeightBold},
				})
			},
		},
		{
			ID:          "text/body",
			Title:       "Body copy",
			Group:       "text",
			Description: "Default paragraph with muted color.",
			Component: func() templ.Component {
				return components.Text(components.TextProps{
					Content: "Themed utility classes without writing any CSS by hand.",
					Style:   tailwind.TextProps{Color: tailwind.ColorMuted},
				})
			},
		},
		{
			ID:          "text/label",
			Title:       "Field label",
			Group:       "text",
			Description: "Label element associated with a control.",
			Component: func() templ.Component {
				return components.Text(components.TextProps{
					Content: "Email address",
					Tag:     "label",
					For:     "email",
					Style:   tailwind.TextProps{Size: tailwind.FontSizeSM, Weight: tailwind.WeightMedium},
				})
			},
		},
		{
			ID:          "layout/stack",
			Title:       "Vertical stack",
			Group:       "layout",
			Description: "Flex column with an even gap.",
			Component: func() templ.Component {
				return components.Container(components.ContainerProps{
					Style: tailwind.ContainerProps{
						Display:   tailwind.DisplayFlex,
						Direction: tailwind.DirectionCol,
						Gap:       "4",
						Spacing:   tailwind.Spacing{Padding: tailwind.Edges{All: "6"}},
					},
				},
					components.Text(components.TextProps{Content: "First"}),
					components.Text(components.TextProps{Content: "Second"}),
					components.Text(components.TextProps{Content: "Third"}),
				)
			},
		},
		{
			ID:          "layout/toolbar",
			Title:       "Toolbar row",
			Group:       "layout",
			Description: "Flex row with space-between alignment.",
			Component: func() templ.Component {
				return components.Container(components.ContainerProps{
					Role: "toolbar",
					Style: tailwind.ContainerProps{
						Display: tailwind.DisplayFlex,
						Justify: tailwind.JustifyBetween,
						Align:   tailwind.ItemsCenter,
						Gap:     "2",
						Spacing: tailwind.Spacing{Padding: tailwind.Edges{X: "4", Y: "2"}},
					},
				},
					components.Text(components.TextProps{Content: "Documents", Style: tailwind.TextProps{Weight: tailwind.WeightSemibold}}),
					components.Button(components.ButtonProps{Label: "New", Variant: tailwind.ButtonPrimary, Size: tailwind.SizeSM}),
				)
			},
		},
		{
			ID:          "layout/panel",
			Title:       "Bordered panel",
			Group:       "layout",
			Description: "Rounded surface with border and shadow.",
			Component: func() templ.Component {
				return components.Container(components.ContainerProps{
					Style: tailwind.ContainerProps{
						Background:  tailwind.ColorWhite,
						BorderWidth: tailwind.BorderWidth1,
						BorderColor: tailwind.ColorMuted,
						Radius:      tailwind.RadiusLG,
						Shadow:      tailwind.ShadowMD,
						Spacing:     tailwind.Spacing{Padding: tailwind.Edges{All: "6"}},
					},
				},
					components.Text(components.TextProps{Content: "Panel content"}),
				)
			},
		},
	}

	stories = append(stories, buttonStories()...)
	stories = append(stories, inputStories()...)
	stories = append(stories, cardStories()...)
	stories = append(stories, modalStories()...)
	stories = append(stories, formStories()...)
	stories = append(stories, dropdownStories()...)
	stories = append(stories, navigationStories()...)
	stories = append(stories, alertStories()...)

	return stories
}

func buttonStories() []Story {
	variants := []struct {
		id      string
		title   string
		variant tailwind.ButtonVariant
	}{
		{"button/primary", "Primary", tailwind.ButtonPrimary},
		{"button/secondary", "Secondary", tailwind.ButtonSecondary},
		{"button/danger", "Danger", tailwind.ButtonDanger},
		{"button/outline", "Outline", tailwind.ButtonOutline},
		{"button/ghost", "Ghost", tailwind.ButtonGhost},
		{"button/link", "Link", tailwind.ButtonLink},
	}

	var stories []Story
	for _, v := range variants {
		variant := v.variant
		title := v.title
		stories = append(stories, Story{
			ID:          v.id,
			Title:       title,
			Group:       "button",
			Description: title + " button at the default size.",
			Component: func() templ.Component {
				return components.Button(components.ButtonProps{Label: title, Variant: variant, Size: tailwind.SizeMD})
			},
		})
	}

	stories = append(stories,
		Story{
			ID:          "button/sizes",
			Title:       "Sizes",
			Group:       "button",
			Description: "Small, medium, and large side by side.",
			Component: func() templ.Component {
				return components.Container(components.ContainerProps{
					Style: tailwind.ContainerProps{Display: tailwind.DisplayFlex, Align: tailwind.ItemsCenter, Gap: "3"},
				},
					components.Button(components.ButtonProps{Label: "Small", Variant: tailwind.ButtonPrimary, Size: tailwind.SizeSM}),
					components.Button(components.ButtonProps{Label: "Medium", Variant: tailwind.ButtonPrimary, Size: tailwind.SizeMD}),
					components.Button(components.ButtonProps{Label: "Large", Variant: tailwind.ButtonPrimary, Size: tailwind.SizeLG}),
				)
			},
		},
		Story{
			ID:          "button/loading",
			Title:       "Loading",
			Group:       "button",
			Description: "Busy state with spinner and aria-busy.",
			Component: func() templ.Component {
				return components.Button(components.ButtonProps{Label: "Saving", Variant: tailwind.ButtonPrimary, Size: tailwind.SizeMD, Loading: true})
			},
		},
		Story{
			ID:          "button/disabled",
			Title:       "Disabled",
			Group:       "button",
			Description: "Disabled state with aria-disabled.",
			Component: func() templ.Component {
				return components.Button(components.ButtonProps{Label: "Unavailable", Variant: tailwind.ButtonPrimary, Size: tailwind.SizeMD, Disabled: true})
			},
		},
		Story{
			ID:          "button/full-width",
			Title:       "Full width",
			Group:       "button",
			Description: "Stretches to the container width.",
			Component: func() templ.Component {
				return components.Button(components.ButtonProps{Label: "Continue", Variant: tailwind.ButtonPrimary, Size: tailwind.SizeMD, FullWidth: true})
			},
		},
	)

	return stories
}

func inputStories() []Story {
	return []Story{
		{
			ID:          "input/default",
			Title:       "Default",
			Group:       "input",
			Description: "Text input in its resting state.",
			Component: func() templ.Component {
				return components.Input(components.InputProps{ID: "name", Name: "name", Placeholder: "Jane Doe", Size: tailwind.SizeMD})
			},
		},
		{
			ID:          "input/error",
			Title:       "Error",
			Group:       "input",
			Description: "Invalid value with aria-invalid set.",
			Component: func() templ.Component {
				return components.Input(components.InputProps{
					ID: "email", Name: "email", Value: "not-an-email",
					Variant: tailwind.InputError, Size: tailwind.SizeMD,
					DescribedBy: "email-error",
				})
			},
		},
		{
			ID:          "input/success",
			Title:       "Success",
			Group:       "input",
			Description: "Validated value with success styling.",
			Component: func() templ.Component {
				return components.Input(components.InputProps{
					ID: "handle", Name: "handle", Value: "jane",
					Variant: tailwind.InputSuccess, Size: tailwind.SizeMD,
				})
			},
		},
		{
			ID:          "input/disabled",
			Title:       "Disabled",
			Group:       "input",
			Description: "Read-only presentation with muted styling.",
			Component: func() templ.Component {
				return components.Input(components.InputProps{
					ID: "plan", Name: "plan", Value: "Enterprise",
					Size: tailwind.SizeMD, Disabled: true,
				})
			},
		},
	}
}

func cardStories() []Story {
	return []Story{
		{
			ID:          "card/basic",
			Title:       "Basic",
			Group:       "card",
			Description: "Title, subtitle, and body content.",
			Component: func() templ.Component {
				return components.Card(components.CardProps{
					Title:    "Monthly report",
					Subtitle: "Generated on the first of each month",
				},
					components.Text(components.TextProps{Content: "All systems operated normally this period."}),
				)
			},
		},
		{
			ID:          "card/footer",
			Title:       "With footer",
			Group:       "card",
			Description: "Footer slot holding actions.",
			Component: func() templ.Component {
				return components.Card(components.CardProps{
					Title: "Delete workspace",
					Footer: components.Fragment(
						components.Button(components.ButtonProps{Label: "Cancel", Variant: tailwind.ButtonGhost, Size: tailwind.SizeSM}),
						components.Button(components.ButtonProps{Label: "Delete", Variant: tailwind.ButtonDanger, Size: tailwind.SizeSM}),
					),
				},
					components.Text(components.TextProps{Content: "This action cannot be undone."}),
				)
			},
		},
		{
			ID:          "card/actionable",
			Title:       "Actionable",
			Group:       "card",
			Description: "Clickable card with hover elevation.",
			Component: func() templ.Component {
				return components.Card(components.CardProps{
					Title:      "Open project",
					Hover:      true,
					Actionable: true,
				},
					components.Text(components.TextProps{Content: "Jump straight to the project dashboard."}),
				)
			},
		},
	}
}

func modalStories() []Story {
	return []Story{
		{
			ID:          "modal/confirm",
			Title:       "Confirmation",
			Group:       "modal",
			Description: "Open dialog with footer actions.",
			Component: func() templ.Component {
				m := components.NewModal("Discard draft?",
					components.Text(components.TextProps{Content: "Unsaved changes will be lost."}),
				).WithID("confirm").WithFooter(components.Fragment(
					components.Button(components.ButtonProps{Label: "Keep editing", Variant: tailwind.ButtonGhost, Size: tailwind.SizeSM}),
					components.Button(components.ButtonProps{Label: "Discard", Variant: tailwind.ButtonDanger, Size: tailwind.SizeSM}),
				))
				m.Open()
				return m
			},
		},
		{
			ID:          "modal/plain",
			Title:       "Plain",
			Group:       "modal",
			Description: "Open dialog without a footer.",
			Component: func() templ.Component {
				m := components.NewModal("Keyboard shortcuts",
					components.Text(components.TextProps{Content: "Press ? anywhere to open this dialog."}),
				).WithID("shortcuts")
				m.Open()
				return m
			},
		},
	}
}

func formStories() []Story {
	signup := func() *components.Form {
		return components.NewForm("signup").
			AddField(components.Field{
				Name: "name", Label: "Full name", Required: true, Size: tailwind.SizeMD,
				Validators: []components.FieldValidator{components.Required("Name is required")},
			}).
			AddField(components.Field{
				Name: "email", Label: "Email", Type: "email", Required: true, Size: tailwind.SizeMD,
				Help:       "We never share your address.",
				Validators: []components.FieldValidator{components.Required("Email is required"), components.Email()},
			})
	}

	return []Story{
		{
			ID:          "form/signup",
			Title:       "Signup",
			Group:       "form",
			Description: "Labels, help text, and a submit button.",
			Component: func() templ.Component {
				return signup()
			},
		},
		{
			ID:          "form/errors",
			Title:       "Validation errors",
			Group:       "form",
			Description: "Submitted with an invalid email.",
			Component: func() templ.Component {
				f := signup()
				f.SetValue("name", "Jane")
				f.SetValue("email", "not-an-email")
				f.Submit()
				return f
			},
		},
	}
}

func dropdownStories() []Story {
	options := func() []components.DropdownOption {
		return []components.DropdownOption{
			{Label: "Planning", Value: "planning"},
			{Label: "In progress", Value: "in-progress"},
			{Label: "Blocked", Value: "blocked", Disabled: true},
			{Label: "Done", Value: "done"},
		}
	}

	return []Story{
		{
			ID:          "dropdown/closed",
			Title:       "Closed",
			Group:       "dropdown",
			Description: "Trigger button in its resting state.",
			Component: func() templ.Component {
				return components.NewDropdown("Status", options()...).WithID("status")
			},
		},
		{
			ID:          "dropdown/open",
			Title:       "Open",
			Group:       "dropdown",
			Description: "Expanded listbox with a selection.",
			Component: func() templ.Component {
				d := components.NewDropdown("Status", options()...).WithID("status").WithSelected("in-progress")
				d.Open()
				return d
			},
		},
	}
}

func navigationStories() []Story {
	items := func() []components.NavItem {
		return []components.NavItem{
			{Label: "Dashboard", Href: "/", Active: true},
			{Label: "Projects", Href: "/projects"},
			{Label: "Settings", Href: "/settings"},
		}
	}

	return []Story{
		{
			ID:          "navigation/horizontal",
			Title:       "Horizontal",
			Group:       "navigation",
			Description: "Top bar with brand and active item.",
			Component: func() templ.Component {
				return components.Navigation(components.NavigationProps{
					Items: items(),
					Brand: components.Text(components.TextProps{Content: "tailkit", Style: tailwind.TextProps{Weight: tailwind.WeightBold}}),
				})
			},
		},
		{
			ID:          "navigation/vertical",
			Title:       "Vertical",
			Group:       "navigation",
			Description: "Sidebar-style stacked items.",
			Component: func() templ.Component {
				return components.Navigation(components.NavigationProps{Items: items(), Vertical: true, Label: "Sidebar"})
			},
		},
		{
			ID:          "navigation/collapsible",
			Title:       "Collapsible",
			Group:       "navigation",
			Description: "Small-screen toggle with the menu collapsed.",
			Component: func() templ.Component {
				return components.Navigation(components.NavigationProps{Items: items(), Collapsible: true, Collapsed: true})
			},
		},
	}
}

func alertStories() []Story {
	tones := []struct {
		id      string
		title   string
		variant tailwind.AlertVariant
		message string
	}{
		{"alert/success", "Success", tailwind.AlertSuccess, "Changes saved."},
		{"alert/error", "Error", tailwind.AlertError, "Could not reach the server."},
		{"alert/warning", "Warning", tailwind.AlertWarning, "Usage is near the plan limit."},
		{"alert/info", "Info", tailwind.AlertInfo, "A new version is available."},
	}

	var stories []Story
	for _, tone := range tones {
		variant := tone.variant
		title := tone.title
		message := tone.message
		stories = append(stories, Story{
			ID:          tone.id,
			Title:       title,
			Group:       "alert",
			Description: title + " tone with its ARIA role.",
			Component: func() templ.Component {
				return components.NewAlert(variant, message).WithTitle(title)
			},
		})
	}

	stories = append(stories, Story{
		ID:          "alert/dismissible",
		Title:       "Dismissible",
		Group:       "alert",
		Description: "Info alert with a dismiss control.",
		Component: func() templ.Component {
			return components.NewAlert(tailwind.AlertInfo, "Session expires in five minutes.").WithDismissible(true)
		},
	})

	return stories
}
