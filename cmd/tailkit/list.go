package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
)

type listOptions struct {
	jsonOutput bool
	group      string
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available component stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.group, "group", "", "Only list stories in this group")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	stories := gallery.Builtin().List()

	if opts.group != "" {
		filtered := stories[:0]
		for _, story := range stories {
			if story.Group == opts.group {
				filtered = append(filtered, story)
			}
		}
		stories = filtered
	}

	if len(stories) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No stories in group %q.\n", opts.group)
		fmt.Fprintf(cmd.OutOrStdout(), "\nRun 'tailkit list' to see every group.\n")
		return nil
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, stories)
	}

	return renderListTable(cmd, stories)
}

func renderListTable(cmd *cobra.Command, stories []gallery.Story) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tGROUP\tTITLE\tDESCRIPTION")

	truncate := isTerminal(cmd.OutOrStdout())

	for _, story := range stories {
		description := story.Description
		if truncate && len(description) > 60 {
			description = description[:57] + "..."
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			story.ID,
			story.Group,
			story.Title,
			description,
		)
	}

	return writer.Flush()
}

type listJSONStory struct {
	ID          string `json:"id"`
	Group       string `json:"group"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type listJSONPayload struct {
	Version string          `json:"version"`
	Count   int             `json:"count"`
	Stories []listJSONStory `json:"stories"`
}

func renderListJSON(cmd *cobra.Command, stories []gallery.Story) error {
	payload := listJSONPayload{
		Version: "1.0",
		Count:   len(stories),
		Stories: make([]listJSONStory, len(stories)),
	}

	for i, story := range stories {
		payload.Stories[i] = listJSONStory{
			ID:          story.ID,
			Group:       story.Group,
			Title:       story.Title,
			Description: story.Description,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// isTerminal reports whether the writer is an interactive terminal. Buffer
// captures in tests always get the full description.
func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
