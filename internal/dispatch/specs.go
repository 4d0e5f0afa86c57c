package dispatch

import (
	"context"

	"github.com/wagiedev/github-pages-mcp/internal/pages"
	"github.com/wagiedev/github-pages-mcp/internal/schema"
)

// Spec pairs one tool's identity and input constraints with its handler.
// Specs are registered once at construction and never mutated.
type Spec struct {
	Name        string
	Description string
	Schema      schema.Object
	Handler     func(ctx context.Context, raw map[string]any) *pages.Result
}

func ownerRepoFields() []schema.Field {
	return []schema.Field{
		{Name: "owner", Kind: schema.KindString, Required: true, Description: "Repository owner (user or organization)"},
		{Name: "repo", Kind: schema.KindString, Required: true, Description: "Repository name"},
	}
}

// Specs returns the five Pages tools in registration order.
func Specs(h *pages.Handlers) []Spec {
	return []Spec{
		{
			Name:        "enable_github_pages",
			Description: "Enable GitHub Pages for a repository",
			Schema: schema.Object{Fields: append(ownerRepoFields(),
				schema.Field{Name: "source", Kind: schema.KindObject, Required: true, Description: "Publishing source for the Pages site", Fields: []schema.Field{
					{Name: "branch", Kind: schema.KindString, Required: true, Description: "Branch to publish from"},
					{Name: "path", Kind: schema.KindString, Enum: []string{"/", "/docs"}, Description: "Directory to publish from (defaults to /)"},
				}},
				schema.Field{Name: "build_type", Kind: schema.KindString, Enum: []string{"legacy", "workflow"}, Description: "Build process (defaults to legacy)"},
			)},
			Handler: h.Enable,
		},
		{
			Name:        "get_github_pages_info",
			Description: "Get the GitHub Pages configuration for a repository",
			Schema:      schema.Object{Fields: ownerRepoFields()},
			Handler:     h.Info,
		},
		{
			Name:        "deploy_to_github_pages",
			Description: "Deploy files to the GitHub Pages branch of a repository",
			Schema: schema.Object{Fields: append(ownerRepoFields(),
				schema.Field{Name: "branch", Kind: schema.KindString, Required: true, Description: "Branch to deploy to"},
				schema.Field{Name: "message", Kind: schema.KindString, Description: "Commit message (defaults to \"Deploy to GitHub Pages\")"},
				schema.Field{Name: "files", Kind: schema.KindArray, Description: "Files to deploy", Items: &schema.Field{
					Kind: schema.KindObject,
					Fields: []schema.Field{
						{Name: "path", Kind: schema.KindString, Required: true, Description: "Repository-relative file path"},
						{Name: "content", Kind: schema.KindString, Required: true, Description: "File content"},
						{Name: "encoding", Kind: schema.KindString, Enum: []string{"utf-8", "base64"}, Description: "Content encoding (defaults to utf-8)"},
					},
				}},
			)},
			Handler: h.Deploy,
		},
		{
			Name:        "disable_github_pages",
			Description: "Disable GitHub Pages for a repository",
			Schema:      schema.Object{Fields: ownerRepoFields()},
			Handler:     h.Disable,
		},
		{
			Name:        "update_github_pages_config",
			Description: "Update the GitHub Pages configuration of a repository",
			Schema: schema.Object{Fields: append(ownerRepoFields(),
				schema.Field{Name: "source", Kind: schema.KindObject, Description: "New publishing source", Fields: []schema.Field{
					{Name: "branch", Kind: schema.KindString, Description: "Branch to publish from"},
					{Name: "path", Kind: schema.KindString, Description: "Directory to publish from (/ or /docs)"},
				}},
				schema.Field{Name: "build_type", Kind: schema.KindString, Enum: []string{"legacy", "workflow"}, Description: "Build process"},
				schema.Field{Name: "cname", Kind: schema.KindString, Description: "Custom domain; null or empty clears it, omit to leave unchanged"},
			)},
			Handler: h.Update,
		},
	}
}
