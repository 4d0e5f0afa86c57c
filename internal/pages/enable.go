package pages

import (
	"context"

	"github.com/wagiedev/github-pages-mcp/gh"
)

// Defaults applied when the caller omits the optional enable settings.
const (
	defaultSourcePath = "/"
	defaultBuildType  = "legacy"
)

type enableInput struct {
	Owner     string
	Repo      string
	Branch    string
	Path      string
	BuildType string
}

func parseEnableInput(raw map[string]any) enableInput {
	in := enableInput{
		Owner:     stringArg(raw, "owner"),
		Repo:      stringArg(raw, "repo"),
		Path:      defaultSourcePath,
		BuildType: defaultBuildType,
	}

	if source := objectArg(raw, "source"); source != nil {
		in.Branch = stringArg(source, "branch")
		if path, ok := optionalString(source, "path"); ok && path != "" {
			in.Path = path
		}
	}

	if buildType, ok := optionalString(raw, "build_type"); ok && buildType != "" {
		in.BuildType = buildType
	}

	return in
}

type enablePayload struct {
	Success   bool           `json:"success"`
	URL       string         `json:"url"`
	Source    gh.PagesSource `json:"source"`
	BuildType string         `json:"build_type"`
}

// Enable turns on GitHub Pages for a repository, defaulting the source
// path to "/" and the build type to "legacy".
func (h *Handlers) Enable(ctx context.Context, raw map[string]any) *Result {
	in := parseEnableInput(raw)

	info, err := h.client.CreatePages(ctx, in.Owner, in.Repo, gh.PagesCreate{
		Branch:    in.Branch,
		Path:      in.Path,
		BuildType: in.BuildType,
	})
	if err != nil {
		return UpstreamFailure(err)
	}

	return OK(enablePayload{
		Success:   true,
		URL:       info.URL,
		Source:    info.Source,
		BuildType: info.BuildType,
	})
}
