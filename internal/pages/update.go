package pages

import (
	"context"
	"fmt"

	"github.com/wagiedev/github-pages-mcp/gh"
)

type updateInput struct {
	Owner     string
	Repo      string
	Source    *gh.PagesSource
	BuildType *string
	CNAME     *string
	CNAMESet  bool
}

func parseUpdateInput(raw map[string]any) updateInput {
	in := updateInput{
		Owner: stringArg(raw, "owner"),
		Repo:  stringArg(raw, "repo"),
	}

	if source := objectArg(raw, "source"); source != nil {
		in.Source = &gh.PagesSource{
			Branch: stringArg(source, "branch"),
			Path:   stringArg(source, "path"),
		}
	}

	if buildType, ok := optionalString(raw, "build_type"); ok && buildType != "" {
		in.BuildType = &buildType
	}

	// cname is presence-checked, not truth-checked: an explicit null or
	// empty value clears the custom domain, while an omitted key leaves
	// it untouched.
	if cname, ok := optionalString(raw, "cname"); ok {
		in.CNAMESet = true
		if cname != "" {
			in.CNAME = &cname
		}
	}

	return in
}

type updatePayload struct {
	Success   bool           `json:"success"`
	URL       string         `json:"url"`
	Source    gh.PagesSource `json:"source"`
	BuildType string         `json:"build_type"`
	CNAME     *string        `json:"cname"`
}

// Update applies a partial Pages settings change containing only the
// fields the caller supplied. A source path outside "/" and "/docs" is
// rejected locally before any upstream call.
func (h *Handlers) Update(ctx context.Context, raw map[string]any) *Result {
	in := parseUpdateInput(raw)

	if in.Source != nil && in.Source.Path != "" &&
		in.Source.Path != "/" && in.Source.Path != "/docs" {
		return Rejected(fmt.Sprintf("source.path: invalid value %q, allowed values: /, /docs", in.Source.Path))
	}

	info, err := h.client.UpdatePages(ctx, in.Owner, in.Repo, gh.PagesUpdate{
		Source:    in.Source,
		BuildType: in.BuildType,
		CNAME:     in.CNAME,
		CNAMESet:  in.CNAMESet,
	})
	if err != nil {
		return UpstreamFailure(err)
	}

	return OK(updatePayload{
		Success:   true,
		URL:       info.URL,
		Source:    info.Source,
		BuildType: info.BuildType,
		CNAME:     info.CNAME,
	})
}
