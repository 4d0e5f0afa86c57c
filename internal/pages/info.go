package pages

import (
	"context"

	"github.com/wagiedev/github-pages-mcp/gh"
)

type infoPayload struct {
	Success   bool           `json:"success"`
	URL       string         `json:"url"`
	Status    string         `json:"status"`
	CNAME     *string        `json:"cname"`
	Custom404 bool           `json:"custom_404"`
	Source    gh.PagesSource `json:"source"`
	BuildType string         `json:"build_type"`
	Public    bool           `json:"public"`
}

// Info reports the current Pages configuration. A repository without
// Pages is a normal query outcome, not an error: the envelope carries
// Success false with an explanatory message and no error flag.
func (h *Handlers) Info(ctx context.Context, raw map[string]any) *Result {
	info, err := h.client.GetPages(ctx, stringArg(raw, "owner"), stringArg(raw, "repo"))
	if err != nil {
		if gh.IsNotFound(err) {
			return Rejected("GitHub Pages is not enabled for this repository")
		}

		return UpstreamFailure(err)
	}

	return OK(infoPayload{
		Success:   true,
		URL:       info.URL,
		Status:    info.Status,
		CNAME:     info.CNAME,
		Custom404: info.Custom404,
		Source:    info.Source,
		BuildType: info.BuildType,
		Public:    info.Public,
	})
}
