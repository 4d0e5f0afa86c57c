package pages

import (
	"context"
)

type disablePayload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Disable removes the Pages site from a repository.
func (h *Handlers) Disable(ctx context.Context, raw map[string]any) *Result {
	if err := h.client.DisablePages(ctx, stringArg(raw, "owner"), stringArg(raw, "repo")); err != nil {
		return UpstreamFailure(err)
	}

	return OK(disablePayload{
		Success: true,
		Message: "GitHub Pages disabled successfully",
	})
}
