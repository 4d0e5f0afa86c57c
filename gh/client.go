package gh

import (
	"context"
)

// PagesSource identifies where Pages content is served from.
type PagesSource struct {
	Branch string `json:"branch"`
	Path   string `json:"path"`
}

// PagesInfo is the upstream-reported Pages configuration for a repository.
// All fields are read-only snapshots of upstream state.
type PagesInfo struct {
	URL       string      `json:"html_url"`
	Status    string      `json:"status"`
	CNAME     *string     `json:"cname"`
	Custom404 bool        `json:"custom_404"`
	Source    PagesSource `json:"source"`
	BuildType string      `json:"build_type"`
	Public    bool        `json:"public"`
}

// PagesCreate holds the settings for enabling Pages on a repository.
type PagesCreate struct {
	Branch    string
	Path      string
	BuildType string
}

// PagesUpdate carries a partial settings change. Nil pointer fields are
// left untouched upstream. The custom domain is tri-state: untouched when
// CNAMESet is false, cleared when CNAMESet is true with a nil or empty
// CNAME, replaced otherwise.
type PagesUpdate struct {
	Source    *PagesSource
	BuildType *string
	CNAME     *string
	CNAMESet  bool
}

// TreeEntry describes one path written into a layered tree.
type TreeEntry struct {
	Path string
	Mode string
	Type string
	SHA  string
}

// Client is the upstream GitHub API surface used by the tool handlers.
// Every call is a single bounded request/response; failures carry an
// APIError when the upstream reported a status.
type Client interface {
	// CreatePages enables Pages for a repository and returns the
	// resulting configuration.
	CreatePages(ctx context.Context, owner, repo string, cfg PagesCreate) (*PagesInfo, error)

	// GetPages returns the current Pages configuration. A repository
	// without Pages yields an APIError with status 404.
	GetPages(ctx context.Context, owner, repo string) (*PagesInfo, error)

	// UpdatePages applies a partial settings change and returns the
	// resulting configuration.
	UpdatePages(ctx context.Context, owner, repo string, update PagesUpdate) (*PagesInfo, error)

	// DisablePages removes the Pages site from a repository.
	DisablePages(ctx context.Context, owner, repo string) error

	// GetRef resolves a reference such as "heads/gh-pages" to the commit
	// SHA it points at.
	GetRef(ctx context.Context, owner, repo, ref string) (string, error)

	// GetCommit returns the root tree SHA of a commit.
	GetCommit(ctx context.Context, owner, repo, sha string) (string, error)

	// CreateBlob writes one content-addressed blob and returns its SHA.
	// Encoding is "utf-8" or "base64".
	CreateBlob(ctx context.Context, owner, repo, content, encoding string) (string, error)

	// CreateTree layers entries on top of baseTree and returns the SHA
	// of the new tree. Paths not mentioned are inherited unchanged.
	CreateTree(ctx context.Context, owner, repo, baseTree string, entries []TreeEntry) (string, error)

	// CreateCommit writes a commit referencing tree with the given
	// parents and returns its SHA.
	CreateCommit(ctx context.Context, owner, repo, message, tree string, parents []string) (string, error)

	// UpdateRef moves a reference such as "heads/gh-pages" to sha. The
	// move is not forced; upstream rejects non-fast-forward updates.
	UpdateRef(ctx context.Context, owner, repo, ref, sha string) error
}
