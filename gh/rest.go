package gh

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/go-github/v79/github"
)

// Compile-time verification that RESTClient implements Client.
var _ Client = (*RESTClient)(nil)

// RESTClient implements Client on top of the go-github REST client.
type RESTClient struct {
	gh *github.Client
}

// NewRESTClient wraps an already-configured go-github client.
func NewRESTClient(client *github.Client) *RESTClient {
	return &RESTClient{gh: client}
}

// NewTokenClient builds a RESTClient authenticated with a personal access
// token. An empty token yields an unauthenticated client; the first call
// that needs credentials fails with an upstream auth error.
func NewTokenClient(token string) *RESTClient {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	return &RESTClient{gh: client}
}

// CreatePages enables Pages for a repository.
func (c *RESTClient) CreatePages(ctx context.Context, owner, repo string, cfg PagesCreate) (*PagesInfo, error) {
	pages, resp, err := c.gh.Repositories.EnablePages(ctx, owner, repo, &github.Pages{
		BuildType: github.Ptr(cfg.BuildType),
		Source: &github.PagesSource{
			Branch: github.Ptr(cfg.Branch),
			Path:   github.Ptr(cfg.Path),
		},
	})
	if err != nil {
		return nil, classify(resp, err)
	}

	return convertPages(pages), nil
}

// GetPages returns the current Pages configuration.
func (c *RESTClient) GetPages(ctx context.Context, owner, repo string) (*PagesInfo, error) {
	pages, resp, err := c.gh.Repositories.GetPagesInfo(ctx, owner, repo)
	if err != nil {
		return nil, classify(resp, err)
	}

	return convertPages(pages), nil
}

// UpdatePages applies a partial settings change. The upstream update
// endpoint returns no body and serializes cname unconditionally, so the
// current settings are read first to carry an untouched domain through,
// and read again afterwards to report the result.
func (c *RESTClient) UpdatePages(ctx context.Context, owner, repo string, update PagesUpdate) (*PagesInfo, error) {
	current, err := c.GetPages(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	opts := &github.PagesUpdate{}
	if update.Source != nil {
		opts.Source = &github.PagesSource{Branch: github.Ptr(update.Source.Branch)}
		if update.Source.Path != "" {
			opts.Source.Path = github.Ptr(update.Source.Path)
		}
	}
	if update.BuildType != nil {
		opts.BuildType = update.BuildType
	}

	switch {
	case !update.CNAMESet:
		opts.CNAME = current.CNAME
	case update.CNAME != nil && *update.CNAME != "":
		opts.CNAME = update.CNAME
	default:
		// nil marshals as an explicit null, which drops the domain.
		opts.CNAME = nil
	}

	resp, err := c.gh.Repositories.UpdatePages(ctx, owner, repo, opts)
	if err != nil {
		return nil, classify(resp, err)
	}

	return c.GetPages(ctx, owner, repo)
}

// DisablePages removes the Pages site from a repository.
func (c *RESTClient) DisablePages(ctx context.Context, owner, repo string) error {
	resp, err := c.gh.Repositories.DisablePages(ctx, owner, repo)
	if err != nil {
		return classify(resp, err)
	}

	return nil
}

// GetRef resolves a reference to the commit SHA it points at.
func (c *RESTClient) GetRef(ctx context.Context, owner, repo, ref string) (string, error) {
	reference, resp, err := c.gh.Git.GetRef(ctx, owner, repo, "refs/"+ref)
	if err != nil {
		return "", classify(resp, err)
	}

	return reference.GetObject().GetSHA(), nil
}

// GetCommit returns the root tree SHA of a commit.
func (c *RESTClient) GetCommit(ctx context.Context, owner, repo, sha string) (string, error) {
	commit, resp, err := c.gh.Git.GetCommit(ctx, owner, repo, sha)
	if err != nil {
		return "", classify(resp, err)
	}

	return commit.GetTree().GetSHA(), nil
}

// CreateBlob writes one content-addressed blob.
func (c *RESTClient) CreateBlob(ctx context.Context, owner, repo, content, encoding string) (string, error) {
	blob, resp, err := c.gh.Git.CreateBlob(ctx, owner, repo, github.Blob{
		Content:  github.Ptr(content),
		Encoding: github.Ptr(encoding),
	})
	if err != nil {
		return "", classify(resp, err)
	}

	return blob.GetSHA(), nil
}

// CreateTree layers entries on top of baseTree.
func (c *RESTClient) CreateTree(ctx context.Context, owner, repo, baseTree string, entries []TreeEntry) (string, error) {
	ghEntries := make([]*github.TreeEntry, len(entries))
	for i, e := range entries {
		ghEntries[i] = &github.TreeEntry{
			Path: github.Ptr(e.Path),
			Mode: github.Ptr(e.Mode),
			Type: github.Ptr(e.Type),
			SHA:  github.Ptr(e.SHA),
		}
	}

	tree, resp, err := c.gh.Git.CreateTree(ctx, owner, repo, baseTree, ghEntries)
	if err != nil {
		return "", classify(resp, err)
	}

	return tree.GetSHA(), nil
}

// CreateCommit writes a commit referencing tree with the given parents.
func (c *RESTClient) CreateCommit(ctx context.Context, owner, repo, message, tree string, parents []string) (string, error) {
	parentCommits := make([]*github.Commit, len(parents))
	for i, p := range parents {
		parentCommits[i] = &github.Commit{SHA: github.Ptr(p)}
	}

	commit := github.Commit{
		Message: github.Ptr(message),
		Tree:    &github.Tree{SHA: github.Ptr(tree)},
		Parents: parentCommits,
	}

	created, resp, err := c.gh.Git.CreateCommit(ctx, owner, repo, commit, nil)
	if err != nil {
		return "", classify(resp, err)
	}

	return created.GetSHA(), nil
}

// UpdateRef moves a reference to sha without forcing.
func (c *RESTClient) UpdateRef(ctx context.Context, owner, repo, ref, sha string) error {
	_, resp, err := c.gh.Git.UpdateRef(ctx, owner, repo, "refs/"+ref, github.UpdateRef{
		SHA:   sha,
		Force: github.Ptr(false),
	})
	if err != nil {
		return classify(resp, err)
	}

	return nil
}

// classify converts a go-github failure into an APIError, preserving the
// upstream status and any structured error details.
func classify(resp *github.Response, err error) error {
	apiErr := &APIError{Message: err.Error()}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		if ghErr.Message != "" {
			apiErr.Message = ghErr.Message
		}
		if len(ghErr.Errors) > 0 {
			if body, marshalErr := json.Marshal(ghErr.Errors); marshalErr == nil {
				apiErr.Body = body
			}
		}
	}

	if resp != nil {
		apiErr.StatusCode = resp.StatusCode
	}

	return apiErr
}

func convertPages(p *github.Pages) *PagesInfo {
	info := &PagesInfo{
		URL:       p.GetHTMLURL(),
		Status:    p.GetStatus(),
		CNAME:     p.CNAME,
		Custom404: p.GetCustom404(),
		BuildType: p.GetBuildType(),
		Public:    p.GetPublic(),
	}
	if src := p.GetSource(); src != nil {
		info.Source = PagesSource{Branch: src.GetBranch(), Path: src.GetPath()}
	}

	return info
}
