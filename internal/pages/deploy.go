package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/github-pages-mcp/gh"
)

const (
	defaultCommitMessage = "Deploy to GitHub Pages"
	defaultEncoding      = "utf-8"

	blobMode = "100644"
	blobType = "blob"
)

type fileChange struct {
	Path     string
	Content  string
	Encoding string
}

type deployInput struct {
	Owner   string
	Repo    string
	Branch  string
	Message string
	Files   []fileChange
}

func parseDeployInput(raw map[string]any) deployInput {
	in := deployInput{
		Owner:   stringArg(raw, "owner"),
		Repo:    stringArg(raw, "repo"),
		Branch:  stringArg(raw, "branch"),
		Message: defaultCommitMessage,
	}

	if message, ok := optionalString(raw, "message"); ok && message != "" {
		in.Message = message
	}

	files, _ := raw["files"].([]any)
	for _, item := range files {
		entry, _ := item.(map[string]any)
		change := fileChange{
			Path:     stringArg(entry, "path"),
			Content:  stringArg(entry, "content"),
			Encoding: defaultEncoding,
		}
		if encoding, ok := optionalString(entry, "encoding"); ok && encoding != "" {
			change.Encoding = encoding
		}

		in.Files = append(in.Files, change)
	}

	return in
}

type deployPayload struct {
	Success       bool   `json:"success"`
	CommitSHA     string `json:"commit_sha"`
	FilesDeployed int    `json:"files_deployed"`
}

// Deploy publishes a batch of files onto an existing branch by building a
// commit from scratch objects: resolve the branch tip, read its root tree,
// write one blob per file, layer a new tree over the base tree, commit it
// with the tip as sole parent, and move the branch reference forward.
//
// Files not mentioned in the batch are inherited unchanged from the base
// tree. If the sequence fails partway, the objects created so far remain
// orphaned upstream until garbage collection; nothing is retried, including
// a reference update rejected because the branch moved concurrently.
func (h *Handlers) Deploy(ctx context.Context, raw map[string]any) *Result {
	in := parseDeployInput(raw)

	if len(in.Files) == 0 {
		return Rejected("No files provided for deployment")
	}

	ref := "heads/" + in.Branch

	tip, err := h.client.GetRef(ctx, in.Owner, in.Repo, ref)
	if err != nil {
		return UpstreamFailure(err)
	}

	baseTree, err := h.client.GetCommit(ctx, in.Owner, in.Repo, tip)
	if err != nil {
		return UpstreamFailure(err)
	}

	// Blob creation for distinct files is independent and runs
	// concurrently; entries keep the caller's file order.
	entries := make([]gh.TreeEntry, len(in.Files))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range in.Files {
		g.Go(func() error {
			sha, err := h.client.CreateBlob(gctx, in.Owner, in.Repo, file.Content, file.Encoding)
			if err != nil {
				return err
			}

			entries[i] = gh.TreeEntry{Path: file.Path, Mode: blobMode, Type: blobType, SHA: sha}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return UpstreamFailure(err)
	}

	tree, err := h.client.CreateTree(ctx, in.Owner, in.Repo, baseTree, entries)
	if err != nil {
		return UpstreamFailure(err)
	}

	commit, err := h.client.CreateCommit(ctx, in.Owner, in.Repo, in.Message, tree, []string{tip})
	if err != nil {
		return UpstreamFailure(err)
	}

	if err := h.client.UpdateRef(ctx, in.Owner, in.Repo, ref, commit); err != nil {
		return UpstreamFailure(err)
	}

	return OK(deployPayload{
		Success:       true,
		CommitSHA:     commit,
		FilesDeployed: len(in.Files),
	})
}
