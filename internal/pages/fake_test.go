package pages

import (
	"context"
	"sync"

	"github.com/wagiedev/github-pages-mcp/gh"
)

// Compile-time verification that fakeClient implements gh.Client.
var _ gh.Client = (*fakeClient)(nil)

// fakeClient records every upstream call and serves scripted state. Blob
// SHAs are derived from content so deploy tests can assert tree entries
// without coordinating with the concurrent blob creation.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	pages    *gh.PagesInfo
	pagesErr error

	createErr  error
	updateErr  error
	disableErr error

	refs    map[string]string // ref -> commit SHA
	commits map[string]string // commit SHA -> tree SHA

	refErr          error
	commitErr       error
	blobErr         error
	treeErr         error
	createCommitErr error
	updateRefErr    error

	lastCreate gh.PagesCreate
	lastUpdate gh.PagesUpdate

	createdTrees   []treeRecord
	createdCommits []commitRecord
	updatedRefs    map[string]string
}

type treeRecord struct {
	baseTree string
	entries  []gh.TreeEntry
}

type commitRecord struct {
	message string
	tree    string
	parents []string
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}

	return n
}

func (f *fakeClient) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.calls)
}

func (f *fakeClient) CreatePages(_ context.Context, _, _ string, cfg gh.PagesCreate) (*gh.PagesInfo, error) {
	f.record("CreatePages")
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.lastCreate = cfg

	return &gh.PagesInfo{
		URL:       "https://octocat.github.io/site/",
		Status:    "building",
		Source:    gh.PagesSource{Branch: cfg.Branch, Path: cfg.Path},
		BuildType: cfg.BuildType,
	}, nil
}

func (f *fakeClient) GetPages(_ context.Context, _, _ string) (*gh.PagesInfo, error) {
	f.record("GetPages")
	if f.pagesErr != nil {
		return nil, f.pagesErr
	}

	info := *f.pages

	return &info, nil
}

func (f *fakeClient) UpdatePages(_ context.Context, _, _ string, update gh.PagesUpdate) (*gh.PagesInfo, error) {
	f.record("UpdatePages")
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	f.lastUpdate = update

	info := *f.pages
	if update.Source != nil {
		info.Source = *update.Source
	}
	if update.BuildType != nil {
		info.BuildType = *update.BuildType
	}
	if update.CNAMESet {
		info.CNAME = update.CNAME
	}
	f.pages = &info

	return &info, nil
}

func (f *fakeClient) DisablePages(_ context.Context, _, _ string) error {
	f.record("DisablePages")

	return f.disableErr
}

func (f *fakeClient) GetRef(_ context.Context, _, _, ref string) (string, error) {
	f.record("GetRef")
	if f.refErr != nil {
		return "", f.refErr
	}

	return f.refs[ref], nil
}

func (f *fakeClient) GetCommit(_ context.Context, _, _, sha string) (string, error) {
	f.record("GetCommit")
	if f.commitErr != nil {
		return "", f.commitErr
	}

	return f.commits[sha], nil
}

func (f *fakeClient) CreateBlob(_ context.Context, _, _, content, encoding string) (string, error) {
	f.record("CreateBlob")
	if f.blobErr != nil {
		return "", f.blobErr
	}

	return "blob-" + encoding + "-" + content, nil
}

func (f *fakeClient) CreateTree(_ context.Context, _, _, baseTree string, entries []gh.TreeEntry) (string, error) {
	f.record("CreateTree")
	if f.treeErr != nil {
		return "", f.treeErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdTrees = append(f.createdTrees, treeRecord{baseTree: baseTree, entries: entries})

	return "tree-new", nil
}

func (f *fakeClient) CreateCommit(_ context.Context, _, _, message, tree string, parents []string) (string, error) {
	f.record("CreateCommit")
	if f.createCommitErr != nil {
		return "", f.createCommitErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdCommits = append(f.createdCommits, commitRecord{message: message, tree: tree, parents: parents})

	return "commit-new", nil
}

func (f *fakeClient) UpdateRef(_ context.Context, _, _, ref, sha string) error {
	f.record("UpdateRef")
	if f.updateRefErr != nil {
		return f.updateRefErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updatedRefs == nil {
		f.updatedRefs = make(map[string]string)
	}
	f.updatedRefs[ref] = sha

	return nil
}
