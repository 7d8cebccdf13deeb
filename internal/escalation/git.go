package escalation

import (
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Publisher delivers an already-written artifact to the shared repository.
// A nil error means the evidence reached the remote.
type Publisher interface {
	Publish(filename string) error
}

// GitPublisher stages, commits and pushes an artifact inside a local
// checkout. It assumes a single active session per checkout; concurrent
// writers are not coordinated.
type GitPublisher struct {
	repoPath    string
	remote      string
	branch      string
	authorName  string
	authorEmail string
}

func NewGitPublisher(repoPath, remote, branch, authorName, authorEmail string) (*GitPublisher, error) {
	// Fail fast if the path is not a usable checkout
	if _, err := git.PlainOpen(repoPath); err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", repoPath, err)
	}
	return &GitPublisher{
		repoPath:    repoPath,
		remote:      remote,
		branch:      branch,
		authorName:  authorName,
		authorEmail: authorEmail,
	}, nil
}

func (p *GitPublisher) Publish(filename string) error {
	repo, err := git.PlainOpen(p.repoPath)
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	if _, err := wt.Add(filename); err != nil {
		return fmt.Errorf("stage %s: %w", filename, err)
	}

	msg := fmt.Sprintf("Add flagged content file %s", filename)
	_, err = wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  p.authorName,
			Email: p.authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("commit %s: %w", filename, err)
	}

	refSpec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", p.branch, p.branch))
	err = repo.Push(&git.PushOptions{
		RemoteName: p.remote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
	})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return fmt.Errorf("push to %s/%s: %w", p.remote, p.branch, err)
	}
	return nil
}
