package preprocess

import (
	"github.com/go-git/go-git/v5"
)

// resolveCommitHash best-effort resolves the current HEAD commit hash for
// root, searching parent directories for a ".git" the way a checkout of a
// subdirectory would expect. Any failure (not a repo, detached weirdness,
// shallow clone with no HEAD) yields the empty string: commit enrichment
// is optional metadata on the code-block record, never load-bearing for
// detection itself.
func resolveCommitHash(root string) string {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	return head.Hash().String()
}
