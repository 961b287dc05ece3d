package model

import "strings"

// RemoteRepository is a repository as returned by the GitHub API.
type RemoteRepository struct {
	Name          string
	GitURL        string
	SSHURL        string
	CloneURL      string
	DefaultBranch string
	Archived      bool
	Fork          bool
}

// CloneSource returns the URL passed to git clone.
func (x *RemoteRepository) CloneSource() string {
	if x.GitURL != "" {
		return SSHCloneURL(x.GitURL)
	}
	return x.SSHURL
}

type RemoteRepositories []*RemoteRepository

func (x RemoteRepositories) Names() []string {
	names := make([]string, len(x))
	for i, repo := range x {
		names[i] = repo.Name
	}
	return names
}

// Index maps repository name to repository.
func (x RemoteRepositories) Index() map[string]*RemoteRepository {
	index := make(map[string]*RemoteRepository, len(x))
	for _, repo := range x {
		index[repo.Name] = repo
	}
	return index
}

// SSHCloneURL converts an anonymous git:// URL into the SSH form so that clone uses the
// caller's SSH credentials, e.g. git://github.com/org/repo.git becomes
// git@github.com:org/repo.git. Other URLs are returned as they are.
func SSHCloneURL(url string) string {
	const scheme = "git://"
	if !strings.HasPrefix(url, scheme) {
		return url
	}

	host, path, found := strings.Cut(strings.TrimPrefix(url, scheme), "/")
	if !found || host == "" {
		return url
	}
	return "git@" + host + ":" + path
}
