package model

// RepositoryOwner is the owner block of the push event's repository
type RepositoryOwner struct {
	Name  string
	Email string
	Login string
}

// CommitRecord is one commit delivered with a push event
type CommitRecord struct {
	ID      string
	Message string
}

// PushEvent represents the subset of a GitHub push payload used for releasing.
// Commits keep the order in which the event delivered them, which is not
// guaranteed to be chronological.
type PushEvent struct {
	Ref     string
	After   string
	Owner   RepositoryOwner
	Commits []CommitRecord
}
