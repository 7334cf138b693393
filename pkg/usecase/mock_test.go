package usecase_test

import (
	"context"
	"errors"

	"github.com/intrueder/npm-publish/pkg/domain/model"
)

// MockRegistryClient is a mock implementation of PackageRegistryClient
type MockRegistryClient struct {
	writeCredentialsFunc func(host, token string) error
	setRegistryFunc      func(url string) error
	publishFunc          func(access string, dryRun bool) error
	calls                []string
	publishCalls         []MockPublishCall
}

type MockPublishCall struct {
	Access string
	DryRun bool
}

func (m *MockRegistryClient) WriteCredentials(ctx context.Context, host, token string) error {
	m.calls = append(m.calls, "write-credentials "+host)
	if m.writeCredentialsFunc != nil {
		return m.writeCredentialsFunc(host, token)
	}
	return nil
}

func (m *MockRegistryClient) SetRegistry(ctx context.Context, url string) error {
	m.calls = append(m.calls, "set-registry "+url)
	if m.setRegistryFunc != nil {
		return m.setRegistryFunc(url)
	}
	return nil
}

func (m *MockRegistryClient) Publish(ctx context.Context, access string, dryRun bool) error {
	m.calls = append(m.calls, "publish")
	m.publishCalls = append(m.publishCalls, MockPublishCall{Access: access, DryRun: dryRun})
	if m.publishFunc != nil {
		return m.publishFunc(access, dryRun)
	}
	return nil
}

// MockGitClient is a mock implementation of VersionControlClient
type MockGitClient struct {
	existingTags       map[string]bool
	remoteTags         map[string]bool
	tagExistsErr       error
	setIdentityFunc    func(name, email string) error
	createTagFunc      func(name, message string) error
	pushTagFunc        func(remote, name string) error
	calls              []string
	createdTagMessages map[string]string
}

func (m *MockGitClient) TagExists(ctx context.Context, name string) (bool, error) {
	m.calls = append(m.calls, "tag-exists "+name)
	if m.tagExistsErr != nil {
		return false, m.tagExistsErr
	}
	return m.existingTags[name], nil
}

func (m *MockGitClient) RemoteTagExists(ctx context.Context, remote, name string) (bool, error) {
	m.calls = append(m.calls, "remote-tag-exists "+remote+" "+name)
	return m.remoteTags[name], nil
}

func (m *MockGitClient) SetIdentity(ctx context.Context, name, email string) error {
	m.calls = append(m.calls, "set-identity "+name+" <"+email+">")
	if m.setIdentityFunc != nil {
		return m.setIdentityFunc(name, email)
	}
	return nil
}

func (m *MockGitClient) CreateAnnotatedTag(ctx context.Context, name, message string) error {
	m.calls = append(m.calls, "create-tag "+name)
	if m.createdTagMessages == nil {
		m.createdTagMessages = map[string]string{}
	}
	m.createdTagMessages[name] = message
	if m.createTagFunc != nil {
		return m.createTagFunc(name, message)
	}
	return nil
}

func (m *MockGitClient) PushTag(ctx context.Context, remote, name string) error {
	m.calls = append(m.calls, "push-tag "+remote+" "+name)
	if m.pushTagFunc != nil {
		return m.pushTagFunc(remote, name)
	}
	return nil
}

// MockManifestReader is a mock implementation of ManifestReader
type MockManifestReader struct {
	manifest *model.Manifest
	err      error
	calls    []string
}

func (m *MockManifestReader) Read(ctx context.Context, workspaceDir string) (*model.Manifest, error) {
	m.calls = append(m.calls, workspaceDir)
	if m.err != nil {
		return nil, m.err
	}
	if m.manifest == nil {
		return nil, errors.New("mock not configured")
	}
	return m.manifest, nil
}

func commits(messages ...string) []model.CommitRecord {
	records := make([]model.CommitRecord, 0, len(messages))
	for _, msg := range messages {
		records = append(records, model.CommitRecord{Message: msg})
	}
	return records
}
