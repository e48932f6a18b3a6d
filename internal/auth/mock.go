package auth

import (
	"context"
	"net/http"
)

// MockProvider is a mock auth provider for testing. Without custom funcs
// it behaves as an anonymous session with no accounts.
type MockProvider struct {
	// GetSessionFunc allows customizing session resolution behavior
	GetSessionFunc func(ctx context.Context, header http.Header) (*User, error)

	// SignUpEmailFunc allows customizing sign-up behavior
	SignUpEmailFunc func(ctx context.Context, params SignUpParams) (*Session, error)

	// SignInEmailFunc allows customizing sign-in behavior
	SignInEmailFunc func(ctx context.Context, params SignInParams) (*Session, error)

	// SignOutFunc allows customizing sign-out behavior
	SignOutFunc func(ctx context.Context, header http.Header) error

	// CallLog tracks method calls for test assertions
	CallLog []string
}

// NewMockProvider creates a new mock auth provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{CallLog: []string{}}
}

func (m *MockProvider) GetSession(ctx context.Context, header http.Header) (*User, error) {
	m.CallLog = append(m.CallLog, "GetSession")
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, header)
	}
	return nil, nil
}

func (m *MockProvider) SignUpEmail(ctx context.Context, params SignUpParams) (*Session, error) {
	m.CallLog = append(m.CallLog, "SignUpEmail")
	if m.SignUpEmailFunc != nil {
		return m.SignUpEmailFunc(ctx, params)
	}
	return &Session{User: &User{ID: "mock-user", Name: params.Name, Email: params.Email}}, nil
}

func (m *MockProvider) SignInEmail(ctx context.Context, params SignInParams) (*Session, error) {
	m.CallLog = append(m.CallLog, "SignInEmail")
	if m.SignInEmailFunc != nil {
		return m.SignInEmailFunc(ctx, params)
	}
	return &Session{User: &User{ID: "mock-user", Email: params.Email}}, nil
}

func (m *MockProvider) SignOut(ctx context.Context, header http.Header) error {
	m.CallLog = append(m.CallLog, "SignOut")
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, header)
	}
	return nil
}

var _ Provider = (*MockProvider)(nil)
