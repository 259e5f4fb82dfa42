package token

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/go-token-issuer/internal/domain"
	pkgtoken "github.com/go-token-issuer/internal/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockTokenStore struct{ mock.Mock }

func (m *mockTokenStore) Put(ctx context.Context, t *domain.Token) error {
	return m.Called(ctx, t).Error(0)
}
func (m *mockTokenStore) List(ctx context.Context) ([]domain.Token, error) {
	args := m.Called(ctx)
	if ts, _ := args.Get(0).([]domain.Token); ts != nil {
		return ts, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) New() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// --- helpers ---

var hex15 = regexp.MustCompile(`^[0-9a-f]{15}$`)

func strPtr(s string) *string { return &s }

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func realGenerator(t *testing.T) Generator {
	t.Helper()
	g, err := pkgtoken.NewGenerator(nil, pkgtoken.DefaultLength)
	require.NoError(t, err)
	return g
}

// --- IssueToken ---

func TestIssueToken_Alice(t *testing.T) {
	store := &mockTokenStore{}
	store.On("Put", mock.Anything, mock.MatchedBy(func(tok *domain.Token) bool {
		return tok.UserID == "alice" && tok.ExpiryTime == 1700000300 && hex15.MatchString(tok.Token)
	})).Return(nil).Once()

	svc := NewService(ServiceDeps{Store: store, Generator: realGenerator(t), Now: fixedClock(1700000000)})
	res, err := svc.IssueToken(context.Background(), domain.IssueTokenRequest{UserID: strPtr("alice")})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "alice", res.Token.UserID)
	assert.Equal(t, int64(1700000300), res.Token.ExpiryTime)
	assert.Regexp(t, hex15, res.Token.Token)
	assert.Equal(t, "Token generated successfully. Token#: '"+res.Token.Token+"' expires in 5 minutes", res.Body)
	store.AssertExpectations(t)
}

func TestIssueToken_ExpiryIsIssuancePlusTTL(t *testing.T) {
	store := &mockTokenStore{}
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	gen := &mockGenerator{}
	gen.On("New").Return("0123456789abcde", nil)

	for _, now := range []int64{0, 1, 1700000000, 1999999999} {
		svc := NewService(ServiceDeps{Store: store, Generator: gen, Now: fixedClock(now)})
		res, err := svc.IssueToken(context.Background(), domain.IssueTokenRequest{UserID: strPtr("u1")})
		require.NoError(t, err)
		assert.Equal(t, now+300, res.Token.ExpiryTime)
	}
}

func TestIssueToken_SuccessiveTokensDiffer(t *testing.T) {
	store := &mockTokenStore{}
	store.On("Put", mock.Anything, mock.Anything).Return(nil).Twice()

	svc := NewService(ServiceDeps{Store: store, Generator: realGenerator(t)})
	a, err := svc.IssueToken(context.Background(), domain.IssueTokenRequest{UserID: strPtr("alice")})
	require.NoError(t, err)
	b, err := svc.IssueToken(context.Background(), domain.IssueTokenRequest{UserID: strPtr("alice")})
	require.NoError(t, err)

	assert.NotEqual(t, a.Token.Token, b.Token.Token)
	store.AssertExpectations(t)
}

func TestIssueToken_MissingUserID_NoStoreCall(t *testing.T) {
	store := &mockTokenStore{}
	gen := &mockGenerator{}

	svc := NewService(ServiceDeps{Store: store, Generator: gen})
	_, err := svc.IssueToken(context.Background(), domain.IssueTokenRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingField))
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	gen.AssertNotCalled(t, "New")
}

func TestIssueToken_EmptyUserIDIsNotValidated(t *testing.T) {
	store := &mockTokenStore{}
	store.On("Put", mock.Anything, mock.MatchedBy(func(tok *domain.Token) bool { return tok.UserID == "" })).Return(nil).Once()

	svc := NewService(ServiceDeps{Store: store, Generator: realGenerator(t)})
	_, err := svc.IssueToken(context.Background(), domain.IssueTokenRequest{UserID: strPtr("")})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestIssueToken_StoreFailure_LoggedOnceNoRetry(t *testing.T) {
	storeErr := errors.New("ResourceNotFoundException: table not found")
	store := &mockTokenStore{}
	store.On("Put", mock.Anything, mock.Anything).Return(storeErr).Once()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	svc := NewService(ServiceDeps{Store: store, Generator: realGenerator(t), Logger: logger})
	res, err := svc.IssueToken(context.Background(), domain.IssueTokenRequest{UserID: strPtr("alice")})

	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, domain.ErrStorageWrite))
	assert.True(t, errors.Is(err, storeErr))
	store.AssertNumberOfCalls(t, "Put", 1)
	assert.Equal(t, 1, strings.Count(buf.String(), "error saving token"))
	assert.Contains(t, buf.String(), `"user_id":"alice"`)
}

func TestIssueToken_GeneratorFailure(t *testing.T) {
	store := &mockTokenStore{}
	gen := &mockGenerator{}
	gen.On("New").Return("", errors.New("entropy exhausted"))

	svc := NewService(ServiceDeps{Store: store, Generator: gen})
	_, err := svc.IssueToken(context.Background(), domain.IssueTokenRequest{UserID: strPtr("alice")})

	assert.ErrorContains(t, err, "entropy exhausted")
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

// --- ListTokens ---

func TestListTokens_PassesThrough(t *testing.T) {
	want := []domain.Token{{UserID: "alice", Token: "0123456789abcde", ExpiryTime: 1700000300}}
	store := &mockTokenStore{}
	store.On("List", mock.Anything).Return(want, nil)

	got, err := NewService(ServiceDeps{Store: store}).ListTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTTL_IsFiveMinutes(t *testing.T) {
	assert.Equal(t, 300*time.Second, TTL)
}

// --- humanDuration ---

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "5 minutes", humanDuration(5*time.Minute))
	assert.Equal(t, "1 minute", humanDuration(time.Minute))
	assert.Equal(t, "1m30s", humanDuration(90*time.Second))
}
