package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	apptoken "github.com/go-token-issuer/internal/application/token"
	"github.com/go-token-issuer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTokenStore struct{ mock.Mock }

func (m *mockTokenStore) Put(ctx context.Context, t *domain.Token) error {
	return m.Called(ctx, t).Error(0)
}
func (m *mockTokenStore) List(ctx context.Context) ([]domain.Token, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

type fixedGenerator string

func (g fixedGenerator) New() (string, error) { return string(g), nil }

func newHandler(store *mockTokenStore) *Handler {
	return NewHandler(apptoken.NewService(apptoken.ServiceDeps{
		Store:     store,
		Generator: fixedGenerator("0123456789abcde"),
		Now:       func() time.Time { return time.Unix(1700000000, 0) },
	}))
}

func decodeEvent(t *testing.T, raw string) Event {
	t.Helper()
	var ev Event
	require.NoError(t, json.Unmarshal([]byte(raw), &ev))
	return ev
}

func TestHandle_Success(t *testing.T) {
	store := &mockTokenStore{}
	store.On("Put", mock.Anything, &domain.Token{UserID: "alice", Token: "0123456789abcde", ExpiryTime: 1700000300}).Return(nil).Once()

	resp, err := newHandler(store).Handle(context.Background(), decodeEvent(t, `{"user_id":"alice"}`))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Token generated successfully. Token#: '0123456789abcde' expires in 5 minutes", resp.Body)
	store.AssertExpectations(t)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"statusCode":200,"body":"Token generated successfully. Token#: '0123456789abcde' expires in 5 minutes"}`, string(out))
}

func TestHandle_MissingUserID(t *testing.T) {
	store := &mockTokenStore{}

	_, err := newHandler(store).Handle(context.Background(), decodeEvent(t, `{"other":"x"}`))

	assert.ErrorIs(t, err, domain.ErrMissingField)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestHandle_StorageFailurePropagates(t *testing.T) {
	store := &mockTokenStore{}
	store.On("Put", mock.Anything, mock.Anything).Return(errors.New("throttled")).Once()

	_, err := newHandler(store).Handle(context.Background(), decodeEvent(t, `{"user_id":"alice"}`))

	assert.ErrorIs(t, err, domain.ErrStorageWrite)
	assert.ErrorContains(t, err, "throttled")
	store.AssertNumberOfCalls(t, "Put", 1)
}
