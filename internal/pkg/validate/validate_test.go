package validate

import (
	"testing"

	"github.com/go-token-issuer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStruct_MissingUserID(t *testing.T) {
	err := Struct(domain.IssueTokenRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.ErrorContains(t, err, "field 'UserID' failed 'required'")
}

func TestStruct_EmptyUserIDIsPresent(t *testing.T) {
	empty := ""
	assert.NoError(t, Struct(domain.IssueTokenRequest{UserID: &empty}))
}

func TestStruct_NonRequiredTag(t *testing.T) {
	type req struct {
		Name string `validate:"max=3"`
	}
	err := Struct(req{Name: "abcdef"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.NotErrorIs(t, err, domain.ErrMissingField)
}
