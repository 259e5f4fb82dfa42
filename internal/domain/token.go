package domain

// Token is an issued 2FA verification token.
// ExpiryTime is a Unix timestamp used as the store TTL attribute.
type Token struct {
	UserID     string `json:"user_id" dynamodbav:"user_id" redis:"user_id"`
	Token      string `json:"token" dynamodbav:"token" redis:"token"`
	ExpiryTime int64  `json:"expiry_time" dynamodbav:"expiry_time" redis:"expiry_time"` // TTL (Unix seconds)
}

// IssueTokenRequest is the invocation payload for issuing a token.
// UserID is a pointer so an absent field is distinguishable from an empty one.
type IssueTokenRequest struct {
	UserID *string `json:"user_id" validate:"required"`
}
