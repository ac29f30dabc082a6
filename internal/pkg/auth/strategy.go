package auth

import "time"

// Strategy issues and verifies auth tokens carrying the user id and role.
// Role travels inside the signed payload so handlers never trust a
// client-supplied role claim.
type Strategy interface {
	IssueToken(userID int64, role string) (string, error)
	ParseToken(token string) (userID int64, role string, err error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
