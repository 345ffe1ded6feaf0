package service

import "errors"

// Taxonomy shared by all services. Repositories surface pgx errors;
// services translate them into these sentinels so handlers never see a
// storage detail. "Not owned by caller" is deliberately identical to
// "does not exist".
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
