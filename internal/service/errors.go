package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoUserRepository      = errors.New("user repository is not configured")
)
