package service

import "errors"

// ErrVersionIsNotSpecified is returned by NewAppInfoService for an empty version.
var ErrVersionIsNotSpecified = errors.New("service info: version is empty")
