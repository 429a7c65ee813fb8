package model

import "errors"

// Sentinel errors surfaced by the repos. Handlers map these onto response
// statuses; callers test with errors.Is.
var (
	ErrNotFound       = errors.New("entity not found")
	ErrConflict       = errors.New("conflicting state")
	ErrGroupFull      = errors.New("group is full")
	ErrAlreadyMember  = errors.New("user is already a member of this group")
	ErrUpload         = errors.New("image upload failed")
	ErrTerminalStatus = errors.New("trip status is terminal")
)
