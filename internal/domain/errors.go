package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidToken    = errors.New("invalid token")

	ErrBadgeNotFound     = errors.New("badge not found")
	ErrUserBadgeNotFound = errors.New("user badge not found")

	ErrTargetNotFound    = errors.New("target not found")
	ErrInvalidTargetType = errors.New("invalid target type")

	ErrCannotCollaborateWithSelf    = errors.New("cannot send a collaboration request to yourself")
	ErrCollaborationRequestExists   = errors.New("collaboration request already exists")
	ErrCollaborationRequestNotFound = errors.New("collaboration request not found")
	ErrNotRequestReceiver           = errors.New("only the receiver can answer a collaboration request")
	ErrRequestAlreadyAnswered       = errors.New("collaboration request already answered")

	ErrNotificationNotFound = errors.New("notification not found")
)
