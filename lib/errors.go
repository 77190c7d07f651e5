package timemachine

import (
	"errors"
)

var (
	// ErrPrecondition covers everything checked before the destination is
	// touched: missing source, missing destination, missing rsync/ssh binary.
	ErrPrecondition = errors.New("precondition failed")

	// ErrInvalidTarget is returned for a destination string with an empty
	// remote portion (e.g. ":/path").
	ErrInvalidTarget = errors.New("invalid target")

	// ErrLocalIO is a failed filesystem operation on a local target.
	ErrLocalIO = errors.New("local operation failed")

	// ErrRemoteExecution is a nonzero exit from a remote operation, connection
	// failures included.
	ErrRemoteExecution = errors.New("remote command failed")

	// ErrTransfer is a nonzero exit from the transfer engine. The staging
	// directory is left in place so the next run resumes it.
	ErrTransfer = errors.New("transfer failed")

	// ErrPublish is a failed rename of the staging directory to its final
	// snapshot name, typically a same-second name collision.
	ErrPublish = errors.New("cannot publish snapshot")

	// ErrPointerUpdate is a failed replacement of the current symlink. When the
	// old link was already removed, the destination is left pointer-less and
	// the next run falls back to a full backup.
	ErrPointerUpdate = errors.New("cannot update current pointer")
)
