package namespace

import (
	"fmt"

	"github.com/klingtnet/foldersim/names"
)

var (
	// ErrNotAFolder indicates an attempt to add a child to, or descend into, a file.
	ErrNotAFolder = fmt.Errorf("not a folder")
	// ErrChildNotFound indicates that the current folder has no folder of the requested name.
	ErrChildNotFound = fmt.Errorf("folder not found")
	// ErrAlreadyAtRoot indicates an attempt to ascend from the root folder.
	ErrAlreadyAtRoot = fmt.Errorf("already at the root folder")
	// ErrSessionEnded indicates that the session has been torn down.
	ErrSessionEnded = fmt.Errorf("session has ended")

	// ErrInvalidName indicates a name rejected by normalization.
	ErrInvalidName = fmt.Errorf("invalid name")
	// ErrNameTooLong indicates a name longer than names.MaxLength characters.
	ErrNameTooLong = names.ErrTooLong
	// ErrUnknownKind indicates a kind that is neither File nor Folder.
	ErrUnknownKind = fmt.Errorf("unknown kind")
	// ErrNoSuchNode indicates an identifier that does not address a node of the tree.
	ErrNoSuchNode = fmt.Errorf("no such node")
	// ErrDetached indicates a parent that is not reachable from the root.
	ErrDetached = fmt.Errorf("node is not attached to the root")
	// ErrAlreadyAttached indicates a child that already has a parent or is the root.
	ErrAlreadyAttached = fmt.Errorf("node is already attached")
	// ErrReleased indicates a node that has been destroyed.
	ErrReleased = fmt.Errorf("node has been released")
)
