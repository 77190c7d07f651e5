package timemachine

// Operations is the capability set the backup protocol needs on a destination
// filesystem. It is implemented once for local paths and once for remote paths
// over ssh; the orchestrator is written against this interface and is oblivious
// to locality.
//
// All paths are absolute within the destination's filesystem. Rename and
// Symlink never cross filesystems: both arguments always live inside the same
// destination.
type Operations interface {
	PathExists(path string) (bool, error)
	DirectoryExists(path string) (bool, error)
	SymlinkExists(path string) (bool, error)

	Remove(path string) error
	Rename(oldPath, newPath string) error

	// Symlink creates a symlink at linkName pointing at target. Target is a
	// bare snapshot name (relative), so the destination stays relocatable.
	Symlink(target, linkName string) error

	// ReadLink returns the target of the symlink at path.
	ReadLink(path string) (string, error)

	// ListDir returns the entry names of a directory, unordered.
	ListDir(path string) ([]string, error)
}

// TransferRunner invokes the transfer engine with a fully built argument set
// and reports its exit status as an error. The real implementation execs
// rsync; tests substitute fakes.
type TransferRunner interface {
	Run(args []string) error
}
