package targets

import (
	"github.com/iaksit/linux-timemachine/lib"

	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var localLog = logrus.WithFields(logrus.Fields{
	"target": "local",
})

type localOperations struct {
	log *logrus.Entry
}

func newLocalOperations() timemachine.Operations {
	return &localOperations{log: localLog}
}

// Part of timemachine.Operations interface
func (o *localOperations) PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: stat %s: %v", timemachine.ErrLocalIO, path, err)
	}
	return true, nil
}

// Part of timemachine.Operations interface
func (o *localOperations) DirectoryExists(path string) (bool, error) {
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: stat %s: %v", timemachine.ErrLocalIO, path, err)
	}
	return st.IsDir(), nil
}

// Part of timemachine.Operations interface
func (o *localOperations) SymlinkExists(path string) (bool, error) {
	st, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: lstat %s: %v", timemachine.ErrLocalIO, path, err)
	}
	return st.Mode()&os.ModeSymlink != 0, nil
}

// Part of timemachine.Operations interface
func (o *localOperations) Remove(path string) error {
	o.log.Debugf("remove %s", path)
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove %s: %v", timemachine.ErrLocalIO, path, err)
	}
	return nil
}

// Part of timemachine.Operations interface
func (o *localOperations) Rename(oldPath, newPath string) error {
	o.log.Debugf("rename %s -> %s", oldPath, newPath)
	err := os.Rename(oldPath, newPath)
	if err != nil {
		return fmt.Errorf("%w: rename %s -> %s: %v", timemachine.ErrLocalIO, oldPath, newPath, err)
	}
	return nil
}

// Part of timemachine.Operations interface
func (o *localOperations) Symlink(target, linkName string) error {
	o.log.Debugf("symlink %s -> %s", linkName, target)
	err := os.Symlink(target, linkName)
	if err != nil {
		return fmt.Errorf("%w: symlink %s -> %s: %v", timemachine.ErrLocalIO, linkName, target, err)
	}
	return nil
}

// Part of timemachine.Operations interface
func (o *localOperations) ReadLink(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("%w: readlink %s: %v", timemachine.ErrLocalIO, path, err)
	}
	return target, nil
}

// Part of timemachine.Operations interface
func (o *localOperations) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: readdir %s: %v", timemachine.ErrLocalIO, path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
