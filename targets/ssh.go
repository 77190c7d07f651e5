package targets

import (
	"github.com/iaksit/linux-timemachine/lib"

	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

var sshLog = logrus.WithFields(logrus.Fields{
	"target": "ssh",
})

// sshOperations runs every capability as a single blocking ssh round trip.
// Commands are built as argument vectors and quoted with the same discipline
// as remote rsync paths; only the exit status carries meaning, except for
// readlink and ls whose stdout is read back. Stderr goes straight through for
// diagnostics.
type sshOperations struct {
	target *timemachine.Target
	ssh    []string
	log    *logrus.Entry
}

func newSshOperations(target *timemachine.Target, sshCommand []string) timemachine.Operations {
	return &sshOperations{
		target: target,
		ssh:    timemachine.SshArgs(sshCommand, target.Port),
		log:    sshLog.WithFields(logrus.Fields{"host": target.Host}),
	}
}

// remoteCommand builds the single string handed to the remote shell.
func (o *sshOperations) remoteCommand(argv ...string) string {
	return timemachine.ShellQuoteAll(argv)
}

func (o *sshOperations) command(argv ...string) *exec.Cmd {
	return timemachine.BuildCommand(o.ssh, o.target.HostSpec(), o.remoteCommand(argv...))
}

func (o *sshOperations) run(argv ...string) error {
	cmd := o.command(argv...)
	o.log.Debugf("running: %s", cmd.String())
	err := cmd.Run()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", timemachine.ErrRemoteExecution, o.remoteCommand(argv...), err)
	}
	return nil
}

// test runs test(1) remotely. Exit 1 is a clean "no"; anything else nonzero is
// a remote failure (ssh itself exits 255 when it cannot connect).
func (o *sshOperations) test(flag, path string) (bool, error) {
	cmd := o.command("test", flag, path)
	o.log.Debugf("running: %s", cmd.String())
	err := cmd.Run()
	if err == nil {
		return true, nil
	}

	exitErr, ok := err.(*exec.ExitError)
	if ok && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("%w: test %s %s: %v", timemachine.ErrRemoteExecution, flag, path, err)
}

// output runs a remote command and returns its stdout.
func (o *sshOperations) output(argv ...string) (string, error) {
	buf := bytes.NewBuffer(nil)
	cmd := o.command(argv...)
	cmd.Stdout = buf
	cmd.Stderr = os.Stderr
	o.log.Debugf("running: %s", cmd.String())
	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", timemachine.ErrRemoteExecution, o.remoteCommand(argv...), err)
	}
	return buf.String(), nil
}

// Part of timemachine.Operations interface
func (o *sshOperations) PathExists(path string) (bool, error) {
	return o.test("-e", path)
}

// Part of timemachine.Operations interface
func (o *sshOperations) DirectoryExists(path string) (bool, error) {
	return o.test("-d", path)
}

// Part of timemachine.Operations interface
func (o *sshOperations) SymlinkExists(path string) (bool, error) {
	return o.test("-h", path)
}

// Part of timemachine.Operations interface
func (o *sshOperations) Remove(path string) error {
	return o.run("rm", "-f", "--", path)
}

// Part of timemachine.Operations interface
func (o *sshOperations) Rename(oldPath, newPath string) error {
	// -T mirrors rename(2): fail on an existing populated directory instead
	// of moving into it.
	return o.run("mv", "-T", "--", oldPath, newPath)
}

// Part of timemachine.Operations interface
func (o *sshOperations) Symlink(target, linkName string) error {
	return o.run("ln", "-s", "--", target, linkName)
}

// Part of timemachine.Operations interface
func (o *sshOperations) ReadLink(path string) (string, error) {
	out, err := o.output("readlink", "--", path)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(out, "\n"), nil
}

// Part of timemachine.Operations interface
func (o *sshOperations) ListDir(path string) ([]string, error) {
	out, err := o.output("ls", "-1", "--", path)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}
