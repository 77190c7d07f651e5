package timemachine

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type BackupType int

const (
	FullBackup BackupType = iota
	IncrementalBackup
)

func (t BackupType) String() string {
	if t == IncrementalBackup {
		return "incremental"
	}
	return "full"
}

// TransferSpec is everything needed to build one rsync invocation.
type TransferSpec struct {
	Type      BackupType
	SourceDir string
	Dest      *Target

	// Ssh command used as the remote shell for remote destinations,
	// e.g. ["ssh"]. BatchMode and the port are appended here.
	SshCommand []string

	// Caller-supplied arguments, appended after every default so they win.
	Extra []string

	Verbose bool
}

// BuildTransferArgs builds the argument vector of the transfer engine. Pure
// construction, no I/O.
//
// Every run preserves permissions, owner, group, timestamps and symlinks,
// deletes destination files absent from (or excluded in) the source, and keeps
// a partial-transfer cache inside the staging directory so an interrupted run
// resumes instead of restarting. Incremental runs add a hard-link base against
// the current pointer; the base is relative to the staging directory so it
// resolves wherever the destination lives.
func BuildTransferArgs(spec TransferSpec) []string {
	args := []string{
		"--archive",
		"--delete",
		"--delete-excluded",
		"--partial-dir=" + PartialDir,
	}

	if spec.Type == IncrementalBackup {
		args = append(args, "--link-dest=../"+CurrentLink)
	}

	if spec.Verbose {
		args = append(args, "--verbose")
	}

	if spec.Dest.IsRemote() {
		args = append(args, "-e", strings.Join(SshArgs(spec.SshCommand, spec.Dest.Port), " "))
	}

	args = append(args, spec.Extra...)

	// Trailing slash: transfer the contents of the source, not the source
	// directory itself.
	src := spec.SourceDir
	if !strings.HasSuffix(src, "/") {
		src += "/"
	}
	args = append(args, src)

	staging := spec.Dest.Join(StagingDir)
	if staging.IsRemote() {
		// The remote path is expanded by the remote shell, same quoting as
		// every other remote operation.
		args = append(args, staging.HostSpec()+":"+ShellQuote(staging.Path))
	} else {
		args = append(args, staging.Path)
	}

	return args
}

// SshArgs builds the ssh command for both the rsync remote shell and the
// remote Operations implementation. BatchMode keeps ssh from prompting;
// a transfer is expected to run unattended.
func SshArgs(command []string, port int) []string {
	if len(command) == 0 {
		command = []string{"ssh"}
	}
	args := append(append([]string{}, command...), "-o", "BatchMode=yes")
	if port != 0 {
		args = append(args, "-p", strconv.Itoa(port))
	}
	return args
}

type rsyncRunner struct {
	command []string
	log     *logrus.Entry
}

// NewRsyncRunner returns a TransferRunner that execs the given rsync command
// (usually just ["rsync"]). Rsync's output goes to stderr; its exit status is
// the only thing interpreted.
func NewRsyncRunner(command []string, log *logrus.Entry) TransferRunner {
	if len(command) == 0 {
		command = []string{"rsync"}
	}
	return &rsyncRunner{command: command, log: log}
}

func (r *rsyncRunner) Run(args []string) error {
	return RunCommand(r.log, BuildCommand(r.command, args...))
}
