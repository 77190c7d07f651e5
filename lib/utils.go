package timemachine

import (
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// ShellQuote quotes s for a POSIX shell. Every path sent to a remote shell
// goes through this one function, and remote rsync destinations use it too, so
// local and remote runs cannot diverge in escaping behavior.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ShellQuoteAll joins argv into a single string safe to hand to a remote
// shell.
func ShellQuoteAll(argv []string) string {
	quoted := make([]string, 0, len(argv))
	for _, a := range argv {
		quoted = append(quoted, ShellQuote(a))
	}
	return strings.Join(quoted, " ")
}

func BuildCommand(command []string, additionalArgs ...string) *exec.Cmd {
	fullArgs := append(append([]string{}, command...), additionalArgs...)
	cmd := exec.Command(fullArgs[0], fullArgs[1:]...)
	cmd.Stdout = os.Stderr // default stdout to stderr because we don't want subprocesses to write on our output
	cmd.Stderr = os.Stderr
	return cmd
}

func RunCommand(log *logrus.Entry, cmd *exec.Cmd) error {
	log.Printf("running: %s", cmd.String())
	return cmd.Run()
}
