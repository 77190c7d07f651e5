package cmd

import (
	"github.com/iaksit/linux-timemachine/backup"
	"github.com/iaksit/linux-timemachine/lib"
	"github.com/iaksit/linux-timemachine/targets"

	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cmdBackupForceFull bool
	cmdBackupPort      int
	cmdBackupOptions   string

	cmdBackup = &cobra.Command{
		Use:   "backup [flags] <source> <destination> [-- extra rsync args]",
		Short: "Create a snapshot backup of a directory",
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			options, err := timemachine.EvalOptions(timemachine.SplitOptions(cmdBackupOptions), presets)
			if err != nil {
				logrus.Fatal(err)
			}

			sourceDir := args[0]
			dest, err := timemachine.ParseTarget(args[1])
			if err != nil {
				logrus.Fatal(err)
			}
			extraArgs := append(append([]string{}, options.StrSlice["RsyncArgs"]...), args[2:]...)

			if cmdBackupPort != 0 {
				dest.Port = cmdBackupPort
			} else {
				dest.Port, err = options.GetInt("Port", 0)
				if err != nil {
					logrus.Fatal(err)
				}
			}

			rsyncCommand := options.GetCommand("RsyncCommand", []string{"rsync"})
			sshCommand := options.GetCommand("SshCommand", []string{"ssh"})

			st, err := os.Stat(sourceDir)
			if err != nil || !st.IsDir() {
				logrus.Fatal(fmt.Errorf("%w: source directory %s does not exist", timemachine.ErrPrecondition, sourceDir))
			}

			_, err = exec.LookPath(rsyncCommand[0])
			if err != nil {
				logrus.Fatal(fmt.Errorf("%w: %v", timemachine.ErrPrecondition, err))
			}

			if dest.IsRemote() {
				_, err = exec.LookPath(sshCommand[0])
				if err != nil {
					logrus.Fatal(fmt.Errorf("%w: %v", timemachine.ErrPrecondition, err))
				}
			}

			ops, err := targets.New(dest, sshCommand)
			if err != nil {
				logrus.Fatal(err)
			}

			ok, err := ops.DirectoryExists(dest.Path)
			if err != nil {
				logrus.Fatal(err)
			}
			if !ok {
				logrus.Fatal(fmt.Errorf("%w: destination directory %s does not exist", timemachine.ErrPrecondition, dest))
			}

			verbose := logrus.IsLevelEnabled(logrus.DebugLevel)
			_, err = backup.Run(backup.Config{
				SourceDir:  sourceDir,
				Dest:       dest,
				Ops:        ops,
				Transfer:   timemachine.NewRsyncRunner(rsyncCommand, logrus.WithFields(logrus.Fields{"component": "rsync"})),
				SshCommand: sshCommand,
				ExtraArgs:  extraArgs,
				ForceFull:  cmdBackupForceFull,
				Verbose:    verbose,
			})
			if err != nil {
				logrus.Fatal(err)
			}
		},
	}
)

func init() {
	cmdBackup.Flags().BoolVarP(&cmdBackupForceFull, "force-full", "f", false, "ignore the current pointer and take a full backup")
	cmdBackup.Flags().IntVarP(&cmdBackupPort, "port", "P", 0, "ssh port for remote destinations")
	cmdBackup.Flags().StringVarP(&cmdBackupOptions, "options", "o", "", "destination options (key=value, comma separated)")
}
