package cmd

import (
	"github.com/iaksit/linux-timemachine/lib"

	"fmt"
	"os"
	"os/user"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	presetsDir string
	logLevel   string
	presets    map[string][]timemachine.KeyValuePair

	tag       = "git"
	commit    = "unknown"
	buildDate = "unknown"

	rootCmd    = &cobra.Command{Use: "timemachine"}
	cmdVersion = &cobra.Command{
		Use: "version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Version: %s\n", tag)
			fmt.Printf("Commit: %s\n", commit)
			fmt.Printf("Build Date: %s\n", buildDate)
		},
	}
)

func init() {
	cobra.OnInitialize(func() {
		var err error

		if presetsDir == "" {
			usr, err := user.Current()
			if err != nil {
				logrus.Fatal(err)
			}

			if usr.Uid == "0" {
				presetsDir = path.Join("/etc", "timemachine", "presets")
			} else {
				presetsDir = path.Join(usr.HomeDir, ".config", "timemachine", "presets")
			}
		}

		if logLevel != "" {
			level, err := logrus.ParseLevel(logLevel)
			if err == nil {
				logrus.SetLevel(level)
			} else {
				logrus.Warnf("Cannot set log level: %v", err)
			}
		}

		presets, err = timemachine.ReadPresets(presetsDir)
		if err != nil {
			logrus.Fatal(err)
		}
	})

	rootCmd.PersistentFlags().StringVarP(&presetsDir, "presets-dir", "p", "", "path to presets directory")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", os.Getenv("LOG_LEVEL"), "log level (trace, debug, info, warn, error)")
	rootCmd.AddCommand(cmdBackup, cmdList, cmdVersion)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if strings.HasPrefix(err.Error(), "unknown flag") || strings.HasPrefix(err.Error(), "unknown shorthand flag") {
			logrus.Error(err)
			os.Exit(2)
		}
		logrus.Fatal(err)
	}
}
