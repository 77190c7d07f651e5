package cmd

import (
	"github.com/iaksit/linux-timemachine/lib"
	"github.com/iaksit/linux-timemachine/targets"

	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cmdListPort    int
	cmdListOptions string

	cmdList = &cobra.Command{
		Use:   "list <destination>",
		Short: "List completed snapshots on a destination",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			options, err := timemachine.EvalOptions(timemachine.SplitOptions(cmdListOptions), presets)
			if err != nil {
				logrus.Fatal(err)
			}

			dest, err := timemachine.ParseTarget(args[0])
			if err != nil {
				logrus.Fatal(err)
			}

			if cmdListPort != 0 {
				dest.Port = cmdListPort
			} else {
				dest.Port, err = options.GetInt("Port", 0)
				if err != nil {
					logrus.Fatal(err)
				}
			}

			ops, err := targets.New(dest, options.GetCommand("SshCommand", []string{"ssh"}))
			if err != nil {
				logrus.Fatal(err)
			}

			entries, err := ops.ListDir(dest.Path)
			if err != nil {
				logrus.Fatal(err)
			}

			// Resolve the current pointer so it can be flagged in the listing.
			// A destination without one (no completed backup yet) is fine.
			current := ""
			if ok, _ := ops.SymlinkExists(dest.Join(timemachine.CurrentLink).Path); ok {
				current, err = ops.ReadLink(dest.Join(timemachine.CurrentLink).Path)
				if err != nil {
					logrus.Fatal(err)
				}
			}

			snapshots := timemachine.SortedSnapshots(entries)
			for i := len(snapshots) - 1; i >= 0; i-- {
				s := snapshots[i]
				if s.Name() == current {
					fmt.Printf("%s (current)\n", s.Name())
				} else {
					fmt.Println(s.Name())
				}
			}
		},
	}
)

func init() {
	cmdList.Flags().IntVarP(&cmdListPort, "port", "P", 0, "ssh port for remote destinations")
	cmdList.Flags().StringVarP(&cmdListOptions, "options", "o", "", "destination options (key=value, comma separated)")
}
