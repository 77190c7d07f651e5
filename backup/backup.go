package backup

import (
	"github.com/iaksit/linux-timemachine/lib"

	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

var backupLog = logrus.WithFields(logrus.Fields{
	"component": "backup",
})

// Config is one backup run, fully wired. Ops and Transfer are the two
// external collaborators: destination filesystem capabilities and the
// transfer engine.
type Config struct {
	SourceDir string
	Dest      *timemachine.Target

	Ops      timemachine.Operations
	Transfer timemachine.TransferRunner

	// Ssh command used as the transfer engine's remote shell for remote
	// destinations.
	SshCommand []string

	// Extra transfer arguments, appended after the defaults.
	ExtraArgs []string

	// ForceFull skips the hard-link base even when a current pointer exists.
	ForceFull bool

	// Verbose adds diagnostic verbosity to the transfer invocation.
	Verbose bool

	// Now is the clock used to name the published snapshot. Defaults to
	// time.Now.
	Now func() time.Time
}

type Result struct {
	Type     timemachine.BackupType
	Snapshot timemachine.Snapshot
}

// Run performs one backup start to finish: decide full or incremental from
// the current pointer, transfer into the staging directory, publish the
// staging directory under its snapshot name with one rename, then point
// current at it.
//
// Every failure is fatal and leaves the destination as it was, except for
// partial content inside the staging directory, which is exactly what makes
// re-running resume the transfer. The pointer replacement is remove-then-create
// and therefore not atomic: a crash between the two steps leaves the
// destination pointer-less, and the next run degrades to a full backup.
func Run(cfg Config) (*Result, error) {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	currentPath := cfg.Dest.Join(timemachine.CurrentLink).Path
	stagingPath := cfg.Dest.Join(timemachine.StagingDir).Path

	hasCurrent, err := cfg.Ops.SymlinkExists(currentPath)
	if err != nil {
		return nil, err
	}

	typ := timemachine.FullBackup
	if hasCurrent && !cfg.ForceFull {
		typ = timemachine.IncrementalBackup
	}
	backupLog.Printf("starting %s backup of %s to %s", typ, cfg.SourceDir, cfg.Dest)

	args := timemachine.BuildTransferArgs(timemachine.TransferSpec{
		Type:       typ,
		SourceDir:  cfg.SourceDir,
		Dest:       cfg.Dest,
		SshCommand: cfg.SshCommand,
		Extra:      cfg.ExtraArgs,
		Verbose:    cfg.Verbose,
	})

	err = cfg.Transfer.Run(args)
	if err != nil {
		// The staging directory and its partial-transfer cache stay in place:
		// the next invocation picks the transfer back up where it stopped.
		return nil, fmt.Errorf("%w: %v", timemachine.ErrTransfer, err)
	}

	snapshot := timemachine.NewSnapshotName(now())
	err = cfg.Ops.Rename(stagingPath, cfg.Dest.Join(snapshot.Name()).Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", timemachine.ErrPublish, snapshot.Name(), err)
	}

	if hasCurrent {
		err = cfg.Ops.Remove(currentPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", timemachine.ErrPointerUpdate, err)
		}
	}

	err = cfg.Ops.Symlink(snapshot.Name(), currentPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", timemachine.ErrPointerUpdate, err)
	}

	backupLog.WithFields(logrus.Fields{
		"type":     typ.String(),
		"snapshot": snapshot.Name(),
	}).Printf("backup complete")

	return &Result{Type: typ, Snapshot: snapshot}, nil
}
