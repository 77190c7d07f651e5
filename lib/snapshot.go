package timemachine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	// CurrentLink is the name of the symlink inside the destination that
	// resolves to the most recently published snapshot.
	CurrentLink = "current"

	// StagingDir is the reserved name of the transient transfer target. It is
	// never published as-is and is deliberately left behind on failure so the
	// next run resumes it.
	StagingDir = "in-progress"

	// PartialDir is the rsync partial-transfer cache, kept inside the staging
	// directory.
	PartialDir = ".rsync-partial"
)

var (
	SnapshotRe         = `\d{4}-\d{2}-\d{2}__\d{2}-\d{2}-\d{2}` // Regexp matching a snapshot name
	SnapshotTimeFormat = "2006-01-02__15-04-05"                 // Time format of a snapshot, for time.Parse / time.Format

	snapshotNameRe = regexp.MustCompile(fmt.Sprintf("^%s$", SnapshotRe))
)

// A Snapshot is the name of a completed backup directory. Names sort
// lexicographically in time order.
type Snapshot string

// NewSnapshotName derives the snapshot name for a backup taken at now.
// Resolution is one second: two runs completing within the same second collide
// on publish, which is surfaced as an error rather than resolved.
func NewSnapshotName(now time.Time) Snapshot {
	return Snapshot(now.Format(SnapshotTimeFormat))
}

// ParseSnapshotName rejects anything that is not a well-formed snapshot name,
// the reserved names included.
func ParseSnapshotName(name string) (Snapshot, error) {
	if !snapshotNameRe.MatchString(name) {
		return "", fmt.Errorf("cannot parse snapshot name: %s", name)
	}
	return Snapshot(name), nil
}

func (s Snapshot) Name() string {
	return string(s)
}

func (s Snapshot) Time() (time.Time, error) {
	return time.ParseInLocation(SnapshotTimeFormat, string(s), time.Local)
}

// Compare snapshots by date
func CompareSnapshots(a, b Snapshot) int {
	return strings.Compare(string(a), string(b))
}

// SortedSnapshots filters directory entries down to well-formed snapshot
// names, sorted from most recent to least recent.
func SortedSnapshots(entries []string) []Snapshot {
	var snapshots []Snapshot
	for _, entry := range entries {
		s, err := ParseSnapshotName(entry)
		if err != nil {
			continue
		}
		snapshots = append(snapshots, s)
	}

	sort.Slice(snapshots, func(a, b int) bool {
		return CompareSnapshots(snapshots[a], snapshots[b]) >= 0
	})

	return snapshots
}
