package timemachine

import (
	"fmt"
	"path"
	"strings"
)

type TargetKind int

const (
	TargetLocal TargetKind = iota
	TargetRemote
)

// A Target is a parsed destination reference: either a local path or a
// [user@]host:path reachable over ssh. Host can also be an ssh config alias.
// Targets are immutable once parsed.
type Target struct {
	Kind TargetKind
	Path string

	// Remote targets only
	Host string
	User string
	Port int
}

// ParseTarget splits a raw destination string into a Target. The split is
// purely syntactic: everything before the first colon is the [user@]host
// portion, everything after is the path. A string without a colon is a local
// path. No filesystem or network access happens here.
func ParseTarget(raw string) (*Target, error) {
	i := strings.Index(raw, ":")
	if i < 0 {
		return &Target{Kind: TargetLocal, Path: raw}, nil
	}
	if i == 0 {
		return nil, fmt.Errorf("%w: empty host in %q", ErrInvalidTarget, raw)
	}

	t := &Target{Kind: TargetRemote, Host: raw[:i], Path: raw[i+1:]}
	if j := strings.Index(t.Host, "@"); j >= 0 {
		t.User = t.Host[:j]
		t.Host = t.Host[j+1:]
		if t.Host == "" {
			return nil, fmt.Errorf("%w: empty host in %q", ErrInvalidTarget, raw)
		}
	}

	return t, nil
}

func (t *Target) IsRemote() bool {
	return t.Kind == TargetRemote
}

// Join returns a Target for a path inside the same filesystem. Remote
// connection parameters are carried over unchanged.
func (t *Target) Join(elem ...string) *Target {
	joined := *t
	joined.Path = path.Join(append([]string{t.Path}, elem...)...)
	return &joined
}

// HostSpec returns the [user@]host form used on ssh and rsync command lines.
// Only meaningful for remote targets.
func (t *Target) HostSpec() string {
	if t.User == "" {
		return t.Host
	}
	return t.User + "@" + t.Host
}

// String reconstructs the canonical destination string.
func (t *Target) String() string {
	if t.Kind == TargetLocal {
		return t.Path
	}
	return t.HostSpec() + ":" + t.Path
}
