package timemachine

import (
	"errors"
	"testing"
)

type parseTargetTest struct {
	raw    string
	result Target
	err    bool
}

func TestParseTarget(t *testing.T) {
	tests := []parseTargetTest{
		{raw: "/local/path", result: Target{Kind: TargetLocal, Path: "/local/path"}},
		{raw: "relative/path", result: Target{Kind: TargetLocal, Path: "relative/path"}},
		{raw: "host:/path", result: Target{Kind: TargetRemote, Host: "host", Path: "/path"}},
		{raw: "user@host:/path", result: Target{Kind: TargetRemote, Host: "host", User: "user", Path: "/path"}},
		{raw: "alias:backups", result: Target{Kind: TargetRemote, Host: "alias", Path: "backups"}},
		// The split is on the first colon only
		{raw: "host:/path/with:colon", result: Target{Kind: TargetRemote, Host: "host", Path: "/path/with:colon"}},
		{raw: ":/path", err: true},
		{raw: "user@:/path", err: true},
		{raw: "", result: Target{Kind: TargetLocal, Path: ""}},
	}

	for _, test := range tests {
		result, err := ParseTarget(test.raw)
		if test.err {
			if !errors.Is(err, ErrInvalidTarget) {
				t.Errorf("expected ErrInvalidTarget for %q, got %v", test.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("unexpected error for %q: %v", test.raw, err)
			continue
		}
		if *result != test.result {
			t.Errorf("does not match: %v %v (from %q)", test.result, *result, test.raw)
		}
	}
}

func TestTargetString(t *testing.T) {
	for _, raw := range []string{"/local/path", "host:/path", "user@host:/srv/backups"} {
		target, err := ParseTarget(raw)
		if err != nil {
			t.Fatal(err)
		}
		if target.String() != raw {
			t.Errorf("round trip failed: %q became %q", raw, target.String())
		}
	}
}

func TestTargetJoin(t *testing.T) {
	target, err := ParseTarget("user@host:/srv/backups")
	if err != nil {
		t.Fatal(err)
	}

	joined := target.Join(StagingDir)
	if joined.Path != "/srv/backups/in-progress" {
		t.Errorf("unexpected joined path: %q", joined.Path)
	}
	if joined.Host != "host" || joined.User != "user" || joined.Kind != TargetRemote {
		t.Errorf("join lost connection parameters: %+v", joined)
	}
	if target.Path != "/srv/backups" {
		t.Errorf("join mutated the original target: %+v", target)
	}
}
