package timemachine

import (
	"reflect"
	"testing"
)

type splitOptionsTest struct {
	s      string
	result [][2]string
}

func TestSplitOptions(t *testing.T) {
	tests := []splitOptionsTest{
		{s: "", result: [][2]string{}},
		{s: "port=2222", result: [][2]string{{"Port", "2222"}}},
		{s: "port=2222,ssh_command=ssh -4", result: [][2]string{{"Port", "2222"}, {"SshCommand", "ssh -4"}}},
		{s: "force_full", result: [][2]string{{"ForceFull", "true"}}},
		{s: "@rsync_args=--exclude,@rsync_args=*.tmp", result: [][2]string{{"@RsyncArgs", "--exclude"}, {"@RsyncArgs", "*.tmp"}}},
		{s: "a=1\\,b=2,c=3", result: [][2]string{{"A", "1,b=2"}, {"C", "3"}}},
		{s: "a=1\\\\,b=2", result: [][2]string{{"A", "1\\"}, {"B", "2"}}},
	}

	for _, test := range tests {
		result := SplitOptions(test.s)
		if !reflect.DeepEqual(result, test.result) {
			t.Errorf("does not match: %v %v (from %v)", test.result, result, test.s)
		}
	}
}

func TestEvalOptions(t *testing.T) {
	presets := map[string][]KeyValuePair{
		"nas": {{"Port", "2222"}, {"SshCommand", "ssh -i /etc/timemachine/nas.key"}},
		"slow-link": {
			{"Preset", "nas"},
			{"@RsyncArgs", "--bwlimit={{.Bwlimit}}"},
		},
	}

	options := []KeyValuePair{
		{"Bwlimit", "1000"},
		{"Preset", "slow-link"},
		{"Port", "22022"},
	}

	result, err := EvalOptions(options, presets)
	if err != nil {
		t.Error(err)
	}

	expected := &Options{
		String: map[string]string{
			"Bwlimit":    "1000",
			"Port":       "22022",
			"SshCommand": "ssh -i /etc/timemachine/nas.key",
		},
		StrSlice: map[string][]string{
			"RsyncArgs": {"--bwlimit=1000"},
		},
	}

	if !reflect.DeepEqual(expected, result) {
		t.Errorf("result: %v ; expected: %v", result, expected)
	}
}

func TestOptionAccessors(t *testing.T) {
	options, err := EvalOptions([]KeyValuePair{
		{"Port", "2222"},
		{"RsyncCommand", "sudo rsync"},
		{"ForceFull", "yes"},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	port, err := options.GetInt("Port", 0)
	if err != nil || port != 2222 {
		t.Errorf("GetInt: %v %v", port, err)
	}

	if _, err := options.GetInt("RsyncCommand", 0); err == nil {
		t.Error("GetInt accepted a non-integer")
	}

	cmd := options.GetCommand("RsyncCommand", []string{"rsync"})
	if !reflect.DeepEqual(cmd, []string{"sudo", "rsync"}) {
		t.Errorf("GetCommand: %v", cmd)
	}

	cmd = options.GetCommand("SshCommand", []string{"ssh"})
	if !reflect.DeepEqual(cmd, []string{"ssh"}) {
		t.Errorf("GetCommand default: %v", cmd)
	}

	full, err := options.GetBoolean("ForceFull", false)
	if err != nil || !full {
		t.Errorf("GetBoolean: %v %v", full, err)
	}
}
