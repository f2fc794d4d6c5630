package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestMergeFillsDefaults(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}
	got := Info{Version: "dev", Commit: "none", Date: "unknown"}.merge(bi)
	want := Info{Version: "v1.4.0", Commit: "abc123", Date: "2026-01-02T03:04:05Z"}
	if got != want {
		t.Errorf("merge() = %+v, want %+v", got, want)
	}
}

func TestMergeKeepsLdflags(t *testing.T) {
	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.0.1"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	}
	in := Info{Version: "v2.0.0", Commit: "fff", Date: "today"}
	if got := in.merge(bi); got != in {
		t.Errorf("merge() = %+v, want %+v", got, in)
	}
}

func TestMergeIgnoresDevelVersion(t *testing.T) {
	bi := &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}
	if got := (Info{Version: "dev"}).merge(bi); got.Version != "dev" {
		t.Errorf("Version = %q, want dev", got.Version)
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(tmpl, "\ncommit: ") {
		t.Errorf("Template() = %q, want a commit line", tmpl)
	}
}
