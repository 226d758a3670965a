package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFile(t *testing.T) {
	m, err := ParseFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if m.Name != "sample" || m.Version != "1.2.0" {
		t.Errorf("got name=%q version=%q", m.Name, m.Version)
	}

	var ids []string
	for _, e := range m.Entries {
		ids = append(ids, e.ID)
	}
	want := []string{"root", "readme", "src", "src-init", "tests", "tests-init", "run-script"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("entry ids mismatch (-want +got):\n%s", diff)
	}

	if !m.Entries[6].Scripts {
		t.Error("run-script should be marked as a helper script")
	}
	if m.Entries[3].Template != "" {
		t.Errorf("src-init template = %q, want empty", m.Entries[3].Template)
	}
}

func TestEntryInLayout(t *testing.T) {
	tests := []struct {
		layout string
		query  string
		want   bool
	}{
		{"", LayoutFlat, true},
		{LayoutAny, LayoutTests, true},
		{LayoutFlat, LayoutFlat, true},
		{LayoutFlat, LayoutTests, false},
		{LayoutTests, LayoutTests, true},
	}
	for _, tt := range tests {
		e := Entry{Layout: tt.layout}
		if got := e.InLayout(tt.query); got != tt.want {
			t.Errorf("Entry{Layout:%q}.InLayout(%q) = %v, want %v", tt.layout, tt.query, got, tt.want)
		}
	}
}

func TestCheckEntries_RootFirst(t *testing.T) {
	m := &CatalogManifest{
		Entries: []Entry{
			{ID: "readme", Kind: KindFile, Path: "README.md"},
			{ID: "root", Kind: KindDir, Path: "."},
		},
	}
	issues := CheckEntries(m)
	if len(issues) == 0 {
		t.Fatal("expected issues when the root is not first")
	}
	if issues[0].Path != "/entries/0" {
		t.Errorf("first issue path = %q, want /entries/0", issues[0].Path)
	}
}
