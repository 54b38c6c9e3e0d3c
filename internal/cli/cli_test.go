package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	errs "github.com/matzehuels/galleryfind/pkg/errors"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GALLERYFIND_REPOSITORY", "")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// recordingServer echoes the path of every request and remembers the raw
// request URIs.
type recordingServer struct {
	*httptest.Server
	mu   sync.Mutex
	uris []string
}

func newRecordingServer(t *testing.T) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		rs.uris = append(rs.uris, r.RequestURI)
		rs.mu.Unlock()
		fmt.Fprintf(w, "<feed path=%q/>", r.URL.Path)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"find", "tag", "command", "dsc", "install-url", "config", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestFindDryRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "exact name",
			args: []string{"find", "PowerShellGet"},
			want: []string{"find-name", "https://example.com/api/v2/FindPackagesById()?", "'PowerShellGet'", "IsLatestVersion and Id eq 'PowerShellGet'"},
		},
		{
			name: "pattern with prerelease",
			args: []string{"find", "Power*Get", "--prerelease"},
			want: []string{"find-name-pattern", "startswith(Id, 'Power') and endswith(Id, 'Get')", "includePrerelease"},
		},
		{
			name: "version range",
			args: []string{"find", "Pester", "--version", "[5.0,6.0)", "--type", "module"},
			want: []string{"find-version-range", "IsPrerelease eq false and NormalizedVersion ge '5.0.0' and NormalizedVersion lt '6.0.0' and substringof('PSModule', Tags) eq true"},
		},
		{
			name: "exact version",
			args: []string{"find", "Pester", "--version", "[5.3.1]"},
			want: []string{"find-version", "NormalizedVersion eq '5.3.1' and Id eq 'Pester'"},
		},
		{
			name: "bare version is exact",
			args: []string{"find", "Pester", "--version", "5.3.1"},
			want: []string{"find-version", "NormalizedVersion eq '5.3.1' and Id eq 'Pester'"},
		},
		{
			name: "bare version is normalized",
			args: []string{"find", "Pester", "--version", "5.3"},
			want: []string{"find-version", "NormalizedVersion eq '5.3.0' and Id eq 'Pester'"},
		},
		{
			name: "contains",
			args: []string{"find", "Azure", "--contains", "--type", "Script"},
			want: []string{"list-by-type-and-name", "IsAbsoluteLatestVersion and substringof('PSScript', Tags) eq true and substringof('Azure', Id)"},
		},
		{
			name: "everything",
			args: []string{"find"},
			want: []string{"list-all", "/api/v2/Search()"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "--dry-run", "--repository", "https://example.com/api/v2")
			out, err := runCLI(t, args...)
			if err != nil {
				t.Fatalf("find error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestFindUnsupportedPattern(t *testing.T) {
	_, err := runCLI(t, "find", "a*b*c", "--dry-run")
	if !errs.Is(err, errs.ErrCodeUnsupportedPattern) {
		t.Errorf("error = %v, want UNSUPPORTED_PATTERN", err)
	}
}

func TestFindInvalidFlags(t *testing.T) {
	if _, err := runCLI(t, "find", "x", "--type", "Widget", "--dry-run"); !errs.Is(err, errs.ErrCodeInvalidType) {
		t.Errorf("bad type error = %v", err)
	}
	if _, err := runCLI(t, "find", "x", "--version", "[2.0", "--dry-run"); !errs.Is(err, errs.ErrCodeInvalidVersion) {
		t.Errorf("bad version error = %v", err)
	}
	if _, err := runCLI(t, "find", "x", "--version", "[2.0,1.0]", "--dry-run"); !errs.Is(err, errs.ErrCodeInvalidVersion) {
		t.Errorf("inverted range error = %v", err)
	}
	if _, err := runCLI(t, "find", "x", "--version", "not-a-version", "--dry-run"); !errs.Is(err, errs.ErrCodeInvalidVersion) {
		t.Errorf("bare bad version error = %v", err)
	}
	if _, err := runCLI(t, "find", "--contains", "--dry-run"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("contains without name or type error = %v", err)
	}
}

func TestVersionFlag(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "*"},
		{"*", "*"},
		{"5.3.1", "[5.3.1]"},
		{" 1.0.0.0 ", "[1.0.0]"},
		{"[1.0,2.0)", "[1.0.0,2.0.0)"},
		{"(,3.0]", "(,3.0.0]"},
	}
	for _, tt := range tests {
		r, err := versionFlag(tt.in)
		if err != nil {
			t.Errorf("versionFlag(%q) error: %v", tt.in, err)
			continue
		}
		if got := r.String(); got != tt.want {
			t.Errorf("versionFlag(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTagRejectsTypeTag(t *testing.T) {
	if _, err := runCLI(t, "tag", "PSModule", "--dry-run"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("tag PSModule error = %v, want INVALID_INPUT", err)
	}
}

func TestTagDryRunIssuesTwoRequests(t *testing.T) {
	out, err := runCLI(t, "tag", "Azure", "Storage", "--dry-run")
	if err != nil {
		t.Fatalf("tag error: %v", err)
	}
	if !strings.Contains(out, "2 requests") {
		t.Errorf("output should announce two requests:\n%s", out)
	}
	for _, path := range []string{"/items/psscript/Search()", "/api/v2/Search()"} {
		if !strings.Contains(out, path) {
			t.Errorf("output missing %q", path)
		}
	}
}

func TestTagRunsBothRequests(t *testing.T) {
	rs := newRecordingServer(t)
	out, err := runCLI(t, "tag", "Azure", "--repository", rs.URL+"/api/v2")
	if err != nil {
		t.Fatalf("tag error: %v", err)
	}
	if len(rs.uris) != 2 {
		t.Fatalf("server saw %d requests, want 2", len(rs.uris))
	}
	if !strings.Contains(out, `"/api/v2/items/psscript/Search()"`) || !strings.Contains(out, `"/api/v2/Search()"`) {
		t.Errorf("output missing a response body:\n%s", out)
	}
}

func TestCommandNames(t *testing.T) {
	rs := newRecordingServer(t)
	_, err := runCLI(t, "command", "Get-Foo", "Set-Bar", "--repository", rs.URL)
	if err != nil {
		t.Fatalf("command error: %v", err)
	}
	if len(rs.uris) != 1 || !strings.Contains(rs.uris[0], "searchTerm=%27tag%3APSCommand_Get-Foo%20tag%3APSCommand_Set-Bar%27") {
		t.Errorf("requests = %v", rs.uris)
	}
}

func TestCommandExactAndDSC(t *testing.T) {
	out, err := runCLI(t, "command", "Get-Foo", "--exact", "--dry-run")
	if err != nil {
		t.Fatalf("command --exact error: %v", err)
	}
	if !strings.Contains(out, "substringof('PSCommand_Get-Foo', Tags) eq true") {
		t.Errorf("command --exact output:\n%s", out)
	}

	out, err = runCLI(t, "dsc", "xWebsite", "--dry-run", "--prerelease")
	if err != nil {
		t.Fatalf("dsc error: %v", err)
	}
	if !strings.Contains(out, "IsAbsoluteLatestVersion and substringof('PSDscResource_xWebsite', Tags) eq true") {
		t.Errorf("dsc output:\n%s", out)
	}
}

func TestTransportFailure(t *testing.T) {
	rs := newRecordingServer(t)
	url := rs.URL
	rs.Close()

	out, err := runCLI(t, "find", "Pester", "--repository", url)
	if !errs.Is(err, errs.ErrCodeNetwork) {
		t.Errorf("error = %v, want NETWORK_ERROR", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want nothing on failure", out)
	}
}

func TestInstallURL(t *testing.T) {
	out, err := runCLI(t, "install-url", "Pester")
	if err != nil {
		t.Fatalf("install-url error: %v", err)
	}
	if strings.TrimSpace(out) != "https://www.powershellgallery.com/api/v2/package/Pester" {
		t.Errorf("install-url = %q", out)
	}

	out, err = runCLI(t, "install-url", "Pester", "--version", "5.3")
	if err != nil {
		t.Fatalf("install-url --version error: %v", err)
	}
	if strings.TrimSpace(out) != "https://www.powershellgallery.com/api/v2/package/Pester/5.3.0" {
		t.Errorf("install-url --version = %q", out)
	}
}

func TestConfigRepositorySelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
default = "PSGallery"

[[repository]]
name = "PSGallery"
uri = "https://www.powershellgallery.com/api/v2"

[[repository]]
name = "internal"
uri = "https://nuget.example.com/feed"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "install-url", "Pester", "--config", path, "-r", "internal")
	if err != nil {
		t.Fatalf("install-url error: %v", err)
	}
	if strings.TrimSpace(out) != "https://nuget.example.com/feed/package/Pester" {
		t.Errorf("install-url = %q", out)
	}

	if _, err := runCLI(t, "install-url", "Pester", "--config", path, "-r", "missing"); !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("unknown repository error = %v", err)
	}

	out, err = runCLI(t, "config", "path", "--config", path)
	if err != nil || strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, %v", out, err)
	}

	out, err = runCLI(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(out, "nuget.example.com") {
		t.Errorf("config show output:\n%s", out)
	}
}

func TestConfigPathDefault(t *testing.T) {
	out, err := runCLI(t, "config", "path")
	if err != nil {
		t.Fatalf("config path error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), filepath.Join(appName, "config.toml")) {
		t.Errorf("config path = %q", out)
	}
}

func TestCompletion(t *testing.T) {
	out, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion should mention the program name")
	}
}
