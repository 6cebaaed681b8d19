package python

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRequirements(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "pinned and bare",
			content: "requests==2.28.0\nnumpy\n# comment",
			want:    []string{"requests", "numpy"},
		},
		{
			name: "operators comments and directives",
			content: `# Test requirements
requests>=2.28.0
click==8.1.0
pydantic~=2.0
# Comment line
httpx

-r base.txt
-e ./local-package
--index-url https://pypi.example.com/simple
git+https://github.com/user/repo.git
django!=4.0,<5
`,
			want: []string{"requests", "click", "pydantic", "httpx", "django"},
		},
		{
			name:    "extras markers and inline comments",
			content: "uvicorn[standard]>=0.20 ; python_version >= '3.8'\nflask  # web\nattrs @ https://example.com/attrs.whl\n",
			want:    []string{"uvicorn", "flask", "attrs"},
		},
		{
			name:    "duplicates keep first occurrence",
			content: "a==1\nb\na>=2\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "caret and star",
			content: "foo^1.0\nbar*\n",
			want:    []string{"foo", "bar"},
		},
		{
			name:    "packaging tools dropped",
			content: "setuptools\nwheel\npip>=23\nPython\nrequests==2\n",
			want:    []string{"requests"},
		},
		{
			name:    "empty",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequirements(tt.content)
			if err != nil {
				t.Fatalf("ParseRequirements() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseRequirements() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRequirements_NamesHaveNoOperators(t *testing.T) {
	content := strings.Join([]string{
		"a==1", "b>=1", "c<=1", "d>1", "e<1", "f~=1", "g~1", "h^1", "i!=1", "j*", "#x", "-r y.txt", "",
	}, "\n")

	got, err := ParseRequirements(content)
	if err != nil {
		t.Fatalf("ParseRequirements() error = %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d names, want 10: %v", len(got), got)
	}
	for _, name := range got {
		if name == "" || strings.ContainsAny(name, "=<>~^!*") {
			t.Errorf("name %q still carries an operator", name)
		}
	}
}

func TestStripVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"requests==2.0", "requests"},
		{"requests >= 2.0", "requests"},
		{"numpy", "numpy"},
		{"pkg~=1.4", "pkg"},
		{"pkg^1.4", "pkg"},
		{"pkg!=1.4", "pkg"},
		{"pkg*", "pkg"},
		{"==1.0", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := StripVersion(tt.in); got != tt.want {
				t.Errorf("StripVersion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanToken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"requests>=2"`, "requests"},
		{`'flask'`, "flask"},
		{`{ "click" }`, "click"},
		{`  numpy  `, "numpy"},
	}
	for _, tt := range tests {
		if got := cleanToken(tt.in); got != tt.want {
			t.Errorf("cleanToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	parse := func() (names []string, err error) {
		defer guard("test", &names, &err)
		names = []string{"partial"}
		panic("boom")
	}

	names, err := parse()
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}
	if names != nil {
		t.Errorf("names = %v, want nil", names)
	}
}
