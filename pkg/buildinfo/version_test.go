package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	if !strings.HasPrefix(Template(), "{{.Name}} v9.9.9\n") {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "version: v9.9.9") {
		t.Errorf("String() = %q", String())
	}
	if UserAgent() != "shadercopy/v9.9.9" {
		t.Errorf("UserAgent() = %q", UserAgent())
	}
}
