package tools

import (
	"strings"
	"testing"
)

func TestAllToolsWellFormed(t *testing.T) {
	if len(AllTools) != 14 {
		t.Errorf("tool count = %d, want 14", len(AllTools))
	}

	seen := make(map[string]bool)
	for _, spec := range AllTools {
		if spec.Name == "" || spec.Method == "" || spec.Title == "" {
			t.Errorf("incomplete spec: %+v", spec)
		}
		if seen[spec.Name] {
			t.Errorf("duplicate tool name %q", spec.Name)
		}
		seen[spec.Name] = true

		if spec.Kind != "anime" && spec.Kind != "manga" {
			t.Errorf("tool %q has unknown kind %q", spec.Name, spec.Kind)
		}
		if spec.Description == "" {
			t.Errorf("tool %q has no description", spec.Name)
		}
		if !strings.Contains(spec.Description, "USE WHEN") {
			t.Errorf("tool %q description missing USE WHEN section", spec.Name)
		}
		if !spec.OpenWorld {
			t.Errorf("tool %q reaches the MAL API and must be open-world", spec.Name)
		}
		if spec.ReadOnly && spec.Destructive {
			t.Errorf("tool %q is both read-only and destructive", spec.Name)
		}
	}
}

func TestAuthGatedTools(t *testing.T) {
	gated := map[string]bool{
		"getsuggestedanime":       true,
		"updatemyanimeliststatus": true,
		"deletemyanimelistitem":   true,
		"updatemymangaliststatus": true,
		"deletemymangalistitem":   true,
	}

	for _, spec := range AllTools {
		if gated[spec.Name] != spec.RequiresAuth {
			t.Errorf("tool %q RequiresAuth = %v, want %v", spec.Name, spec.RequiresAuth, gated[spec.Name])
		}
	}
}

func TestDestructiveTools(t *testing.T) {
	for _, spec := range AllTools {
		wantDestructive := strings.HasPrefix(spec.Name, "delete")
		if spec.Destructive != wantDestructive {
			t.Errorf("tool %q Destructive = %v, want %v", spec.Name, spec.Destructive, wantDestructive)
		}
	}
}
