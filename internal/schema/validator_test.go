package schema

import (
	"testing"
)

func loadedValidator(t *testing.T) *Validator {
	t.Helper()
	v := NewValidator()
	if err := v.LoadSchemas(); err != nil {
		t.Fatalf("LoadSchemas() error = %v", err)
	}
	return v
}

func TestValidateCatalogYAMLValid(t *testing.T) {
	v := loadedValidator(t)

	doc := []byte(`
distros:
  - id: testdistro
    name: Test Distro
    beginnerFriendly: 5
    stability: 5
    cuttingEdge: 5
    customizability: 5
    performance: 5
    gamingSupport: 5
    hardwareSupport: 5
    communitySupport: 5
    professionalUse: 5
    privacyFocus: 5
    availableDEs: [xfce]
    defaultDE: xfce
    targetAudience: [beginner]
    releaseModel: fixed
    minRAM: 2
    minStorage: 20
    secureBootSupport: full
desktopEnvironments:
  - id: xfce
    name: XFCE
    windowsLike: 7
    macLike: 2
    modernLook: 4
    resourceUsage: 3
    beginnerFriendly: 7
    gamingFriendly: 6
    customizability: 8
    idleRAM: 500
games:
  - id: test-game
    name: Test Game
    status: native
    antiCheatType: none
`)

	issues, err := v.ValidateCatalogYAML("valid.yaml", doc)
	if err != nil {
		t.Fatalf("ValidateCatalogYAML() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("valid document produced issues: %v", issues)
	}
}

func TestValidateCatalogYAMLInvalid(t *testing.T) {
	v := loadedValidator(t)

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "score out of range",
			doc: `
desktopEnvironments:
  - id: broken
    name: Broken
    windowsLike: 14
    macLike: 2
    modernLook: 4
    resourceUsage: 3
    beginnerFriendly: 7
    gamingFriendly: 6
    customizability: 8
    idleRAM: 500
`,
		},
		{
			name: "unknown game status",
			doc: `
games:
  - id: g
    name: G
    status: sideways
    antiCheatType: none
`,
		},
		{
			name: "missing required field",
			doc: `
games:
  - id: g
    status: native
    antiCheatType: none
`,
		},
		{
			name: "empty id",
			doc: `
games:
  - id: ""
    name: G
    status: native
    antiCheatType: none
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := v.ValidateCatalogYAML(tt.name+".yaml", []byte(tt.doc))
			if err != nil {
				t.Fatalf("ValidateCatalogYAML() error = %v", err)
			}
			if len(issues) == 0 {
				t.Error("expected validation issues, got none")
			}
			for _, issue := range issues {
				if issue.Severity != "error" {
					t.Errorf("severity = %q, want error", issue.Severity)
				}
			}
		})
	}
}

func TestValidateCatalogYAMLBadSyntax(t *testing.T) {
	v := loadedValidator(t)

	issues, err := v.ValidateCatalogYAML("bad.yaml", []byte("distros: {not a list"))
	if err != nil {
		t.Fatalf("ValidateCatalogYAML() error = %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("len(issues) = %d, want 1", len(issues))
	}
	if issues[0].File != "bad.yaml" {
		t.Errorf("File = %q, want bad.yaml", issues[0].File)
	}
}

func TestValidateEmptyDocument(t *testing.T) {
	v := loadedValidator(t)

	issues, err := v.ValidateCatalogYAML("empty.yaml", []byte(""))
	if err != nil {
		t.Fatalf("ValidateCatalogYAML() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("empty document produced issues: %v", issues)
	}
}
