package model

import "testing"

func TestProfileFullName(t *testing.T) {
	profile := Profile{FirstName: "Harry", LastName: "Potter"}
	if got, want := profile.FullName(), "Harry Potter"; got != want {
		t.Errorf("FullName() = %q, want %q", got, want)
	}
}

func TestPrincipalRoleHelpers(t *testing.T) {
	client := Principal{Role: RoleClient}
	if !client.IsClient() || client.IsContractor() {
		t.Error("client principal misclassified")
	}

	contractor := Principal{Role: RoleContractor}
	if !contractor.IsContractor() || contractor.IsClient() {
		t.Error("contractor principal misclassified")
	}

	if (Principal{}).IsAdmin() {
		t.Error("zero principal must not be admin")
	}
}
