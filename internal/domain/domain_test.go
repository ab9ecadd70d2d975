package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"admin", "publisher", "advertiser"} {
		if _, err := ParseRole(raw); err != nil {
			t.Fatalf("ParseRole(%q): %v", raw, err)
		}
	}
	for _, raw := range []string{"", "root", "Admin", "ADMIN"} {
		if _, err := ParseRole(raw); err == nil {
			t.Fatalf("ParseRole(%q): expected error", raw)
		}
	}
}

func TestParseUserStatus(t *testing.T) {
	for _, raw := range []string{"ACTIVE", "SUSPENDED"} {
		if _, err := ParseUserStatus(raw); err != nil {
			t.Fatalf("ParseUserStatus(%q): %v", raw, err)
		}
	}
	for _, raw := range []string{"", "active", "DELETED"} {
		if _, err := ParseUserStatus(raw); err == nil {
			t.Fatalf("ParseUserStatus(%q): expected error", raw)
		}
	}
}

func TestParseCampaignState(t *testing.T) {
	for _, raw := range []string{"DRAFT", "ACTIVE", "PAUSED"} {
		if _, err := ParseCampaignState(raw); err != nil {
			t.Fatalf("ParseCampaignState(%q): %v", raw, err)
		}
	}
	for _, raw := range []string{"", "draft", "ARCHIVED"} {
		if _, err := ParseCampaignState(raw); err == nil {
			t.Fatalf("ParseCampaignState(%q): expected error", raw)
		}
	}
}

func TestSubjectIsAdmin(t *testing.T) {
	if !(Subject{ID: 1, Role: RoleAdmin}).IsAdmin() {
		t.Fatal("admin subject must report IsAdmin")
	}
	if (Subject{ID: 2, Role: RolePublisher}).IsAdmin() {
		t.Fatal("publisher subject must not report IsAdmin")
	}
}
