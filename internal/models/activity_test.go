package models

import "testing"

func TestActivityStatus(t *testing.T) {
	tests := []struct {
		succeeded, failed int
		want              string
	}{
		{succeeded: 3, failed: 0, want: "success"},
		{succeeded: 0, failed: 2, want: "error"},
		{succeeded: 1, failed: 1, want: "warning"},
		{succeeded: 0, failed: 0, want: "success"},
	}

	for _, tt := range tests {
		if got := ActivityStatus(tt.succeeded, tt.failed); got != tt.want {
			t.Errorf("ActivityStatus(%d, %d) = %q, want %q", tt.succeeded, tt.failed, got, tt.want)
		}
	}
}

func TestJSON_ValueScan(t *testing.T) {
	original := JSON{"export_file": "scraped_profiles.xlsx"}
	value, err := original.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var scanned JSON
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scanned["export_file"] != "scraped_profiles.xlsx" {
		t.Errorf("unexpected scanned value %v", scanned)
	}

	var empty JSON
	if err := empty.Scan(nil); err != nil {
		t.Errorf("scanning nil should succeed, got %v", err)
	}
}
