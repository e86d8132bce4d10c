package deps

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"low", SeverityLow, false},
		{"Moderate", SeverityMedium, false},
		{"medium", SeverityMedium, false},
		{"HIGH", SeverityHigh, false},
		{" critical ", SeverityCritical, false},
		{"bogus", SeverityUnknown, true},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSeverity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseSeverity(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSeverityRank(t *testing.T) {
	if !(SeverityCritical.Rank() > SeverityHigh.Rank() &&
		SeverityHigh.Rank() > SeverityMedium.Rank() &&
		SeverityMedium.Rank() > SeverityLow.Rank() &&
		SeverityLow.Rank() > SeverityUnknown.Rank()) {
		t.Error("severity ranks are not strictly ordered")
	}
}

func TestSeveritySummary(t *testing.T) {
	list := []Dependency{
		{Name: "a", Severity: SeverityHigh},
		{Name: "b"},
		{Name: "c", Severity: SeverityCritical},
		{Name: "d", Severity: SeverityHigh},
	}
	if got, want := SeveritySummary(list), "1 critical, 2 high"; got != want {
		t.Errorf("SeveritySummary() = %q, want %q", got, want)
	}
	mixed := []Dependency{
		{Name: "a", Severity: SeverityUnknown},
		{Name: "b", Severity: SeverityLow},
		{Name: "c", Severity: SeverityCritical},
		{Name: "d", Severity: SeverityMedium},
		{Name: "e", Severity: SeverityLow},
		{Name: "f", Severity: SeverityHigh},
	}
	if got, want := SeveritySummary(mixed), "1 critical, 1 high, 1 medium, 2 low, 1 unknown"; got != want {
		t.Errorf("SeveritySummary() = %q, want %q", got, want)
	}
	if got := SeveritySummary([]Dependency{{Name: "x"}}); got != "" {
		t.Errorf("SeveritySummary() = %q, want empty", got)
	}
}
