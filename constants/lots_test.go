package constants

import "testing"

func TestCanonicalizeLot(t *testing.T) {
	tests := []struct {
		in     string
		want   Lot
		wantOK bool
	}{
		{"Plomberie", Plomberie, true},
		{"plomberie", Plomberie, true},
		{"Lot 8 - peinture et revêtements", Revetements, true},
		{"gros œuvre", GrosOeuvre, true},
		{"Chauffage ventilation", CVC, true},
		{"quelque chose d'inconnu", LotUncategorized, false},
		{"", LotUncategorized, false},
	}
	for _, tt := range tests {
		got, ok := CanonicalizeLot(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CanonicalizeLot(%q) = (%s, %v), want (%s, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDetectLots(t *testing.T) {
	text := "Le présent CCTP couvre la plomberie sanitaire et le carrelage des sols."
	lots := DetectLots(text)
	has := func(want Lot) bool {
		for _, l := range lots {
			if l == want {
				return true
			}
		}
		return false
	}
	if !has(Plomberie) || !has(Revetements) {
		t.Errorf("DetectLots = %v, want Plomberie and Revetements", lots)
	}
}

func TestMapExtToFormat(t *testing.T) {
	tests := map[string]string{
		".pdf":  PDF,
		"PDF":   PDF,
		".docx": DOCX,
		"odt":   DOCX,
		".txt":  TEXT,
		"md":    TEXT,
		".rtf":  "",
		"":      "",
	}
	for ext, want := range tests {
		if got := MapExtToFormat(ext); got != want {
			t.Errorf("MapExtToFormat(%q) = %q, want %q", ext, got, want)
		}
	}
}

func TestAnalysisStatus(t *testing.T) {
	if AnalysisPending.Terminal() || !AnalysisFailed.Terminal() {
		t.Error("Terminal misclassifies statuses")
	}
	if !AnalysisComplete.Exportable() || !AnalysisPartial.Exportable() {
		t.Error("COMPLETE and PARTIAL must be exportable")
	}
	if AnalysisPending.Exportable() || AnalysisFailed.Exportable() {
		t.Error("PENDING and FAILED must not be exportable")
	}
}

func TestAllowanceFor(t *testing.T) {
	if AllowanceFor(TierFree) != 0 {
		t.Errorf("free allowance = %d", AllowanceFor(TierFree))
	}
	if AllowanceFor(TierStarter) != 20 || AllowanceFor(TierPro) != 100 {
		t.Error("paid tier allowances wrong")
	}
	if AllowanceFor(TierEnterprise) != UnlimitedAllowance {
		t.Error("enterprise should be unlimited")
	}
	if AllowanceFor(Tier("unknown")) != 0 {
		t.Error("unknown tiers must default to zero")
	}
}
