package mapping

import "testing"

func TestLookup_ExactSection(t *testing.T) {
	m := Lookup("302")
	if m == nil {
		t.Fatal("expected a mapping for 302")
	}
	if m.BNSSection != "BNS 103" {
		t.Fatalf("IPC 302: got %q want %q", m.BNSSection, "BNS 103")
	}
}

func TestLookup_StripsFillerWords(t *testing.T) {
	cases := []string{"IPC 302", "ipc section 302", "Sec. 302", "s 302"}
	for _, q := range cases {
		m := Lookup(q)
		if m == nil || m.BNSSection != "BNS 103" {
			t.Fatalf("query %q: got %+v", q, m)
		}
	}
}

func TestLookup_LetterSuffixForms(t *testing.T) {
	cases := map[string]string{
		"Section 304-B": "304b",
		"498(A)":        "498a",
		"124-A":         "124a",
	}
	for q, wantKey := range cases {
		m := Lookup(q)
		if m == nil {
			t.Fatalf("query %q: no mapping", q)
		}
		want := table[wantKey]
		if m.BNSSection != want.BNSSection {
			t.Fatalf("query %q: got BNS %s want %s", q, m.BNSSection, want.BNSSection)
		}
	}
}

func TestLookup_FuzzyNearMiss(t *testing.T) {
	// One trailing character off an exact key.
	m := Lookup("420x")
	if m == nil {
		t.Fatal("expected fuzzy match for 420x")
	}
	if m.IPCSection != "420" {
		t.Fatalf("fuzzy match resolved to %s", m.IPCSection)
	}
}

func TestLookup_NoMatch(t *testing.T) {
	for _, q := range []string{"", "   ", "cheating and dishonesty generally"} {
		if m := Lookup(q); m != nil {
			t.Fatalf("query %q: expected nil, got %+v", q, m)
		}
	}
}

func TestTable_Integrity(t *testing.T) {
	if Count() == 0 {
		t.Fatal("mapping table is empty")
	}
	for k, m := range All() {
		if m.IPCSection == "" || m.BNSSection == "" {
			t.Fatalf("key %q has incomplete mapping: %+v", k, m)
		}
		if sectionKey(k) != k {
			t.Fatalf("key %q is not in normalized form", k)
		}
	}
	if len(Categories()) == 0 {
		t.Fatal("no categories derived")
	}
}
