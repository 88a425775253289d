package main

import (
	"strings"
	"testing"
)

func TestParseStandardPrincipal(t *testing.T) {
	p, err := parseStandardPrincipal(bootAddress)
	if err != nil {
		t.Fatalf("parseStandardPrincipal: %v", err)
	}
	if p.Version != 22 {
		t.Fatalf("version = %d, want 22", p.Version)
	}
	if p.Hash160 != [20]byte{} {
		t.Fatalf("hash160 = %x, want zeros", p.Hash160)
	}
	if got := p.String(); got != bootAddress {
		t.Fatalf("String() = %q, want %q", got, bootAddress)
	}
}

func TestParseStandardPrincipalNormalization(t *testing.T) {
	lower := strings.ToLower(bootAddress)
	p, err := parseStandardPrincipal(lower)
	if err != nil {
		t.Fatalf("lowercase rejected: %v", err)
	}
	if p.String() != bootAddress {
		t.Fatalf("String() = %q", p.String())
	}

	// homoglyphs map onto the canonical digits
	withO := strings.ReplaceAll(bootAddress, "0", "O")
	if _, err := parseStandardPrincipal(withO); err != nil {
		t.Fatalf("O-for-0 rejected: %v", err)
	}
}

func TestParseStandardPrincipalRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"checksum mismatch", "SP000000000000000000002Q6VF79"},
		{"bad prefix", "XP000000000000000000002Q6VF78"},
		{"bad character", "SP0000000000000000000U2Q6VF78"},
		{"non-ascii version", "Sé00000000000000000002Q6VF78"},
		{"non-ascii body", "SP00000000é000000000002Q6VF78"},
		{"too short", "SP0"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseStandardPrincipal(tt.in); err == nil {
				t.Fatalf("parseStandardPrincipal(%q) accepted", tt.in)
			}
		})
	}
}

func TestPrincipalRoundTrip(t *testing.T) {
	p := StandardPrincipal{Version: 26}
	for i := range p.Hash160 {
		p.Hash160[i] = byte(i * 7)
	}
	encoded := p.String()
	decoded, err := parseStandardPrincipal(encoded)
	if err != nil {
		t.Fatalf("parse %q: %v", encoded, err)
	}
	if decoded != p {
		t.Fatalf("round trip: got %+v, want %+v", decoded, p)
	}
}

func TestParseContractIdentifier(t *testing.T) {
	q, err := parseContractIdentifier(bootAddress + ".pox")
	if err != nil {
		t.Fatalf("parseContractIdentifier: %v", err)
	}
	if q.Name != "pox" {
		t.Fatalf("name = %q", q.Name)
	}
	if got := q.String(); got != bootAddress+".pox" {
		t.Fatalf("String() = %q", got)
	}

	bad := []string{
		"no-dot-here",
		bootAddress,
		bootAddress + ".",
		bootAddress + ".9bad",
		bootAddress + ".a.b",
		"SP00BAD.pox",
	}
	for _, in := range bad {
		if _, err := parseContractIdentifier(in); err == nil {
			t.Fatalf("parseContractIdentifier(%q) accepted", in)
		}
	}
}

func TestValidClarityName(t *testing.T) {
	valid := []string{"a", "pox", "stack-stx", "transfer?", "x2", "a-b_c!d?e"}
	for _, name := range valid {
		if !validClarityName(name) {
			t.Fatalf("%q rejected", name)
		}
	}
	invalid := []string{"", "9lives", "-leading", "has space", strings.Repeat("a", 129)}
	for _, name := range invalid {
		if validClarityName(name) {
			t.Fatalf("%q accepted", name)
		}
	}
}
