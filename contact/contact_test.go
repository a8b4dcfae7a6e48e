package contact

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Record
	}{
		{
			name: "full card",
			raw:  "John A. Smith\nAcme Corp.\nSenior Engineer\njohn@acme.com\n(415) 555-0100\n123 Main St, Springfield",
			want: Record{
				Name:     "John A. Smith",
				Company:  "Acme Corp.",
				JobTitle: "Senior Engineer",
				Phone:    "(415) 555-0100",
				Email:    "john@acme.com",
				Address:  "123 Main St, Springfield",
			},
		},
		{
			name: "company only as logo",
			raw:  "Jane Doe\nProduct Manager\njane@example.com",
			want: Record{
				Name:     "Jane Doe",
				JobTitle: "Product Manager",
				Email:    "jane@example.com",
			},
		},
		{
			name: "industry slogan is not a name",
			raw:  "REAL ESTATE SOLUTIONS\nTop Agent 2024",
			want: Record{JobTitle: "Top Agent 2024"},
		},
		{
			name: "empty input",
			raw:  "",
			want: Record{},
		},
		{
			name: "first email wins",
			raw:  "Mary Major\nmary@first.io\nmary.major@second.org",
			want: Record{Name: "Mary Major", Email: "mary@first.io"},
		},
		{
			name: "website and international phone",
			raw:  "Globex LLC\nwww.globex.com\n+1 212-555-0199\nHank Scorpio\nChief Executive Officer",
			want: Record{
				Name:     "Hank Scorpio",
				Company:  "Globex LLC",
				JobTitle: "Chief Executive Officer",
				Phone:    "+1 212-555-0199",
				Website:  "www.globex.com",
			},
		},
		{
			name: "crlf and blank lines",
			raw:  "\r\n  Ada Lovelace  \r\n\r\nAnalytical Engines Ltd\r\n",
			want: Record{Name: "Ada Lovelace", Company: "Analytical Engines Ltd"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.raw)
			if got != tc.want {
				t.Fatalf("unexpected record:\n got %+v\nwant %+v", got, tc.want)
			}
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	raw := "John A. Smith\nAcme Corp.\nSenior Engineer\njohn@acme.com\nhttps://acme.com/team\n(415) 555-0100"
	first := Parse(raw)
	for i := 0; i < 3; i++ {
		if got := Parse(raw); got != first {
			t.Fatalf("parse %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestParseEmailIsLeftmost(t *testing.T) {
	raw := "contact: b@zeta.com or a@alpha.com\nx@first-line-later.com"
	if got := Parse(raw).Email; got != "b@zeta.com" {
		t.Fatalf("unexpected email: %q", got)
	}
}

func TestParseAddressEmptyWhenNoLineQualifies(t *testing.T) {
	raw := "Jane Doe\nMain Street\n42 Wall\nsales@example.com"
	if got := Parse(raw).Address; got != "" {
		t.Fatalf("expected empty address, got %q", got)
	}
}

func TestParseRolesArePairwiseDistinct(t *testing.T) {
	inputs := []string{
		"Lead Co.\nLead Co.\nLead Co.",
		"Lead Co.\nHead Of Sales\nJohn Smith",
		"John Smith\nJohn Smith\nJohn Smith Inc",
		"CEO\nCEO\nAcme Co",
		"VP Co.\nMark Twain",
		"",
		"a\nbb\nccc\ndddd",
	}
	for _, raw := range inputs {
		rec := Parse(raw)
		vals := []string{rec.Name, rec.Company, rec.JobTitle}
		for i := range vals {
			for j := i + 1; j < len(vals); j++ {
				if vals[i] != "" && vals[i] == vals[j] {
					t.Fatalf("duplicate role value %q for input %q: %+v", vals[i], raw, rec)
				}
			}
		}
	}
}

func TestParseCompanyWinsTieWithJobTitle(t *testing.T) {
	rec := Parse("Lead Co.\nSenior Partner")
	if rec.Company != "Lead Co." {
		t.Fatalf("unexpected company: %q", rec.Company)
	}
	if rec.JobTitle != "Senior Partner" {
		t.Fatalf("unexpected job title: %q", rec.JobTitle)
	}
}

func TestParseJobTitleVerbatim(t *testing.T) {
	line := "  Regional Sales Manager, EMEA  "
	rec := Parse("Olga Petrova\n" + line)
	if rec.JobTitle != strings.TrimSpace(line) {
		t.Fatalf("unexpected job title: %q", rec.JobTitle)
	}
}

func TestParseShortLines(t *testing.T) {
	if got := Parse("CEO").JobTitle; got != "CEO" {
		t.Fatalf("three-rune line should be eligible, got %q", got)
	}
	if got := Parse("Co.").Company; got != "Co." {
		t.Fatalf("three-rune company should be eligible, got %q", got)
	}
	if got := Parse("VP").JobTitle; got != "" {
		t.Fatalf("two-rune line should be filtered, got %q", got)
	}
}

func TestParseTokenInsideAddressStillExtracted(t *testing.T) {
	raw := "Ann Lee\nSuite 5, 10 Downing Street, see www.gov.uk/contact"
	rec := Parse(raw)
	if rec.Website != "www.gov.uk/contact" {
		t.Fatalf("unexpected website: %q", rec.Website)
	}
	// A website on the line does not disqualify it as an address.
	if rec.Address != "Suite 5, 10 Downing Street, see www.gov.uk/contact" {
		t.Fatalf("unexpected address: %q", rec.Address)
	}
}

func TestParseGarbage(t *testing.T) {
	inputs := []string{
		"\x00\x01\x02",
		strings.Repeat("#", 10000),
		strings.Repeat("x\n", 5000),
		"☃☃☃ ☃☃☃\n∆∆∆",
		"          \n\t\t\t\t\t\t\t\t\t\t\t",
	}
	for _, raw := range inputs {
		rec := Parse(raw)
		if rec.Name != "" || rec.Company != "" || rec.JobTitle != "" {
			t.Fatalf("unexpected record for garbage input: %+v", rec)
		}
	}
}

func TestAnalyzeRoles(t *testing.T) {
	a := Analyze("John A. Smith\nAcme Corp.\nSenior Engineer\njohn@acme.com\n123 Main St, Springfield")
	if a.AddressIndex != 4 {
		t.Fatalf("unexpected address index: %d", a.AddressIndex)
	}
	want := map[string]Role{
		"John A. Smith":            Name,
		"Acme Corp.":               Company,
		"Senior Engineer":          JobTitle,
		"123 Main St, Springfield": Unclassified,
	}
	if len(a.Pool) != len(want) {
		t.Fatalf("unexpected pool: %+v", a.Pool)
	}
	for _, c := range a.Pool {
		if role, ok := want[c.Content]; !ok || role != c.Role {
			t.Fatalf("unexpected candidate %+v", c)
		}
	}
}

func TestAnalyzeNoAddress(t *testing.T) {
	if a := Analyze("Jane Doe"); a.AddressIndex != -1 {
		t.Fatalf("unexpected address index: %d", a.AddressIndex)
	}
}

func TestRecordJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Record{JobTitle: "CTO"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"","company":"","jobTitle":"CTO","phone":"","email":"","website":"","address":""}`
	if string(data) != want {
		t.Fatalf("unexpected json: %s", data)
	}
}

func TestRecordDetected(t *testing.T) {
	if !(Record{}).IsEmpty() {
		t.Fatalf("zero record should be empty")
	}
	if n := (Record{Name: "a", Email: "b"}).Detected(); n != 2 {
		t.Fatalf("unexpected detected count: %d", n)
	}
}

func TestRoleMarshalText(t *testing.T) {
	data, err := json.Marshal(Candidate{Line: Line{Content: "Acme Inc", Index: 2}, Role: Company})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"content":"Acme Inc","index":2,"role":"company"}` {
		t.Fatalf("unexpected json: %s", data)
	}
}

func TestRoleUnmarshalText(t *testing.T) {
	var c Candidate
	if err := json.Unmarshal([]byte(`{"content":"Dev Lead","index":1,"role":"jobTitle"}`), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.Role != JobTitle || c.Content != "Dev Lead" || c.Index != 1 {
		t.Fatalf("unexpected candidate: %+v", c)
	}
	var r Role
	if err := r.UnmarshalText([]byte("bogus")); err != nil || r != Unclassified {
		t.Fatalf("unexpected role %v, err %v", r, err)
	}
}
