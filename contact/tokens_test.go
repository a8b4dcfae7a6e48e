package contact

import "testing"

func TestExtractTokens(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Tokens
	}{
		{
			name: "all three",
			raw:  "Tel: +1 (415) 555-0100\nE: Jo.Ann+cards@Mail.Example.com\nhttps://example.com/about-us",
			want: Tokens{
				Email:   "Jo.Ann+cards@Mail.Example.com",
				Phone:   "+1 (415) 555-0100",
				Website: "https://example.com/about-us",
			},
		},
		{
			name: "phone whitespace collapsed",
			raw:  "555   123\t\t4567",
			want: Tokens{Phone: "555 123 4567"},
		},
		{
			name: "phone does not span lines",
			raw:  "(415) 555\n0100 ext",
			want: Tokens{},
		},
		{
			name: "dotted phone",
			raw:  "415.555.0100",
			want: Tokens{Phone: "415.555.0100"},
		},
		{
			name: "spacing runs are not phones",
			raw:  "A          B\nCall 020 7946 0958",
			want: Tokens{Phone: "020 7946 0958"},
		},
		{
			name: "email parts are not websites",
			raw:  "first.last@corp.example.com",
			want: Tokens{Email: "first.last@corp.example.com"},
		},
		{
			name: "website after email",
			raw:  "hi@acme.io\nwww.acme.io",
			want: Tokens{Email: "hi@acme.io", Website: "www.acme.io"},
		},
		{
			name: "short tld rejected",
			raw:  "Dr. J. Watson",
			want: Tokens{},
		},
		{
			name: "empty",
			raw:  "",
			want: Tokens{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractTokens(tc.raw); got != tc.want {
				t.Fatalf("unexpected tokens:\n got %+v\nwant %+v", got, tc.want)
			}
		})
	}
}
