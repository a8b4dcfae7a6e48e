package contact

// Record is the structured contact parsed from one card. An empty field
// means the value was not detected.
type Record struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	JobTitle string `json:"jobTitle"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	Address  string `json:"address"`
}

// Detected returns the number of non-empty fields.
func (r Record) Detected() int {
	n := 0
	for _, v := range []string{r.Name, r.Company, r.JobTitle, r.Phone, r.Email, r.Website, r.Address} {
		if v != "" {
			n++
		}
	}
	return n
}

// IsEmpty reports whether nothing was detected.
func (r Record) IsEmpty() bool { return r.Detected() == 0 }

// Analysis is a parse with its intermediate steps kept: the normalized
// lines, the candidate pool with the role assigned to each line, and the
// index of the address line (-1 when there is none).
type Analysis struct {
	Lines        []Line      `json:"lines"`
	Pool         []Candidate `json:"pool"`
	AddressIndex int         `json:"addressIndex"`
	Record       Record      `json:"record"`
}

// Parse extracts a Record from raw recognized text. It is a pure function
// of its input and safe for concurrent use.
func Parse(raw string) Record {
	return Analyze(raw).Record
}

// Analyze runs the parser and keeps the intermediate results.
func Analyze(raw string) Analysis {
	lines := NormalizeLines(raw)
	tokens := ExtractTokens(raw)

	a := Analysis{
		Lines:        lines,
		AddressIndex: -1,
		Record: Record{
			Email:   tokens.Email,
			Phone:   tokens.Phone,
			Website: tokens.Website,
		},
	}
	if addr, ok := DetectAddress(lines); ok {
		a.AddressIndex = addr.Index
		a.Record.Address = addr.Content
	}

	a.Pool = classify(CandidatePool(lines))
	for _, c := range a.Pool {
		switch c.Role {
		case Company:
			a.Record.Company = c.Content
		case JobTitle:
			a.Record.JobTitle = c.Content
		case Name:
			a.Record.Name = c.Content
		}
	}
	return a
}
