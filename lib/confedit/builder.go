package confedit

import "strings"

// Candidate is one discovered public peer, pre-ranked by the caller
// (typically ascending latency).
type Candidate struct {
	URI     string
	Region  string
	Country string
}

// Policy controls which candidates make it into the rendered array.
type Policy struct {
	// MaxPeers caps the number of ranked entries emitted. The cap is
	// counted after exclusion filtering; zero emits no ranked entries.
	MaxPeers uint8
	// Ignore drops every candidate whose URI occurs in this text,
	// typically a space-delimited list of unwanted addresses. Empty keeps
	// all candidates.
	Ignore string
	// Extra is a space-delimited list of addresses appended verbatim after
	// the ranked entries, independent of MaxPeers and never deduplicated.
	Extra string
}

// Select applies the policy's exclusion filter and cap to the candidates,
// preserving their order. The fixed Extra additions are not part of the
// result; they bypass ranking entirely.
func Select(candidates []Candidate, pol Policy) []Candidate {
	picked := make([]Candidate, 0, pol.MaxPeers)
	for _, c := range candidates {
		if uint8(len(picked)) == pol.MaxPeers {
			break
		}
		if pol.Ignore != "" && strings.Contains(pol.Ignore, c.URI) {
			continue
		}
		picked = append(picked, c)
	}
	return picked
}

// ExtraAddresses splits the policy's fixed additions into individual
// addresses, preserving their order. Nil when no additions were given.
func (p Policy) ExtraAddresses() []string {
	if p.Extra == "" {
		return nil
	}
	return strings.Split(p.Extra, " ")
}

// BuildReplacement renders the full replacement text for the key and its
// array value: the key token exactly as matched in the document, then the
// selected candidates as "#Region/Country" header comments over indented
// addresses, then the fixed additions under an "#extra" marker. The result
// supplies its own closing bracket.
func BuildReplacement(key string, candidates []Candidate, pol Policy) string {
	var b strings.Builder
	b.WriteString(key)
	b.WriteString("\n  [")

	for _, c := range Select(candidates, pol) {
		b.WriteString("\n    #")
		b.WriteString(c.Region)
		b.WriteString("/")
		b.WriteString(c.Country)
		b.WriteString("\n    ")
		b.WriteString(c.URI)
	}

	if extras := pol.ExtraAddresses(); extras != nil {
		b.WriteString("\n\n    #extra")
		for _, addr := range extras {
			b.WriteString("\n    ")
			b.WriteString(addr)
		}
	}

	b.WriteString("\n  ]")
	return b.String()
}
