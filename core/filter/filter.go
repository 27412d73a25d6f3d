package filter

import "strings"

type Mode int

const (
	// None passes every extension.
	None Mode = iota
	// Include passes only listed extensions.
	Include
	// Exclude rejects listed extensions.
	Exclude
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Include:
		return "include"
	case Exclude:
		return "exclude"
	default:
		return "unknown"
	}
}

// Filter restricts which extensions are eligible for sampling.
type Filter struct {
	Mode Mode
	Exts map[string]struct{}
}

// Parse builds a Filter from a comma-separated extension list. A leading
// '!' on the first entry switches the whole list to exclude mode; the '!'
// prefix is stripped from every entry regardless of which one carried it.
// An empty spec yields a pass-all filter. Empty entries are discarded.
func Parse(spec string) Filter {
	if spec == "" {
		return Filter{Mode: None}
	}

	tokens := strings.Split(spec, ",")
	mode := Include
	if strings.HasPrefix(tokens[0], "!") {
		mode = Exclude
	}

	exts := make(map[string]struct{})
	for _, tok := range tokens {
		tok = strings.TrimPrefix(tok, "!")
		if tok == "" {
			continue
		}
		exts[tok] = struct{}{}
	}

	return Filter{Mode: mode, Exts: exts}
}

// Allows reports whether a file with the given extension is eligible.
func (f Filter) Allows(ext string) bool {
	switch f.Mode {
	case Include:
		_, ok := f.Exts[ext]
		return ok
	case Exclude:
		_, ok := f.Exts[ext]
		return !ok
	default:
		return true
	}
}
