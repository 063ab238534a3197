package domain

// SkipList holds formulae the user asked to leave untouched. Matching is by
// exact fully qualified name or by bare name; the ambiguity of a bare entry
// suppressing same-named formulae across taps is accepted.
type SkipList map[string]struct{}

// NewSkipList builds a SkipList from raw user tokens.
func NewSkipList(items []string) SkipList {
	s := make(SkipList, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// MatchesToken reports whether the raw token appears verbatim in the list.
func (s SkipList) MatchesToken(token string) bool {
	_, ok := s[token]
	return ok
}

// Matches reports whether the formula is suppressed, by either name form.
func (s SkipList) Matches(ref FormulaRef) bool {
	if _, ok := s[ref.String()]; ok {
		return true
	}
	_, ok := s[ref.Name]
	return ok
}
