package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tapplan/internal/core/domain"
)

func TestParseFormulaRef(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    domain.FormulaRef
		wantErr bool
	}{
		{
			name:  "bare name uses the default tap",
			token: "openssl",
			want:  domain.FormulaRef{Tap: "homebrew/core", Name: "openssl"},
		},
		{
			name:  "fully qualified",
			token: "acme/tools/widget",
			want:  domain.FormulaRef{Tap: "acme/tools", Name: "widget"},
		},
		{
			name:    "single slash is malformed",
			token:   "acme/widget",
			wantErr: true,
		},
		{
			name:    "too many slashes",
			token:   "a/b/c/d",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseFormulaRef(tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidReference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormulaRef_String(t *testing.T) {
	ref := domain.FormulaRef{Tap: "acme/tools", Name: "widget"}
	assert.Equal(t, "acme/tools/widget", ref.String())
}

func TestWorkingSet_RefsAreSorted(t *testing.T) {
	ws := domain.NewWorkingSet()
	ws.Add(domain.FormulaRef{Tap: "acme/tools", Name: "zlib"})
	ws.Add(domain.FormulaRef{Tap: "acme/tools", Name: "abc"})
	ws.Add(domain.FormulaRef{Tap: "homebrew/core", Name: "mmm"})

	refs := ws.Refs()
	require.Len(t, refs, 3)
	assert.Equal(t, "acme/tools/abc", refs[0].String())
	assert.Equal(t, "acme/tools/zlib", refs[1].String())
	assert.Equal(t, "homebrew/core/mmm", refs[2].String())
}

func TestWorkingSet_RecordPath(t *testing.T) {
	ws := domain.NewWorkingSet()
	ref := domain.FormulaRef{Tap: "acme/tools", Name: "widget"}

	require.NoError(t, ws.RecordPath(ref, "/taps/acme/widget.rb"))
	// Recording the same location again is fine.
	require.NoError(t, ws.RecordPath(ref, "/taps/acme/widget.rb"))

	err := ws.RecordPath(ref, "/somewhere/else/widget.rb")
	require.ErrorIs(t, err, domain.ErrLocationConflict)

	path, ok := ws.Path(ref)
	require.True(t, ok)
	assert.Equal(t, "/taps/acme/widget.rb", path)
}

func TestSkipList_Matches(t *testing.T) {
	skip := domain.NewSkipList([]string{"openssl", "acme/tools/widget"})

	assert.True(t, skip.MatchesToken("openssl"))
	assert.False(t, skip.MatchesToken("zlib"))

	// Bare entry suppresses the formula in any tap.
	assert.True(t, skip.Matches(domain.FormulaRef{Tap: "homebrew/core", Name: "openssl"}))
	assert.True(t, skip.Matches(domain.FormulaRef{Tap: "acme/tools", Name: "openssl"}))

	// Qualified entry suppresses only that tap's formula.
	assert.True(t, skip.Matches(domain.FormulaRef{Tap: "acme/tools", Name: "widget"}))
	assert.False(t, skip.Matches(domain.FormulaRef{Tap: "homebrew/core", Name: "widget"}))
}

func TestUpdateSet_Outdated(t *testing.T) {
	a := domain.FormulaRef{Tap: "acme/tools", Name: "a"}
	b := domain.FormulaRef{Tap: "acme/tools", Name: "b"}
	c := domain.FormulaRef{Tap: "acme/tools", Name: "c"}

	set := domain.NewUpdateSet()
	// a depends on both an outdated (b) and a current (c) formula.
	set.Record(a, domain.VersionPair{Old: "1.0", New: "1.1"}, []domain.FormulaRef{b, c})
	set.Record(b, domain.VersionPair{Old: "2.0", New: "2.1"}, nil)

	items := set.Outdated()
	require.Len(t, items, 2)

	// b leads despite its later name: fewer outdated dependencies go first.
	assert.Equal(t, b, items[0].Ref)
	assert.Empty(t, items[0].OutdatedDeps)
	assert.Equal(t, domain.VersionPair{Old: "2.0", New: "2.1"}, items[0].Versions)

	assert.Equal(t, a, items[1].Ref)
	assert.Equal(t, []domain.FormulaRef{b}, items[1].OutdatedDeps)
}
