package resolver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tapplan/internal/core/domain"
	"go.trai.ch/tapplan/internal/core/ports/mocks"
	"go.trai.ch/tapplan/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return logger
}

// writeTap creates a fake tap folder with the given formula files under the
// requested subfolder and returns its path.
func writeTap(t *testing.T, sub string, names ...string) string {
	t.Helper()
	tapPath := t.TempDir()
	dir := filepath.Join(tapPath, sub)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".rb"), []byte("class X\nend\n"), 0o600))
	}
	return tapPath
}

func TestResolver_FormulaToken_DefaultTap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brew := mocks.NewMockHomebrew(ctrl)
	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "homebrew/core/widget").
		Return("/opt/homebrew/Library/Taps/homebrew/homebrew-core/Formula/w/widget.rb", nil)

	r := resolver.New(brew, quietLogger(ctrl))
	ws, scope, err := r.Resolve(context.Background(), []string{"widget"}, nil, false)
	require.NoError(t, err)

	ref := domain.FormulaRef{Tap: "homebrew/core", Name: "widget"}
	assert.Equal(t, "homebrew/core", scope)
	assert.True(t, ws.Contains(ref))

	path, ok := ws.Path(ref)
	require.True(t, ok)
	assert.Contains(t, path, "widget.rb")
}

func TestResolver_TapToken_EnumeratesFormulaFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tapPath := writeTap(t, "Formula", "widget", "libwidget")

	brew := mocks.NewMockHomebrew(ctrl)
	brew.EXPECT().Taps(gomock.Any()).Return([]string{"acme/tools"}, nil)
	brew.EXPECT().TapPath(gomock.Any(), "acme/tools").Return(tapPath, nil)

	r := resolver.New(brew, quietLogger(ctrl))
	ws, scope, err := r.Resolve(context.Background(), []string{"acme/tools"}, nil, false)
	require.NoError(t, err)

	assert.Equal(t, "acme/tools", scope)
	assert.Equal(t, 2, ws.Len())
	assert.True(t, ws.Contains(domain.FormulaRef{Tap: "acme/tools", Name: "widget"}))
	assert.True(t, ws.Contains(domain.FormulaRef{Tap: "acme/tools", Name: "libwidget"}))
}

func TestResolver_TapToken_FallsBackToTapRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tapPath := writeTap(t, ".", "widget")

	brew := mocks.NewMockHomebrew(ctrl)
	brew.EXPECT().Taps(gomock.Any()).Return([]string{"acme/tools"}, nil)
	brew.EXPECT().TapPath(gomock.Any(), "acme/tools").Return(tapPath, nil)

	r := resolver.New(brew, quietLogger(ctrl))
	ws, _, err := r.Resolve(context.Background(), []string{"acme/tools"}, nil, false)
	require.NoError(t, err)
	assert.True(t, ws.Contains(domain.FormulaRef{Tap: "acme/tools", Name: "widget"}))
}

func TestResolver_MalformedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brew := mocks.NewMockHomebrew(ctrl)
	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)

	r := resolver.New(brew, quietLogger(ctrl))
	_, _, err := r.Resolve(context.Background(), []string{"not-a-tap/widget"}, nil, false)
	require.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestResolver_CrossTapFailsFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brew := mocks.NewMockHomebrew(ctrl)
	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "homebrew/core/widget").
		Return("/taps/core/widget.rb", nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "acme/tools/gadget").
		Return("/taps/acme/gadget.rb", nil)

	r := resolver.New(brew, quietLogger(ctrl))
	_, _, err := r.Resolve(context.Background(), []string{"widget", "acme/tools/gadget"}, nil, false)
	require.ErrorIs(t, err, domain.ErrCrossTap)
}

func TestResolver_CrossTapAllowedWithAllTaps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brew := mocks.NewMockHomebrew(ctrl)
	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "homebrew/core/widget").
		Return("/taps/core/widget.rb", nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "acme/tools/gadget").
		Return("/taps/acme/gadget.rb", nil)

	r := resolver.New(brew, quietLogger(ctrl))
	ws, scope, err := r.Resolve(context.Background(), []string{"widget", "acme/tools/gadget"}, nil, true)
	require.NoError(t, err)
	assert.Empty(t, scope)
	assert.Equal(t, 2, ws.Len())
}

func TestResolver_SkipListFiltersTapEnumeration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tapPath := writeTap(t, "Formula", "widget", "libwidget")

	brew := mocks.NewMockHomebrew(ctrl)
	brew.EXPECT().Taps(gomock.Any()).Return([]string{"acme/tools"}, nil)
	brew.EXPECT().TapPath(gomock.Any(), "acme/tools").Return(tapPath, nil)

	r := resolver.New(brew, quietLogger(ctrl))
	ws, _, err := r.Resolve(
		context.Background(),
		[]string{"acme/tools"},
		domain.NewSkipList([]string{"widget"}),
		false,
	)
	require.NoError(t, err)
	assert.Equal(t, 1, ws.Len())
	assert.True(t, ws.Contains(domain.FormulaRef{Tap: "acme/tools", Name: "libwidget"}))
}

func TestResolver_SkipListSuppressesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brew := mocks.NewMockHomebrew(ctrl)
	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)

	r := resolver.New(brew, quietLogger(ctrl))
	ws, _, err := r.Resolve(
		context.Background(),
		[]string{"widget"},
		domain.NewSkipList([]string{"widget"}),
		false,
	)
	require.NoError(t, err)
	assert.Zero(t, ws.Len())
}

func TestResolver_SkippedFormulaDoesNotLockTapScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brew := mocks.NewMockHomebrew(ctrl)
	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "acme/tools/gadget").
		Return("/taps/acme/gadget.rb", nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "homebrew/core/widget").
		Return("/taps/core/widget.rb", nil)

	r := resolver.New(brew, quietLogger(ctrl))
	// The first token is suppressed, so only the second one sets the scope.
	ws, scope, err := r.Resolve(
		context.Background(),
		[]string{"acme/tools/gadget", "widget"},
		domain.NewSkipList([]string{"gadget"}),
		false,
	)
	require.NoError(t, err)
	assert.Equal(t, "homebrew/core", scope)
	assert.Equal(t, 1, ws.Len())
	assert.True(t, ws.Contains(domain.FormulaRef{Tap: "homebrew/core", Name: "widget"}))
}

func TestResolver_SkipListSuppressesResolvedBareName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brew := mocks.NewMockHomebrew(ctrl)
	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "acme/tools/widget").
		Return("/taps/acme/widget.rb", nil)

	r := resolver.New(brew, quietLogger(ctrl))
	// The skip entry is a bare name, the token is fully qualified.
	ws, _, err := r.Resolve(
		context.Background(),
		[]string{"acme/tools/widget"},
		domain.NewSkipList([]string{"widget"}),
		false,
	)
	require.NoError(t, err)
	assert.Zero(t, ws.Len())
}
