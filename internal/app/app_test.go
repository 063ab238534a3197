package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tapplan/internal/app"
	"go.trai.ch/tapplan/internal/core/domain"
	"go.trai.ch/tapplan/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newFixture(t *testing.T) (*mocks.MockHomebrew, *app.App, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	brew := mocks.NewMockHomebrew(ctrl)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	logCfg := mocks.NewMockLogConfigurer(ctrl)
	logCfg.EXPECT().Configure(gomock.Any()).Return(nil).AnyTimes()

	var buf bytes.Buffer
	a := app.New(brew, logger, logCfg).WithOutput(&buf)
	return brew, a, &buf
}

func writeFormula(t *testing.T, url string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widget.rb")
	content := "class Widget < Formula\n  url \"" + url + "\"\nend\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPlan_EndToEnd(t *testing.T) {
	brew, a, buf := newFixture(t)

	path := writeFormula(t, "https://example.com/widget-1.2.3.tar.gz")

	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "homebrew/core/widget").
		Return(path, nil)
	brew.EXPECT().
		DepsUnion(gomock.Any(), []string{"homebrew/core/widget"}).
		Return(nil, nil)
	brew.EXPECT().
		Livecheck(gomock.Any(), "homebrew/core/widget").
		Return("widget : 1.2.3 ==> 1.2.4", nil)
	brew.EXPECT().
		Deps(gomock.Any(), "homebrew/core/widget").
		Return(nil, nil)

	require.NoError(t, a.Plan(context.Background(), []string{"widget"}, app.PlanOptions{}))

	out := buf.String()
	assert.Contains(t, out, "homebrew/core/widget")
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "1.2.4")
	assert.Contains(t, out, "Batch 1: homebrew/core/widget")
	assert.Contains(t, out,
		"brew bump-formula-pr --no-browse --url=https://example.com/widget-1.2.4.tar.gz homebrew/core/widget")
}

func TestPlan_CrossTapFailsBeforeAnyUpdateCheck(t *testing.T) {
	brew, a, _ := newFixture(t)

	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "homebrew/core/widget").
		Return("/taps/core/widget.rb", nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "acme/tools/gadget").
		Return("/taps/acme/gadget.rb", nil)
	// No Livecheck expectations: detection must never start.

	err := a.Plan(
		context.Background(),
		[]string{"widget", "acme/tools/gadget"},
		app.PlanOptions{},
	)
	require.ErrorIs(t, err, domain.ErrCrossTap)
}

func TestPlan_EmptyWorkingSet(t *testing.T) {
	brew, a, buf := newFixture(t)

	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)

	err := a.Plan(context.Background(), []string{"widget"}, app.PlanOptions{
		Skip: []string{"widget"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Nothing to update.\n", buf.String())
}

func TestPlan_UpToDateFormula(t *testing.T) {
	brew, a, buf := newFixture(t)

	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "homebrew/core/widget").
		Return("/taps/core/widget.rb", nil)
	brew.EXPECT().DepsUnion(gomock.Any(), gomock.Any()).Return(nil, nil)
	brew.EXPECT().
		Livecheck(gomock.Any(), "homebrew/core/widget").
		Return("", nil)

	require.NoError(t, a.Plan(context.Background(), []string{"widget"}, app.PlanOptions{}))
	assert.Equal(t, "Nothing to update.\n", buf.String())
}

func TestPlan_StrictRejectsCyclicDependencies(t *testing.T) {
	brew, a, _ := newFixture(t)

	brew.EXPECT().Taps(gomock.Any()).Return([]string{"homebrew/core"}, nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "homebrew/core/widget").
		Return("/taps/core/widget.rb", nil)
	brew.EXPECT().
		FormulaPath(gomock.Any(), "homebrew/core/gadget").
		Return("/taps/core/gadget.rb", nil)
	brew.EXPECT().DepsUnion(gomock.Any(), gomock.Any()).Return(nil, nil)
	brew.EXPECT().
		Livecheck(gomock.Any(), "homebrew/core/widget").
		Return("widget : 1.0 ==> 1.1", nil)
	brew.EXPECT().
		Livecheck(gomock.Any(), "homebrew/core/gadget").
		Return("gadget : 2.0 ==> 2.1", nil)
	brew.EXPECT().
		Deps(gomock.Any(), "homebrew/core/widget").
		Return([]string{"homebrew/core/gadget"}, nil)
	brew.EXPECT().
		Deps(gomock.Any(), "homebrew/core/gadget").
		Return([]string{"homebrew/core/widget"}, nil)

	err := a.Plan(
		context.Background(),
		[]string{"widget", "gadget"},
		app.PlanOptions{Strict: true},
	)
	require.ErrorIs(t, err, domain.ErrDependencyCycle)
}
