package staging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStep is a test helper for the Step interface.
type recordingStep struct {
	name     string
	applyErr error
	undoErr  error
	applied  bool
	undone   bool
	journal  *[]string
}

func (s *recordingStep) Apply(_ context.Context) error {
	s.applied = true
	*s.journal = append(*s.journal, "apply "+s.name)

	return s.applyErr
}

func (s *recordingStep) Undo(_ context.Context) error {
	s.undone = true
	*s.journal = append(*s.journal, "undo "+s.name)

	return s.undoErr
}

func (s *recordingStep) Describe() string { return s.name }

func TestNew_StagesSteps(t *testing.T) {
	var journal []string

	plan := New(nil,
		&recordingStep{name: "add winemaker", journal: &journal},
		&recordingStep{name: "add bottle", journal: &journal},
	)

	assert.Equal(t, 2, plan.Len())
	assert.Empty(t, journal, "nothing runs before Commit")
}

func toSteps(steps []*recordingStep) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = s
	}

	return out
}

func TestCommit_AppliesInOrder(t *testing.T) {
	var journal []string

	steps := []*recordingStep{
		{name: "winemaker", journal: &journal},
		{name: "bottle 1", journal: &journal},
		{name: "bottle 2", journal: &journal},
	}
	plan := New(nil, toSteps(steps)...)

	require.NoError(t, plan.Commit(context.Background()))

	assert.Equal(t, []string{"apply winemaker", "apply bottle 1", "apply bottle 2"}, journal)
	for _, s := range steps {
		assert.False(t, s.undone)
	}
}

func TestCommit_UndoesAppliedStepsInReverse(t *testing.T) {
	var journal []string

	cause := errors.New("winemaker does not exist")
	first := &recordingStep{name: "winemaker", journal: &journal}
	second := &recordingStep{name: "bottle 1", journal: &journal}
	failing := &recordingStep{name: "bottle 2", applyErr: cause, journal: &journal}
	never := &recordingStep{name: "bottle 3", journal: &journal}

	plan := New(nil, toSteps([]*recordingStep{first, second, failing, never})...)

	err := plan.Commit(context.Background())

	require.Error(t, err)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"bottle 2"`)

	assert.Equal(t, []string{
		"apply winemaker", "apply bottle 1", "apply bottle 2",
		"undo bottle 1", "undo winemaker",
	}, journal)
	assert.False(t, failing.undone, "a failed step is not undone")
	assert.False(t, never.applied)
}

func TestCommit_UndoFailureIsLoggedAndRollbackContinues(t *testing.T) {
	var buf bytes.Buffer
	var journal []string

	first := &recordingStep{name: "winemaker", journal: &journal}
	second := &recordingStep{name: "bottle 1", undoErr: errors.New("already gone"), journal: &journal}
	failing := &recordingStep{name: "bottle 2", applyErr: errors.New("boom"), journal: &journal}

	plan := New(slog.New(slog.NewJSONHandler(&buf, nil)), toSteps([]*recordingStep{first, second, failing})...)

	require.Error(t, plan.Commit(context.Background()))

	assert.True(t, first.undone)
	assert.Contains(t, buf.String(), "undo failed")
	assert.Contains(t, buf.String(), "already gone")
}

func TestCommit_StopsWhenContextEnds(t *testing.T) {
	var journal []string

	ctx, cancel := context.WithCancel(context.Background())

	plan := New(nil,
		&recordingStep{name: "winemaker", journal: &journal},
		Func("cancel", func(context.Context) error {
			cancel()
			journal = append(journal, "apply cancel")

			return nil
		}, func(context.Context) error {
			journal = append(journal, "undo cancel")
			return nil
		}),
		&recordingStep{name: "bottle", journal: &journal},
	)

	err := plan.Commit(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"apply winemaker", "apply cancel", "undo cancel", "undo winemaker"}, journal)
}

func TestCommit_Twice_ReturnsError(t *testing.T) {
	plan := New(nil)

	require.NoError(t, plan.Commit(context.Background()))
	assert.ErrorIs(t, plan.Commit(context.Background()), ErrAlreadyCommitted)
}

func TestFunc_NilUndo(t *testing.T) {
	applied := false
	step := Func("no undo", func(context.Context) error {
		applied = true
		return nil
	}, nil)

	require.NoError(t, step.Apply(context.Background()))
	require.NoError(t, step.Undo(context.Background()))
	assert.True(t, applied)
	assert.Equal(t, "no undo", step.Describe())
}
