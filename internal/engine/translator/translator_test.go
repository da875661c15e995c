package translator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinpoint/internal/adapters/sourcemap"
	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/pinpoint/internal/core/ports/mocks"
	"go.trai.ch/pinpoint/internal/engine/translator"
	"go.uber.org/mock/gomock"
)

// Line 10, column 4 maps to orig.ts line 11, column 2.
const validMap = `{"version":3,"sources":["orig.ts"],"names":[],"mappings":";;;;;;;;;IAUE"}`

// Line 1, column 0 maps to other.ts line 1, column 0.
const otherMap = `{"version":3,"sources":["other.ts"],"names":[],"mappings":"AAAA"}`

func TestTranslator_RegisterAndLookup(t *testing.T) {
	tr := translator.New(sourcemap.NewParser())
	id := domain.NewFileID("x")

	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte(validMap)))

	pos, ok := tr.OriginalPosition(id, 10, 4)
	require.True(t, ok)
	assert.Equal(t, domain.OriginalPosition{Source: "orig.ts", Line: 11, Column: 2}, pos)
	assert.True(t, tr.Registered(id))
	assert.Equal(t, 1, tr.Len())
}

func TestTranslator_MalformedKeepsPrevious(t *testing.T) {
	tr := translator.New(sourcemap.NewParser())
	id := domain.NewFileID("x")
	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte(validMap)))

	err := tr.RegisterMap(context.Background(), id, []byte(`{"version":3,`))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSourceMap)
	pos, ok := tr.OriginalPosition(id, 10, 4)
	require.True(t, ok)
	assert.Equal(t, "orig.ts", pos.Source)
}

func TestTranslator_MalformedFirstRegistration(t *testing.T) {
	tr := translator.New(sourcemap.NewParser())
	id := domain.NewFileID("x")

	err := tr.RegisterMap(context.Background(), id, []byte(`not a map`))

	require.Error(t, err)
	assert.False(t, tr.Registered(id))
	_, ok := tr.OriginalPosition(id, 10, 4)
	assert.False(t, ok)
}

func TestTranslator_ReplaceDropsOldPositions(t *testing.T) {
	tr := translator.New(sourcemap.NewParser())
	id := domain.NewFileID("x")
	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte(validMap)))

	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte(otherMap)))

	_, ok := tr.OriginalPosition(id, 10, 4)
	assert.False(t, ok)
	pos, ok := tr.OriginalPosition(id, 1, 0)
	require.True(t, ok)
	assert.Equal(t, "other.ts", pos.Source)
	assert.Equal(t, 1, tr.Len())
}

func TestTranslator_UnregisteredIsAbsent(t *testing.T) {
	tr := translator.New(sourcemap.NewParser())

	for _, coords := range [][2]int{{0, 0}, {1, 0}, {10, 4}, {-1, -1}} {
		_, ok := tr.OriginalPosition(domain.NewFileID("missing"), coords[0], coords[1])
		assert.False(t, ok)
	}
}

func TestTranslator_UnmappedPositionIsAbsent(t *testing.T) {
	tr := translator.New(sourcemap.NewParser())
	id := domain.NewFileID("x")
	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte(validMap)))

	_, ok := tr.OriginalPosition(id, 10, 3)
	assert.False(t, ok)
	_, ok = tr.OriginalPosition(id, 9, 4)
	assert.False(t, ok)
}

func TestTranslator_PartialResolutionFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		mapped domain.MappedPosition
		want   domain.OriginalPosition
	}{
		{
			name:   "line only",
			mapped: domain.MappedPosition{Source: "a.ts", Line: 7, HasLine: true},
			want:   domain.OriginalPosition{Source: "a.ts", Line: 7, Column: 9},
		},
		{
			name:   "column only",
			mapped: domain.MappedPosition{Source: "a.ts", Column: 5, HasColumn: true},
			want:   domain.OriginalPosition{Source: "a.ts", Line: 3, Column: 5},
		},
		{
			name:   "neither",
			mapped: domain.MappedPosition{Source: "a.ts", Name: "fn"},
			want:   domain.OriginalPosition{Source: "a.ts", Line: 3, Column: 9, Name: "fn"},
		},
		{
			name:   "both resolve to zero",
			mapped: domain.MappedPosition{Source: "a.ts", HasLine: true, HasColumn: true},
			want:   domain.OriginalPosition{Source: "a.ts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			parser := mocks.NewMockMapParser(ctrl)
			table := mocks.NewMockPositionTable(ctrl)
			parser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(table, nil)
			table.EXPECT().Lookup(3, 9).Return(tt.mapped, true)

			tr := translator.New(parser)
			id := domain.NewFileID("a.js")
			require.NoError(t, tr.RegisterMap(context.Background(), id, []byte("{}")))

			pos, ok := tr.OriginalPosition(id, 3, 9)
			require.True(t, ok)
			assert.Equal(t, tt.want, pos)
		})
	}
}

func TestTranslator_EmptySourceIsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockMapParser(ctrl)
	table := mocks.NewMockPositionTable(ctrl)
	parser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(table, nil)
	table.EXPECT().Lookup(1, 0).Return(domain.MappedPosition{Line: 4, HasLine: true}, true)

	tr := translator.New(parser)
	id := domain.NewFileID("a.js")
	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte("{}")))

	_, ok := tr.OriginalPosition(id, 1, 0)
	assert.False(t, ok)
}

func TestTranslator_ReleasesReplacedTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockMapParser(ctrl)
	first := mocks.NewMockPositionTable(ctrl)
	second := mocks.NewMockPositionTable(ctrl)
	id := domain.NewFileID("a.js")

	gomock.InOrder(
		parser.EXPECT().Parse(gomock.Any(), []byte("first")).Return(first, nil),
		parser.EXPECT().Parse(gomock.Any(), []byte("second")).Return(second, nil),
		first.EXPECT().Close().Return(nil),
		second.EXPECT().Close().Return(nil),
	)

	tr := translator.New(parser)
	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte("first")))
	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte("second")))
	require.NoError(t, tr.UnregisterMap(id))

	// Repeated unregistration is a no-op and must not close anything again.
	require.NoError(t, tr.UnregisterMap(id))
	require.NoError(t, tr.UnregisterMap(domain.NewFileID("never.js")))
	assert.Zero(t, tr.Len())
}

func TestTranslator_ClearReleasesEveryTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockMapParser(ctrl)
	a := mocks.NewMockPositionTable(ctrl)
	b := mocks.NewMockPositionTable(ctrl)
	closeErr := errors.New("boom")

	parser.EXPECT().Parse(gomock.Any(), []byte("a")).Return(a, nil)
	parser.EXPECT().Parse(gomock.Any(), []byte("b")).Return(b, nil)
	a.EXPECT().Close().Return(nil)
	b.EXPECT().Close().Return(closeErr)

	tr := translator.New(parser)
	require.NoError(t, tr.RegisterMap(context.Background(), domain.NewFileID("a.js"), []byte("a")))
	require.NoError(t, tr.RegisterMap(context.Background(), domain.NewFileID("b.js"), []byte("b")))

	err := tr.Clear()

	// One failing release does not stop the others.
	require.Error(t, err)
	assert.ErrorIs(t, err, closeErr)
	assert.Zero(t, tr.Len())
	_, ok := tr.OriginalPosition(domain.NewFileID("a.js"), 1, 0)
	assert.False(t, ok)

	require.NoError(t, tr.Clear())
}

// blockingParse returns a Parse implementation that signals entry and then waits for
// release before returning table.
func blockingParse(
	entered chan<- struct{},
	release <-chan struct{},
	table ports.PositionTable,
) func(context.Context, []byte) (ports.PositionTable, error) {
	return func(context.Context, []byte) (ports.PositionTable, error) {
		close(entered)
		<-release
		return table, nil
	}
}

func TestTranslator_LastIssuedWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockMapParser(ctrl)
	older := mocks.NewMockPositionTable(ctrl)
	newer := mocks.NewMockPositionTable(ctrl)
	id := domain.NewFileID("a.js")

	entered := make(chan struct{})
	release := make(chan struct{})
	parser.EXPECT().Parse(gomock.Any(), []byte("old")).DoAndReturn(blockingParse(entered, release, older))
	parser.EXPECT().Parse(gomock.Any(), []byte("new")).Return(newer, nil)
	// The older table finishes last and is discarded.
	older.EXPECT().Close().Return(nil)
	newer.EXPECT().Lookup(1, 0).Return(domain.MappedPosition{Source: "new.ts", HasLine: true, HasColumn: true}, true)

	tr := translator.New(parser)
	done := make(chan error, 1)
	go func() {
		done <- tr.RegisterMap(context.Background(), id, []byte("old"))
	}()
	<-entered

	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte("new")))
	close(release)
	require.NoError(t, <-done)

	pos, ok := tr.OriginalPosition(id, 1, 0)
	require.True(t, ok)
	assert.Equal(t, "new.ts", pos.Source)
}

func TestTranslator_UnregisterDiscardsInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockMapParser(ctrl)
	table := mocks.NewMockPositionTable(ctrl)
	id := domain.NewFileID("a.js")

	entered := make(chan struct{})
	release := make(chan struct{})
	parser.EXPECT().Parse(gomock.Any(), gomock.Any()).DoAndReturn(blockingParse(entered, release, table))
	table.EXPECT().Close().Return(nil)

	tr := translator.New(parser)
	done := make(chan error, 1)
	go func() {
		done <- tr.RegisterMap(context.Background(), id, []byte("doc"))
	}()
	<-entered

	require.NoError(t, tr.UnregisterMap(id))
	close(release)
	require.NoError(t, <-done)

	assert.False(t, tr.Registered(id))
}

func TestTranslator_ClearDiscardsInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockMapParser(ctrl)
	table := mocks.NewMockPositionTable(ctrl)
	id := domain.NewFileID("a.js")

	entered := make(chan struct{})
	release := make(chan struct{})
	parser.EXPECT().Parse(gomock.Any(), gomock.Any()).DoAndReturn(blockingParse(entered, release, table))
	table.EXPECT().Close().Return(nil)

	tr := translator.New(parser)
	done := make(chan error, 1)
	go func() {
		done <- tr.RegisterMap(context.Background(), id, []byte("doc"))
	}()
	<-entered

	require.NoError(t, tr.Clear())
	close(release)
	require.NoError(t, <-done)

	assert.Zero(t, tr.Len())
}

func TestTranslator_RegisterAfterClear(t *testing.T) {
	tr := translator.New(sourcemap.NewParser())
	id := domain.NewFileID("x")
	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte(validMap)))
	require.NoError(t, tr.Clear())

	require.NoError(t, tr.RegisterMap(context.Background(), id, []byte(validMap)))

	_, ok := tr.OriginalPosition(id, 10, 4)
	assert.True(t, ok)
}
