package storage

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

const miracleID = "7c1e5b2a-3d4f-4a6b-9c8d-0e1f2a3b4c5d"

func testMiracle(id, name string) models.Miracle {
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	return models.NewMiracle(id, models.MiracleInput{
		Name:                  name,
		Country:               "Itália",
		CountryFlag:           "🇮🇹",
		City:                  "Lanciano",
		Century:               "VIII",
		Status:                models.StatusRecognized,
		HistoricalContext:     "context",
		PhenomenonDescription: "description",
		ChurchVerdict:         "verdict",
	}, now)
}

func docOf(t *testing.T, m models.Miracle) []byte {
	t.Helper()
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return b
}

func TestCreateMiracle(t *testing.T) {
	s, mock := newMockStorage(t)
	m := testMiracle(miracleID, "Lanciano")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO miracles`)).
		WithArgs(m.ID, m.Name, m.Country, m.Century, m.Status, sqlmock.AnyArg(), m.CreatedAt, m.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.CreateMiracle(context.Background(), m))
}

func TestGetMiracle(t *testing.T) {
	q := regexp.QuoteMeta(`SELECT doc FROM miracles WHERE id = $1`)

	t.Run("found", func(t *testing.T) {
		s, mock := newMockStorage(t)
		m := testMiracle(miracleID, "Lanciano")
		mock.ExpectQuery(q).WithArgs(miracleID).
			WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(docOf(t, m)))

		got, err := s.GetMiracle(context.Background(), miracleID)
		require.NoError(t, err)
		assert.Equal(t, "Lanciano", got.Name)
		assert.Equal(t, miracleID, got.ID)
		assert.NotNil(t, got.Timeline)
		assert.Nil(t, got.Summary)
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newMockStorage(t)
		missing := "00000000-0000-4000-8000-000000000000"
		mock.ExpectQuery(q).WithArgs(missing).WillReturnRows(sqlmock.NewRows([]string{"doc"}))

		_, err := s.GetMiracle(context.Background(), missing)
		assert.ErrorIs(t, err, ErrMiracleNotFound)
	})

	t.Run("malformed id skips the query", func(t *testing.T) {
		s, _ := newMockStorage(t)

		_, err := s.GetMiracle(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrMiracleNotFound)
	})

	t.Run("id is canonicalised", func(t *testing.T) {
		s, mock := newMockStorage(t)
		m := testMiracle(miracleID, "Lanciano")
		mock.ExpectQuery(q).WithArgs(miracleID).
			WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(docOf(t, m)))

		_, err := s.GetMiracle(context.Background(), strings.ToUpper(miracleID))
		require.NoError(t, err)
	})

	t.Run("corrupted document", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectQuery(q).WithArgs(miracleID).
			WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte("{not json")))

		_, err := s.GetMiracle(context.Background(), miracleID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMiracleNotFound)
	})
}

func TestUpdateMiracle(t *testing.T) {
	q := regexp.QuoteMeta(`UPDATE miracles SET name = $2`)
	m := testMiracle(miracleID, "Lanciano")

	t.Run("updated", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectExec(q).
			WithArgs(m.ID, m.Name, m.Country, m.Century, m.Status, sqlmock.AnyArg(), m.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.UpdateMiracle(context.Background(), m))
	})

	t.Run("missing", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.UpdateMiracle(context.Background(), m), ErrMiracleNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		s, _ := newMockStorage(t)
		bad := testMiracle("not-a-uuid", "Lanciano")

		assert.ErrorIs(t, s.UpdateMiracle(context.Background(), bad), ErrMiracleNotFound)
	})
}

func TestDeleteMiracle(t *testing.T) {
	q := regexp.QuoteMeta(`DELETE FROM miracles WHERE id = $1`)

	t.Run("deleted", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectExec(q).WithArgs(miracleID).WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, s.DeleteMiracle(context.Background(), miracleID))
	})

	t.Run("missing", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectExec(q).WithArgs(miracleID).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, s.DeleteMiracle(context.Background(), miracleID), ErrMiracleNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectExec(q).WithArgs(miracleID).WillReturnError(errors.New("boom"))
		err := s.DeleteMiracle(context.Background(), miracleID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMiracleNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		s, _ := newMockStorage(t)
		assert.ErrorIs(t, s.DeleteMiracle(context.Background(), "1 OR 1=1"), ErrMiracleNotFound)
	})
}

func TestDeleteMiraclesByCentury(t *testing.T) {
	q := regexp.QuoteMeta(`DELETE FROM miracles WHERE century = $1 RETURNING id`)

	t.Run("deleted", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectQuery(q).WithArgs("XIII").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))

		ids, err := s.DeleteMiraclesByCentury(context.Background(), "XIII")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids)
	})

	t.Run("nothing matched", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectQuery(q).WithArgs("I").WillReturnRows(sqlmock.NewRows([]string{"id"}))

		ids, err := s.DeleteMiraclesByCentury(context.Background(), "I")
		assert.Nil(t, ids)
		assert.ErrorIs(t, err, ErrNoMiracles)
	})
}

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.MiracleFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			filter:    models.MiracleFilter{},
			wantQuery: "SELECT doc FROM miracles ORDER BY created_at, id LIMIT $1",
			wantArgs:  []any{models.MaxListLimit},
		},
		{
			name:      "status and country",
			filter:    models.MiracleFilter{Status: "recognized", Country: "Itália", Limit: 10},
			wantQuery: "SELECT doc FROM miracles WHERE status = $1 AND country = $2 ORDER BY created_at, id LIMIT $3",
			wantArgs:  []any{"recognized", "Itália", 10},
		},
		{
			name:      "search escapes wildcards",
			filter:    models.MiracleFilter{Century: "XX", Search: "50%_off"},
			wantQuery: `SELECT doc FROM miracles WHERE century = $1 AND name ILIKE $2 ESCAPE '\' ORDER BY created_at, id LIMIT $3`,
			wantArgs:  []any{"XX", `%50\%\_off%`, models.MaxListLimit},
		},
		{
			name:      "limit is capped",
			filter:    models.MiracleFilter{Limit: 5000},
			wantQuery: "SELECT doc FROM miracles ORDER BY created_at, id LIMIT $1",
			wantArgs:  []any{models.MaxListLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListQuery(tt.filter)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestListMiracles(t *testing.T) {
	s, mock := newMockStorage(t)
	a := testMiracle("a", "Lanciano")
	b := testMiracle("b", "Santarém")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT doc FROM miracles WHERE country = $1`)).
		WithArgs("Itália", models.MaxListLimit).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(docOf(t, a)).AddRow(docOf(t, b)))

	got, err := s.ListMiracles(context.Background(), models.MiracleFilter{Country: "Itália"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Lanciano", got[0].Name)
	assert.Equal(t, "Santarém", got[1].Name)
}

func TestListMiracles_Empty(t *testing.T) {
	s, mock := newMockStorage(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT doc FROM miracles`)).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	got, err := s.ListMiracles(context.Background(), models.MiracleFilter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListCountriesAndCenturies(t *testing.T) {
	s, mock := newMockStorage(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT country FROM miracles ORDER BY country`)).
		WillReturnRows(sqlmock.NewRows([]string{"country"}).AddRow("Brasil").AddRow("Itália"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT century FROM miracles ORDER BY century`)).
		WillReturnRows(sqlmock.NewRows([]string{"century"}))

	countries, err := s.ListCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Brasil", "Itália"}, countries)

	centuries, err := s.ListCenturies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{}, centuries)
}

func TestStats(t *testing.T) {
	s, mock := newMockStorage(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*),`)).
		WithArgs(models.StatusRecognized, models.StatusInvestigating).
		WillReturnRows(sqlmock.NewRows([]string{"total", "recognized", "investigating", "countries"}).
			AddRow(10, 7, 3, 4))

	st, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Stats{Total: 10, Recognized: 7, Investigating: 3, Countries: 4}, st)
}
