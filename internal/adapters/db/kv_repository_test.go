package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/wardrobe-be/internal/adapters/db"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/test/helpers"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type fakeQuerier struct {
	rows    map[string]string
	lastSQL string
	args    []interface{}
	execErr error
	rowErr  error
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	f.lastSQL, f.args = sql, args
	if f.rowErr != nil {
		return fakeRow{err: f.rowErr}
	}
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.lastSQL, f.args = sql, args
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeQuerier) Ping(context.Context) error { return nil }

func TestKVRepository_Get(t *testing.T) {
	tests := []struct {
		name    string
		rows    map[string]string
		rowErr  error
		key     string
		want    string
		wantErr error
	}{
		{
			name: "returns_stored_value",
			rows: map[string]string{"wardrobe:categories": `[]`},
			key:  "wardrobe:categories",
			want: `[]`,
		},
		{
			name:    "missing_key_maps_to_not_found",
			rows:    map[string]string{},
			key:     "wardrobe:batches",
			wantErr: ports.ErrKeyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQuerier{rows: tt.rows, rowErr: tt.rowErr}
			repo := db.NewKVRepository(q, helpers.TestLogger())

			got, err := repo.Get(context.Background(), tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "SELECT value FROM kv_store WHERE key = $1", q.lastSQL)
		})
	}
}

func TestKVRepository_Get_DriverError(t *testing.T) {
	q := &fakeQuerier{rowErr: errors.New("connection reset")}
	repo := db.NewKVRepository(q, helpers.TestLogger())

	_, err := repo.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestKVRepository_Set_Upserts(t *testing.T) {
	q := &fakeQuerier{}
	repo := db.NewKVRepository(q, helpers.TestLogger())

	err := repo.Set(context.Background(), "wardrobe:batches", `[]`)
	require.NoError(t, err)
	assert.Contains(t, q.lastSQL, "INSERT INTO kv_store (key,value,updated_at) VALUES ($1,$2,$3)")
	assert.Contains(t, q.lastSQL, "ON CONFLICT (key) DO UPDATE")
	assert.Equal(t, "wardrobe:batches", q.args[0])
	assert.Equal(t, `[]`, q.args[1])
}

func TestKVRepository_Set_PropagatesError(t *testing.T) {
	q := &fakeQuerier{execErr: errors.New("disk full")}
	repo := db.NewKVRepository(q, helpers.TestLogger())

	err := repo.Set(context.Background(), "k", "v")
	assert.ErrorContains(t, err, "disk full")
}

func TestKVRepository_Remove(t *testing.T) {
	q := &fakeQuerier{}
	repo := db.NewKVRepository(q, helpers.TestLogger())

	require.NoError(t, repo.Remove(context.Background(), "k"))
	assert.Equal(t, "DELETE FROM kv_store WHERE key = $1", q.lastSQL)
}
