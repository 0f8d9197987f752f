package search_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/muhammadheryan/storefront-search/model"
	searchrepo "github.com/muhammadheryan/storefront-search/repository/search"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverError string

func (e serverError) Error() string { return string(e) }
func (serverError) RedisError()     {}

// fakeConn records every command and replies with a canned result.
type fakeConn struct {
	calls [][]interface{}
	val   interface{}
	err   error
}

func (f *fakeConn) Do(ctx context.Context, args ...interface{}) *goredis.Cmd {
	f.calls = append(f.calls, args)
	return goredis.NewCmdResult(f.val, f.err)
}

func TestSearchRepository_GetSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		conn     *fakeConn
		fuzzy    bool
		wantArgs []interface{}
		want     []model.Suggestion
		wantErr  error
	}{
		{
			name:     "success: suggestions in index order",
			conn:     &fakeConn{val: []interface{}{"red shoes", "red sandals"}},
			wantArgs: []interface{}{"FT.SUGGET", "dict", "red", "MAX", 10},
			want:     []model.Suggestion{{String: "red shoes"}, {String: "red sandals"}},
		},
		{
			name:     "success: fuzzy flag appended",
			conn:     &fakeConn{val: []interface{}{"sandals"}},
			fuzzy:    true,
			wantArgs: []interface{}{"FT.SUGGET", "dict", "red", "MAX", 10, "FUZZY"},
			want:     []model.Suggestion{{String: "sandals"}},
		},
		{
			name:     "success: nil reply means no suggestions",
			conn:     &fakeConn{err: goredis.Nil},
			wantArgs: []interface{}{"FT.SUGGET", "dict", "red", "MAX", 10},
			want:     []model.Suggestion{},
		},
		{
			name:     "error: connection failure is unavailable",
			conn:     &fakeConn{err: io.EOF},
			wantArgs: []interface{}{"FT.SUGGET", "dict", "red", "MAX", 10},
			wantErr:  searchrepo.ErrIndexUnavailable,
		},
		{
			name:     "error: module not loaded is unavailable",
			conn:     &fakeConn{err: serverError("ERR unknown command 'FT.SUGGET'")},
			wantArgs: []interface{}{"FT.SUGGET", "dict", "red", "MAX", 10},
			wantErr:  searchrepo.ErrIndexUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := searchrepo.NewSearchRepository(tt.conn)

			got, err := repo.GetSuggestions(context.Background(), "dict", "red", 10, tt.fuzzy)
			require.Len(t, tt.conn.calls, 1)
			assert.Equal(t, tt.wantArgs, tt.conn.calls[0])

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchRepository_Search(t *testing.T) {
	tests := []struct {
		name    string
		conn    *fakeConn
		want    []model.SearchDocument
		wantErr error
	}{
		{
			name: "success: documents flattened in order",
			conn: &fakeConn{val: []interface{}{
				int64(2),
				"storefront|website_item:SHOE-1", []interface{}{"web_item_name", "Red Shoes", "route", "shoes/red"},
				"storefront|website_item:SAND-1", []interface{}{"web_item_name", "Red Sandals"},
			}},
			want: []model.SearchDocument{
				{"id": "storefront|website_item:SHOE-1", "web_item_name": "Red Shoes", "route": "shoes/red"},
				{"id": "storefront|website_item:SAND-1", "web_item_name": "Red Sandals"},
			},
		},
		{
			name: "success: no hits",
			conn: &fakeConn{val: []interface{}{int64(0)}},
			want: []model.SearchDocument{},
		},
		{
			name:    "error: syntax error is malformed",
			conn:    &fakeConn{err: serverError("Syntax error at offset 3 near shoe")},
			wantErr: searchrepo.ErrQueryMalformed,
		},
		{
			name:    "error: missing index is unavailable",
			conn:    &fakeConn{err: serverError("storefront|website_items_index: no such index")},
			wantErr: searchrepo.ErrIndexUnavailable,
		},
		{
			name:    "error: timeout is unavailable",
			conn:    &fakeConn{err: context.DeadlineExceeded},
			wantErr: searchrepo.ErrIndexUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := searchrepo.NewSearchRepository(tt.conn)

			got, err := repo.Search(context.Background(), "idx", "red shoe|('red shoes')")
			require.Len(t, tt.conn.calls, 1)
			assert.Equal(t, []interface{}{"FT.SEARCH", "idx", "red shoe|('red shoes')"}, tt.conn.calls[0])

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchRepository_OtherServerErrorsPassThrough(t *testing.T) {
	conn := &fakeConn{err: serverError("WRONGTYPE Operation against a key holding the wrong kind of value")}
	repo := searchrepo.NewSearchRepository(conn)

	_, err := repo.Search(context.Background(), "idx", "shoe")
	require.Error(t, err)
	assert.False(t, errors.Is(err, searchrepo.ErrIndexUnavailable))
	assert.False(t, errors.Is(err, searchrepo.ErrQueryMalformed))
}

func TestSearchRepository_CreateIndex(t *testing.T) {
	t.Run("existing index is not an error", func(t *testing.T) {
		conn := &fakeConn{err: serverError("Index already exists")}
		repo := searchrepo.NewSearchRepository(conn)

		require.NoError(t, repo.CreateIndex(context.Background(), "idx", "storefront|website_item:"))
		require.Len(t, conn.calls, 1)
		assert.Equal(t, []interface{}{"FT.CREATE", "idx", "ON", "HASH", "PREFIX", 1, "storefront|website_item:"}, conn.calls[0][:7])
	})

	t.Run("unreachable redis", func(t *testing.T) {
		conn := &fakeConn{err: io.ErrUnexpectedEOF}
		repo := searchrepo.NewSearchRepository(conn)

		assert.ErrorIs(t, repo.CreateIndex(context.Background(), "idx", "p:"), searchrepo.ErrIndexUnavailable)
	})
}

func TestSearchRepository_IndexDocument(t *testing.T) {
	conn := &fakeConn{val: int64(3)}
	repo := searchrepo.NewSearchRepository(conn)

	err := repo.IndexDocument(context.Background(), &model.IndexDocument{
		Key: "storefront|website_item:SHOE-1",
		Fields: map[string]any{
			"web_item_name": "Red Shoes",
			"item_group":    "Footwear",
			"route":         "shoes/red",
		},
	})
	require.NoError(t, err)
	require.Len(t, conn.calls, 1)
	assert.Equal(t, []interface{}{
		"HSET", "storefront|website_item:SHOE-1",
		"item_group", "Footwear",
		"route", "shoes/red",
		"web_item_name", "Red Shoes",
	}, conn.calls[0])
}

func TestSearchRepository_Suggestions(t *testing.T) {
	conn := &fakeConn{val: int64(1)}
	repo := searchrepo.NewSearchRepository(conn)

	require.NoError(t, repo.AddSuggestion(context.Background(), "dict", "Red Shoes", 1))
	require.NoError(t, repo.DeleteSuggestion(context.Background(), "dict", "Red Shoes"))
	require.NoError(t, repo.DeleteDocument(context.Background(), "doc"))

	assert.Equal(t, [][]interface{}{
		{"FT.SUGADD", "dict", "Red Shoes", float64(1)},
		{"FT.SUGDEL", "dict", "Red Shoes"},
		{"DEL", "doc"},
	}, conn.calls)
}
