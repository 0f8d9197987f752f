package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/muhammadheryan/storefront-search/model"
	goredis "github.com/redis/go-redis/v9"
)

var (
	// ErrIndexUnavailable means the index could not be reached or does not
	// exist. Callers may fall back to the relational store.
	ErrIndexUnavailable = errors.New("search index unavailable")
	// ErrQueryMalformed means the index rejected the query syntax.
	ErrQueryMalformed = errors.New("search query malformed")
)

// Conn is the subset of the go-redis client used for RediSearch commands,
// which go-redis only exposes as raw commands.
type Conn interface {
	Do(ctx context.Context, args ...interface{}) *goredis.Cmd
}

type SearchRepository interface {
	GetSuggestions(ctx context.Context, key, prefix string, max int, fuzzy bool) ([]model.Suggestion, error)
	Search(ctx context.Context, index, query string) ([]model.SearchDocument, error)
	CreateIndex(ctx context.Context, index, docPrefix string) error
	AddSuggestion(ctx context.Context, key, suggestion string, score float64) error
	DeleteSuggestion(ctx context.Context, key, suggestion string) error
	IndexDocument(ctx context.Context, doc *model.IndexDocument) error
	DeleteDocument(ctx context.Context, key string) error
}

type redisearch struct {
	conn Conn
}

func NewSearchRepository(conn Conn) SearchRepository {
	return &redisearch{conn: conn}
}

// GetSuggestions runs FT.SUGGET. A missing dictionary yields no suggestions.
func (r *redisearch) GetSuggestions(ctx context.Context, key, prefix string, max int, fuzzy bool) ([]model.Suggestion, error) {
	args := []interface{}{"FT.SUGGET", key, prefix, "MAX", max}
	if fuzzy {
		args = append(args, "FUZZY")
	}

	res, err := r.conn.Do(ctx, args...).Slice()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return []model.Suggestion{}, nil
		}
		return nil, classify(err)
	}

	suggestions := make([]model.Suggestion, 0, len(res))
	for _, v := range res {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected suggestion type %T", v)
		}
		suggestions = append(suggestions, model.Suggestion{String: s})
	}
	return suggestions, nil
}

// Search runs FT.SEARCH and flattens every hit into a document holding its id
// and fields, in index order.
func (r *redisearch) Search(ctx context.Context, index, query string) ([]model.SearchDocument, error) {
	res, err := r.conn.Do(ctx, "FT.SEARCH", index, query).Slice()
	if err != nil {
		return nil, classify(err)
	}
	return parseSearchReply(res)
}

// parseSearchReply decodes the RESP2 reply: total, then id and field list pairs.
func parseSearchReply(res []interface{}) ([]model.SearchDocument, error) {
	if len(res) == 0 {
		return nil, fmt.Errorf("empty search reply")
	}

	docs := make([]model.SearchDocument, 0, (len(res)-1)/2)
	for i := 1; i < len(res); i += 2 {
		id, ok := res[i].(string)
		if !ok {
			return nil, fmt.Errorf("unexpected document id type %T", res[i])
		}
		doc := model.SearchDocument{"id": id}
		if i+1 < len(res) {
			fields, ok := res[i+1].([]interface{})
			if !ok {
				return nil, fmt.Errorf("unexpected document fields type %T", res[i+1])
			}
			for j := 0; j+1 < len(fields); j += 2 {
				name, ok := fields[j].(string)
				if !ok {
					return nil, fmt.Errorf("unexpected field name type %T", fields[j])
				}
				doc[name] = fields[j+1]
			}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// CreateIndex creates the website item index. An existing index is left as is.
func (r *redisearch) CreateIndex(ctx context.Context, index, docPrefix string) error {
	err := r.conn.Do(ctx,
		"FT.CREATE", index, "ON", "HASH", "PREFIX", 1, docPrefix,
		"SCHEMA",
		"web_item_name", "TEXT", "WEIGHT", 5,
		"item_name", "TEXT",
		"description", "TEXT",
		"web_long_description", "TEXT",
		"item_group", "TAG",
		"route", "TEXT", "NOSTEM",
		"thumbnail", "TEXT", "NOINDEX",
	).Err()
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "index already exists") {
		return nil
	}
	if err != nil {
		return classify(err)
	}
	return nil
}

func (r *redisearch) AddSuggestion(ctx context.Context, key, suggestion string, score float64) error {
	if err := r.conn.Do(ctx, "FT.SUGADD", key, suggestion, score).Err(); err != nil {
		return classify(err)
	}
	return nil
}

func (r *redisearch) DeleteSuggestion(ctx context.Context, key, suggestion string) error {
	if err := r.conn.Do(ctx, "FT.SUGDEL", key, suggestion).Err(); err != nil && !errors.Is(err, goredis.Nil) {
		return classify(err)
	}
	return nil
}

// IndexDocument writes the document hash. Fields are written in name order.
func (r *redisearch) IndexDocument(ctx context.Context, doc *model.IndexDocument) error {
	names := make([]string, 0, len(doc.Fields))
	for name := range doc.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]interface{}, 0, 2+2*len(names))
	args = append(args, "HSET", doc.Key)
	for _, name := range names {
		args = append(args, name, doc.Fields[name])
	}

	if err := r.conn.Do(ctx, args...).Err(); err != nil {
		return classify(err)
	}
	return nil
}

func (r *redisearch) DeleteDocument(ctx context.Context, key string) error {
	if err := r.conn.Do(ctx, "DEL", key).Err(); err != nil {
		return classify(err)
	}
	return nil
}

// classify maps a Redis failure onto ErrIndexUnavailable or ErrQueryMalformed.
// Server errors that fit neither are returned unchanged.
func classify(err error) error {
	var serverErr goredis.Error
	if !errors.As(err, &serverErr) {
		// network, timeout, pool and context errors
		return fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}

	msg := strings.ToLower(serverErr.Error())
	switch {
	case strings.Contains(msg, "syntax error"), strings.Contains(msg, "unknown argument"):
		return fmt.Errorf("%w: %v", ErrQueryMalformed, err)
	case strings.Contains(msg, "unknown index name"),
		strings.Contains(msg, "no such index"),
		strings.Contains(msg, "unknown command"),
		strings.Contains(msg, "loading"):
		return fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	return err
}
