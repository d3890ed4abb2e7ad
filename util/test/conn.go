package test

import (
	"context"
	"errors"
	"fmt"

	"github.com/specterops/redisgraph/wire"
)

var ErrConnClosed = errors.New("connection closed")

// Handler answers a single scripted request.
type Handler func(args []any) (wire.Value, error)

// Conn is a scripted connection. Replies to GRAPH.QUERY requests are looked up by query text; every other request,
// or a query without a scripted reply, is passed to Fallback when set.
type Conn struct {
	Replies  map[string][]wire.Value
	Fallback Handler
	Requests [][]any
	Closed   bool
}

func NewConn() *Conn {
	return &Conn{
		Replies: map[string][]wire.Value{},
	}
}

// Reply queues replies for the given query text. Queued replies are consumed in order and the last one repeats.
func (s *Conn) Reply(query string, replies ...wire.Value) *Conn {
	s.Replies[query] = append(s.Replies[query], replies...)
	return s
}

// Queries returns the query text of every GRAPH.QUERY request seen so far.
func (s *Conn) Queries() []string {
	var queries []string

	for _, args := range s.Requests {
		if len(args) >= 3 && args[0] == "GRAPH.QUERY" {
			queries = append(queries, fmt.Sprint(args[2]))
		}
	}

	return queries
}

// Count returns how often the given query text was sent.
func (s *Conn) Count(query string) int {
	count := 0

	for _, next := range s.Queries() {
		if next == query {
			count++
		}
	}

	return count
}

func (s *Conn) Do(ctx context.Context, args ...any) (wire.Value, error) {
	if s.Closed {
		return wire.Value{}, ErrConnClosed
	}

	if err := ctx.Err(); err != nil {
		return wire.Value{}, err
	}

	s.Requests = append(s.Requests, args)

	if len(args) >= 3 && args[0] == "GRAPH.QUERY" {
		if replies := s.Replies[fmt.Sprint(args[2])]; len(replies) > 0 {
			reply := replies[0]

			if len(replies) > 1 {
				s.Replies[fmt.Sprint(args[2])] = replies[1:]
			}

			return reply, nil
		}
	}

	if s.Fallback != nil {
		return s.Fallback(args)
	}

	return wire.Value{}, fmt.Errorf("no scripted reply for request %v", args)
}

func (s *Conn) Close() error {
	s.Closed = true
	return nil
}
