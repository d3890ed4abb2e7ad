package graph

import (
	"strconv"
	"strings"
)

const (
	StatLabelsAdded           = "Labels added"
	StatNodesCreated          = "Nodes created"
	StatNodesDeleted          = "Nodes deleted"
	StatPropertiesSet         = "Properties set"
	StatRelationshipsCreated  = "Relationships created"
	StatRelationshipsDeleted  = "Relationships deleted"
	StatIndicesCreated        = "Indices created"
	StatIndicesDeleted        = "Indices deleted"
	StatCachedExecution       = "Cached execution"
	StatInternalExecutionTime = "Query internal execution time"
)

// Statistics holds the messages the server reports about a query, for example "Nodes created: 1", in reply order.
type Statistics []string

// Get returns the numeric part of the message whose label matches the given name. Execution times are reported in
// milliseconds.
func (s Statistics) Get(name string) (float64, bool) {
	for _, message := range s {
		label, value, found := strings.Cut(message, ":")

		if !found || strings.TrimSpace(label) != name {
			continue
		}

		if fields := strings.Fields(value); len(fields) > 0 {
			if parsed, err := strconv.ParseFloat(fields[0], 64); err == nil {
				return parsed, true
			}
		}

		return 0, false
	}

	return 0, false
}

// Int returns the statistic as an integer count.
func (s Statistics) Int(name string) (int64, bool) {
	if value, found := s.Get(name); found {
		return int64(value), true
	}

	return 0, false
}
