package graph

import "strconv"

// ColumnType is the closed enumeration of column type tags found in the header row of a compact reply.
type ColumnType int64

const (
	ColumnTypeUnknown  ColumnType = 0
	ColumnTypeScalar   ColumnType = 1
	ColumnTypeNode     ColumnType = 2
	ColumnTypeRelation ColumnType = 3
)

func (s ColumnType) String() string {
	switch s {
	case ColumnTypeUnknown:
		return "unknown"
	case ColumnTypeScalar:
		return "scalar"
	case ColumnTypeNode:
		return "node"
	case ColumnTypeRelation:
		return "relation"
	default:
		return "invalid(" + strconv.FormatInt(int64(s), 10) + ")"
	}
}

// Column holds every cell of one result column. All cells of a column share a type. The set of implementations is
// closed: ScalarColumn, NodeColumn and RelationColumn.
type Column interface {
	ColumnType() ColumnType
	Len() int

	// Cell returns the cell at the given row as a Scalar. Nodes and edges are Scalar variants.
	Cell(rowIdx int) (Scalar, bool)
}

type ScalarColumn []Scalar

func (s ScalarColumn) ColumnType() ColumnType {
	return ColumnTypeScalar
}

func (s ScalarColumn) Len() int {
	return len(s)
}

func (s ScalarColumn) Cell(rowIdx int) (Scalar, bool) {
	if rowIdx < 0 || rowIdx >= len(s) {
		return nil, false
	}

	return s[rowIdx], true
}

type NodeColumn []Node

func (s NodeColumn) ColumnType() ColumnType {
	return ColumnTypeNode
}

func (s NodeColumn) Len() int {
	return len(s)
}

func (s NodeColumn) Cell(rowIdx int) (Scalar, bool) {
	if rowIdx < 0 || rowIdx >= len(s) {
		return nil, false
	}

	return s[rowIdx], true
}

type RelationColumn []Edge

func (s RelationColumn) ColumnType() ColumnType {
	return ColumnTypeRelation
}

func (s RelationColumn) Len() int {
	return len(s)
}

func (s RelationColumn) Cell(rowIdx int) (Scalar, bool) {
	if rowIdx < 0 || rowIdx >= len(s) {
		return nil, false
	}

	return s[rowIdx], true
}

// ResultSet is the fully decoded, column-oriented reply to a query. Column order is query column order and every
// column has the same number of cells. A ResultSet is never mutated after decoding.
type ResultSet struct {
	// Columns is empty if the query did not return any values.
	Columns    []Column
	Statistics Statistics
}

func (s *ResultSet) NumColumns() int {
	return len(s.Columns)
}

func (s *ResultSet) NumRows() int {
	if len(s.Columns) == 0 {
		return 0
	}

	return s.Columns[0].Len()
}

func (s *ResultSet) column(operation string, columnIdx int) (Column, error) {
	if columnIdx < 0 || columnIdx >= len(s.Columns) {
		return nil, NewClientTypeError("failed to get %s: column index out of bounds: the len is %d but the index is %d", operation, len(s.Columns), columnIdx)
	}

	return s.Columns[columnIdx], nil
}

// Cell returns the cell at the given position from a column of any type.
func (s *ResultSet) Cell(rowIdx, columnIdx int) (Scalar, error) {
	if column, err := s.column("cell", columnIdx); err != nil {
		return nil, err
	} else if cell, found := column.Cell(rowIdx); !found {
		return nil, NewClientTypeError("failed to get cell: row index out of bounds: the len is %d but the index is %d", column.Len(), rowIdx)
	} else {
		return cell, nil
	}
}

// Scalar returns the scalar at the given position. The column must be a scalar column.
func (s *ResultSet) Scalar(rowIdx, columnIdx int) (Scalar, error) {
	column, err := s.column("scalar", columnIdx)
	if err != nil {
		return nil, err
	}

	switch typedColumn := column.(type) {
	case ScalarColumn:
		if cell, found := typedColumn.Cell(rowIdx); found {
			return cell, nil
		}

		return nil, NewClientTypeError("failed to get scalar: row index out of bounds: the len is %d but the index is %d", typedColumn.Len(), rowIdx)

	default:
		return nil, NewClientTypeError("failed to get scalar: expected column of scalars, found column of %s", column.ColumnType())
	}
}

// Node returns the node at the given position. The column must be a node column or a scalar column holding a node.
func (s *ResultSet) Node(rowIdx, columnIdx int) (Node, error) {
	column, err := s.column("node", columnIdx)
	if err != nil {
		return Node{}, err
	}

	switch column.(type) {
	case NodeColumn, ScalarColumn:
		if cell, found := column.Cell(rowIdx); !found {
			return Node{}, NewClientTypeError("failed to get node: row index out of bounds: the len is %d but the index is %d", column.Len(), rowIdx)
		} else if node, typeOK := cell.(Node); typeOK {
			return node, nil
		} else {
			return Node{}, NewClientTypeError("failed to get node: tried to get node in scalar column, but was actually %s", cell.ScalarType())
		}

	default:
		return Node{}, NewClientTypeError("failed to get node: expected column of nodes, found column of %s", column.ColumnType())
	}
}

// Relation returns the edge at the given position. The column must be a relation column or a scalar column holding
// an edge.
func (s *ResultSet) Relation(rowIdx, columnIdx int) (Edge, error) {
	column, err := s.column("relation", columnIdx)
	if err != nil {
		return Edge{}, err
	}

	switch column.(type) {
	case RelationColumn, ScalarColumn:
		if cell, found := column.Cell(rowIdx); !found {
			return Edge{}, NewClientTypeError("failed to get relation: row index out of bounds: the len is %d but the index is %d", column.Len(), rowIdx)
		} else if edge, typeOK := cell.(Edge); typeOK {
			return edge, nil
		} else {
			return Edge{}, NewClientTypeError("failed to get relation: tried to get edge in scalar column, but was actually %s", cell.ScalarType())
		}

	default:
		return Edge{}, NewClientTypeError("failed to get relation: expected column of relations, found column of %s", column.ColumnType())
	}
}

// Path returns the path at the given position. Paths only appear in scalar columns.
func (s *ResultSet) Path(rowIdx, columnIdx int) (RawPath, error) {
	column, err := s.column("path", columnIdx)
	if err != nil {
		return RawPath{}, err
	}

	switch typedColumn := column.(type) {
	case ScalarColumn:
		if cell, found := typedColumn.Cell(rowIdx); !found {
			return RawPath{}, NewClientTypeError("failed to get path: row index out of bounds: the len is %d but the index is %d", typedColumn.Len(), rowIdx)
		} else if path, typeOK := cell.(RawPath); typeOK {
			return path, nil
		} else {
			return RawPath{}, NewClientTypeError("failed to get path: tried to get path in scalar column, but was actually %s", cell.ScalarType())
		}

	default:
		return RawPath{}, NewClientTypeError("failed to get path: expected column of scalars, found column of %s", column.ColumnType())
	}
}
