package wordsearch

import (
	"slices"
	"strings"
)

// Direction indexes a neighbor slot, clockwise from upper-left:
//
//	0 1 2
//	7 X 3
//	6 5 4
type Direction int

const (
	UpLeft Direction = iota
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
)

// NoCell marks an absent neighbor (board edge or cutout).
const NoCell = -1

// Topology describes a Word Hunt board shape: how many cells it has and
// which cell lies in each of the eight directions from a given cell.
type Topology interface {
	Name() string
	Size() int
	// Neighbors returns the cell in each Direction, or NoCell.
	Neighbors(pos int) [8]int
	// RowSizes lists cells per row, top to bottom.
	RowSizes() []int
}

// adjacencyTable is a data-driven Topology.
type adjacencyTable struct {
	name      string
	rowSizes  []int
	neighbors [][8]int
}

func (t adjacencyTable) Name() string             { return t.name }
func (t adjacencyTable) Size() int                { return len(t.neighbors) }
func (t adjacencyTable) Neighbors(pos int) [8]int { return t.neighbors[pos] }
func (t adjacencyTable) RowSizes() []int          { return slices.Clone(t.rowSizes) }

// Board index layouts:
//
//	4x4              5x5
//	 0  1  2  3       0  1  2  3  4
//	 4  5  6  7       5  6  7  8  9
//	 8  9 10 11      10 11 12 13 14
//	12 13 14 15      15 16 17 18 19
//	                 20 21 22 23 24
//
//	cross            donut
//	 0  1     2  3       0  1  2
//	 4  5  6  7  8    3  4  5  6  7
//	    9 10 11       8  9    10 11
//	12 13 14 15 16   12 13 14 15 16
//	17 18    19 20      17 18 19
var (
	smallSquare = adjacencyTable{
		name:      "4x4",
		rowSizes:  []int{4, 4, 4, 4},
		neighbors: [][8]int{
			{-1, -1, -1, 1, 5, 4, -1, -1},
			{-1, -1, -1, 2, 6, 5, 4, 0},
			{-1, -1, -1, 3, 7, 6, 5, 1},
			{-1, -1, -1, -1, -1, 7, 6, 2},
			{-1, 0, 1, 5, 9, 8, -1, -1},
			{0, 1, 2, 6, 10, 9, 8, 4},
			{1, 2, 3, 7, 11, 10, 9, 5},
			{2, 3, -1, -1, -1, 11, 10, 6},
			{-1, 4, 5, 9, 13, 12, -1, -1},
			{4, 5, 6, 10, 14, 13, 12, 8},
			{5, 6, 7, 11, 15, 14, 13, 9},
			{6, 7, -1, -1, -1, 15, 14, 10},
			{-1, 8, 9, 13, -1, -1, -1, -1},
			{8, 9, 10, 14, -1, -1, -1, 12},
			{9, 10, 11, 15, -1, -1, -1, 13},
			{10, 11, -1, -1, -1, -1, -1, 14},
		},
	}
	largeSquare = adjacencyTable{
		name:      "5x5",
		rowSizes:  []int{5, 5, 5, 5, 5},
		neighbors: [][8]int{
			{-1, -1, -1, 1, 6, 5, -1, -1},
			{-1, -1, -1, 2, 7, 6, 5, 0},
			{-1, -1, -1, 3, 8, 7, 6, 1},
			{-1, -1, -1, 4, 9, 8, 7, 2},
			{-1, -1, -1, -1, -1, 9, 8, 3},
			{-1, 0, 1, 6, 11, 10, -1, -1},
			{0, 1, 2, 7, 12, 11, 10, 5},
			{1, 2, 3, 8, 13, 12, 11, 6},
			{2, 3, 4, 9, 14, 13, 12, 7},
			{3, 4, -1, -1, -1, 14, 13, 8},
			{-1, 5, 6, 11, 16, 15, -1, -1},
			{5, 6, 7, 12, 17, 16, 15, 10},
			{6, 7, 8, 13, 18, 17, 16, 11},
			{7, 8, 9, 14, 19, 18, 17, 12},
			{8, 9, -1, -1, -1, 19, 18, 13},
			{-1, 10, 11, 16, 21, 20, -1, -1},
			{10, 11, 12, 17, 22, 21, 20, 15},
			{11, 12, 13, 18, 23, 22, 21, 16},
			{12, 13, 14, 19, 24, 23, 22, 17},
			{13, 14, -1, -1, -1, 24, 23, 18},
			{-1, 15, 16, 21, -1, -1, -1, -1},
			{15, 16, 17, 22, -1, -1, -1, 20},
			{16, 17, 18, 23, -1, -1, -1, 21},
			{17, 18, 19, 24, -1, -1, -1, 22},
			{18, 19, -1, -1, -1, -1, -1, 23},
		},
	}
	cross = adjacencyTable{
		name:      "cross",
		rowSizes:  []int{4, 5, 3, 5, 4},
		neighbors: [][8]int{
			{-1, -1, -1, 1, 5, 4, -1, -1},
			{-1, -1, -1, -1, 6, 5, 4, 0},
			{-1, -1, -1, 3, 8, 7, 6, -1},
			{-1, -1, -1, -1, -1, 8, 7, 2},
			{-1, 0, 1, 5, 9, -1, -1, -1},
			{0, 1, -1, 6, 10, 9, -1, 4},
			{1, -1, 2, 7, 11, 10, 9, 5},
			{-1, 2, 3, 8, -1, 11, 10, 6},
			{2, 3, -1, -1, -1, -1, 11, 7},
			{4, 5, 6, 10, 14, 13, 12, -1},
			{5, 6, 7, 11, 15, 14, 13, 9},
			{6, 7, 8, -1, 16, 15, 14, 10},
			{-1, -1, 9, 13, 18, 17, -1, -1},
			{-1, 9, 10, 14, -1, 18, 17, 12},
			{9, 10, 11, 15, 19, -1, 18, 13},
			{10, 11, -1, 16, 20, 19, -1, 14},
			{11, -1, -1, -1, -1, 20, 19, 15},
			{-1, 12, 13, 18, -1, -1, -1, -1},
			{12, 13, 14, -1, -1, -1, -1, 17},
			{14, 15, 16, 20, -1, -1, -1, -1},
			{15, 16, -1, -1, -1, -1, -1, 19},
		},
	}
	donut = adjacencyTable{
		name:      "donut",
		rowSizes:  []int{3, 5, 4, 5, 3},
		neighbors: [][8]int{
			{-1, -1, -1, 1, 5, 4, 3, -1},
			{-1, -1, -1, 2, 6, 5, 4, 0},
			{-1, -1, -1, -1, 7, 6, 5, 1},
			{-1, -1, 0, 4, 9, 8, -1, -1},
			{-1, 0, 1, 5, -1, 9, 8, 3},
			{0, 1, 2, 6, 10, -1, 9, 4},
			{1, 2, -1, 7, 11, 10, -1, 5},
			{2, -1, -1, -1, -1, 11, 10, 6},
			{-1, 3, 4, 9, 13, 12, -1, -1},
			{3, 4, 5, -1, 14, 13, 12, 8},
			{5, 6, 7, 11, 16, 15, 14, -1},
			{6, 7, -1, -1, -1, 16, 15, 10},
			{-1, 8, 9, 13, 17, -1, -1, -1},
			{8, 9, -1, 14, 18, 17, -1, 12},
			{9, -1, 10, 15, 19, 18, 17, 13},
			{-1, 10, 11, 16, -1, 19, 18, 14},
			{10, 11, -1, -1, -1, -1, 19, 15},
			{12, 13, 14, 18, -1, -1, -1, -1},
			{13, 14, 15, 19, -1, -1, -1, 17},
			{14, 15, 16, -1, -1, -1, -1, 18},
		},
	}
)

var topologies = []Topology{smallSquare, largeSquare, cross, donut}

// TopologyNames lists the supported board names.
func TopologyNames() []string {
	names := make([]string, len(topologies))
	for i, t := range topologies {
		names[i] = t.Name()
	}
	return names
}

// TopologyByName resolves a board name such as "4x4" or "donut".
func TopologyByName(name string) (Topology, error) {
	for _, t := range topologies {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, invalid("board type %q, want one of %s", name, strings.Join(TopologyNames(), ", "))
}
