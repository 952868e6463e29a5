package geometry

// Platonic solids for the polyhedra tracer. Every traversal order draws each
// edge exactly once. The octahedron is a closed Eulerian circuit in list
// order; the others have odd-degree vertices, so their orders are chosen to
// need the fewest jumps (half the number of odd vertices).

// Tetrahedron: 4 vertices, 6 edges, 2 jumps.
var Tetrahedron = Definition{
	Name: "Tetrahedron",
	Vertices: [][3]float32{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	},
	Edges: []Edge{
		{1, 0}, {0, 2}, {3, 0}, {2, 1}, {1, 3}, {2, 3},
	},
	Order: []int{5, 2, 1, 3, 0, 4},
}

// Hexahedron: 8 vertices, 12 edges, 4 jumps.
var Hexahedron = Definition{
	Name: "Hexahedron",
	Vertices: [][3]float32{
		{-1, -1, -1},
		{1, -1, -1},
		{1, 1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
		{1, -1, 1},
		{1, 1, 1},
		{-1, 1, 1},
	},
	Edges: []Edge{
		{1, 0}, {0, 3}, {4, 0}, {2, 1}, {1, 5}, {3, 2},
		{2, 6}, {7, 3}, {5, 4}, {4, 7}, {6, 5}, {6, 7},
	},
	Order: []int{6, 10, 8, 2, 1, 5, 3, 0, 4, 9, 11, 7},
}

// Octahedron: 6 vertices, 12 edges, no jumps.
var Octahedron = Definition{
	Name: "Octahedron",
	Vertices: [][3]float32{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, -1},
	},
	Edges: []Edge{
		{0, 5}, {5, 3}, {3, 4}, {4, 2}, {2, 5}, {5, 1},
		{1, 4}, {4, 0}, {0, 3}, {3, 1}, {1, 2}, {2, 0},
	},
	Order: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// Dodecahedron: 20 vertices, 30 edges, 10 jumps.
var Dodecahedron = Definition{
	Name: "Dodecahedron",
	Vertices: [][3]float32{
		{-1, -1, -1},
		{-1, -1, 1},
		{-1, 1, -1},
		{-1, 1, 1},
		{1, -1, -1},
		{1, -1, 1},
		{1, 1, -1},
		{1, 1, 1},
		{0, -0.618034, -1.618034},
		{0, -0.618034, 1.618034},
		{0, 0.618034, -1.618034},
		{0, 0.618034, 1.618034},
		{-0.618034, -1.618034, 0},
		{-0.618034, 1.618034, 0},
		{0.618034, -1.618034, 0},
		{0.618034, 1.618034, 0},
		{-1.618034, 0, -0.618034},
		{1.618034, 0, -0.618034},
		{-1.618034, 0, 0.618034},
		{1.618034, 0, 0.618034},
	},
	Edges: []Edge{
		{8, 0}, {0, 12}, {16, 0}, {1, 9}, {12, 1}, {1, 18},
		{10, 2}, {2, 13}, {2, 16}, {3, 11}, {13, 3}, {18, 3},
		{4, 8}, {14, 4}, {4, 17}, {9, 5}, {5, 14}, {19, 5},
		{6, 10}, {15, 6}, {17, 6}, {11, 7}, {7, 15}, {7, 19},
		{8, 10}, {11, 9}, {14, 12}, {13, 15}, {16, 18}, {19, 17},
	},
	Order: []int{
		22, 19, 18, 6, 7, 10, 9, 21, 23, 17,
		16, 13, 12, 0, 5, 29, 28, 11, 8, 2,
		1, 27, 26, 4, 3, 24, 25, 15, 14, 20,
	},
}

// Icosahedron: 12 vertices, 30 edges, 6 jumps.
var Icosahedron = Definition{
	Name: "Icosahedron",
	Vertices: [][3]float32{
		{0, -1, -1.618034},
		{0, -1, 1.618034},
		{0, 1, -1.618034},
		{0, 1, 1.618034},
		{-1, -1.618034, 0},
		{-1, 1.618034, 0},
		{1, -1.618034, 0},
		{1, 1.618034, 0},
		{-1.618034, 0, -1},
		{1.618034, 0, -1},
		{-1.618034, 0, 1},
		{1.618034, 0, 1},
	},
	Edges: []Edge{
		{2, 0}, {0, 4}, {6, 0}, {0, 8}, {9, 0}, {1, 3},
		{4, 1}, {1, 6}, {10, 1}, {1, 11}, {5, 2}, {2, 7},
		{8, 2}, {2, 9}, {3, 5}, {7, 3}, {3, 10}, {11, 3},
		{4, 6}, {8, 4}, {4, 10}, {7, 5}, {5, 8}, {10, 5},
		{6, 9}, {6, 11}, {9, 7}, {11, 7}, {10, 8}, {9, 11},
	},
	Order: []int{
		20, 23, 22, 19, 18, 24, 4, 3, 12, 11,
		15, 16, 8, 7, 2, 1, 6, 5, 14, 10,
		0, 9, 28, 29, 27, 25, 17, 13, 26, 21,
	},
}

// CubeSegments is the cube drawn as one continuous pen path: the twelve
// edges plus four reposition moves that are never drawn.
var CubeSegments = Definition{
	Name: "CubeSegments",
	Vertices: [][3]float32{
		{-1, -1, -1},
		{1, -1, -1},
		{1, 1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
		{1, -1, 1},
		{1, 1, 1},
		{-1, 1, 1},
	},
	Edges: []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 4},
		{4, 1}, {1, 5}, {5, 2}, {2, 6}, {6, 3},
		{3, 7}, {7, 0},
	},
	Order: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	Draw: []bool{
		true, true, true, true,
		true, true, true, true, true,
		false, true, false, true, false,
		true, false,
	},
}
