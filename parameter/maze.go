package parameter

// Map Generation
const (
	// MazeWidth and MazeHeight are the default topology size in tiles, odd
	MazeWidth  = 21
	MazeHeight = 15

	// MazeScale is the grid cells per maze tile side
	MazeScale = 3

	// MazeBraiding is the default chance a dead end is opened into a loop
	MazeBraiding = 0.1

	// MazeInterference is the default chance a dead-end tile becomes an interference patch
	MazeInterference = 0.25
)
