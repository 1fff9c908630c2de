package world

// Column is a cell of the world's plan-view grid.
type Column struct {
	X, Z int
}

// Block is a vertical stack of Height unit cubes standing on the grid cell (X, Z). The stack's
// base is at y=0 and its top at Height * BlockSize.
type Block struct {
	X, Z   int
	Height int
}

// Column returns the grid cell the block stands on.
func (b Block) Column() Column {
	return Column{X: b.X, Z: b.Z}
}

// Top returns the y coordinate of the top face of the stack.
func (b Block) Top(blockSize float32) float32 {
	return float32(b.Height) * blockSize
}
