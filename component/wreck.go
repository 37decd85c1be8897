package component

// WreckComponent marks a destroyed drone's debris field
// The player collects debris by walking within pickup radius
type WreckComponent struct {
	X, Y   float64
	Debris int // remaining salvage
}
