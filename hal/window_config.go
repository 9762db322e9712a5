package hal

// WindowConfig sizes the desktop window host.
type WindowConfig struct {
	Width, Height int
	// Scale multiplies the window size; the frame is rendered at Width×Height.
	Scale int
	// TPS is the number of frames per second ebiten schedules.
	TPS int
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}
