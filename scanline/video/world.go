package video

// world is the camera position shared by parallax layers and world-space
// sprites.
type world struct {
	x, y  int
	dirty bool
}

type layerWorld struct {
	enabled bool
	fx, fy  float32
	ox, oy  int
}

type spriteWorld struct {
	enabled bool
	x, y    int
}

// SetWorldPosition moves the camera. Layers with a parallax factor and
// sprites placed in world space follow on the next BeginFrame.
func (e *Engine) SetWorldPosition(x, y int) {
	e.world.x, e.world.y = x, y
	e.world.dirty = true
	e.lastErr = OK
}

// WorldPosition returns the camera position.
func (e *Engine) WorldPosition() (x, y int) {
	return e.world.x, e.world.y
}

// SetLayerParallaxFactor makes layer n scroll with the camera at the given
// rate. A factor of 1 moves with the camera, 0.5 at half its speed.
func (e *Engine) SetLayerParallaxFactor(n int, fx, fy float32) error {
	l, err := e.layer(n, "SetLayerParallaxFactor")
	if err != nil {
		return err
	}
	l.world.enabled = true
	l.world.fx, l.world.fy = fx, fy
	e.world.dirty = true
	return e.succeed()
}

// SetLayerWorldOffset places layer n at (x, y) in world space.
func (e *Engine) SetLayerWorldOffset(n, x, y int) error {
	l, err := e.layer(n, "SetLayerWorldOffset")
	if err != nil {
		return err
	}
	l.world.ox, l.world.oy = x, y
	e.world.dirty = true
	return e.succeed()
}

// SetSpriteWorldPosition places sprite n in world space. Its screen
// position follows the camera until SetSpritePosition is called.
func (e *Engine) SetSpriteWorldPosition(n, x, y int) error {
	s, err := e.sprite(n, "SetSpriteWorldPosition")
	if err != nil {
		return err
	}
	s.world = spriteWorld{enabled: true, x: x, y: y}
	e.world.dirty = true
	return e.succeed()
}

// updateWorld applies the camera to world-bound layers and sprites.
func (e *Engine) updateWorld() {
	if !e.world.dirty {
		return
	}
	e.world.dirty = false

	wx, wy := float32(e.world.x), float32(e.world.y)
	for i := range e.layers {
		l := &e.layers[i]
		if !l.world.enabled || l.kind == LayerNone {
			continue
		}
		l.setPosition(int(wx*l.world.fx)-l.world.ox, int(wy*l.world.fy)-l.world.oy)
	}
	for i := range e.sprites {
		s := &e.sprites[i]
		if !s.world.enabled {
			continue
		}
		s.x, s.y = s.world.x-e.world.x, s.world.y-e.world.y
		s.update(e.width, e.height)
	}
}
