package demo

import (
	"github.com/tanema/gween/ease"

	"github.com/valerio/go-scanline/scanline/blit"
	"github.com/valerio/go-scanline/scanline/video"
)

// rotozoomScene spins and zooms a plasma bitmap with an affine transform
// and scales a second copy of it underneath.
type rotozoomScene struct {
	angle *pingPong
	zoom  *pingPong
	slide *pingPong
}

func (s *rotozoomScene) Name() string { return "rotozoom" }

func (s *rotozoomScene) Setup(e *video.Engine) error {
	palette, err := newScenePalette()
	if err != nil {
		return err
	}
	bm, err := newPlasmaBitmap(palette, 128, 128)
	if err != nil {
		return err
	}
	if err := e.SetLayerBitmap(0, bm); err != nil {
		return err
	}
	if err := e.SetLayerBitmap(1, bm); err != nil {
		return err
	}
	if err := e.SetLayerScaling(1, 2, 2); err != nil {
		return err
	}
	if err := e.SetLayerBlendMode(0, blit.BlendMix50); err != nil {
		return err
	}

	s.angle = newPingPong(0, 360, 6, ease.Linear)
	s.zoom = newPingPong(0.5, 2, 3, ease.InOutCubic)
	s.slide = newPingPong(0, 256, 4, ease.OutBounce)
	return nil
}

func (s *rotozoomScene) Update(e *video.Engine, _ int) {
	zoom := s.zoom.Step()
	w, h := float32(e.Width())/2, float32(e.Height())/2
	_ = e.SetLayerTransform(0, s.angle.Step(), w, h, zoom, zoom)
	_ = e.SetLayerPosition(1, int(s.slide.Step()), 0)
}
