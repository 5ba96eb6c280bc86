package loop

import (
	"github.com/tomz197/arena/internal/draw"
	"github.com/tomz197/arena/internal/object"
	"github.com/tomz197/arena/internal/spawn"
)

// Draw renders the arena into w: shapes on the canvas first, then text
// overlays on top.
func (s *Session) Draw(canvas *draw.Canvas, w *draw.ChunkWriter) error {
	canvas.Clear()
	ctx := object.DrawContext{Canvas: canvas, Writer: w}

	for _, obj := range s.world.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	var drawErr error
	s.pool.Each(func(_ spawn.Handle, e *object.Enemy) {
		if drawErr == nil {
			drawErr = e.Draw(ctx)
		}
	})
	if drawErr != nil {
		return drawErr
	}
	if err := s.player.Draw(ctx); err != nil {
		return err
	}

	canvas.Render(w)

	for _, obj := range s.world.Objects {
		if o, ok := obj.(object.Overlay); ok {
			if err := o.DrawOverlay(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
