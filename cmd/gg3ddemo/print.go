package main

import (
	"io"

	"github.com/gogpu/gg3d"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printMatrices writes the camera's view, projection and view-projection
// matrices as aligned tables.
func printMatrices(w io.Writer, cam gg3d.Camera[float32]) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "eye %v  target %v  fov %.1f°  aspect %.3f\n",
		cam.Eye, cam.Target, cam.FOV, cam.Aspect); err != nil {
		return err
	}
	for _, m := range []struct {
		name string
		mat  gg3d.Mat4f
	}{
		{"view", cam.View()},
		{"projection", cam.Projection()},
		{"view-projection", cam.ViewProjection()},
	} {
		if _, err := p.Fprintf(w, "\n%s:\n", m.name); err != nil {
			return err
		}
		for r := range 4 {
			row := m.mat.Row(r)
			if _, err := p.Fprintf(w, "  %10.5f %10.5f %10.5f %10.5f\n", row[0], row[1], row[2], row[3]); err != nil {
				return err
			}
		}
	}
	return nil
}
