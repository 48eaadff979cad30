// Package preview opens an optional SDL2 window showing the finished
// capture. Unlike the teacher's continuous per-frame RenderFrame call
// driven by a running VIC-II emulation, this is a single static blit: one
// texture upload, then a wait for the user to close the window or press a
// key. Grounded on c64/c64/c64.go's NewC64/RenderFrame/Cleanup trio.
package preview

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/climbr-dev/c64shot/internal/render"
)

// Window holds the SDL resources for one preview session.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// Open creates a window sized to img and blits it once.
func Open(img render.RgbImage) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("preview: sdl init: %w", err)
	}

	window, err := sdl.CreateWindow("c64shot preview",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(img.Width), int32(img.Height),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("preview: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("preview: create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STATIC,
		int32(img.Width), int32(img.Height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("preview: create texture: %w", err)
	}

	w := &Window{window: window, renderer: renderer, texture: texture}
	if err := w.blit(img); err != nil {
		w.Cleanup()
		return nil, err
	}
	return w, nil
}

func (w *Window) blit(img render.RgbImage) error {
	pixels := make([]byte, img.Width*img.Height*4)
	for i := 0; i < img.Width*img.Height; i++ {
		pixels[i*4+0] = img.Pix[i*3+0]
		pixels[i*4+1] = img.Pix[i*3+1]
		pixels[i*4+2] = img.Pix[i*3+2]
		pixels[i*4+3] = 0xFF
	}
	if err := w.texture.Update(nil, unsafe.Pointer(&pixels[0]), img.Width*4); err != nil {
		return fmt.Errorf("preview: update texture: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("preview: clear renderer: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("preview: copy texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

// WaitClose blocks until the window is closed or a key is pressed.
func (w *Window) WaitClose() {
	for {
		event := sdl.WaitEvent()
		switch event.(type) {
		case *sdl.QuitEvent, *sdl.KeyboardEvent:
			return
		}
	}
}

// Cleanup releases all SDL resources this window holds.
func (w *Window) Cleanup() {
	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}
