package overlay

import (
	"bytes"
	"context"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"tatsu/internal/core/phasetimer"
	"tatsu/internal/notify"
	"tatsu/internal/ui/animation"
	"tatsu/resources"
)

const (
	labelHeight         = float32(50)
	defaultScreenHeight = float32(1080)
	fallbackImageSide   = float32(200)
)

// Window is the floating character panel shown on each reminder.
type Window struct {
	app        fyne.App
	window     fyne.Window
	image      *canvas.Image
	message    *widget.Label
	background *canvas.Rectangle
	engine     *animation.Engine
	imageSize  fyne.Size
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the overlay with the character at imagePath (empty for the bundled dragon).
func New(app fyne.App, imagePath string, config animation.Config) *Window {
	window := app.NewWindow("TATSU")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{A: 0})

	characterImage := canvas.NewImageFromResource(nil)
	characterImage.FillMode = canvas.ImageFillContain

	message := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	message.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(message, nil, nil, nil, characterImage)
	window.SetContent(container.NewStack(background, content))

	overlay := &Window{
		app:        app,
		window:     window,
		image:      characterImage,
		message:    message,
		background: background,
	}
	overlay.engine = animation.New(config, overlay.setAlpha, overlay.hide)

	if err := overlay.setImageUnsafe(imagePath); err != nil {
		log.Warn().Err(err).Msg("character image unavailable, using bundled image")
		_ = overlay.setImageUnsafe("")
	}
	return overlay
}

// Show presents the character with the message for kind, restarting the dismissal timer.
func (overlay *Window) Show(kind phasetimer.NotificationKind) {
	fyne.Do(func() {
		overlay.message.SetText(notify.FloatingMessage(kind))
		overlay.resize()
		overlay.window.Show()
		overlay.engine.Present(context.Background())
	})
}

// SetImage swaps the character image. On error the current image is kept.
func (overlay *Window) SetImage(path string) error {
	var err error
	fyne.DoAndWait(func() {
		err = overlay.setImageUnsafe(path)
	})
	return err
}

// Close stops the fade and hides the panel.
func (overlay *Window) Close() {
	overlay.engine.Stop()
	fyne.Do(func() {
		overlay.window.Hide()
	})
}

func (overlay *Window) setImageUnsafe(path string) error {
	resource, err := resources.Character(path)
	if err != nil {
		return err
	}
	overlay.image.Resource = resource
	overlay.imageSize = naturalSize(resource.Content())
	overlay.image.Refresh()
	overlay.resize()
	return nil
}

func (overlay *Window) setAlpha(alpha uint8) {
	fyne.Do(func() {
		overlay.image.Translucency = 1 - float64(alpha)/255
		overlay.image.Refresh()
		overlay.applyNativeOpacity(alpha)
	})
}

func (overlay *Window) hide() {
	fyne.Do(func() {
		overlay.window.Hide()
	})
}

func (overlay *Window) resize() {
	screenHeight := defaultScreenHeight
	canvasSize := overlay.window.Canvas().Size()
	// Canvas size can be reused as a proxy for monitor size when it is clearly screen-like.
	if canvasSize.Height >= 720 {
		screenHeight = canvasSize.Height
	}
	overlay.window.Resize(panelSize(overlay.imageSize, screenHeight))
	overlay.window.CenterOnScreen()
}

// panelSize scales the image so the panel takes at most half the screen height.
func panelSize(imageSize fyne.Size, screenHeight float32) fyne.Size {
	if imageSize.Width <= 0 || imageSize.Height <= 0 {
		imageSize = fyne.NewSize(fallbackImageSide, fallbackImageSide)
	}
	maxImageHeight := screenHeight/2 - labelHeight
	scale := float32(1)
	if maxImageHeight > 0 && imageSize.Height > maxImageHeight {
		scale = maxImageHeight / imageSize.Height
	}
	return fyne.NewSize(imageSize.Width*scale, imageSize.Height*scale+labelHeight)
}

func naturalSize(data []byte) fyne.Size {
	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fyne.Size{}
	}
	return fyne.NewSize(float32(config.Width), float32(config.Height))
}
