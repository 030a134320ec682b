package main

import (
	"image/color"
	"os"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// The menus use colored nine-slices and the built-in basic font, so no
// theme assets need to be loaded.

var (
	panelColor   = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	menuTextIdle = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// NewMenuUI builds the start menu with Play and Quit buttons.
func NewMenuUI(g *Game) *ebitenui.UI {
	face := menuFace()
	panel := menuPanel()

	panel.AddChild(menuTitle("brickpong", face))
	panel.AddChild(menuButton("Play", face, func(args *widget.ButtonClickedEventArgs) {
		g.startMatch()
	}))
	panel.AddChild(menuButton("Quit", face, func(args *widget.ButtonClickedEventArgs) {
		os.Exit(0)
	}))

	return wrapPanel(panel)
}

// NewPauseUI builds the centered pause menu with Resume and Main Menu
// buttons.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := menuFace()
	panel := menuPanel()

	panel.AddChild(menuTitle("Paused", face))
	panel.AddChild(menuButton("Resume", face, func(args *widget.ButtonClickedEventArgs) {
		g.state = statePlaying
	}))
	panel.AddChild(menuButton("Main Menu", face, func(args *widget.ButtonClickedEventArgs) {
		g.state = stateMenu
	}))

	return wrapPanel(panel)
}

func menuFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func menuTitle(label string, face *ebtext.Face) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, menuTextIdle),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func menuButton(label string, face *ebtext.Face, onClick func(args *widget.ButtonClickedEventArgs)) *widget.Button {
	btnImg := imageui.NewNineSliceColor(buttonColor)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: menuTextIdle}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(onClick),
	)
}

// menuPanel is a semi-transparent vertical panel sized to about half
// the base resolution.
func menuPanel() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/2, baseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
}

func wrapPanel(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
