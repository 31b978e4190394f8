package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/fonts"
	"github.com/automoto/dustbag/shared/rules"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResultUI is the overlay shown once a round is won or lost
type ResultUI struct {
	UI *ebitenui.UI

	OnPlayAgain func()
	OnMenu      func()

	titleLabel *widget.Label
	scoreLabel *widget.Label
	bestLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewResultUI creates the result overlay for a finished round
func NewResultUI(result *components.ResultData, onPlayAgain, onMenu func()) *ResultUI {
	rui := &ResultUI{
		OnPlayAgain: onPlayAgain,
		OnMenu:      onMenu,
		titleFace:   fonts.UIFace(40),
		normalFace:  fonts.UIFace(22),
	}
	rui.buildUI(result)
	return rui
}

func (rui *ResultUI) buildUI(result *components.ResultData) {
	title, titleColor := cfg.Result.LossTitle, cfg.Result.LossColor
	if result.Outcome == rules.OutcomeWin {
		title, titleColor = cfg.Result.WinTitle, cfg.Result.WinColor
	}
	best := fmt.Sprintf("Best: %d", result.Best)
	if result.NewBest {
		best = "New best score!"
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Result.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	rui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text(title, &rui.titleFace, &widget.LabelColor{
			Idle: titleColor,
		}),
	)
	contentContainer.AddChild(rui.titleLabel)

	rui.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Score: %d", result.Score), &rui.normalFace, &widget.LabelColor{
			Idle: cfg.Result.TextColor,
		}),
	)
	contentContainer.AddChild(rui.scoreLabel)

	rui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text(best, &rui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(rui.bestLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)
	textColor := &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(170, 40)),
		widget.ButtonOpts.Image(playButtonImage()),
		widget.ButtonOpts.Text("PLAY AGAIN", &rui.normalFace, textColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnPlayAgain != nil {
				rui.OnPlayAgain()
			}
		}),
	))
	buttons.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 40)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("MENU", &rui.normalFace, textColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if rui.OnMenu != nil {
				rui.OnMenu()
			}
		}),
	))
	contentContainer.AddChild(buttons)

	rootContainer.AddChild(contentContainer)

	rui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (rui *ResultUI) Update() {
	rui.UI.Update()
}
