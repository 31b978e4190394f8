package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/automoto/dustbag/fonts"
	"github.com/automoto/dustbag/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuUI holds the ebitenui interface for the rules menu
type MenuUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	// Callbacks
	OnSelect func(index int)
	OnPlay   func()
	OnQuit   func()

	// Widget references for updates
	rulesetButtons []*widget.Button
	detailLabel    *widget.Label
	musicButton    *widget.Button
	sfxButton      *widget.Button
	muteButton     *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized  bool
	shownRuleset int
}

// NewMenuUI creates the rules menu
func NewMenuUI(menu *components.MenuData, onSelect func(int), onPlay, onQuit func()) *MenuUI {
	mui := &MenuUI{
		Menu:     menu,
		OnSelect: onSelect,
		OnPlay:   onPlay,
		OnQuit:   onQuit,
	}

	mui.titleFace = fonts.UIFace(40)
	mui.normalFace = fonts.UIFace(20)
	mui.smallFace = fonts.UIFace(16)

	mui.buildUI()

	return mui
}

func (mui *MenuUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 24, 40, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(20)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("DUST BAG", &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Intro.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(mui.buildRulesetsContainer())

	mui.detailLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(mui.detailLabel)

	contentContainer.AddChild(mui.buildAudioContainer())
	contentContainer.AddChild(mui.buildButtonsContainer())

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Widgets are not validated yet, UpdateUI runs on the first Update
}

func (mui *MenuUI) buildRulesetsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	for i, ruleset := range cfg.Rulesets {
		idx := i
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(150, 36),
			),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(ruleset.Title, &mui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if mui.OnSelect != nil {
					mui.OnSelect(idx)
				}
				mui.UpdateUI()
			}),
		)
		mui.rulesetButtons = append(mui.rulesetButtons, button)
		container.AddChild(button)
	}

	return container
}

func (mui *MenuUI) buildAudioContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	textColor := &widget.ButtonTextColor{
		Idle:    color.RGBA{180, 180, 180, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}

	mui.musicButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(150, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("", &mui.smallFace, textColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.CycleMusicVolume()
			mui.UpdateUI()
		}),
	)
	container.AddChild(mui.musicButton)

	mui.sfxButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(150, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("", &mui.smallFace, textColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.CycleSFXVolume()
			mui.UpdateUI()
		}),
	)
	container.AddChild(mui.sfxButton)

	mui.muteButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 28)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("", &mui.smallFace, textColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ToggleMute()
			mui.UpdateUI()
		}),
	)
	container.AddChild(mui.muteButton)

	return container
}

func (mui *MenuUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 40)),
		widget.ButtonOpts.Image(playButtonImage()),
		widget.ButtonOpts.Text("PLAY", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnPlay != nil {
				mui.OnPlay()
			}
		}),
	)
	container.AddChild(playButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 40)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("QUIT", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	return container
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func playButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the labels from the menu state and audio settings
func (mui *MenuUI) UpdateUI() {
	mui.shownRuleset = mui.Menu.SelectedRuleset

	for i, button := range mui.rulesetButtons {
		textWidget := button.Text()
		if textWidget == nil {
			continue
		}
		label := cfg.Rulesets[i].Title
		if i == mui.Menu.SelectedRuleset {
			label = "> " + label + " <"
		}
		textWidget.Label = label
	}

	if mui.detailLabel != nil {
		mui.detailLabel.Label = rulesetDetail(cfg.Rulesets[mui.Menu.SelectedRuleset], mui.Menu.BestScores)
	}

	if mui.musicButton != nil {
		if textWidget := mui.musicButton.Text(); textWidget != nil {
			textWidget.Label = fmt.Sprintf("Music: %d%%", percent(systems.GetMusicVolume()))
		}
	}
	if mui.sfxButton != nil {
		if textWidget := mui.sfxButton.Text(); textWidget != nil {
			textWidget.Label = fmt.Sprintf("Effects: %d%%", percent(systems.GetSFXVolume()))
		}
	}
	if mui.muteButton != nil {
		if textWidget := mui.muteButton.Text(); textWidget != nil {
			textWidget.Label = "Sound: On"
			if systems.IsMuted() {
				textWidget.Label = "Sound: Off"
			}
		}
	}
}

// rulesetDetail describes a ruleset in one line for the menu.
func rulesetDetail(r cfg.Ruleset, best map[string]int) string {
	extras := ""
	if r.Ghosts {
		extras += ", ghosts"
	}
	if len(r.Difficulty) > 0 {
		extras += ", speeds up"
	}
	return fmt.Sprintf("Reach %d to win%s.  Best: %d", r.WinScore, extras, best[r.Name])
}

func percent(v float64) int {
	return int(v*100 + 0.5)
}

// Update updates the ebitenui
func (mui *MenuUI) Update() {
	mui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !mui.initialized {
		mui.initialized = true
		mui.UpdateUI()
	}
	// The keyboard can move the selection too
	if mui.Menu.SelectedRuleset != mui.shownRuleset {
		mui.UpdateUI()
	}
}
