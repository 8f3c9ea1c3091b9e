package preferences

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"tatsu/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings) error
	standing   *widget.Select
	walk       *widget.Select
	imagePath  *widget.Entry
	idleCheck  *widget.Check
	launch     *widget.Check
	errorLabel *widget.Label
}

// New creates a preferences window. onSave may reject the settings; its error
// is shown inline and the window stays open.
func New(app fyne.App, settings Settings, onSave func(Settings) error) *Window {
	window := app.NewWindow("TATSU 設定")

	standing := widget.NewSelect(presetLabels(model.StandingPresets), nil)
	walk := widget.NewSelect(presetLabels(model.WalkPresets), nil)

	imagePath := widget.NewEntry()
	imagePath.SetPlaceHolder("（標準のドラゴン）")

	idleCheck := widget.NewCheck("離席したらサイクルをリセット", nil)
	launch := widget.NewCheck("ログイン時に起動", nil)

	errorLabel := widget.NewLabel("")
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Wrapping = fyne.TextWrapWord
	errorLabel.Hide()

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		standing:   standing,
		walk:       walk,
		imagePath:  imagePath,
		idleCheck:  idleCheck,
		launch:     launch,
		errorLabel: errorLabel,
	}
	prefs.UpdateSettings(settings)

	browseButton := widget.NewButton("選択...", func() {
		picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			imagePath.SetText(reader.URI().Path())
		}, window)
		picker.Show()
	})
	clearButton := widget.NewButton("標準に戻す", func() {
		imagePath.SetText("")
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("タイマー", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("スタンディング間隔"), standing),
		container.NewHBox(widget.NewLabel("散歩間隔"), walk),
		widget.NewLabelWithStyle("通知画像", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, container.NewHBox(browseButton, clearButton), imagePath),
		widget.NewLabelWithStyle("その他", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		idleCheck,
		launch,
		errorLabel,
	)

	saveButton := widget.NewButton("保存", prefs.handleSave)
	cancelButton := widget.NewButton("キャンセル", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(460, 360))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.errorLabel.Hide()
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	// Intervals from flags or the settings file may sit between presets.
	prefs.standing.SetOptions(intervalOptions(model.StandingPresets, settings.StandingMinutes()))
	prefs.standing.SetSelected(presetLabel(settings.StandingMinutes()))
	prefs.walk.SetOptions(intervalOptions(model.WalkPresets, settings.WalkMinutes()))
	prefs.walk.SetSelected(presetLabel(settings.WalkMinutes()))
	prefs.imagePath.SetText(settings.CharacterImagePath)
	prefs.idleCheck.SetChecked(settings.IdleResetEnabled)
	prefs.launch.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings, err := formSettings(prefs.settings, formValues{
		standing:      prefs.standing.Selected,
		walk:          prefs.walk.Selected,
		imagePath:     prefs.imagePath.Text,
		idleReset:     prefs.idleCheck.Checked,
		launchAtLogin: prefs.launch.Checked,
	})
	if err == nil && prefs.onSave != nil {
		err = prefs.onSave(settings)
	}
	if err != nil {
		prefs.errorLabel.SetText(err.Error())
		prefs.errorLabel.Show()
		return
	}

	prefs.settings = settings
	prefs.errorLabel.Hide()
	prefs.window.Hide()
}

type formValues struct {
	standing      string
	walk          string
	imagePath     string
	idleReset     bool
	launchAtLogin bool
}

// formSettings overlays form values on base and validates the result.
func formSettings(base Settings, values formValues) (Settings, error) {
	settings := base

	standing, err := parsePresetLabel(values.standing)
	if err != nil {
		return base, fmt.Errorf("standing interval: %w", err)
	}
	walk, err := parsePresetLabel(values.walk)
	if err != nil {
		return base, fmt.Errorf("walk interval: %w", err)
	}

	settings.StandingInterval = time.Duration(standing) * time.Minute
	settings.WalkInterval = time.Duration(walk) * time.Minute
	settings.CharacterImagePath = strings.TrimSpace(values.imagePath)
	settings.IdleResetEnabled = values.idleReset
	settings.LaunchAtLogin = values.launchAtLogin

	if err := settings.Validate(); err != nil {
		return base, err
	}
	return settings, nil
}

func presetLabels(presets []int) []string {
	labels := make([]string, 0, len(presets))
	for _, minutes := range presets {
		labels = append(labels, presetLabel(minutes))
	}
	return labels
}

// intervalOptions lists the presets plus current when it is not one of them.
func intervalOptions(presets []int, current int) []string {
	values := append([]int(nil), presets...)
	if current > 0 && !slices.Contains(values, current) {
		values = append(values, current)
		slices.Sort(values)
	}
	return presetLabels(values)
}

func presetLabel(minutes int) string {
	return fmt.Sprintf("%d分", minutes)
}

func parsePresetLabel(label string) (int, error) {
	value := strings.TrimSuffix(strings.TrimSpace(label), "分")
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("invalid selection %q", label)
	}
	return minutes, nil
}
