package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetLabels(t *testing.T) {
	assert.Equal(t, []string{"15分", "30分"}, presetLabels([]int{15, 30}))

	minutes, err := parsePresetLabel("45分")
	require.NoError(t, err)
	assert.Equal(t, 45, minutes)

	for _, label := range []string{"", "分", "abc分", "0分", "-5分"} {
		_, err := parsePresetLabel(label)
		assert.Error(t, err, label)
	}
}

func TestFormSettings(t *testing.T) {
	base := DefaultSettings()

	settings, err := formSettings(base, formValues{
		standing:      "15分",
		walk:          "90分",
		imagePath:     "  /tmp/dragon.png ",
		idleReset:     false,
		launchAtLogin: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, settings.StandingInterval)
	assert.Equal(t, 90*time.Minute, settings.WalkInterval)
	assert.Equal(t, "/tmp/dragon.png", settings.CharacterImagePath)
	assert.False(t, settings.IdleResetEnabled)
	assert.True(t, settings.LaunchAtLogin)
}

func TestFormSettingsRejectsInvertedPair(t *testing.T) {
	base := DefaultSettings()

	settings, err := formSettings(base, formValues{standing: "60分", walk: "30分"})
	require.Error(t, err)
	assert.Equal(t, base, settings)

	_, err = formSettings(base, formValues{standing: "60分", walk: "60分"})
	assert.Error(t, err)

	_, err = formSettings(base, formValues{standing: "", walk: "60分"})
	assert.ErrorContains(t, err, "standing interval")
}

func TestIntervalOptions(t *testing.T) {
	assert.Equal(t, []string{"15分", "30分", "45分", "60分"}, intervalOptions([]int{15, 30, 45, 60}, 30))
	assert.Equal(t, []string{"15分", "20分", "30分", "45分", "60分"}, intervalOptions([]int{15, 30, 45, 60}, 20))
	assert.Equal(t, []string{"30分", "60分", "90分", "120分", "150分"}, intervalOptions([]int{30, 60, 90, 120}, 150))
	assert.Equal(t, []string{"15分", "30分"}, intervalOptions([]int{15, 30}, 0))
}

func TestSaveKeepsIntervalsBetweenPresets(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := DefaultSettings()
	settings.StandingInterval = 20 * time.Minute
	settings.WalkInterval = 50 * time.Minute

	var saved []Settings
	prefs := New(app, settings, func(updated Settings) error {
		saved = append(saved, updated)
		return nil
	})
	assert.Equal(t, "20分", prefs.standing.Selected)
	assert.Equal(t, "50分", prefs.walk.Selected)

	prefs.imagePath.SetText("/tmp/dragon.png")
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.Equal(t, 20*time.Minute, saved[0].StandingInterval)
	assert.Equal(t, 50*time.Minute, saved[0].WalkInterval)
	assert.Equal(t, "/tmp/dragon.png", saved[0].CharacterImagePath)
	assert.False(t, prefs.errorLabel.Visible())
}

func TestUpdateSettingsDropsStaleOption(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := DefaultSettings()
	settings.StandingInterval = 20 * time.Minute
	prefs := New(app, settings, nil)
	assert.Contains(t, prefs.standing.Options, "20分")

	prefs.UpdateSettings(DefaultSettings())
	assert.NotContains(t, prefs.standing.Options, "20分")
	assert.Equal(t, "30分", prefs.standing.Selected)
}

func TestSaveRejectionIsShownInline(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), func(Settings) error {
		return assert.AnError
	})
	prefs.handleSave()

	assert.True(t, prefs.errorLabel.Visible())
	assert.Equal(t, assert.AnError.Error(), prefs.errorLabel.Text)
}
