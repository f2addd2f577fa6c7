package permission

import "testing"

func TestSettingsPanesCoverSupportedPlatforms(t *testing.T) {
	for _, goos := range []string{"darwin", "linux", "windows"} {
		args, ok := settingsPanes[goos]
		if !ok || len(args) == 0 {
			t.Errorf("no settings pane command for %s", goos)
		}
	}
}
