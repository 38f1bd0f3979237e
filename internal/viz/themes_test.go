package viz

import (
	"strings"
	"testing"
)

func TestThemeStylesFollowTheme(t *testing.T) {
	for _, th := range Themes {
		st := th.Styles()
		if st.Running.GetForeground() != th.Success {
			t.Errorf("%s: running status should use the success colour", th.Name)
		}
		if st.Paused.GetForeground() != th.Warning {
			t.Errorf("%s: paused status should use the warning colour", th.Name)
		}
		if st.Error.GetForeground() != th.Error {
			t.Errorf("%s: error status should use the error colour", th.Name)
		}
		if st.Idle.GetForeground() != th.Muted || st.Label.GetForeground() != th.Muted {
			t.Errorf("%s: idle status and labels should be muted", th.Name)
		}
		if st.Value.GetForeground() != th.Text || st.KeyHint.GetForeground() != th.Accent {
			t.Errorf("%s: values use text, key hints use accent", th.Name)
		}
	}
}

func TestCheckTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if err := CheckTheme(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	err := CheckTheme("neon")
	if err == nil || !strings.Contains(err.Error(), "sunset") {
		t.Errorf("expected error listing themes, got %v", err)
	}
}

func TestThemeCycle(t *testing.T) {
	name := ThemeNames()[0]
	for range Themes {
		name = NextTheme(name).Name
	}
	if name != ThemeNames()[0] {
		t.Errorf("cycling every theme should wrap around, got %s", name)
	}
}

func TestThemeColorsMatchPens(t *testing.T) {
	th := GetTheme("ocean")
	if len(th.Colors()) != len(th.Pens()) {
		t.Errorf("colors and pens out of step: %d vs %d", len(th.Colors()), len(th.Pens()))
	}
}
