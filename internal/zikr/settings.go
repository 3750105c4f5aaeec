package zikr

import (
	"fmt"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/models"
)

// Settings returns a copy of the current preference blob.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetPreference updates one settings field by key and writes the entire
// settings object back to storage.
func (s *Store) SetPreference(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "sound", "sfx", "vibration", "volume-count":
		if value != "true" && value != "false" {
			return fmt.Errorf("%s must be \"true\" or \"false\", got %q", key, value)
		}
		enabled := value == "true"
		switch key {
		case "sound":
			s.settings.SoundEnabled = enabled
		case "sfx":
			s.settings.SfxEnabled = enabled
		case "vibration":
			s.settings.VibrationEnabled = enabled
		case "volume-count":
			s.settings.VolumeCountEnabled = enabled
		}
	case "appearance":
		mode := constants.AppearanceMode(value)
		if mode != constants.AppearanceBeads && mode != constants.AppearanceDigital {
			return fmt.Errorf("appearance must be %q or %q", constants.AppearanceBeads, constants.AppearanceDigital)
		}
		s.settings.AppearanceMode = mode
	case "background":
		if value == "default" || value == "none" {
			value = ""
		}
		valid := false
		for _, bg := range constants.Backgrounds {
			if value == bg {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("background must be one of: default, kaaba, medina, nature")
		}
		s.settings.BackgroundImage = value
	default:
		return fmt.Errorf("unknown setting: %q", key)
	}

	s.backend.PutJSON(constants.KeySettings, s.settings)
	return nil
}

// PreferenceKeys lists the valid SetPreference keys for help output.
func PreferenceKeys() []string {
	return []string{"sound", "sfx", "vibration", "volume-count", "appearance", "background"}
}
