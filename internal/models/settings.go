package models

import "zikirmatik/internal/constants"

// Settings represents application-wide preference toggles, persisted as
// one JSON blob and loaded once at startup.
type Settings struct {
	SoundEnabled       bool                     `json:"sound_enabled"`
	SfxEnabled         bool                     `json:"sfx_enabled"`
	VibrationEnabled   bool                     `json:"vibration_enabled"`
	VolumeCountEnabled bool                     `json:"volume_count_enabled"`
	AppearanceMode     constants.AppearanceMode `json:"appearance_mode"`
	BackgroundImage    string                   `json:"background_image,omitempty"`
}

// DefaultSettings returns the factory configuration.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:       true,
		SfxEnabled:         true,
		VibrationEnabled:   true,
		VolumeCountEnabled: false,
		AppearanceMode:     constants.AppearanceDigital,
		BackgroundImage:    "",
	}
}

// ApplyDefaultSettings fills zero-valued fields left by older persisted blobs.
func ApplyDefaultSettings(s *Settings) {
	if s.AppearanceMode != constants.AppearanceBeads && s.AppearanceMode != constants.AppearanceDigital {
		s.AppearanceMode = constants.AppearanceDigital
	}
	valid := false
	for _, bg := range constants.Backgrounds {
		if s.BackgroundImage == bg {
			valid = true
			break
		}
	}
	if !valid {
		s.BackgroundImage = ""
	}
}
