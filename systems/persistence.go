package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/followhead/shared/headfollow"
	"github.com/quasilyte/gdata"
)

const settingsKey = "follower"

// SavedSettings represents the follower tunables stored on disk. Only the values a
// viewer adjusts at runtime are kept; everything else comes from the prefab.
type SavedSettings struct {
	DistanceFromCamera   float64 `json:"distanceFromCamera"`
	DownOffset           float64 `json:"downOffset"`
	Mirrored             bool    `json:"mirrored"`
	Smooth               bool    `json:"smooth"`
	LockY                bool    `json:"lockY"`
	KeepConstantDistance bool    `json:"keepConstantDistance"`
}

// settingsStore is the subset of *gdata.Manager used here.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "followhead",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveFollowerSettings saves the adjustable part of c
func SaveFollowerSettings(c *headfollow.Config) error {
	return SaveSettings(&SavedSettings{
		DistanceFromCamera:   c.DistanceFromCamera,
		DownOffset:           c.DownOffset,
		Mirrored:             c.Mirrored,
		Smooth:               c.Smooth,
		LockY:                c.LockY,
		KeepConstantDistance: c.KeepConstantDistance,
	})
}

// ApplySavedSettings copies saved values onto c
func ApplySavedSettings(c *headfollow.Config, saved *SavedSettings) {
	if saved == nil {
		return
	}
	c.DistanceFromCamera = saved.DistanceFromCamera
	c.DownOffset = saved.DownOffset
	c.Mirrored = saved.Mirrored
	c.Smooth = saved.Smooth
	c.LockY = saved.LockY
	c.KeepConstantDistance = saved.KeepConstantDistance
}
