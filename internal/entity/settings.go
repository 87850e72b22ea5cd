package entity

import (
	"fmt"
	"strings"
)

type SettingKey string

const (
	SettingAutoLock      SettingKey = "auto_lock"
	SettingNotifications SettingKey = "notifications"
	SettingSync          SettingKey = "sync"
)

func ParseSettingKey(s string) (SettingKey, error) {
	switch k := SettingKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SettingAutoLock, SettingNotifications, SettingSync:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSetting, s)
	}
}

// Settings are demonstration toggles. They change nothing else in the app.
type Settings struct {
	AutoLock      bool `json:"auto_lock"`
	Notifications bool `json:"notifications"`
	Sync          bool `json:"sync"`
}

func DefaultSettings() Settings {
	return Settings{AutoLock: true, Notifications: true, Sync: true}
}

// Toggle flips one setting and returns its new value.
func (s *Settings) Toggle(key SettingKey) (bool, error) {
	switch key {
	case SettingAutoLock:
		s.AutoLock = !s.AutoLock
		return s.AutoLock, nil
	case SettingNotifications:
		s.Notifications = !s.Notifications
		return s.Notifications, nil
	case SettingSync:
		s.Sync = !s.Sync
		return s.Sync, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
}

// SettingItem is one row of the settings page.
type SettingItem struct {
	Key     SettingKey `json:"key,omitempty"`
	Label   string     `json:"label"`
	Toggle  bool       `json:"toggle"`
	Checked bool       `json:"checked"`
}

type SettingSection struct {
	Title string        `json:"title"`
	Items []SettingItem `json:"items"`
}

// Sections lays the settings out the way the page shows them.
// Entries without a key are display only.
func (s Settings) Sections() []SettingSection {
	return []SettingSection{
		{
			Title: "General",
			Items: []SettingItem{
				{Key: SettingAutoLock, Label: "Auto lock", Toggle: true, Checked: s.AutoLock},
				{Key: SettingNotifications, Label: "Notifications", Toggle: true, Checked: s.Notifications},
				{Key: SettingSync, Label: "Sync", Toggle: true, Checked: s.Sync},
				{Label: "New Booking"},
				{Label: "Time Zone"},
			},
		},
		{
			Title: "Admin",
			Items: []SettingItem{
				{Label: "Users"},
				{Label: "Billing"},
			},
		},
	}
}
