package model

import (
	"fmt"
	"slices"
)

// AccessMethodSetting is a user-visible access method: a method plus the
// name and enabled flag the user gave it.
type AccessMethodSetting struct {
	ID      AccessMethodID
	Name    string
	Enabled bool
	Method  AccessMethod
}

// Settings is the ordered list of access methods. Order is the display and
// selection priority.
type Settings struct {
	AccessMethods []AccessMethodSetting
}

// Find returns the setting with the given id.
func (s Settings) Find(id AccessMethodID) (AccessMethodSetting, bool) {
	for _, m := range s.AccessMethods {
		if m.ID == id {
			return m, true
		}
	}
	return AccessMethodSetting{}, false
}

// AccessMethodUpdate replaces the method of one existing setting.
type AccessMethodUpdate struct {
	ID     AccessMethodID
	Method AccessMethod
}

// Apply returns a copy of s where the setting matching u.ID carries
// u.Method. Name, enabled flag and position are kept.
func (s Settings) Apply(u AccessMethodUpdate) (Settings, error) {
	idx := slices.IndexFunc(s.AccessMethods, func(m AccessMethodSetting) bool {
		return m.ID == u.ID
	})
	if idx < 0 {
		return Settings{}, fmt.Errorf("%w: %s", ErrNotFound, u.ID)
	}

	out := Settings{AccessMethods: slices.Clone(s.AccessMethods)}
	out.AccessMethods[idx].Method = u.Method
	return out, nil
}
