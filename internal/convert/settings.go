package convert

import (
	"apiaccess/internal/model"
	"apiaccess/internal/wire"
)

func EncodeSettings(s model.Settings) *wire.APIAccessMethodSettings {
	return &wire.APIAccessMethodSettings{APIAccessMethods: encodeAll(s.AccessMethods)}
}

// DecodeSettings decodes every entry in order and stops at the first one
// that fails. Nothing partial is returned.
func DecodeSettings(msg *wire.APIAccessMethodSettings) (model.Settings, error) {
	methods, err := decodeAll(msg.GetAPIAccessMethods())
	if err != nil {
		return model.Settings{}, err
	}
	return model.Settings{AccessMethods: methods}, nil
}

func EncodeList(settings []model.AccessMethodSetting) *wire.APIAccessMethods {
	return &wire.APIAccessMethods{APIAccessMethods: encodeAll(settings)}
}

func DecodeList(msg *wire.APIAccessMethods) ([]model.AccessMethodSetting, error) {
	return decodeAll(msg.GetAPIAccessMethods())
}

func encodeAll(settings []model.AccessMethodSetting) []*wire.APIAccessMethod {
	out := make([]*wire.APIAccessMethod, 0, len(settings))
	for _, s := range settings {
		out = append(out, EncodeSetting(s))
	}
	return out
}

// decodeAll never returns nil on success, so an empty collection decodes
// to an empty, non-nil slice.
func decodeAll(msgs []*wire.APIAccessMethod) ([]model.AccessMethodSetting, error) {
	out := make([]model.AccessMethodSetting, 0, len(msgs))
	seen := make(map[model.AccessMethodID]int, len(msgs))
	for i, msg := range msgs {
		s, err := DecodeSetting(msg)
		if err != nil {
			return nil, withContext(err, "api access methods[%d]", i)
		}
		if j, dup := seen[s.ID]; dup {
			return nil, invalid(nil, "api access methods[%d]: id %s already used by api access methods[%d]", i, s.ID, j)
		}
		seen[s.ID] = i
		out = append(out, s)
	}
	return out, nil
}
