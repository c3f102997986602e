package convert

import (
	"apiaccess/internal/model"
	"apiaccess/internal/wire"
)

func EncodeSetting(s model.AccessMethodSetting) *wire.APIAccessMethod {
	return &wire.APIAccessMethod{
		ID:           EncodeID(s.ID),
		Name:         s.Name,
		Enabled:      s.Enabled,
		AccessMethod: EncodeAccessMethod(s.Method),
	}
}

// DecodeSetting decodes the id, then the access method. Name and enabled
// are taken as is.
func DecodeSetting(msg *wire.APIAccessMethod) (model.AccessMethodSetting, error) {
	if msg == nil {
		return model.AccessMethodSetting{}, invalid(nil, "missing api access method")
	}
	if msg.ID == nil {
		return model.AccessMethodSetting{}, invalid(nil, "api access method: missing id")
	}
	id, err := DecodeID(msg.ID)
	if err != nil {
		return model.AccessMethodSetting{}, withContext(err, "api access method")
	}

	if msg.AccessMethod == nil {
		return model.AccessMethodSetting{}, invalid(nil, "api access method %s: missing access method", id)
	}
	method, err := DecodeAccessMethod(msg.AccessMethod)
	if err != nil {
		return model.AccessMethodSetting{}, withContext(err, "api access method %s", id)
	}

	return model.AccessMethodSetting{
		ID:      id,
		Name:    msg.Name,
		Enabled: msg.Enabled,
		Method:  method,
	}, nil
}
