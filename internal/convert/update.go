package convert

import (
	"apiaccess/internal/model"
	"apiaccess/internal/wire"
)

// EncodeUpdate wraps the new method in an APIAccessMethod carrying the
// update id. Name and enabled are left empty; the receiver keeps its own.
func EncodeUpdate(u model.AccessMethodUpdate) *wire.APIAccessMethodUpdate {
	return &wire.APIAccessMethodUpdate{
		ID: EncodeID(u.ID),
		AccessMethod: &wire.APIAccessMethod{
			ID:           EncodeID(u.ID),
			AccessMethod: EncodeAccessMethod(u.Method),
		},
	}
}

// DecodeUpdate requires both the id and the access method. The nested
// APIAccessMethod goes through DecodeSetting; only its method is kept.
func DecodeUpdate(msg *wire.APIAccessMethodUpdate) (model.AccessMethodUpdate, error) {
	if msg == nil {
		return model.AccessMethodUpdate{}, invalid(nil, "missing api access method update")
	}
	if msg.ID == nil {
		return model.AccessMethodUpdate{}, invalid(nil, "api access method update: missing id")
	}
	if msg.AccessMethod == nil {
		return model.AccessMethodUpdate{}, invalid(nil, "api access method update: missing access method")
	}

	id, err := DecodeID(msg.ID)
	if err != nil {
		return model.AccessMethodUpdate{}, withContext(err, "api access method update")
	}
	setting, err := DecodeSetting(msg.AccessMethod)
	if err != nil {
		return model.AccessMethodUpdate{}, withContext(err, "api access method update %s", id)
	}

	return model.AccessMethodUpdate{ID: id, Method: setting.Method}, nil
}
