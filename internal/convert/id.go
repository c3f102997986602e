package convert

import (
	"apiaccess/internal/model"
	"apiaccess/internal/wire"
)

func EncodeID(id model.AccessMethodID) *wire.UUID {
	return &wire.UUID{Value: id.String()}
}

func DecodeID(msg *wire.UUID) (model.AccessMethodID, error) {
	if msg == nil {
		return model.AccessMethodID{}, invalid(nil, "missing uuid")
	}
	id, err := model.ParseAccessMethodID(msg.Value)
	if err != nil {
		return model.AccessMethodID{}, invalid(err, "could not parse uuid")
	}
	return id, nil
}
