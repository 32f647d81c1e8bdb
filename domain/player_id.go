package domain

import "github.com/google/uuid"

// PlayerID はプレイヤーを一意に識別するIDです。
type PlayerID string

func NewPlayerID() PlayerID {
	return PlayerID(uuid.NewString())
}

func (id PlayerID) String() string {
	return string(id)
}
