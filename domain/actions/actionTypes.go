package actions

import (
	"github.com/pkg/errors"
)

type ActionType int

var actionTypeStrings = []string{
	"Buyer",
	"System",
}

const (
	Buyer ActionType = iota
	System
)

func (actionType ActionType) Name() string {
	return actionType.String()
}

func (actionType ActionType) Ordinal() int {
	if actionType < Buyer || actionType > System {
		return -1
	}
	return int(actionType)
}

func (actionType ActionType) Values() []string {
	return actionTypeStrings
}

func (actionType ActionType) String() string {
	if actionType < Buyer || actionType > System {
		return ""
	}
	return actionTypeStrings[actionType]
}

func FromString(actionType string) (ActionType, error) {
	switch actionType {
	case "Buyer":
		return Buyer, nil
	case "System":
		return System, nil
	default:
		return -1, errors.New("invalid actionType string")
	}
}
