package system_action

import (
	"errors"
)

type ActionEnums int

var actionStrings = []string{
	"Success",
	"Fail",
	"Close",
}

const (
	Success ActionEnums = iota
	Fail
	Close
)

func (systemAction ActionEnums) Name() string {
	return systemAction.String()
}

func (systemAction ActionEnums) Ordinal() int {
	if systemAction < Success || systemAction > Close {
		return -1
	}
	return int(systemAction)
}

func (systemAction ActionEnums) Values() []string {
	return actionStrings
}

func (systemAction ActionEnums) String() string {
	if systemAction < Success || systemAction > Close {
		return ""
	}
	return actionStrings[systemAction]
}

func FromString(systemAction string) (ActionEnums, error) {
	switch systemAction {
	case "Success":
		return Success, nil
	case "Fail":
		return Fail, nil
	case "Close":
		return Close, nil
	default:
		return -1, errors.New("invalid system action string")
	}
}
