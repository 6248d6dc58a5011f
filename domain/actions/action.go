package actions

type IEnumAction interface {
	Name() string
	Ordinal() int
	Values() []string
}

type IAction interface {
	ActionType() ActionType
	ActionEnum() IEnumAction
}
