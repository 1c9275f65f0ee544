package types

const (
	// ModuleName is used as the error codespace and the logger scope.
	ModuleName = "cardloop"
)
