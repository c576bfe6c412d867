package errors

var (
	ErrUnknown            = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument    = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrNotFound           = New(ERR_NOT_FOUND, "not found")
	ErrProcessing         = New(ERR_PROCESSING, "error processing")
	ErrConfiguration      = New(ERR_CONFIGURATION, "configuration error")
	ErrError              = New(ERR_ERROR, "generic error")
	ErrBlockNotFound      = New(ERR_BLOCK_NOT_FOUND, "block not found")
	ErrBlockInvalid       = New(ERR_BLOCK_INVALID, "block invalid")
	ErrStorageError       = New(ERR_STORAGE_ERROR, "storage error")
	ErrStorageUnavailable = New(ERR_STORAGE_UNAVAILABLE, "storage unavailable")

	ErrDifficultyUnexpectedChange = New(ERR_DIFFICULTY_UNEXPECTED_CHANGE, "unexpected change in difficulty")
	ErrDifficultyBrokenChain      = New(ERR_DIFFICULTY_BROKEN_CHAIN, "broken link in difficulty interval walk")
	ErrDifficultyMalformedWalk    = New(ERR_DIFFICULTY_MALFORMED_WALK, "difficulty interval walk did not land on a transition point")
	ErrDifficultyMismatch         = New(ERR_DIFFICULTY_MISMATCH, "network provided difficulty bits do not match what was calculated")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}

func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}

func NewNotFoundError(message string, params ...interface{}) error {
	return New(ERR_NOT_FOUND, message, params...)
}

func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}

func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}

func NewError(message string, params ...interface{}) error {
	return New(ERR_ERROR, message, params...)
}

func NewBlockNotFoundError(message string, params ...interface{}) error {
	return New(ERR_BLOCK_NOT_FOUND, message, params...)
}

func NewBlockInvalidError(message string, params ...interface{}) error {
	return New(ERR_BLOCK_INVALID, message, params...)
}

func NewStorageError(message string, params ...interface{}) error {
	return New(ERR_STORAGE_ERROR, message, params...)
}

func NewStorageUnavailableError(message string, params ...interface{}) error {
	return New(ERR_STORAGE_UNAVAILABLE, message, params...)
}

func NewDifficultyUnexpectedChangeError(message string, params ...interface{}) error {
	return New(ERR_DIFFICULTY_UNEXPECTED_CHANGE, message, params...)
}

func NewDifficultyBrokenChainError(message string, params ...interface{}) error {
	return New(ERR_DIFFICULTY_BROKEN_CHAIN, message, params...)
}

func NewDifficultyMalformedWalkError(message string, params ...interface{}) error {
	return New(ERR_DIFFICULTY_MALFORMED_WALK, message, params...)
}

func NewDifficultyMismatchError(message string, params ...interface{}) error {
	return New(ERR_DIFFICULTY_MISMATCH, message, params...)
}
