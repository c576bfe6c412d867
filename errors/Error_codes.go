package errors

// ERR identifies the category of an Error. Codes are stable: callers match on
// them with Is, and they may be persisted in logs, so existing values must not
// be renumbered.
type ERR int32

const (
	ERR_UNKNOWN          ERR = 0
	ERR_INVALID_ARGUMENT ERR = 1
	ERR_NOT_FOUND        ERR = 2
	ERR_PROCESSING       ERR = 3
	ERR_CONFIGURATION    ERR = 4
	ERR_ERROR            ERR = 9

	ERR_BLOCK_NOT_FOUND ERR = 10
	ERR_BLOCK_INVALID   ERR = 11

	ERR_STORAGE_ERROR       ERR = 20
	ERR_STORAGE_UNAVAILABLE ERR = 21

	ERR_DIFFICULTY_UNEXPECTED_CHANGE ERR = 30
	ERR_DIFFICULTY_BROKEN_CHAIN      ERR = 31
	ERR_DIFFICULTY_MALFORMED_WALK    ERR = 32
	ERR_DIFFICULTY_MISMATCH          ERR = 33
)

// ERR_name maps error codes to their names. Used to validate codes passed to
// New and to render them in Error output.
var ERR_name = map[int32]string{
	0: "UNKNOWN",
	1: "INVALID_ARGUMENT",
	2: "NOT_FOUND",
	3: "PROCESSING",
	4: "CONFIGURATION",
	9: "ERROR",

	10: "BLOCK_NOT_FOUND",
	11: "BLOCK_INVALID",

	20: "STORAGE_ERROR",
	21: "STORAGE_UNAVAILABLE",

	30: "DIFFICULTY_UNEXPECTED_CHANGE",
	31: "DIFFICULTY_BROKEN_CHAIN",
	32: "DIFFICULTY_MALFORMED_WALK",
	33: "DIFFICULTY_MISMATCH",
}

func (e ERR) String() string {
	if name, ok := ERR_name[int32(e)]; ok {
		return name
	}

	return "UNKNOWN"
}
