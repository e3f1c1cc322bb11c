package homework

import "errors"

// Everything that can go wrong during one poll iteration gets its own
// sentinel, because operator-alert suppression compares failures by kind.
var (
	ErrConnectionNot200  = errors.New("homework API returned a non-200 status")
	ErrResponseNotObject = errors.New("homework API response is not a JSON object")
	ErrHomeworksNotList  = errors.New("homeworks field is missing or not a list")
	ErrNoStatusChange    = errors.New("homework statuses have not changed")
	ErrMissingName       = errors.New("homework record has no name")
	ErrMissingStatus     = errors.New("homework record has no status")
	ErrUnknownStatus     = errors.New("undocumented homework status")
)

// Kind identifies a failure category. Suppression of repeated operator
// alerts compares kinds only, never message text.
type Kind string

const (
	KindNone              Kind = ""
	KindConnectionNot200  Kind = "connection_not_200"
	KindResponseNotObject Kind = "response_not_object"
	KindHomeworksNotList  Kind = "homeworks_not_list"
	KindNoStatusChange    Kind = "no_status_change"
	KindMissingName       Kind = "missing_name"
	KindMissingStatus     Kind = "missing_status"
	KindUnknownStatus     Kind = "unknown_status"
	KindOther             Kind = "other"
)

// KindOf maps an error chain to its failure kind. Errors carrying no known
// sentinel all collapse into KindOther.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrConnectionNot200):
		return KindConnectionNot200
	case errors.Is(err, ErrResponseNotObject):
		return KindResponseNotObject
	case errors.Is(err, ErrHomeworksNotList):
		return KindHomeworksNotList
	case errors.Is(err, ErrNoStatusChange):
		return KindNoStatusChange
	case errors.Is(err, ErrMissingName):
		return KindMissingName
	case errors.Is(err, ErrMissingStatus):
		return KindMissingStatus
	case errors.Is(err, ErrUnknownStatus):
		return KindUnknownStatus
	default:
		return KindOther
	}
}
