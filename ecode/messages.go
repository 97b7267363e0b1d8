package ecode

const (
	emptyMsg    = "empty"
	requiredMsg = "required"
	invalidMsg  = "invalid"
	existMsg    = "already exists"
	notExistMsg = "does not exist"
	positiveMsg = "must be greater than zero"
)

func subject(msg string, k []string) string {
	if len(k) > 0 && k[0] != "" {
		return k[0] + " " + msg
	}
	return msg
}

// FieldIsBlank returns field blank message
func FieldIsBlank(k ...string) string { return subject(emptyMsg, k) }

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string { return subject(requiredMsg, k) }

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string { return subject(invalidMsg, k) }

// FieldIsNotPositive returns field not positive message
func FieldIsNotPositive(k ...string) string { return subject(positiveMsg, k) }

// AlreadyExist returns already exist message
func AlreadyExist(k ...string) string { return subject(existMsg, k) }

// NotExist returns not exist message
func NotExist(k ...string) string { return subject(notExistMsg, k) }
