package homework

import "fmt"

// ParseStatus renders one homework record into the notification text sent
// to the chat. Records the catalog cannot describe are rejected. Pure
// function of its input and the verdict table.
func ParseStatus(hw Homework) (string, error) {
	if hw.Name == "" {
		return "", ErrMissingName
	}
	if hw.Status == "" {
		return "", ErrMissingStatus
	}
	verdict, ok := StatusVerdicts[hw.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, hw.Status)
	}
	return fmt.Sprintf("Изменился статус проверки работы %q. %s", hw.Name, verdict), nil
}
