package homework

import (
	"fmt"

	"github.com/ilyadubrovsky/homework-bot/internal/config/answers"
	"github.com/ilyadubrovsky/homework-bot/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/tidwall/gjson"
)

// ParseStatus builds the notification text for the homework review verdict.
func ParseStatus(record Record) (string, error) {
	if !record.value.IsObject() {
		return "", fmt.Errorf("%w: homework is not an object", ierrors.ErrKeyMissing)
	}

	name := record.value.Get(KeyHomeworkName)
	if !name.Exists() {
		return "", fmt.Errorf("%w: homework has no %q", ierrors.ErrKeyMissing, KeyHomeworkName)
	}

	status := record.value.Get(KeyStatus)
	if !status.Exists() {
		return "", fmt.Errorf("%w: homework has no %q", ierrors.ErrKeyMissing, KeyStatus)
	}

	verdict, ok := answers.Verdicts[domain.Status(status.String())]
	if !ok || status.Type != gjson.String {
		return "", fmt.Errorf("%w: %q", ierrors.ErrUnexpectedStatus, status.Raw)
	}

	return fmt.Sprintf(answers.StatusChanged, name.String(), verdict), nil
}
