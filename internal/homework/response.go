package homework

import (
	"fmt"

	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// CheckResponse validates the document returned by the homework statuses
// endpoint and returns the first (most recent) homework of the list.
func CheckResponse(document []byte) (Record, error) {
	log.Debug().Msg("checking api response")

	response := gjson.ParseBytes(document)
	if !response.IsObject() {
		return Record{}, fmt.Errorf("%w: response is not an object", ierrors.ErrShapeMismatch)
	}

	homeworks := response.Get(KeyHomeworks)
	if !homeworks.Exists() {
		return Record{}, fmt.Errorf("%w: response has no %q", ierrors.ErrKeyMissing, KeyHomeworks)
	}

	if !homeworks.IsArray() {
		return Record{}, fmt.Errorf("%w: %q is not a list", ierrors.ErrShapeMismatch, KeyHomeworks)
	}

	items := homeworks.Array()
	if len(items) == 0 {
		return Record{}, ierrors.ErrNoHomeworks
	}

	log.Debug().Msg("api response matches the expected format")

	return Record{value: items[0]}, nil
}
