package homework

import (
	"github.com/ilyadubrovsky/homework-bot/internal/domain"
	"github.com/tidwall/gjson"
)

const (
	KeyHomeworks    = "homeworks"
	KeyHomeworkName = "homework_name"
	KeyStatus       = "status"
)

// Record is a single, not yet validated, entry of the homeworks list.
type Record struct {
	value gjson.Result
}

func NewRecord(raw string) Record {
	return Record{value: gjson.Parse(raw)}
}

// Status returns the raw status field or an empty status if there is none.
func (r Record) Status() domain.Status {
	if !r.value.IsObject() {
		return ""
	}
	return domain.Status(r.value.Get(KeyStatus).String())
}

func (r Record) Raw() string {
	return r.value.Raw
}
