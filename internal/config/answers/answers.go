package answers

import "github.com/ilyadubrovsky/homework-bot/internal/domain"

const (
	StatusChanged = "Изменился статус проверки работы \"%s\". %s"
	BotError      = "Ошибка: %v"
)

var Verdicts = map[domain.Status]string{
	domain.StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	domain.StatusReviewing: "Работа взята на проверку ревьюером.",
	domain.StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}
