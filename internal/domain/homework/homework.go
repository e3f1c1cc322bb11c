package homework

// Homework is one submission's review record as returned by the remote API.
type Homework struct {
	Name   string `json:"homework_name"`
	Status string `json:"status"`
}

// Response is the decoded payload of the homework statuses endpoint.
// CurrentDate is the server-reported Unix timestamp the next poll should
// fetch changes from.
type Response struct {
	Homeworks   []Homework
	CurrentDate int64
}

// StatusVerdicts maps every documented review status to the verdict text
// shown to the user. New statuses are added here; nothing else changes.
var StatusVerdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}
