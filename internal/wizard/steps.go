package wizard

// Step шаг мастера бронирования
type Step int

const (
	StepService Step = iota
	StepStaff
	StepDateTime
	StepContact
	StepConfirmation
)

// StepCount количество шагов мастера
const StepCount = 5

var stepTitles = [StepCount]string{
	"Choisir un service",
	"Choisir un employé",
	"Date et heure",
	"Vos coordonnées",
	"Confirmation",
}

// Title возвращает заголовок шага
func (s Step) Title() string {
	if s < StepService || s > StepConfirmation {
		return ""
	}
	return stepTitles[s]
}

// Number возвращает номер шага, начиная с 1
func (s Step) Number() int {
	return int(s) + 1
}

func (s Step) String() string {
	switch s {
	case StepService:
		return "service"
	case StepStaff:
		return "staff"
	case StepDateTime:
		return "datetime"
	case StepContact:
		return "contact"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// BookingStep представление шага для индикатора прогресса
type BookingStep struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Active    bool   `json:"active"`
}
