package wizard

import (
	"errors"

	"github.com/daltekdz/daltekdz_bot/internal/model"
)

var (
	ErrStepIncomplete = errors.New("current step is incomplete")
	ErrAtFirstStep    = errors.New("already at first step")
	ErrWizardFinished = errors.New("booking already confirmed")
)

// BookingDetails данные, собираемые мастером. Живут только в памяти сессии.
type BookingDetails struct {
	Service  *model.Service
	Staff    *model.StaffMember
	Date     string
	Time     string
	Customer model.Customer
}

// Transition результат операции над мастером
type Transition struct {
	From      Step
	To        Step
	Advanced  bool
	Confirmed bool // мастер впервые дошёл до подтверждения
}

// Wizard конечный автомат Service → Staff → DateTime → Contact → Confirmation.
// Не потокобезопасен: одна сессия принадлежит одному пользователю.
type Wizard struct {
	details BookingDetails
	current Step
}

// New создаёт мастер в начальном состоянии
func New() *Wizard {
	return &Wizard{current: StepService}
}

// Reset начинает новое бронирование
func (w *Wizard) Reset() {
	w.details = BookingDetails{}
	w.current = StepService
}

// Current возвращает активный шаг
func (w *Wizard) Current() Step {
	return w.current
}

// Details возвращает копию собранных данных
func (w *Wizard) Details() BookingDetails {
	return w.details
}

// IsFinished проверяет что мастер в терминальном состоянии
func (w *Wizard) IsFinished() bool {
	return w.current == StepConfirmation
}

// IsStepValid проверяет предикат заполненности шага
func (w *Wizard) IsStepValid(step Step) bool {
	return isStepValid(step, &w.details)
}

func isStepValid(step Step, d *BookingDetails) bool {
	switch step {
	case StepService:
		return d.Service != nil
	case StepStaff:
		return d.Staff != nil
	case StepDateTime:
		return d.Date != "" && d.Time != ""
	case StepContact:
		return d.Customer.Name != "" && d.Customer.Email != "" && d.Customer.Phone != ""
	case StepConfirmation:
		return true
	default:
		return false
	}
}

// Steps возвращает состояние всех шагов для индикатора прогресса
func (w *Wizard) Steps() []BookingStep {
	steps := make([]BookingStep, 0, StepCount)
	for s := StepService; s <= StepConfirmation; s++ {
		steps = append(steps, BookingStep{
			ID:        s.Number(),
			Title:     s.Title(),
			Completed: s < w.current,
			Active:    s == w.current,
		})
	}
	return steps
}

// Next переходит на следующий шаг, если текущий заполнен
func (w *Wizard) Next() (Transition, error) {
	if w.IsFinished() {
		return Transition{From: w.current, To: w.current}, ErrWizardFinished
	}
	if !w.IsStepValid(w.current) {
		return Transition{From: w.current, To: w.current}, ErrStepIncomplete
	}
	return w.advance(), nil
}

// Prev возвращается на предыдущий шаг. Данные сохраняются.
func (w *Wizard) Prev() (Transition, error) {
	from := w.current
	switch {
	case w.IsFinished():
		return Transition{From: from, To: from}, ErrWizardFinished
	case w.current == StepService:
		return Transition{From: from, To: from}, ErrAtFirstStep
	}
	w.current--
	return Transition{From: from, To: w.current}, nil
}

// SelectService выбирает услугу (шаг 1)
func (w *Wizard) SelectService(s *model.Service) (Transition, error) {
	return w.update(StepService, func(d *BookingDetails) { d.Service = s })
}

// SelectStaff выбирает мастера или model.AnyStaff() (шаг 2)
func (w *Wizard) SelectStaff(s *model.StaffMember) (Transition, error) {
	return w.update(StepStaff, func(d *BookingDetails) { d.Staff = s })
}

// SetDate задаёт дату (шаг 3)
func (w *Wizard) SetDate(date string) (Transition, error) {
	return w.update(StepDateTime, func(d *BookingDetails) { d.Date = date })
}

// SetTime задаёт время (шаг 3)
func (w *Wizard) SetTime(t string) (Transition, error) {
	return w.update(StepDateTime, func(d *BookingDetails) { d.Time = t })
}

// SetContact задаёт все контактные данные разом (шаг 4)
func (w *Wizard) SetContact(c model.Customer) (Transition, error) {
	return w.update(StepContact, func(d *BookingDetails) { d.Customer = c })
}

func (w *Wizard) SetName(name string) (Transition, error) {
	return w.update(StepContact, func(d *BookingDetails) { d.Customer.Name = name })
}

func (w *Wizard) SetEmail(email string) (Transition, error) {
	return w.update(StepContact, func(d *BookingDetails) { d.Customer.Email = email })
}

func (w *Wizard) SetPhone(phone string) (Transition, error) {
	return w.update(StepContact, func(d *BookingDetails) { d.Customer.Phone = phone })
}

func (w *Wizard) SetNotes(notes string) (Transition, error) {
	return w.update(StepContact, func(d *BookingDetails) { d.Customer.Notes = notes })
}

// update применяет изменение и сразу продвигает мастер, если изменение
// относится к текущему шагу и его предикат стал истинным
func (w *Wizard) update(target Step, apply func(d *BookingDetails)) (Transition, error) {
	if w.IsFinished() {
		return Transition{From: w.current, To: w.current}, ErrWizardFinished
	}

	apply(&w.details)

	if target != w.current || !w.IsStepValid(w.current) {
		return Transition{From: w.current, To: w.current}, nil
	}
	return w.advance(), nil
}

func (w *Wizard) advance() Transition {
	from := w.current
	w.current++
	return Transition{
		From:      from,
		To:        w.current,
		Advanced:  true,
		Confirmed: w.current == StepConfirmation,
	}
}
