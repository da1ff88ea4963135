package wizard

import "github.com/daltekdz/daltekdz_bot/internal/model"

// Summary данные экрана подтверждения. Отсутствующие ссылки дают нулевые значения.
type Summary struct {
	ServiceName string
	Category    string
	Price       int
	Duration    int
	StaffName   string
	Date        string
	Time        string
	Customer    model.Customer
}

// Summary собирает данные для экрана подтверждения
func (w *Wizard) Summary() Summary {
	return SummaryOf(w.details)
}

// SummaryOf собирает сводку из готовых данных бронирования
func SummaryOf(d BookingDetails) Summary {
	s := Summary{
		Date:     d.Date,
		Time:     d.Time,
		Customer: d.Customer,
	}
	if d.Service != nil {
		s.ServiceName = d.Service.Name
		s.Category = d.Service.Category
		s.Price = d.Service.Price
		s.Duration = d.Service.Duration
	}
	if d.Staff != nil {
		s.StaffName = d.Staff.Name
	}
	return s
}
