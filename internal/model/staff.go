package model

// AnyStaffID идентификатор псевдо-мастера "любой свободный"
const AnyStaffID int64 = 0

// AnyStaffName отображаемое имя псевдо-мастера
const AnyStaffName = "Tout employé disponible"

type StaffMember struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Experience  int      `json:"experience"` // в годах
}

// AnyStaff возвращает псевдо-мастера "любой свободный"
func AnyStaff() *StaffMember {
	return &StaffMember{ID: AnyStaffID, Name: AnyStaffName}
}

// IsAny проверяет, выбран ли любой свободный мастер
func (s *StaffMember) IsAny() bool {
	return s != nil && s.ID == AnyStaffID
}

// HasSpecialty проверяет, работает ли мастер с категорией услуг
func (s *StaffMember) HasSpecialty(category string) bool {
	for _, sp := range s.Specialties {
		if sp == category {
			return true
		}
	}
	return false
}
