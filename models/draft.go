package models

// Draft holds the in-progress form values of a medicine record that is being
// created or edited.
type Draft struct {
	Name      string
	Dose      string
	Frequency string
	TimeOfDay TimeOfDay
}

// NewDraft returns an empty draft with the default time of day.
func NewDraft() Draft {
	return Draft{TimeOfDay: DefaultTimeOfDay}
}

// DraftFromMedicine copies the editable fields of m into a draft.
func DraftFromMedicine(m Medicine) Draft {
	return Draft{
		Name:      m.Name,
		Dose:      m.Dose,
		Frequency: m.Frequency,
		TimeOfDay: m.TimeOfDay,
	}
}

// ToMedicine builds a record from the draft for the given id and owner.
// A zero id produces a record to be inserted.
func (d Draft) ToMedicine(id int64, ownerEmail string) Medicine {
	return Medicine{
		ID:         id,
		Name:       d.Name,
		Dose:       d.Dose,
		Frequency:  d.Frequency,
		TimeOfDay:  d.TimeOfDay,
		OwnerEmail: ownerEmail,
	}
}
