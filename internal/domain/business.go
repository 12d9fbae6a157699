package domain

import (
	"strings"

	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

// BusinessType identifies a business template
type BusinessType string

const (
	BusinessSalon      BusinessType = "salon"
	BusinessClinic     BusinessType = "clinic"
	BusinessRestaurant BusinessType = "restaurant"
)

// BusinessTypes all supported business types in display order
var BusinessTypes = []BusinessType{BusinessSalon, BusinessClinic, BusinessRestaurant}

// IsValid returns true for a known business type
func (b BusinessType) IsValid() bool {
	for _, known := range BusinessTypes {
		if b == known {
			return true
		}
	}
	return false
}

// FormField name of an optional field of the customer form
type FormField string

const (
	FieldName          FormField = "name"
	FieldNameKana      FormField = "nameKana"
	FieldPhone         FormField = "phone"
	FieldEmail         FormField = "email"
	FieldNotes         FormField = "notes"
	FieldBirthdate     FormField = "birthdate"
	FieldInsuranceType FormField = "insuranceType"
	FieldPartySize     FormField = "partySize"
	FieldSeating       FormField = "seating"
	FieldAllergies     FormField = "allergies"
	FieldOccasion      FormField = "occasion"
)

// Service bookable service of a business
type Service struct {
	ID       string
	Name     string
	Duration int  // minutes
	Price    *int // yen, nil when price depends on the visit
}

// TimeSlots bookable start times. Either a flat list or lunch/dinner groups
type TimeSlots struct {
	All    []types.TimeString
	Lunch  []types.TimeString
	Dinner []types.TimeString
}

// IsGrouped returns true when slots are split into lunch and dinner
func (t TimeSlots) IsGrouped() bool {
	return len(t.Lunch) > 0 || len(t.Dinner) > 0
}

// Theme colors used by the booking form
type Theme struct {
	Primary   string
	Secondary string
	Name      string
}

// BusinessConfig template of a business shown in the booking form
type BusinessConfig struct {
	Type        BusinessType
	Name        string
	Icon        string
	Description string

	Phone    string
	Email    string
	Address  string
	Hours    string
	Closed   string
	ClosedOn []int // weekdays, 0 = Sunday

	Services   []Service
	TimeSlots  TimeSlots
	FormFields []FormField
	Theme      Theme

	InsuranceTypes []string
	PartySizes     []int
	SeatingOptions []string
	Occasions      []string

	LineBotID         string
	ReservationPrefix string
}

// HasField returns true if the form of the business contains the field
func (c *BusinessConfig) HasField(field FormField) bool {
	for _, f := range c.FormFields {
		if f == field {
			return true
		}
	}
	return false
}

// FindService returns a service by id
func (c *BusinessConfig) FindService(id string) (Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// NumberPrefix returns the reservation number prefix
func (c *BusinessConfig) NumberPrefix() string {
	if c.ReservationPrefix != "" {
		return c.ReservationPrefix
	}
	prefix := strings.ToUpper(string(c.Type))
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	return prefix
}

// IsClosedOn returns true if the business is closed on the weekday (0 = Sunday)
func (c *BusinessConfig) IsClosedOn(weekday int) bool {
	for _, d := range c.ClosedOn {
		if d == weekday {
			return true
		}
	}
	return false
}

// SlotGroup labelled group of start times. Label is empty for flat lists
type SlotGroup struct {
	Label string
	Slots []types.TimeString
}

// AvailableSlot start time with availability flag
type AvailableSlot struct {
	Time      types.TimeString
	Available bool
}

// AvailableSlotGroup labelled group of available slots
type AvailableSlotGroup struct {
	Label string
	Slots []AvailableSlot
}
