package catalog

// file структура businesses.yaml
type file struct {
	Businesses []businessModel `yaml:"businesses"`
}

type businessModel struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`

	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Address  string `yaml:"address"`
	Hours    string `yaml:"hours"`
	Closed   string `yaml:"closed"`
	ClosedOn []int  `yaml:"closed_on"`

	Services   []serviceModel `yaml:"services"`
	TimeSlots  timeSlotsModel `yaml:"time_slots"`
	FormFields []string       `yaml:"form_fields"`
	Theme      themeModel     `yaml:"theme"`

	InsuranceTypes []string `yaml:"insurance_types"`
	PartySizes     []int    `yaml:"party_sizes"`
	SeatingOptions []string `yaml:"seating_options"`
	Occasions      []string `yaml:"occasions"`

	LineBotID         string `yaml:"line_bot_id"`
	ReservationPrefix string `yaml:"reservation_prefix"`
}

type serviceModel struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Duration int    `yaml:"duration"`
	Price    *int   `yaml:"price"`
}

type timeSlotsModel struct {
	All    []string `yaml:"all"`
	Lunch  []string `yaml:"lunch"`
	Dinner []string `yaml:"dinner"`
}

type themeModel struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Name      string `yaml:"name"`
}
