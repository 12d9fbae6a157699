package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

//go:embed businesses.yaml
var businessesYAML []byte

// lunchServiceID услуга ресторана, для которой показываются обеденные слоты
const lunchServiceID = "lunch"

var knownFields = map[domain.FormField]struct{}{
	domain.FieldName:          {},
	domain.FieldNameKana:      {},
	domain.FieldPhone:         {},
	domain.FieldEmail:         {},
	domain.FieldNotes:         {},
	domain.FieldBirthdate:     {},
	domain.FieldInsuranceType: {},
	domain.FieldPartySize:     {},
	domain.FieldSeating:       {},
	domain.FieldAllergies:     {},
	domain.FieldOccasion:      {},
}

// Catalog неизменяемый набор шаблонов бизнесов
type Catalog struct {
	businesses []*domain.BusinessConfig
	byType     map[domain.BusinessType]*domain.BusinessConfig
}

// New загружает встроенные шаблоны бизнесов
func New() (*Catalog, error) {
	return Parse(businessesYAML)
}

// Parse разбирает и проверяет YAML с шаблонами бизнесов
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(f.Businesses) == 0 {
		return nil, fmt.Errorf("%w: no businesses", ErrInvalidCatalog)
	}

	c := &Catalog{
		businesses: make([]*domain.BusinessConfig, 0, len(f.Businesses)),
		byType:     make(map[domain.BusinessType]*domain.BusinessConfig, len(f.Businesses)),
	}

	for i, m := range f.Businesses {
		cfg, err := toDomain(m)
		if err != nil {
			return nil, fmt.Errorf("%w: businesses[%d]: %v", ErrInvalidCatalog, i, err)
		}
		if _, exists := c.byType[cfg.Type]; exists {
			return nil, fmt.Errorf("%w: duplicate business type %q", ErrInvalidCatalog, cfg.Type)
		}
		c.businesses = append(c.businesses, cfg)
		c.byType[cfg.Type] = cfg
	}

	return c, nil
}

// List возвращает все шаблоны в порядке файла
func (c *Catalog) List() []*domain.BusinessConfig {
	out := make([]*domain.BusinessConfig, len(c.businesses))
	copy(out, c.businesses)
	return out
}

// Get возвращает шаблон по типу бизнеса
func (c *Catalog) Get(businessType domain.BusinessType) (*domain.BusinessConfig, error) {
	cfg, ok := c.byType[businessType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBusiness, businessType)
	}
	return cfg, nil
}

// IsValid проверяет, есть ли шаблон для типа бизнеса
func (c *Catalog) IsValid(businessType domain.BusinessType) bool {
	_, ok := c.byType[businessType]
	return ok
}

// TimeSlotsFor возвращает группы слотов для выбранных услуг
// Для ресторана группа определяется первой выбранной услугой:
// обед, если это "lunch" или в названии есть "ランチ", иначе ужин.
// Без выбранной услуги возвращаются обе группы с подписями
func TimeSlotsFor(cfg *domain.BusinessConfig, serviceIDs ...string) []domain.SlotGroup {
	slots := cfg.TimeSlots
	if !slots.IsGrouped() {
		return []domain.SlotGroup{{Slots: slots.All}}
	}

	if len(serviceIDs) == 0 || serviceIDs[0] == "" {
		return []domain.SlotGroup{
			{Label: domain.SlotGroupLunch, Slots: slots.Lunch},
			{Label: domain.SlotGroupDinner, Slots: slots.Dinner},
		}
	}

	if isLunchService(cfg, serviceIDs[0]) {
		return []domain.SlotGroup{{Label: domain.SlotGroupLunch, Slots: slots.Lunch}}
	}
	return []domain.SlotGroup{{Label: domain.SlotGroupDinner, Slots: slots.Dinner}}
}

// HasSlot проверяет, входит ли время в слоты для выбранных услуг
func HasSlot(cfg *domain.BusinessConfig, slot types.TimeString, serviceIDs ...string) bool {
	for _, group := range TimeSlotsFor(cfg, serviceIDs...) {
		for _, s := range group.Slots {
			if s.Equal(slot) {
				return true
			}
		}
	}
	return false
}

// IsDateOpen возвращает false для прошедших дат и выходных дней бизнеса
// date и today - календарные даты (полночь UTC)
func IsDateOpen(cfg *domain.BusinessConfig, date, today time.Time) bool {
	if date.Before(today) {
		return false
	}
	return !cfg.IsClosedOn(int(date.Weekday()))
}

func isLunchService(cfg *domain.BusinessConfig, serviceID string) bool {
	if serviceID == lunchServiceID || strings.Contains(serviceID, domain.SlotGroupLunch) {
		return true
	}
	if s, ok := cfg.FindService(serviceID); ok {
		return strings.Contains(s.Name, domain.SlotGroupLunch)
	}
	return false
}

func toDomain(m businessModel) (*domain.BusinessConfig, error) {
	businessType := domain.BusinessType(m.Type)
	if !businessType.IsValid() {
		return nil, fmt.Errorf("unknown type %q", m.Type)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%s: empty name", m.Type)
	}
	if len(m.Services) == 0 {
		return nil, fmt.Errorf("%s: no services", m.Type)
	}

	cfg := &domain.BusinessConfig{
		Type:              businessType,
		Name:              m.Name,
		Icon:              m.Icon,
		Description:       m.Description,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
		Hours:             m.Hours,
		Closed:            m.Closed,
		ClosedOn:          m.ClosedOn,
		Theme:             domain.Theme{Primary: m.Theme.Primary, Secondary: m.Theme.Secondary, Name: m.Theme.Name},
		InsuranceTypes:    m.InsuranceTypes,
		PartySizes:        m.PartySizes,
		SeatingOptions:    m.SeatingOptions,
		Occasions:         m.Occasions,
		LineBotID:         m.LineBotID,
		ReservationPrefix: m.ReservationPrefix,
	}

	for _, d := range m.ClosedOn {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("%s: closed weekday %d out of range", m.Type, d)
		}
	}

	seen := make(map[string]struct{}, len(m.Services))
	for _, s := range m.Services {
		if s.ID == "" || s.Duration <= 0 {
			return nil, fmt.Errorf("%s: invalid service %q", m.Type, s.ID)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate service %q", m.Type, s.ID)
		}
		seen[s.ID] = struct{}{}
		cfg.Services = append(cfg.Services, domain.Service{ID: s.ID, Name: s.Name, Duration: s.Duration, Price: s.Price})
	}

	for _, f := range m.FormFields {
		field := domain.FormField(f)
		if _, ok := knownFields[field]; !ok {
			return nil, fmt.Errorf("%s: unknown form field %q", m.Type, f)
		}
		cfg.FormFields = append(cfg.FormFields, field)
	}

	var err error
	if cfg.TimeSlots.All, err = parseSlots(m.TimeSlots.All); err != nil {
		return nil, fmt.Errorf("%s: %v", m.Type, err)
	}
	if cfg.TimeSlots.Lunch, err = parseSlots(m.TimeSlots.Lunch); err != nil {
		return nil, fmt.Errorf("%s: %v", m.Type, err)
	}
	if cfg.TimeSlots.Dinner, err = parseSlots(m.TimeSlots.Dinner); err != nil {
		return nil, fmt.Errorf("%s: %v", m.Type, err)
	}
	if len(cfg.TimeSlots.All) == 0 && !cfg.TimeSlots.IsGrouped() {
		return nil, fmt.Errorf("%s: no time slots", m.Type)
	}

	return cfg, nil
}

func parseSlots(raw []string) ([]types.TimeString, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]types.TimeString, 0, len(raw))
	for _, s := range raw {
		ts, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("slot %q: %w", s, err)
		}
		out = append(out, ts)
	}
	return out, nil
}
