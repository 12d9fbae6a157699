package create_reservation

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
)

const (
	tagRequired = "required"
	tagKatakana = "katakana"
	tagPhone    = "phone_digits"
	tagEmail    = "email_loose"
	tagOneOf    = "oneof"
	tagDate     = "datetime"
)

var (
	katakanaPattern = regexp.MustCompile(`^[ァ-ヶー\s\x{3000}]+$`)
	phonePattern    = regexp.MustCompile(`^[0-9-]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Сообщения об ошибках для клиента
const (
	msgNameRequired     = "恐れ入りますが、お名前をご入力ください"
	msgKanaRequired     = "恐れ入りますが、フリガナをご入力ください"
	msgKanaInvalid      = "恐れ入りますが、カタカナでご入力ください"
	msgPhoneRequired    = "恐れ入りますが、電話番号をご入力ください"
	msgPhoneInvalid     = "恐れ入りますが、正しい電話番号をご入力ください"
	msgEmailRequired    = "恐れ入りますが、メールアドレスをご入力ください"
	msgEmailInvalid     = "恐れ入りますが、正しいメールアドレスをご入力ください"
	msgPartySize        = "恐れ入りますが、人数をお選びください"
	msgBirthdateInvalid = "恐れ入りますが、正しい生年月日をご入力ください"
	msgInsuranceType    = "恐れ入りますが、保険の種類をお選びください"
	msgSeating          = "恐れ入りますが、お席のご希望をお選びください"
	msgOccasion         = "恐れ入りますが、ご利用シーンをお選びください"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	patterns := map[string]*regexp.Regexp{
		tagKatakana: katakanaPattern,
		tagPhone:    phonePattern,
		tagEmail:    emailPattern,
	}
	for tag, re := range patterns {
		re := re
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("register validation %s: %v", tag, err))
		}
	}
	return v
}

// textRule правило проверки текстового поля формы
type textRule struct {
	field    domain.FormField
	value    func(CustomerForm) string
	tags     string
	messages map[string]string // тег validator -> сообщение
}

var textRules = []textRule{
	{
		field:    domain.FieldName,
		value:    func(f CustomerForm) string { return f.Name },
		tags:     tagRequired,
		messages: map[string]string{tagRequired: msgNameRequired},
	},
	{
		field:    domain.FieldNameKana,
		value:    func(f CustomerForm) string { return f.NameKana },
		tags:     tagRequired + "," + tagKatakana,
		messages: map[string]string{tagRequired: msgKanaRequired, tagKatakana: msgKanaInvalid},
	},
	{
		field:    domain.FieldPhone,
		value:    func(f CustomerForm) string { return f.Phone },
		tags:     tagRequired + "," + tagPhone,
		messages: map[string]string{tagRequired: msgPhoneRequired, tagPhone: msgPhoneInvalid},
	},
	{
		field:    domain.FieldEmail,
		value:    func(f CustomerForm) string { return f.Email },
		tags:     tagRequired + "," + tagEmail,
		messages: map[string]string{tagRequired: msgEmailRequired, tagEmail: msgEmailInvalid},
	},
	{
		field:    domain.FieldBirthdate,
		value:    func(f CustomerForm) string { return f.Birthdate },
		tags:     "omitempty," + tagDate + "=" + domain.DateFormat,
		messages: map[string]string{tagDate: msgBirthdateInvalid},
	},
}

// ValidateCustomer проверяет данные клиента по полям формы бизнеса
// Возвращает сообщения по полям; пустой результат означает, что данные корректны
func ValidateCustomer(cfg *domain.BusinessConfig, form CustomerForm) map[string]string {
	form = normalize(form)
	fields := make(map[string]string)

	// 1. Текстовые поля
	for _, rule := range textRules {
		if !cfg.HasField(rule.field) {
			continue
		}
		if tag := failedTag(validate.Var(rule.value(form), rule.tags)); tag != "" {
			fields[string(rule.field)] = rule.messages[tag]
		}
	}

	// 2. Количество гостей: обязательно и должно быть из списка шаблона
	if cfg.HasField(domain.FieldPartySize) {
		tags := tagRequired
		if len(cfg.PartySizes) > 0 {
			tags += "," + tagOneOf + "=" + joinInts(cfg.PartySizes)
		}
		if failedTag(validate.Var(form.PartySize, tags)) != "" {
			fields[string(domain.FieldPartySize)] = msgPartySize
		}
	}

	// 3. Поля выбора: если заполнены, значение должно быть из списка шаблона
	checkOption(fields, cfg, domain.FieldInsuranceType, form.InsuranceType, cfg.InsuranceTypes, msgInsuranceType)
	checkOption(fields, cfg, domain.FieldSeating, form.Seating, cfg.SeatingOptions, msgSeating)
	checkOption(fields, cfg, domain.FieldOccasion, form.Occasion, cfg.Occasions, msgOccasion)

	return fields
}

func checkOption(fields map[string]string, cfg *domain.BusinessConfig, field domain.FormField, value string, options []string, msg string) {
	if value == "" || !cfg.HasField(field) || len(options) == 0 {
		return
	}
	if !slices.Contains(options, value) {
		fields[string(field)] = msg
	}
}

// failedTag возвращает тег первого нарушенного правила
func failedTag(err error) string {
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return tagRequired
}

func normalize(form CustomerForm) CustomerForm {
	form.Name = strings.TrimSpace(form.Name)
	form.NameKana = strings.TrimSpace(form.NameKana)
	form.Phone = strings.TrimSpace(form.Phone)
	form.Email = strings.TrimSpace(form.Email)
	form.Notes = strings.TrimSpace(form.Notes)
	form.Birthdate = strings.TrimSpace(form.Birthdate)
	form.Allergies = strings.TrimSpace(form.Allergies)
	return form
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, " ")
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время указано и корректно
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// uniqueServiceIDs убирает повторы, сохраняя порядок выбора
func uniqueServiceIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
