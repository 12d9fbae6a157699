package create_reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationShowcase/internal/catalog"
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
)

func businessConfig(t *testing.T, businessType domain.BusinessType) *domain.BusinessConfig {
	t.Helper()
	c, err := catalog.New()
	require.NoError(t, err)
	cfg, err := c.Get(businessType)
	require.NoError(t, err)
	return cfg
}

func validForm() CustomerForm {
	return CustomerForm{
		Name:     "山田 花子",
		NameKana: "ヤマダ ハナコ",
		Phone:    "090-1234-5678",
		Email:    "hanako@example.com",
	}
}

func TestValidateCustomer_Salon(t *testing.T) {
	cfg := businessConfig(t, domain.BusinessSalon)

	tests := []struct {
		name   string
		modify func(f *CustomerForm)
		want   map[string]string
	}{
		{name: "valid", modify: func(f *CustomerForm) {}, want: map[string]string{}},
		{name: "full-width space in kana", modify: func(f *CustomerForm) { f.NameKana = "ヤマダ　ハナコ" }, want: map[string]string{}},
		{name: "blank name", modify: func(f *CustomerForm) { f.Name = "   " }, want: map[string]string{"name": msgNameRequired}},
		{name: "hiragana kana", modify: func(f *CustomerForm) { f.NameKana = "やまだ" }, want: map[string]string{"nameKana": msgKanaInvalid}},
		{name: "empty kana", modify: func(f *CustomerForm) { f.NameKana = "" }, want: map[string]string{"nameKana": msgKanaRequired}},
		{name: "phone with letters", modify: func(f *CustomerForm) { f.Phone = "090-abc" }, want: map[string]string{"phone": msgPhoneInvalid}},
		{name: "empty phone", modify: func(f *CustomerForm) { f.Phone = "" }, want: map[string]string{"phone": msgPhoneRequired}},
		{name: "bad email", modify: func(f *CustomerForm) { f.Email = "hanako@example" }, want: map[string]string{"email": msgEmailInvalid}},
		{
			name:   "everything empty",
			modify: func(f *CustomerForm) { *f = CustomerForm{} },
			want: map[string]string{
				"name":     msgNameRequired,
				"nameKana": msgKanaRequired,
				"phone":    msgPhoneRequired,
				"email":    msgEmailRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.modify(&form)

			assert.Equal(t, tt.want, ValidateCustomer(cfg, form))
		})
	}
}

func TestValidateCustomer_Restaurant(t *testing.T) {
	cfg := businessConfig(t, domain.BusinessRestaurant)

	form := validForm()
	fields := ValidateCustomer(cfg, form)
	assert.Equal(t, map[string]string{"partySize": msgPartySize}, fields)

	form.PartySize = 12
	assert.Equal(t, msgPartySize, ValidateCustomer(cfg, form)["partySize"])

	form.PartySize = 4
	form.Seating = "テラス席"
	form.Occasion = "記念日"
	assert.Equal(t, map[string]string{"seating": msgSeating}, ValidateCustomer(cfg, form))

	form.Seating = "個室（+¥2,200）"
	assert.Empty(t, ValidateCustomer(cfg, form))
}

func TestValidateCustomer_Clinic(t *testing.T) {
	cfg := businessConfig(t, domain.BusinessClinic)

	form := validForm()
	form.InsuranceType = "社会保険"
	form.Birthdate = "1985-04-01"
	assert.Empty(t, ValidateCustomer(cfg, form))

	form.InsuranceType = "民間保険"
	form.Birthdate = "1985/04/01"
	assert.Equal(t, map[string]string{
		"insuranceType": msgInsuranceType,
		"birthdate":     msgBirthdateInvalid,
	}, ValidateCustomer(cfg, form))

	// Поле партии не входит в форму клиники
	form = validForm()
	form.PartySize = 0
	assert.NotContains(t, ValidateCustomer(cfg, form), "partySize")
}
