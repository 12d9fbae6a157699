package mockdata

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/ptr"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

// entry описание демо-бронирования относительно текущей даты
type entry struct {
	number     string
	name       string
	kana       string
	phone      string
	email      string
	dayOffset  int
	time       string
	serviceIdx []int

	notes         string
	insuranceType string
	partySize     int
	seating       string
	occasion      string
	allergies     string
}

var entries = map[domain.BusinessType][]entry{
	domain.BusinessSalon: {
		{number: "SALO-20241201-001", name: "山田 花子", kana: "ヤマダ ハナコ", phone: "090-1234-5678", email: "hanako@example.com",
			time: "10:00", serviceIdx: []int{0, 1}, notes: "明るめのカラー希望"},
		{number: "SALO-20241201-002", name: "佐藤 太郎", kana: "サトウ タロウ", phone: "080-9876-5432", email: "taro@example.com",
			time: "14:00", serviceIdx: []int{0}},
		{number: "SALO-20241202-001", name: "鈴木 美咲", kana: "スズキ ミサキ", phone: "070-1111-2222", email: "misaki@example.com",
			dayOffset: 1, time: "11:00", serviceIdx: []int{2, 3}},
	},
	domain.BusinessClinic: {
		{number: "CLIN-20241201-001", name: "田中 健一", kana: "タナカ ケンイチ", phone: "090-2222-3333", email: "kenichi@example.com",
			time: "9:00", serviceIdx: []int{0}, insuranceType: "社会保険", notes: "風邪の症状"},
		{number: "CLIN-20241201-002", name: "高橋 由美", kana: "タカハシ ユミ", phone: "080-4444-5555", email: "yumi@example.com",
			time: "10:30", serviceIdx: []int{1}, insuranceType: "国民健康保険"},
		{number: "CLIN-20241202-001", name: "伊藤 雄太", kana: "イトウ ユウタ", phone: "070-6666-7777", email: "yuta@example.com",
			dayOffset: 1, time: "14:30", serviceIdx: []int{2}, insuranceType: "自費"},
	},
	domain.BusinessRestaurant: {
		{number: "REST-20241201-001", name: "中村 誠", kana: "ナカムラ マコト", phone: "090-8888-9999", email: "makoto@example.com",
			time: "12:00", serviceIdx: []int{0}, partySize: 2, seating: "テーブル席", occasion: "デート"},
		{number: "REST-20241201-002", name: "小林 株式会社", kana: "コバヤシ カブシキガイシャ", phone: "03-1234-5678", email: "kobayashi@company.jp",
			time: "18:30", serviceIdx: []int{2}, partySize: 6, seating: "個室（+¥2,200）", occasion: "接待", notes: "重要なお客様です"},
		{number: "REST-20241202-001", name: "渡辺 家", kana: "ワタナベ ケ", phone: "080-1010-2020", email: "watanabe@example.com",
			dayOffset: 1, time: "11:30", serviceIdx: []int{0}, partySize: 4, seating: "テーブル席", occasion: "家族食事", allergies: "えび、かに"},
	},
}

// Generate возвращает демо-бронирования бизнеса: два на сегодня и одно на завтра
// today - календарная дата (полночь UTC)
func Generate(cfg *domain.BusinessConfig, today time.Time) []*domain.Reservation {
	list := entries[cfg.Type]
	out := make([]*domain.Reservation, 0, len(list))

	for i, e := range list {
		r := &domain.Reservation{
			ID:                ID(cfg.Type, i+1),
			BusinessType:      cfg.Type,
			ReservationNumber: e.number,
			CustomerName:      e.name,
			CustomerKana:      e.kana,
			CustomerPhone:     e.phone,
			CustomerEmail:     e.email,
			Date:              today.AddDate(0, 0, e.dayOffset),
			Time:              types.MustTimeString(e.time),
			Status:            domain.StatusConfirmed,
			CreatedAt:         today,
		}

		for _, idx := range e.serviceIdx {
			if idx >= len(cfg.Services) {
				continue
			}
			s := cfg.Services[idx]
			r.Services = append(r.Services, domain.ReservedService{ID: s.ID, Name: s.Name, Duration: s.Duration, Price: s.Price})
			r.TotalDuration += s.Duration
			r.TotalPrice += ptr.Value(s.Price)
		}

		r.Notes = optional(e.notes)
		r.InsuranceType = optional(e.insuranceType)
		r.Seating = optional(e.seating)
		r.Occasion = optional(e.occasion)
		r.Allergies = optional(e.allergies)
		if e.partySize > 0 {
			r.PartySize = ptr.Ptr(e.partySize)
		}

		out = append(out, r)
	}

	return out
}

// Filter возвращает демо-бронирования, подходящие под фильтр
func Filter(cfg *domain.BusinessConfig, today time.Time, filter domain.ReservationFilter) []*domain.Reservation {
	all := Generate(cfg, today)
	out := make([]*domain.Reservation, 0, len(all))
	for _, r := range all {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Find ищет демо-бронирование по идентификатору
func Find(cfg *domain.BusinessConfig, today time.Time, id string) (*domain.Reservation, bool) {
	for _, r := range Generate(cfg, today) {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// Stats статистика по демо-данным: сегодня - бронирования на сегодня, месяц - все, отмен нет
func Stats(cfg *domain.BusinessConfig, today time.Time) domain.DashboardStats {
	all := Generate(cfg, today)
	stats := domain.DashboardStats{MonthCount: len(all)}
	for _, r := range all {
		if r.Date.Equal(today) {
			stats.TodayCount++
		}
	}
	return stats
}

// ID идентификатор демо-бронирования
func ID(businessType domain.BusinessType, n int) string {
	return fmt.Sprintf("%s%s-%d", domain.MockIDPrefix, businessType, n)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.Ptr(s)
}
