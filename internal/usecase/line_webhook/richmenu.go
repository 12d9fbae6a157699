package line_webhook

import (
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/integrations/line"
)

const (
	richMenuWidth  = 2500
	richMenuHeight = 1686
)

// RichMenuTemplate шаблон rich menu 2x2: бронирование, проверка, информация, звонок
func RichMenuTemplate(cfg *domain.BusinessConfig) line.RichMenu {
	w, h := richMenuWidth/2, richMenuHeight/2

	return line.RichMenu{
		Size:        line.RichMenuSize{Width: richMenuWidth, Height: richMenuHeight},
		Selected:    true,
		Name:        cfg.Name + " Menu",
		ChatBarText: "メニュー",
		Areas: []line.RichMenuArea{
			{
				Bounds: line.RichMenuBounds{X: 0, Y: 0, Width: w, Height: h},
				Action: line.Action{Type: "postback", Data: postbackReserve, DisplayText: "予約する"},
			},
			{
				Bounds: line.RichMenuBounds{X: w, Y: 0, Width: w, Height: h},
				Action: line.Action{Type: "postback", Data: postbackCheck, DisplayText: "予約確認"},
			},
			{
				Bounds: line.RichMenuBounds{X: 0, Y: h, Width: w, Height: h},
				Action: line.Action{Type: "postback", Data: postbackInfo, DisplayText: "店舗情報"},
			},
			{
				Bounds: line.RichMenuBounds{X: w, Y: h, Width: w, Height: h},
				Action: line.Action{Type: "uri", URI: "tel:" + cfg.Phone},
			},
		},
	}
}
