package get_rich_menu

import (
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/integrations/line"
)

type RichMenuProvider interface {
	RichMenu(businessType domain.BusinessType) (*line.RichMenu, error)
}
