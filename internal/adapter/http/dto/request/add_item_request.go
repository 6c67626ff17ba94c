package request

import (
	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase"
)

// AddItemRequest is the kiosk add-line payload. Name picks a catalog entry
// for the simple categories; tier plus the option flags drive vanity and
// kitchen package adds.
type AddItemRequest struct {
	Category string `json:"category" binding:"required"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	ImageRef string `json:"image_ref"`

	Tier               string `json:"tier"`
	SingleToDouble     bool   `json:"single_to_double"`
	PlumbingWallChange bool   `json:"plumbing_wall_change"`
	CabinetUpgrade     bool   `json:"cabinet_upgrade"`
	CountertopUpgrade  bool   `json:"countertop_upgrade"`
}

func (r AddItemRequest) ToInput() usecase.AddItemInput {
	return usecase.AddItemInput{
		Category:           entities.Category(r.Category),
		Name:               r.Name,
		Value:              r.Value,
		ImageRef:           r.ImageRef,
		Tier:               entities.Tier(r.Tier),
		SingleToDouble:     r.SingleToDouble,
		PlumbingWallChange: r.PlumbingWallChange,
		CabinetUpgrade:     r.CabinetUpgrade,
		CountertopUpgrade:  r.CountertopUpgrade,
	}
}
