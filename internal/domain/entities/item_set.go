package entities

// ItemSet groups the seven ordered collections that make up one estimate in
// progress. The JSON keys match the persisted estimate record.
type ItemSet struct {
	Cabinets    []CabinetLineItem    `json:"cabinet_items"`
	Doors       []DoorLineItem       `json:"door_items"`
	Flooring    []FlooringLineItem   `json:"flooring_items"`
	Countertops []CountertopLineItem `json:"countertop_items"`
	Hardware    []HardwareLineItem   `json:"hardware_items"`
	Vanities    []VanityLineItem     `json:"vanity_items"`
	Kitchens    []KitchenLineItem    `json:"kitchen_items"`
}

// Clone returns a deep copy. Line items are value structs, so copying the
// backing slices is enough.
func (s ItemSet) Clone() ItemSet {
	out := ItemSet{}
	if s.Cabinets != nil {
		out.Cabinets = append([]CabinetLineItem(nil), s.Cabinets...)
	}
	if s.Doors != nil {
		out.Doors = append([]DoorLineItem(nil), s.Doors...)
	}
	if s.Flooring != nil {
		out.Flooring = append([]FlooringLineItem(nil), s.Flooring...)
	}
	if s.Countertops != nil {
		out.Countertops = append([]CountertopLineItem(nil), s.Countertops...)
	}
	if s.Hardware != nil {
		out.Hardware = append([]HardwareLineItem(nil), s.Hardware...)
	}
	if s.Vanities != nil {
		out.Vanities = append([]VanityLineItem(nil), s.Vanities...)
	}
	if s.Kitchens != nil {
		out.Kitchens = append([]KitchenLineItem(nil), s.Kitchens...)
	}
	return out
}

// Len returns the number of items in one category.
func (s ItemSet) Len(c Category) int {
	switch c {
	case CategoryCabinet:
		return len(s.Cabinets)
	case CategoryDoor:
		return len(s.Doors)
	case CategoryFlooring:
		return len(s.Flooring)
	case CategoryCountertop:
		return len(s.Countertops)
	case CategoryHardware:
		return len(s.Hardware)
	case CategoryVanity:
		return len(s.Vanities)
	case CategoryKitchen:
		return len(s.Kitchens)
	}
	return 0
}

// Empty reports whether every collection is empty.
func (s ItemSet) Empty() bool {
	for _, c := range Categories {
		if s.Len(c) > 0 {
			return false
		}
	}
	return true
}
