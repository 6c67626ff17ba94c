package builder

import (
	"errors"
	"strconv"

	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/domain/pricing"
)

var (
	ErrIndexOutOfRange = errors.New("line item index out of range")
	ErrUnknownCategory = errors.New("unknown category")
)

// EstimateState is the estimate being built at the kiosk: seven ordered
// line-item collections, a one-slot undo buffer and the edit cursor. It is
// the only mutation surface over the collections.
//
// Concurrency: one logical writer (the active kiosk session). All operations
// are synchronous and run to completion; callers serialize access.
type EstimateState struct {
	items  entities.ItemSet
	undo   undoEntry
	cursor editCursor
}

func NewEstimateState() *EstimateState {
	return &EstimateState{}
}

// Items returns a deep copy of the collections for pricing, export and
// persistence snapshots.
func (s *EstimateState) Items() entities.ItemSet {
	return s.items.Clone()
}

// Totals recomputes the full breakdown from the current collections.
func (s *EstimateState) Totals(installationRequested bool) entities.TotalsBreakdown {
	return pricing.ComputeTotals(s.items, installationRequested)
}

// AddCabinet validates the raw quantity and appends a cabinet line item with
// its unit price frozen from the catalog lookup the caller performed.
func (s *EstimateState) AddCabinet(typeName, rawQuantity string, unitPrice float64) (entities.CabinetLineItem, error) {
	v, err := ValidateRaw(entities.CategoryCabinet, rawQuantity)
	if err != nil {
		return entities.CabinetLineItem{}, err
	}
	item := entities.CabinetLineItem{Type: typeName, Quantity: int(v), UnitPrice: unitPrice}
	s.items.Cabinets = append(s.items.Cabinets, item)
	return item, nil
}

func (s *EstimateState) AddDoor(typeName, rawQuantity string, unitPrice float64) (entities.DoorLineItem, error) {
	v, err := ValidateRaw(entities.CategoryDoor, rawQuantity)
	if err != nil {
		return entities.DoorLineItem{}, err
	}
	item := entities.DoorLineItem{Type: typeName, Quantity: int(v), UnitPrice: unitPrice}
	s.items.Doors = append(s.items.Doors, item)
	return item, nil
}

func (s *EstimateState) AddFlooring(typeName, rawSquareFeet string, unitPricePerSqFt float64) (entities.FlooringLineItem, error) {
	v, err := ValidateRaw(entities.CategoryFlooring, rawSquareFeet)
	if err != nil {
		return entities.FlooringLineItem{}, err
	}
	item := entities.FlooringLineItem{Type: typeName, SquareFeet: v, UnitPricePerSqFt: unitPricePerSqFt}
	s.items.Flooring = append(s.items.Flooring, item)
	return item, nil
}

func (s *EstimateState) AddCountertop(typeName, rawLinearFeet string, unitPricePerLinearFt float64) (entities.CountertopLineItem, error) {
	v, err := ValidateRaw(entities.CategoryCountertop, rawLinearFeet)
	if err != nil {
		return entities.CountertopLineItem{}, err
	}
	item := entities.CountertopLineItem{Type: typeName, LinearFeet: v, UnitPricePerLinearFt: unitPricePerLinearFt}
	s.items.Countertops = append(s.items.Countertops, item)
	return item, nil
}

func (s *EstimateState) AddHardware(typeName, rawQuantity string, unitPrice float64, imageRef string) (entities.HardwareLineItem, error) {
	v, err := ValidateRaw(entities.CategoryHardware, rawQuantity)
	if err != nil {
		return entities.HardwareLineItem{}, err
	}
	item := entities.HardwareLineItem{Type: typeName, Quantity: int(v), UnitPrice: unitPrice, ImageRef: imageRef}
	s.items.Hardware = append(s.items.Hardware, item)
	return item, nil
}

// AddVanity resolves the tier table once and freezes every tier-dependent
// cost onto the record.
func (s *EstimateState) AddVanity(tier entities.Tier, rawQuantity string, singleToDouble, plumbingWallChange bool) (entities.VanityLineItem, error) {
	v, err := ValidateRaw(entities.CategoryVanity, rawQuantity)
	if err != nil {
		return entities.VanityLineItem{}, err
	}
	item, err := pricing.ResolveVanity(tier, int(v), singleToDouble, plumbingWallChange)
	if err != nil {
		return entities.VanityLineItem{}, err
	}
	s.items.Vanities = append(s.items.Vanities, item)
	return item, nil
}

func (s *EstimateState) AddKitchen(tier entities.Tier, rawQuantity string, cabinetUpgrade, countertopUpgrade bool) (entities.KitchenLineItem, error) {
	v, err := ValidateRaw(entities.CategoryKitchen, rawQuantity)
	if err != nil {
		return entities.KitchenLineItem{}, err
	}
	item, err := pricing.ResolveKitchen(tier, int(v), cabinetUpgrade, countertopUpgrade)
	if err != nil {
		return entities.KitchenLineItem{}, err
	}
	s.items.Kitchens = append(s.items.Kitchens, item)
	return item, nil
}

// Remove deletes the item at index, shifting later indices down, and
// snapshots it into the undo buffer. An active edit in the same category is
// canceled to keep the cursor from dangling.
func (s *EstimateState) Remove(c entities.Category, index int) error {
	n := s.items.Len(c)
	if index < 0 || index >= n {
		return ErrIndexOutOfRange
	}

	snap := entities.ItemSet{}
	switch c {
	case entities.CategoryCabinet:
		snap.Cabinets = []entities.CabinetLineItem{s.items.Cabinets[index]}
		s.items.Cabinets = append(s.items.Cabinets[:index], s.items.Cabinets[index+1:]...)
	case entities.CategoryDoor:
		snap.Doors = []entities.DoorLineItem{s.items.Doors[index]}
		s.items.Doors = append(s.items.Doors[:index], s.items.Doors[index+1:]...)
	case entities.CategoryFlooring:
		snap.Flooring = []entities.FlooringLineItem{s.items.Flooring[index]}
		s.items.Flooring = append(s.items.Flooring[:index], s.items.Flooring[index+1:]...)
	case entities.CategoryCountertop:
		snap.Countertops = []entities.CountertopLineItem{s.items.Countertops[index]}
		s.items.Countertops = append(s.items.Countertops[:index], s.items.Countertops[index+1:]...)
	case entities.CategoryHardware:
		snap.Hardware = []entities.HardwareLineItem{s.items.Hardware[index]}
		s.items.Hardware = append(s.items.Hardware[:index], s.items.Hardware[index+1:]...)
	case entities.CategoryVanity:
		snap.Vanities = []entities.VanityLineItem{s.items.Vanities[index]}
		s.items.Vanities = append(s.items.Vanities[:index], s.items.Vanities[index+1:]...)
	case entities.CategoryKitchen:
		snap.Kitchens = []entities.KitchenLineItem{s.items.Kitchens[index]}
		s.items.Kitchens = append(s.items.Kitchens[:index], s.items.Kitchens[index+1:]...)
	default:
		return ErrUnknownCategory
	}

	s.captureRemove(c, snap)
	if s.cursor.active && s.cursor.category == c {
		s.CancelEdit()
	}
	return nil
}

// Clear empties the category, snapshotting the full prior sequence.
func (s *EstimateState) Clear(c entities.Category) error {
	snap := entities.ItemSet{}
	switch c {
	case entities.CategoryCabinet:
		snap.Cabinets = s.items.Cabinets
		s.items.Cabinets = nil
	case entities.CategoryDoor:
		snap.Doors = s.items.Doors
		s.items.Doors = nil
	case entities.CategoryFlooring:
		snap.Flooring = s.items.Flooring
		s.items.Flooring = nil
	case entities.CategoryCountertop:
		snap.Countertops = s.items.Countertops
		s.items.Countertops = nil
	case entities.CategoryHardware:
		snap.Hardware = s.items.Hardware
		s.items.Hardware = nil
	case entities.CategoryVanity:
		snap.Vanities = s.items.Vanities
		s.items.Vanities = nil
	case entities.CategoryKitchen:
		snap.Kitchens = s.items.Kitchens
		s.items.Kitchens = nil
	default:
		return ErrUnknownCategory
	}

	s.captureClear(c, snap)
	if s.cursor.active && s.cursor.category == c {
		s.CancelEdit()
	}
	return nil
}

// Update re-validates against the add bounds and replaces only the
// quantity/measurement field. Frozen price fields are never touched, and the
// undo buffer is not: edits are deliberately not undoable, only removals and
// clears are.
func (s *EstimateState) Update(c entities.Category, index int, rawValue string) error {
	if index < 0 || index >= s.items.Len(c) {
		return ErrIndexOutOfRange
	}
	v, err := ValidateRaw(c, rawValue)
	if err != nil {
		return err
	}

	switch c {
	case entities.CategoryCabinet:
		s.items.Cabinets[index].Quantity = int(v)
	case entities.CategoryDoor:
		s.items.Doors[index].Quantity = int(v)
	case entities.CategoryFlooring:
		s.items.Flooring[index].SquareFeet = v
	case entities.CategoryCountertop:
		s.items.Countertops[index].LinearFeet = v
	case entities.CategoryHardware:
		s.items.Hardware[index].Quantity = int(v)
	case entities.CategoryVanity:
		s.items.Vanities[index].Quantity = int(v)
	case entities.CategoryKitchen:
		s.items.Kitchens[index].Quantity = int(v)
	default:
		return ErrUnknownCategory
	}
	return nil
}

// ReplaceCabinets swaps the cabinet collection wholesale. Trusted input path
// (bulk import); bypasses validation and the undo buffer.
func (s *EstimateState) ReplaceCabinets(items []entities.CabinetLineItem) {
	s.items.Cabinets = append([]entities.CabinetLineItem(nil), items...)
	if s.cursor.active && s.cursor.category == entities.CategoryCabinet {
		s.CancelEdit()
	}
}

// LoadItems replaces every collection atomically (loading a saved estimate
// for edit). Undo buffer and cursor are reset; loads bypass undo.
func (s *EstimateState) LoadItems(items entities.ItemSet) {
	s.items = items.Clone()
	s.undo = undoEntry{}
	s.cursor = editCursor{}
}

// measurementAt returns the current quantity/measurement at (c, index) as the
// string the edit field would display.
func (s *EstimateState) measurementAt(c entities.Category, index int) (string, error) {
	if index < 0 || index >= s.items.Len(c) {
		return "", ErrIndexOutOfRange
	}
	switch c {
	case entities.CategoryCabinet:
		return strconv.Itoa(s.items.Cabinets[index].Quantity), nil
	case entities.CategoryDoor:
		return strconv.Itoa(s.items.Doors[index].Quantity), nil
	case entities.CategoryFlooring:
		return strconv.FormatFloat(s.items.Flooring[index].SquareFeet, 'f', -1, 64), nil
	case entities.CategoryCountertop:
		return strconv.FormatFloat(s.items.Countertops[index].LinearFeet, 'f', -1, 64), nil
	case entities.CategoryHardware:
		return strconv.Itoa(s.items.Hardware[index].Quantity), nil
	case entities.CategoryVanity:
		return strconv.Itoa(s.items.Vanities[index].Quantity), nil
	case entities.CategoryKitchen:
		return strconv.Itoa(s.items.Kitchens[index].Quantity), nil
	}
	return "", ErrUnknownCategory
}
