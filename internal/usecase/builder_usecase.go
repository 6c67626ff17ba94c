package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"cabinet_kiosk/internal/domain/builder"
	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound    = errors.New("builder session not found")
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidTier        = errors.New("invalid tier")
	ErrInvalidSelection   = errors.New("invalid catalog selection")
	ErrCatalogLookupMiss  = errors.New("catalog item not found")
	ErrInvalidEditAction  = errors.New("invalid edit action")
	ErrCatalogUnavailable = errors.New("catalog service not configured")
)

// AddItemInput carries one add action. Name selects a catalog entry for the
// simple categories; Tier plus the upgrade flags drive vanity/kitchen adds.
type AddItemInput struct {
	Category entities.Category
	Name     string
	Value    string
	ImageRef string

	Tier               entities.Tier
	SingleToDouble     bool
	PlumbingWallChange bool
	CabinetUpgrade     bool
	CountertopUpgrade  bool
}

// EditAction is one keyboard editing event forwarded by the kiosk front-end.
type EditAction struct {
	Action    string // start | type | commit | cancel | navigate
	Category  entities.Category
	Index     int
	Value     string
	Direction builder.Direction
}

const (
	EditActionStart    = "start"
	EditActionType     = "type"
	EditActionCommit   = "commit"
	EditActionCancel   = "cancel"
	EditActionNavigate = "navigate"
)

// UndoResult reports whether the buffer held anything; an empty buffer is a
// benign no-op, not an error.
type UndoResult struct {
	Restored bool             `json:"restored"`
	Items    entities.ItemSet `json:"items"`
}

// IBuilderUseCase exposes the estimate-builder session operations: the
// line-item store mutations, the edit cursor and the one-slot undo.

type IBuilderUseCase interface {
	StartSession() string
	NewSessionFromItems(items entities.ItemSet) string
	AddItem(ctx context.Context, sessionID string, in AddItemInput) (entities.ItemSet, error)
	RemoveItem(sessionID string, category entities.Category, index int) (entities.ItemSet, error)
	ClearCategory(sessionID string, category entities.Category) (entities.ItemSet, error)
	UpdateItem(sessionID string, category entities.Category, index int, rawValue string) (entities.ItemSet, error)
	Undo(sessionID string) (UndoResult, error)
	Edit(sessionID string, action EditAction) (builder.Cursor, error)
	Items(sessionID string) (entities.ItemSet, error)
	Totals(sessionID string, installationRequested bool) (entities.TotalsBreakdown, error)
	ReplaceCabinets(sessionID string, items []entities.CabinetLineItem) (entities.ItemSet, error)
}

// BuilderUseCase keeps one EstimateState per kiosk session. Each session has
// exactly one logical writer (the active UI session); the mutex only guards
// the registry map plus the synchronous run-to-completion of each operation.
type BuilderUseCase struct {
	catalog interfaces.ICatalogService

	mu       sync.Mutex
	sessions map[string]*builder.EstimateState
}

var _ IBuilderUseCase = (*BuilderUseCase)(nil)

func NewBuilderUseCase(catalog interfaces.ICatalogService) *BuilderUseCase {
	return &BuilderUseCase{
		catalog:  catalog,
		sessions: make(map[string]*builder.EstimateState),
	}
}

func (u *BuilderUseCase) StartSession() string {
	id := uuid.NewString()
	u.mu.Lock()
	u.sessions[id] = builder.NewEstimateState()
	u.mu.Unlock()
	return id
}

// NewSessionFromItems opens a session pre-loaded with a saved estimate's
// collections (load-for-edit; bypasses undo by design).
func (u *BuilderUseCase) NewSessionFromItems(items entities.ItemSet) string {
	id := uuid.NewString()
	state := builder.NewEstimateState()
	state.LoadItems(items)
	u.mu.Lock()
	u.sessions[id] = state
	u.mu.Unlock()
	return id
}

func (u *BuilderUseCase) session(sessionID string) (*builder.EstimateState, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (u *BuilderUseCase) AddItem(ctx context.Context, sessionID string, in AddItemInput) (entities.ItemSet, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ItemSet{}, err
	}

	switch in.Category {
	case entities.CategoryVanity:
		if !entities.ValidTier(in.Tier) {
			return entities.ItemSet{}, ErrInvalidTier
		}
		if _, err := s.AddVanity(in.Tier, in.Value, in.SingleToDouble, in.PlumbingWallChange); err != nil {
			return entities.ItemSet{}, err
		}
		return s.Items(), nil

	case entities.CategoryKitchen:
		if !entities.ValidTier(in.Tier) {
			return entities.ItemSet{}, ErrInvalidTier
		}
		if _, err := s.AddKitchen(in.Tier, in.Value, in.CabinetUpgrade, in.CountertopUpgrade); err != nil {
			return entities.ItemSet{}, err
		}
		return s.Items(), nil

	case entities.CategoryCabinet, entities.CategoryDoor, entities.CategoryFlooring,
		entities.CategoryCountertop, entities.CategoryHardware:
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return entities.ItemSet{}, ErrInvalidSelection
		}
		price, err := u.lookupPrice(ctx, in.Category, name)
		if err != nil {
			return entities.ItemSet{}, err
		}

		switch in.Category {
		case entities.CategoryCabinet:
			_, err = s.AddCabinet(name, in.Value, price)
		case entities.CategoryDoor:
			_, err = s.AddDoor(name, in.Value, price)
		case entities.CategoryFlooring:
			_, err = s.AddFlooring(name, in.Value, price)
		case entities.CategoryCountertop:
			_, err = s.AddCountertop(name, in.Value, price)
		case entities.CategoryHardware:
			_, err = s.AddHardware(name, in.Value, price, in.ImageRef)
		}
		if err != nil {
			return entities.ItemSet{}, err
		}
		return s.Items(), nil

	default:
		return entities.ItemSet{}, ErrInvalidCategory
	}
}

func (u *BuilderUseCase) lookupPrice(ctx context.Context, c entities.Category, name string) (float64, error) {
	if u.catalog == nil {
		return 0, ErrCatalogUnavailable
	}
	price, err := u.catalog.UnitPrice(ctx, c, name)
	if err != nil {
		if errors.Is(err, interfaces.ErrPriceNotFound) {
			return 0, ErrCatalogLookupMiss
		}
		return 0, err
	}
	return price, nil
}

func (u *BuilderUseCase) RemoveItem(sessionID string, category entities.Category, index int) (entities.ItemSet, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ItemSet{}, err
	}
	if err := s.Remove(category, index); err != nil {
		return entities.ItemSet{}, err
	}
	return s.Items(), nil
}

func (u *BuilderUseCase) ClearCategory(sessionID string, category entities.Category) (entities.ItemSet, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ItemSet{}, err
	}
	if err := s.Clear(category); err != nil {
		return entities.ItemSet{}, err
	}
	return s.Items(), nil
}

func (u *BuilderUseCase) UpdateItem(sessionID string, category entities.Category, index int, rawValue string) (entities.ItemSet, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ItemSet{}, err
	}
	if err := s.Update(category, index, rawValue); err != nil {
		return entities.ItemSet{}, err
	}
	return s.Items(), nil
}

func (u *BuilderUseCase) Undo(sessionID string) (UndoResult, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return UndoResult{}, err
	}
	restored := s.Undo()
	return UndoResult{Restored: restored, Items: s.Items()}, nil
}

func (u *BuilderUseCase) Edit(sessionID string, action EditAction) (builder.Cursor, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return builder.Cursor{}, err
	}

	switch action.Action {
	case EditActionStart:
		err = s.StartEdit(action.Category, action.Index)
	case EditActionType:
		err = s.TypeValue(action.Value)
	case EditActionCommit:
		err = s.CommitEdit()
	case EditActionCancel:
		s.CancelEdit()
	case EditActionNavigate:
		err = s.Navigate(action.Direction)
	default:
		return builder.Cursor{}, ErrInvalidEditAction
	}
	if err != nil {
		return s.Cursor(), err
	}
	return s.Cursor(), nil
}

func (u *BuilderUseCase) Items(sessionID string) (entities.ItemSet, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ItemSet{}, err
	}
	return s.Items(), nil
}

func (u *BuilderUseCase) Totals(sessionID string, installationRequested bool) (entities.TotalsBreakdown, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.TotalsBreakdown{}, err
	}
	return s.Totals(installationRequested), nil
}

func (u *BuilderUseCase) ReplaceCabinets(sessionID string, items []entities.CabinetLineItem) (entities.ItemSet, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ItemSet{}, err
	}
	s.ReplaceCabinets(items)
	return s.Items(), nil
}
