package featured

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/pkg/clock"
)

var (
	ErrNotFound         = errors.New("featured store not found")
	ErrStoreNotFound    = errors.New("store not found")
	ErrInvalidDuration  = errors.New("invalid featured duration")
	ErrInvalidDirection = errors.New("invalid reorder direction")
)

// AllowedDurations допустимые сроки продвижения в днях
var AllowedDurations = []int{7, 15, 30}

// Notifier отправляет уведомление. Ошибки доставки не возвращаются.
type Notifier interface {
	Notify(ctx context.Context, n *model.Notification)
}

// StoreLookup ищет салон по ID. nil, nil если салона нет.
type StoreLookup interface {
	GetByID(ctx context.Context, id int64) (*model.Store, error)
}

// Entry запись продвижения с данными для отображения
type Entry struct {
	model.FeaturedStore
	StoreName     string `json:"storeName"`
	DaysRemaining int    `json:"daysRemaining"`
}

// Service управляет жизненным циклом продвижений
type Service struct {
	mu       sync.Mutex
	repo     Repository
	stores   StoreLookup
	notifier Notifier
	clock    clock.Clock
	logger   *zap.Logger
}

func NewService(repo Repository, stores StoreLookup, notifier Notifier, clk clock.Clock, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		stores:   stores,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

// Add продвигает салон на durationDays дней начиная с текущего момента.
// Повторное продвижение того же салона не запрещается.
func (s *Service) Add(ctx context.Context, storeID int64, durationDays int) (*model.FeaturedStore, error) {
	if !IsAllowedDuration(durationDays) {
		return nil, ErrInvalidDuration
	}

	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}

	now := s.clock.Now()
	entry := model.FeaturedStore{
		ID:        uuid.New(),
		StoreID:   storeID,
		StartDate: now,
		EndDate:   now.Add(time.Duration(durationDays) * day),
		IsActive:  true,
		CreatedAt: now,
	}

	err = s.mutate(ctx, func(list []model.FeaturedStore) ([]model.FeaturedStore, error) {
		return append(list, entry), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Store featured",
		zap.String("featured_id", entry.ID.String()),
		zap.Int64("store_id", storeID),
		zap.Int("days", durationDays),
	)

	s.notifier.Notify(ctx, &model.Notification{
		Kind:    model.NotificationFeaturedAdded,
		Title:   "Magasin mis en avant",
		Message: fmt.Sprintf("%s est mis en avant pour %d jours", store.Name, durationDays),
		Payload: payload(entry, store.Name),
	})

	return &entry, nil
}

// Remove удаляет запись безусловно
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	var removed model.FeaturedStore

	err := s.mutate(ctx, func(list []model.FeaturedStore) ([]model.FeaturedStore, error) {
		idx := indexOf(list, id)
		if idx < 0 {
			return nil, ErrNotFound
		}
		removed = list[idx]
		return append(list[:idx], list[idx+1:]...), nil
	})
	if err != nil {
		return err
	}

	name := s.storeName(ctx, removed.StoreID)

	s.logger.Info("Featured store removed",
		zap.String("featured_id", id.String()),
		zap.Int64("store_id", removed.StoreID),
	)

	s.notifier.Notify(ctx, &model.Notification{
		Kind:    model.NotificationFeaturedRemoved,
		Title:   "Magasin retiré",
		Message: fmt.Sprintf("%s n'est plus mis en avant", name),
		Payload: payload(removed, name),
	})

	return nil
}

// Extend перезапускает продвижение с текущего момента и всегда активирует его,
// даже если срок уже истёк
func (s *Service) Extend(ctx context.Context, id uuid.UUID, durationDays int) (*model.FeaturedStore, error) {
	if !IsAllowedDuration(durationDays) {
		return nil, ErrInvalidDuration
	}

	now := s.clock.Now()
	var extended model.FeaturedStore

	err := s.mutate(ctx, func(list []model.FeaturedStore) ([]model.FeaturedStore, error) {
		idx := indexOf(list, id)
		if idx < 0 {
			return nil, ErrNotFound
		}
		list[idx].StartDate = now
		list[idx].EndDate = now.Add(time.Duration(durationDays) * day)
		list[idx].IsActive = true
		extended = list[idx]
		return list, nil
	})
	if err != nil {
		return nil, err
	}

	name := s.storeName(ctx, extended.StoreID)

	s.logger.Info("Featured store extended",
		zap.String("featured_id", id.String()),
		zap.Int64("store_id", extended.StoreID),
		zap.Int("days", durationDays),
	)

	s.notifier.Notify(ctx, &model.Notification{
		Kind:    model.NotificationFeaturedExtended,
		Title:   "Mise en avant prolongée",
		Message: fmt.Sprintf("%s est prolongé de %d jours", name, durationDays),
		Payload: payload(extended, name),
	})

	return &extended, nil
}

// Reorder меняет запись местами с соседней. direction: -1 вверх, +1 вниз.
// Выход за границы списка ничего не делает.
func (s *Service) Reorder(ctx context.Context, index, direction int) error {
	if direction != -1 && direction != 1 {
		return ErrInvalidDirection
	}

	return s.mutate(ctx, func(list []model.FeaturedStore) ([]model.FeaturedStore, error) {
		target := index + direction
		if index < 0 || index >= len(list) || target < 0 || target >= len(list) {
			return list, nil
		}
		list[index], list[target] = list[target], list[index]
		return list, nil
	})
}

// Sweep деактивирует записи с истёкшим сроком. На каждую деактивированную
// запись отправляется одно уведомление.
func (s *Service) Sweep(ctx context.Context) ([]model.FeaturedStore, error) {
	now := s.clock.Now()
	var expired []model.FeaturedStore

	err := s.mutate(ctx, func(list []model.FeaturedStore) ([]model.FeaturedStore, error) {
		for i := range list {
			if list[i].IsActive && list[i].IsExpired(now) {
				list[i].IsActive = false
				expired = append(expired, list[i])
			}
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}

	for _, e := range expired {
		name := s.storeName(ctx, e.StoreID)

		s.logger.Info("Featured store expired",
			zap.String("featured_id", e.ID.String()),
			zap.Int64("store_id", e.StoreID),
			zap.Time("end_date", e.EndDate),
		)

		s.notifier.Notify(ctx, &model.Notification{
			Kind:    model.NotificationFeaturedExpired,
			Title:   "Mise en avant expirée",
			Message: fmt.Sprintf("La mise en avant de %s a expiré", name),
			Payload: payload(e, name),
		})
	}

	return expired, nil
}

// List возвращает все записи в порядке отображения
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	list, err := s.repo.Load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.entries(ctx, list), nil
}

// Active возвращает только активные записи
func (s *Service) Active(ctx context.Context) ([]Entry, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]Entry, 0, len(all))
	for _, e := range all {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

func (s *Service) entries(ctx context.Context, list []model.FeaturedStore) []Entry {
	now := s.clock.Now()
	out := make([]Entry, 0, len(list))
	for _, f := range list {
		out = append(out, Entry{
			FeaturedStore: f,
			StoreName:     s.storeName(ctx, f.StoreID),
			DaysRemaining: DaysRemaining(f.EndDate, now),
		})
	}
	return out
}

// mutate загружает список, применяет изменение и сохраняет результат
func (s *Service) mutate(ctx context.Context, fn func([]model.FeaturedStore) ([]model.FeaturedStore, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	list, err = fn(list)
	if err != nil {
		return err
	}

	return s.repo.Save(ctx, list)
}

func (s *Service) storeName(ctx context.Context, storeID int64) string {
	store, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		s.logger.Warn("Failed to resolve store name",
			zap.Int64("store_id", storeID),
			zap.Error(err),
		)
	}
	if store == nil {
		return "#" + strconv.FormatInt(storeID, 10)
	}
	return store.Name
}

func indexOf(list []model.FeaturedStore, id uuid.UUID) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func payload(f model.FeaturedStore, storeName string) map[string]string {
	return map[string]string{
		"featured_id": f.ID.String(),
		"store_id":    strconv.FormatInt(f.StoreID, 10),
		"store_name":  storeName,
		"end_date":    f.EndDate.Format(time.RFC3339),
	}
}
