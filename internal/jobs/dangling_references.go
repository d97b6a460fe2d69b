package jobs

import (
	"context"
	"log"

	"onlineshop/internal/models"
	"onlineshop/internal/repositories"
)

const danglingScanLimit = 1000

// DanglingReferenceService reports order items whose shop item has been
// deleted. The schema allows such deletes, so the scanner is the only
// place these orphans become visible.
type DanglingReferenceService struct {
	orderItems repositories.OrderItemRepository
}

func NewDanglingReferenceService(orderItems repositories.OrderItemRepository) *DanglingReferenceService {
	return &DanglingReferenceService{orderItems: orderItems}
}

func (s *DanglingReferenceService) CheckDanglingItems(ctx context.Context) ([]*models.OrderItem, error) {
	items, err := s.orderItems.ListDangling(ctx, danglingScanLimit)
	if err != nil {
		log.Printf("Failed to scan for dangling order items: %v", err)
		return nil, err
	}
	return items, nil
}

func (s *DanglingReferenceService) LogDanglingItems(items []*models.OrderItem) {
	if len(items) == 0 {
		log.Println("No dangling order items found")
		return
	}

	log.Printf("Found %d order items referencing deleted shop items:", len(items))
	for _, item := range items {
		log.Printf("- order item %d (order %d) references missing shop item %d",
			item.ID, item.OrderID, item.ShopItemID)
	}
}

// ScheduledCheck runs one scan-and-log pass; wired into the gocron scheduler.
func (s *DanglingReferenceService) ScheduledCheck(ctx context.Context) error {
	items, err := s.CheckDanglingItems(ctx)
	if err != nil {
		return err
	}
	s.LogDanglingItems(items)
	return nil
}
