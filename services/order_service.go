package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository

	// reject checkout on client/server total disagreement instead of only
	// logging it
	StrictTotal bool
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, strictTotal bool) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, StrictTotal: strictTotal}
}

// ----- Checkout -----

type PlaceOrderReq struct {
	PickupTime    string `json:"pickupTime" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=cash card"`
	// display hint only; the server recomputes the authoritative total
	ClientTotal *decimal.Decimal `json:"clientTotal"`
}

type PlaceOrderRes struct {
	ID    uint            `json:"id"`
	Total decimal.Decimal `json:"total"`
}

// PlaceOrder converts the user's active cart into an immutable order with
// one line per cart entry. The cart snapshot, the active→converted claim on
// the cart row, the order and its lines, and the removal of the billed lines
// all run in one transaction: a failure anywhere rolls everything back and
// leaves the cart intact for retry, and the conditional claim guarantees a
// cart becomes an order at most once even under concurrent checkouts.
func (s *OrderService) PlaceOrder(userID uint, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(req.PickupTime) == "" {
		return nil, fmt.Errorf("%w: pickup time is required", ErrValidation)
	}
	if req.PaymentMethod != "cash" && req.PaymentMethod != "card" {
		return nil, fmt.Errorf("%w: payment method must be cash or card", ErrValidation)
	}

	var out PlaceOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetActiveCartWithItems(tx, userID)
		if err != nil {
			return storeErr(err)
		}
		if cart.ID == 0 || len(cart.Items) == 0 {
			return fmt.Errorf("%w: cart is empty", ErrValidation)
		}

		// total from the cart's own price snapshots, never the live menu
		total := decimal.Zero
		for _, it := range cart.Items {
			total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		if req.ClientTotal != nil && !req.ClientTotal.Equal(total) {
			log.Printf("order total mismatch: user=%d client=%s server=%s", userID, req.ClientTotal, total)
			if s.StrictTotal {
				return fmt.Errorf("%w: declared total %s does not match %s", ErrValidation, req.ClientTotal, total)
			}
		}

		// claim the cart; a concurrent checkout that committed first already
		// flipped it, so this write matches zero rows and nothing is billed
		// twice
		claimed, err := s.CartRepo.ConvertCart(tx, cart.ID)
		if err != nil {
			return storeErr(err)
		}
		if claimed == 0 {
			return fmt.Errorf("%w: cart is empty", ErrValidation)
		}

		order := entity.Order{
			UserID:        userID,
			Status:        entity.StatusPending,
			TotalAmount:   total,
			PickupTime:    req.PickupTime,
			PaymentMethod: req.PaymentMethod,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return storeErr(err)
		}

		itemIDs := make([]uint, 0, len(cart.Items))
		for _, it := range cart.Items {
			line := entity.OrderLine{
				OrderID:    order.ID,
				FoodItemID: it.FoodItemID,
				Name:       it.FoodItem.Name,
				Price:      it.Price,
				Quantity:   it.Quantity,
				ImageURL:   it.FoodItem.ImageURL,
			}
			if err := s.Repo.CreateOrderLine(tx, &line); err != nil {
				return storeErr(err)
			}
			itemIDs = append(itemIDs, it.ID)
		}

		// delete only the billed lines; an add racing past the snapshot lands
		// on the converted cart instead of vanishing unbilled
		if err := s.CartRepo.DeleteItemsByID(tx, itemIDs); err != nil {
			return storeErr(err)
		}

		out = PlaceOrderRes{ID: order.ID, Total: order.TotalAmount}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- Customer view -----

type CustomerOrderView struct {
	ID            uint               `json:"id"`
	Status        entity.Stage       `json:"status"`
	History       bool               `json:"history"`
	Total         decimal.Decimal    `json:"total"`
	PickupTime    string             `json:"pickupTime"`
	PaymentMethod string             `json:"paymentMethod"`
	CreatedAt     time.Time          `json:"createdAt"`
	CanteenName   string             `json:"canteenName"`
	Lines         []entity.OrderLine `json:"lines"`
}

// ListForUser returns every order of the user (active and history alike),
// newest first. History means the order reached the terminal display stage.
// The read is two queries, cheap enough for the client's polling loop.
func (s *OrderService) ListForUser(userID uint) ([]CustomerOrderView, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	orders, err := s.Repo.ListOrdersForUser(userID)
	if err != nil {
		return nil, storeErr(err)
	}

	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	canteens, err := s.Repo.CanteenNamesForOrders(ids)
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]CustomerOrderView, 0, len(orders))
	for _, o := range orders {
		stage := entity.StageOf(o.Status)
		out = append(out, CustomerOrderView{
			ID:            o.ID,
			Status:        stage,
			History:       stage == entity.StagePickedUp,
			Total:         o.TotalAmount,
			PickupTime:    o.PickupTime,
			PaymentMethod: o.PaymentMethod,
			CreatedAt:     o.CreatedAt,
			CanteenName:   canteens[o.ID],
			Lines:         o.Lines,
		})
	}
	return out, nil
}

// ----- Seller view -----

type SellerOrderView struct {
	ID         uint            `json:"id"`
	Status     entity.Stage    `json:"status"`
	Total      decimal.Decimal `json:"total"`
	Items      []string        `json:"items"`
	Date       string          `json:"date"`
	Time       string          `json:"time"`
	PickupTime string          `json:"pickupTime"`
	Payment    string          `json:"payment"`
}

// ListForCanteen returns the canteen's open orders (terminal storage
// statuses excluded), newest first, with lines flattened for the dashboard.
func (s *OrderService) ListForCanteen(canteenID uint) ([]SellerOrderView, error) {
	ids, err := s.Repo.OrderIDsForCanteen(canteenID)
	if err != nil {
		return nil, storeErr(err)
	}
	orders, err := s.Repo.ListActiveOrdersByIDs(ids)
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]SellerOrderView, 0, len(orders))
	for _, o := range orders {
		items := make([]string, 0, len(o.Lines))
		for _, l := range o.Lines {
			items = append(items, fmt.Sprintf("%s x %d", l.Name, l.Quantity))
		}
		out = append(out, SellerOrderView{
			ID:         o.ID,
			Status:     entity.StageOf(o.Status),
			Total:      o.TotalAmount,
			Items:      items,
			Date:       o.CreatedAt.Format("2006-01-02"),
			Time:       o.CreatedAt.Format("3:04 PM"),
			PickupTime: o.PickupTime,
			Payment:    titleCase(o.PaymentMethod),
		})
	}
	return out, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
