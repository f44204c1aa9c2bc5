package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/repository"

	"github.com/shopspring/decimal"
)

func TestApplyAddCreatesCartAndSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "amal@uni.test")
	canteen := seedCanteen(t, db, "piyawili")
	food := seedFood(t, db, canteen.ID, "Chicken Kottu", "450.00")

	out, err := svc.Apply(user.ID, food.ID, ActionAdd)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if out.Item == nil || out.Item.Quantity != 1 {
		t.Fatalf("want quantity 1, got %+v", out.Item)
	}
	if !out.Item.Price.Equal(decimal.RequireFromString("450.00")) {
		t.Fatalf("want snapshot price 450.00, got %s", out.Item.Price)
	}

	// second add collapses into the same row
	out, err = svc.Apply(user.ID, food.ID, ActionAdd)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if out.Item.Quantity != 2 {
		t.Fatalf("want quantity 2, got %d", out.Item.Quantity)
	}
	if n := countRows(t, db, &entity.CartItem{}, "food_item_id = ?", food.ID); n != 1 {
		t.Fatalf("want 1 cart item row, got %d", n)
	}
	if n := countRows(t, db, &entity.Cart{}, "user_id = ? AND status = ?", user.ID, entity.CartActive); n != 1 {
		t.Fatalf("want 1 active cart, got %d", n)
	}
}

func TestApplyAddUnknownFood(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "amal@uni.test")

	_, err := svc.Apply(user.ID, 9999, ActionAdd)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if n := countRows(t, db, &entity.Cart{}, "user_id = ?", user.ID); n != 0 {
		t.Fatalf("no cart should be created for a failed add, got %d", n)
	}
}

func TestApplyAddUnauthorized(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	if _, err := svc.Apply(0, 1, ActionAdd); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestApplyDecrease(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "amal@uni.test")
	canteen := seedCanteen(t, db, "piyawili")
	food := seedFood(t, db, canteen.ID, "Dhal Curry", "120.00")

	for i := 0; i < 2; i++ {
		if _, err := svc.Apply(user.ID, food.ID, ActionAdd); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	out, err := svc.Apply(user.ID, food.ID, ActionDecrease)
	if err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if out.Removed || out.Item == nil || out.Item.Quantity != 1 {
		t.Fatalf("want quantity 1, got %+v", out)
	}

	// quantity reaches zero: the row is deleted, never stored at zero
	out, err = svc.Apply(user.ID, food.ID, ActionDecrease)
	if err != nil {
		t.Fatalf("decrease to zero: %v", err)
	}
	if !out.Removed {
		t.Fatalf("want removal at zero, got %+v", out)
	}
	if n := countRows(t, db, &entity.CartItem{}, "food_item_id = ?", food.ID); n != 0 {
		t.Fatalf("row must be gone, got %d", n)
	}

	// decreasing an absent line is NotFound
	if _, err := svc.Apply(user.ID, food.ID, ActionDecrease); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestApplyRemoveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "amal@uni.test")
	canteen := seedCanteen(t, db, "piyawili")
	food := seedFood(t, db, canteen.ID, "Egg Roti", "80.00")

	for i := 0; i < 3; i++ {
		if _, err := svc.Apply(user.ID, food.ID, ActionAdd); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	out, err := svc.Apply(user.ID, food.ID, ActionRemove)
	if err != nil || !out.Removed {
		t.Fatalf("remove: %v %+v", err, out)
	}
	// removing again succeeds with the same end state
	out, err = svc.Apply(user.ID, food.ID, ActionRemove)
	if err != nil || !out.Removed {
		t.Fatalf("second remove: %v %+v", err, out)
	}
	if n := countRows(t, db, &entity.CartItem{}, "food_item_id = ?", food.ID); n != 0 {
		t.Fatalf("row must stay gone, got %d", n)
	}
}

func TestApplyRemoveWithoutCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "amal@uni.test")

	out, err := svc.Apply(user.ID, 42, ActionRemove)
	if err != nil || !out.Removed {
		t.Fatalf("remove without a cart must be a no-op, got %v %+v", err, out)
	}
}

func TestConcurrentFirstAdds(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "amal@uni.test")
	canteen := seedCanteen(t, db, "piyawili")
	food := seedFood(t, db, canteen.ID, "Fish Bun", "100.00")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Apply(user.ID, food.ID, ActionAdd)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("concurrent add %d: %v", i, err)
		}
	}

	if n := countRows(t, db, &entity.Cart{}, "user_id = ? AND status = ?", user.ID, entity.CartActive); n != 1 {
		t.Fatalf("want exactly one active cart, got %d", n)
	}
	var item entity.CartItem
	if err := db.Where("food_item_id = ?", food.ID).First(&item).Error; err != nil {
		t.Fatalf("fetch item: %v", err)
	}
	if item.Quantity != 2 {
		t.Fatalf("concurrent adds must sum to 2, got %d", item.Quantity)
	}
	if n := countRows(t, db, &entity.CartItem{}, "food_item_id = ?", food.ID); n != 1 {
		t.Fatalf("want one row per (cart, food item), got %d", n)
	}
}

func TestGetOrCreateActiveCartReusesExisting(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)
	user := seedUser(t, db, "amal@uni.test")

	first, err := repo.GetOrCreateActiveCart(db, user.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// second call hits the conflict path and must hand back the same cart
	// without erroring
	second, err := repo.GetOrCreateActiveCart(db, user.ID)
	if err != nil {
		t.Fatalf("get existing: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("want cart %d reused, got %d", first.ID, second.ID)
	}
	if n := countRows(t, db, &entity.Cart{}, "user_id = ?", user.ID); n != 1 {
		t.Fatalf("want 1 cart row, got %d", n)
	}
}

func TestGetOrCreateActiveCartAfterConversion(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)
	user := seedUser(t, db, "amal@uni.test")

	first, err := repo.GetOrCreateActiveCart(db, user.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	claimed, err := repo.ConvertCart(db, first.ID)
	if err != nil || claimed != 1 {
		t.Fatalf("convert: %v (claimed %d)", err, claimed)
	}
	// the converted cart frees the unique active slot
	next, err := repo.GetOrCreateActiveCart(db, user.ID)
	if err != nil {
		t.Fatalf("create after conversion: %v", err)
	}
	if next.ID == first.ID {
		t.Fatal("converted cart must not be reused")
	}

	// a converted cart cannot be claimed again
	claimed, err = repo.ConvertCart(db, first.ID)
	if err != nil || claimed != 0 {
		t.Fatalf("second convert must match zero rows, got %d (%v)", claimed, err)
	}
}

func TestGetEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "amal@uni.test")

	cart, subtotal, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(cart.Items) != 0 || !subtotal.IsZero() {
		t.Fatalf("want empty cart with zero subtotal, got %d items, %s", len(cart.Items), subtotal)
	}
}

func TestGetSubtotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "amal@uni.test")
	canteen := seedCanteen(t, db, "piyawili")
	foodA := seedFood(t, db, canteen.ID, "Kottu", "450.00")
	foodB := seedFood(t, db, canteen.ID, "Juice", "350.00")

	mustAdd := func(foodID uint, times int) {
		t.Helper()
		for i := 0; i < times; i++ {
			if _, err := svc.Apply(user.ID, foodID, ActionAdd); err != nil {
				t.Fatalf("add: %v", err)
			}
		}
	}
	mustAdd(foodA.ID, 1)
	mustAdd(foodB.ID, 2)

	_, subtotal, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !subtotal.Equal(decimal.RequireFromString("1150.00")) {
		t.Fatalf("want subtotal 1150.00, got %s", subtotal)
	}
}

func TestClearWithoutCartIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "amal@uni.test")

	if err := svc.Clear(user.ID); err != nil {
		t.Fatalf("clear without a cart: %v", err)
	}
}
