package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/shop-admin/config"
	"github.com/d60-Lab/shop-admin/internal/model"
	"github.com/d60-Lab/shop-admin/internal/repository"
	"github.com/d60-Lab/shop-admin/internal/service"
	"github.com/d60-Lab/shop-admin/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func percentile(ds []time.Duration, p float64) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	i := int(p * float64(len(ds)-1))
	return ds[i]
}

// 灌数压测：走 service 层批量建单，观察校验 + 插入的端到端延迟
// N=订单数 CONC=并发 环境变量控制
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	must(0, database.AutoMigrate(db))

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderSvc := service.NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewOrderItemRepository(db),
		repository.NewPaymentRepository(db),
		userRepo,
		repository.NewAddressRepository(db),
		productRepo,
	)

	ctx := context.Background()
	n := envInt("N", 10000)
	conc := envInt("CONC", 1)
	if conc > n {
		conc = n
	}

	buyer := &model.User{Name: "bench", Email: uuid.New().String()[:8] + "@bench.local", Password: "p"}
	must(0, db.Create(buyer).Error)
	product := &model.Product{Name: "bench-item", Description: "seed", Price: 9.99, Stock: 1 << 30, ImageURL: "http://bench.local/item.png"}
	must(0, db.Create(product).Error)

	lats := make(chan time.Duration, n)
	feed := make(chan int, n)
	for i := 0; i < n; i++ {
		feed <- i
	}
	close(feed)

	t0 := time.Now()
	for w := 0; w < conc; w++ {
		go func() {
			for range feed {
				st := time.Now()
				oid, err := orderSvc.CreateOrder(ctx, &model.Order{UserID: buyer.ID, TotalAmount: 9.99})
				if err == nil {
					_, err = orderSvc.AddItem(ctx, &model.OrderItem{OrderID: oid, ProductID: &product.ID, Price: 9.99, Quantity: 1})
				}
				if err != nil {
					fmt.Fprintln(os.Stderr, "insert failed:", err)
				}
				lats <- time.Since(st)
			}
		}()
	}

	recs := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, <-lats)
	}
	total := time.Since(t0)

	sort.Slice(recs, func(i, j int) bool { return recs[i] < recs[j] })
	fmt.Printf("orders=%d conc=%d total=%s qps=%.0f\n", n, conc, total, float64(n)/total.Seconds())
	fmt.Printf("p50=%s p95=%s p99=%s max=%s\n",
		percentile(recs, 0.50), percentile(recs, 0.95), percentile(recs, 0.99), recs[len(recs)-1])
}
