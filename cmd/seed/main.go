// seed puebla la base de datos con datos de demostración: 5 proveedores,
// 5 categorías de tela y ~12 meses de pedidos y devoluciones generados al azar.
//
// Uso: go run ./cmd/seed
// ATENCIÓN: borra todos los pedidos, devoluciones, proveedores y categorías
// existentes antes de sembrar.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/infrastructure/postgres"
	"github.com/tu-usuario/textil-ops/pkg/config"
	"github.com/tu-usuario/textil-ops/pkg/logger"
)

type supplierSeed struct {
	name, gst, contact, address string
}

type categorySeed struct {
	name  string
	price int64
}

var supplierSeeds = []supplierSeed{
	{"Fabrics Inc", "24AAACF1234A1Z5", "9876543210", "123 Textile Market, Surat"},
	{"Thread Walas", "24BBBCF5678B1Z5", "9123456789", "45 Ring Road, Surat"},
	{"Gujarat Cotton Co", "24CCCCF9012C1Z5", "9988776655", "78 GIDC, Ahmedabad"},
	{"Silk Route Traders", "24DDDDF3456D1Z5", "9112233445", "12 Silk City, Surat"},
	{"Premium Weaves", "24EEEEF7890E1Z5", "9556677889", "89 Market Yard, Rajkot"},
}

var categorySeeds = []categorySeed{
	{"Cotton 60s", 120},
	{"Rayon 14kg", 85},
	{"Polyester", 60},
	{"Silk Satin", 250},
	{"Linen Pure", 350},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.App.Env, "info").Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Limpieza: order_items cae en cascada al borrar orders.
	for _, table := range []string{"returns", "orders", "suppliers", "categories"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("limpiar tabla")
		}
	}
	log.Info().Msg("base de datos limpia")

	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)

	now := time.Now()

	suppliers := make([]entity.Supplier, 0, len(supplierSeeds))
	for _, s := range supplierSeeds {
		supplier := entity.Supplier{
			ID: uuid.NewString(), Name: s.name, GST: s.gst,
			Contact: s.contact, Address: s.address,
			Active: true, CreatedAt: now, UpdatedAt: now,
		}
		if err := supplierRepo.Create(ctx, &supplier); err != nil {
			log.Fatal().Err(err).Str("supplier", s.name).Msg("crear proveedor")
		}
		suppliers = append(suppliers, supplier)
	}

	categories := make([]entity.Category, 0, len(categorySeeds))
	for _, c := range categorySeeds {
		category := entity.Category{
			ID: uuid.NewString(), Name: c.name,
			DefaultPrice: decimal.NewFromInt(c.price),
			Active:       true, CreatedAt: now, UpdatedAt: now,
		}
		if err := categoryRepo.Create(ctx, &category); err != nil {
			log.Fatal().Err(err).Str("category", c.name).Msg("crear categoría")
		}
		categories = append(categories, category)
	}

	rng := rand.New(rand.NewSource(now.UnixNano()))

	// Últimos 12 meses, del más reciente hacia atrás. 28 días por mes para no
	// desbordar febrero.
	for i := 0; i < 12; i++ {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -i, 0)
		log.Info().Str("month", monthStart.Format("2006-01")).Msg("generando datos")

		orderCount := randBetween(rng, 15, 20)
		for j := 0; j < orderCount; j++ {
			order := buildOrder(rng, monthStart, suppliers, categories)
			if err := orderRepo.Create(ctx, &order); err != nil {
				log.Fatal().Err(err).Msg("crear pedido")
			}
		}

		returnCount := randBetween(rng, 1, 3)
		for j := 0; j < returnCount; j++ {
			supplier := suppliers[rng.Intn(len(suppliers))]
			category := categories[rng.Intn(len(categories))]
			ret := entity.Return{
				ID:           uuid.NewString(),
				SupplierID:   supplier.ID,
				Date:         monthStart.AddDate(0, 0, randBetween(rng, 5, 27)),
				CategoryName: category.Name,
				Price:        category.DefaultPrice,
				Quantity:     int64(randBetween(rng, 5, 20)),
				Reason:       "Defective fabric",
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := returnRepo.Create(ctx, &ret); err != nil {
				log.Fatal().Err(err).Msg("crear devolución")
			}
		}
	}

	log.Info().Msg("seed completado")
}

func buildOrder(rng *rand.Rand, monthStart time.Time, suppliers []entity.Supplier, categories []entity.Category) entity.Order {
	now := time.Now()
	orderID := uuid.NewString()
	supplier := suppliers[rng.Intn(len(suppliers))]

	itemCount := randBetween(rng, 1, 3)
	items := make([]entity.OrderItem, 0, itemCount)
	for k := 0; k < itemCount; k++ {
		category := categories[rng.Intn(len(categories))]
		quantity := int64(randBetween(rng, 10, 100))
		// Ligera variación sobre el precio de catálogo
		price := category.DefaultPrice.Add(decimal.NewFromInt(int64(randBetween(rng, -5, 5))))
		items = append(items, entity.OrderItem{
			ID:           uuid.NewString(),
			OrderID:      orderID,
			CategoryName: category.Name,
			Price:        price,
			Quantity:     quantity,
			Total:        price.Mul(decimal.NewFromInt(quantity)),
		})
	}

	return entity.Order{
		ID:         orderID,
		SupplierID: supplier.ID,
		Date:       monthStart.AddDate(0, 0, randBetween(rng, 0, 27)),
		Notes:      "Auto-generated order",
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func randBetween(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
