// seed carga datos de demostración para el dashboard: catálogo, ventas y órdenes.
//
// Uso: go run ./cmd/seed [-sales 200] [-orders 15] [-days 240] [-catalog productos.csv -charset latin1] [-reset]
// Todo se inserta en una sola transacción.
package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

func main() {
	var (
		nSales      = flag.Int("sales", 200, "ventas a generar")
		nOrders     = flag.Int("orders", 15, "órdenes a generar")
		days        = flag.Int("days", 240, "días hacia atrás para repartir las ventas")
		catalogPath = flag.String("catalog", "", "CSV barcode;description;price (vacío = catálogo de ejemplo)")
		charset     = flag.String("charset", "utf-8", "codificación del CSV: utf-8, latin1, cp1252")
		seedValue   = flag.Uint64("seed", 0, "semilla del generador (0 = aleatoria)")
		reset       = flag.Bool("reset", false, "vaciar las tablas antes de insertar")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	if err := validateCounts(*nSales, *nOrders, *days); err != nil {
		log.Fatal().Err(err).Msg("flags inválidos")
	}

	products := defaultCatalog
	if *catalogPath != "" {
		f, err := os.Open(*catalogPath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir catálogo")
		}
		products, err = parseCatalog(f, *charset)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("leer catálogo")
		}
	}

	if *seedValue == 0 {
		*seedValue = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(*seedValue, *seedValue>>1))
	now := time.Now().In(cfg.App.Location())
	sales := generateSales(rng, products, *nSales, *days, now)
	orders := generateOrders(rng, *nOrders, now)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	err = postgres.NewTxRunner(pool).Run(ctx, func(q postgres.Querier) error {
		w := postgres.NewSeedWriter(q)
		if *reset {
			if err := w.Truncate(ctx); err != nil {
				return err
			}
		}
		for i := range products {
			if err := w.UpsertProduct(ctx, &products[i]); err != nil {
				return err
			}
		}
		for i := range sales {
			if err := w.InsertSale(ctx, &sales[i]); err != nil {
				return err
			}
		}
		for i := range orders {
			if err := w.InsertOrder(ctx, &orders[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	paid := 0
	for _, s := range sales {
		if s.Status == entity.SaleStatusPaid {
			paid++
		}
	}
	log.Info().
		Int("products", len(products)).
		Int("sales", len(sales)).
		Int("paid", paid).
		Int("orders", len(orders)).
		Uint64("seed", *seedValue).
		Msg("datos de demostración cargados")
}
