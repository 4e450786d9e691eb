package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/quickbite/pkg/models"
)

// SeedState returns the fixture the application boots with: a small burger
// menu and two in-flight orders so the admin queue is not empty on first run.
func SeedState() State {
	now := time.Now()

	return State{
		Products: []models.Product{
			{
				ID:          "1",
				Name:        "X-Tudo Monstro",
				Description: "Pão brioche, 2 hambúrgueres artesanais de 180g, bacon, ovo, queijo cheddar, alface e tomate.",
				Price:       decimal.RequireFromString("32.90"),
				Category:    "Burgers",
				Image:       "https://img.usecurling.com/p/400/300?q=double%20burger",
			},
			{
				ID:          "2",
				Name:        "Smash Clássico",
				Description: "Pão de batata, smash burger 100g, queijo prato e molho especial da casa.",
				Price:       decimal.RequireFromString("18.50"),
				Category:    "Burgers",
				Image:       "https://img.usecurling.com/p/400/300?q=smash%20burger",
			},
			{
				ID:          "3",
				Name:        "Combo Casal",
				Description: "2 X-Salada, 2 Batatas fritas médias e 1 Refrigerante de 2L.",
				Price:       decimal.RequireFromString("55.00"),
				Category:    "Combos",
				Image:       "https://img.usecurling.com/p/400/300?q=burger%20combo",
			},
			{
				ID:          "4",
				Name:        "Batata com Cheddar e Bacon",
				Description: "Porção generosa de batatas fritas crocantes cobertas com cheddar cremoso e cubos de bacon.",
				Price:       decimal.RequireFromString("24.90"),
				Category:    "Lanches",
				Image:       "https://img.usecurling.com/p/400/300?q=fries%20cheddar%20bacon",
			},
			{
				ID:          "5",
				Name:        "Milkshake de Morango",
				Description: "Sorvete de creme batido com morangos frescos e calda.",
				Price:       decimal.RequireFromString("15.90"),
				Category:    "Bebidas",
				Image:       "https://img.usecurling.com/p/400/300?q=strawberry%20milkshake",
			},
			{
				ID:          "6",
				Name:        "Coca-Cola Lata",
				Description: "Lata 350ml gelada.",
				Price:       decimal.RequireFromString("6.00"),
				Category:    "Bebidas",
				Image:       "https://img.usecurling.com/p/400/300?q=coke%20can",
			},
		},
		Orders: []models.Order{
			{
				ID:               "ORD-1001",
				Items:            []models.CartItem{},
				Total:            decimal.Zero,
				Status:           models.StatusPreparing,
				CreatedAt:        now,
				CustomerName:     "João Silva",
				CustomerAddress:  "Rua A, 123",
				EstimatedMinutes: 25,
			},
			{
				ID:               "ORD-1002",
				Items:            []models.CartItem{},
				Total:            decimal.Zero,
				Status:           models.StatusPending,
				CreatedAt:        now,
				CustomerName:     "Maria Oliveira",
				CustomerAddress:  "Rua B, 456",
				EstimatedMinutes: 30,
			},
		},
	}
}
