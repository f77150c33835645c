package main

import (
	"github.com/google/uuid"

	"bookwise/pkg/logger"
	"bookwise/pkg/models"
)

type bookSeed struct {
	uid        string
	name       string
	author     string
	summary    string
	coverURL   string
	totalPages int
	categories []string
}

type userSeed struct {
	uid       string
	name      string
	email     string
	avatarURL string
}

type ratingSeed struct {
	userEmail   string
	bookUid     string
	rate        int
	description string
}

var categorySeeds = map[string]string{
	"Educação":    "f1a50507-0aa7-4245-8a5c-0d0de14e9d6d",
	"Programação": "c9f22067-4978-4a24-84a1-7d37f343dfc2",
	"Ficção":      "8c4a4a4d-cbc4-4d2c-bb46-e95b0a536e09",
	"Aventura":    "e9c6d3f6-f3ec-4c52-ae28-6adcbab6ee67",
	"Geek":        "2e65c193-325a-40c3-98f3-6c13e9b75b02",
	"Alegoria":    "a1d0ee25-9c9a-49c8-84eb-7af1e0dd356d",
	"Fábula":      "997f8a10-21fb-4c80-bd16-17e8b79a31a3",
	"Romance":     "cd2c3b7b-9e17-4f94-9b07-8fbbc4f47813",
	"Suspense":    "e6e93cf4-3bb9-41ac-bf26-7c30eb49e226",
	"Autoajuda":   "0e2b2cd5-4422-4b1f-9de4-305de3358fb4",
	"Arquitetura": "83a76fe7-3eb2-428e-ab49-b4d9a3a09d53",
}

var bookSeeds = []bookSeed{
	{
		uid:        "c8176d86-896a-4c21-9219-6bb28cccaa5f",
		name:       "14 Hábitos de Desenvolvedores Altamente Produtivos",
		author:     "Zeno Rocha",
		summary:    "Hábitos práticos para desenvolvedores que querem evoluir na carreira.",
		coverURL:   "/images/books/14-habitos-de-desenvolvedores-altamente-produtivos.png",
		totalPages: 160,
		categories: []string{"Educação", "Programação"},
	},
	{
		uid:        "375948a7-bca3-4b59-9f97-bfcde036b4ca",
		name:       "O Hobbit",
		author:     "J.R.R. Tolkien",
		summary:    "A jornada de Bilbo Bolseiro pela Terra Média.",
		coverURL:   "/images/books/o-hobbit.png",
		totalPages: 360,
		categories: []string{"Ficção", "Aventura"},
	},
	{
		uid:        "86596503-369b-4614-bacf-11c9bb73e779",
		name:       "O guia do mochileiro das galáxias",
		author:     "Douglas Adams",
		summary:    "Não entre em pânico.",
		coverURL:   "/images/books/o-guia-do-mochileiro-das-galaxias.png",
		totalPages: 250,
		categories: []string{"Ficção", "Geek"},
	},
	{
		uid:        "d0d70b05-d48f-4d83-b1e8-0b4dd984c97d",
		name:       "A revolução dos bichos",
		author:     "George Orwell",
		summary:    "Uma fábula sobre o poder.",
		coverURL:   "/images/books/a-revolucao-dos-bixos.png",
		totalPages: 350,
		categories: []string{"Alegoria", "Fábula"},
	},
	{
		uid:        "48b86ac2-014e-401d-bcbb-331ce5f4a457",
		name:       "O fim da eternidade",
		author:     "Isaac Asimov",
		summary:    "Viagem no tempo e as escolhas da humanidade.",
		coverURL:   "/images/books/o-fim-da-eternidade.png",
		totalPages: 165,
		categories: []string{"Ficção", "Romance"},
	},
	{
		uid:        "4bdcbbb6-6537-4a4e-8e43-3c5e1bff3e2e",
		name:       "Entendendo Algoritmos",
		author:     "Aditya Y. Bhargava",
		summary:    "Um guia ilustrado para programadores e curiosos.",
		coverURL:   "/images/books/entendendo-algoritmos.png",
		totalPages: 165,
		categories: []string{"Programação", "Educação"},
	},
	{
		uid:        "e688c24f-b5ca-41c9-b76e-d5b3f17d0aa7",
		name:       "Código Limpo",
		author:     "Robert C. Martin",
		summary:    "Habilidades práticas do Agile Software.",
		coverURL:   "/images/books/codigo-limpo.png",
		totalPages: 365,
		categories: []string{"Programação", "Educação"},
	},
	{
		uid:        "a08afdc5-4f26-4c7a-b0d2-9afa6d1c4b45",
		name:       "Arquitetura limpa",
		author:     "Robert C. Martin",
		summary:    "O guia do artesão para estrutura e design de software.",
		coverURL:   "/images/books/arquitetura-limpa.png",
		totalPages: 288,
		categories: []string{"Programação", "Arquitetura"},
	},
}

var userSeeds = []userSeed{
	{
		uid:       "48e458c0-8b1e-4994-b85a-1e1cfcc9dd60",
		name:      "Jaxson Dias",
		email:     "jaxson@gmail.com",
		avatarURL: "https://images.unsplash.com/photo-1570295999919-56ceb5ecca61",
	},
	{
		uid:       "c296c6c0-5c59-40dd-aa8a-ef2b015b7502",
		name:      "Brandon Botosh",
		email:     "brandon@gmail.com",
		avatarURL: "https://images.unsplash.com/photo-1531891437562-4301cf35b7e4",
	},
	{
		uid:       "4383f783-6ce1-4f92-b1dd-7a7a693c4aef",
		name:      "Lindsey Philips",
		email:     "lindsey@gmail.com",
		avatarURL: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f",
	},
	{
		uid:       "6624df61-5947-4f8c-9c7e-39c8c40fa158",
		name:      "Jaylon Franci",
		email:     "jaylon@gmail.com",
		avatarURL: "https://images.unsplash.com/photo-1603415526960-f7e0328c63b1",
	},
}

var ratingSeeds = []ratingSeed{
	{"jaxson@gmail.com", "375948a7-bca3-4b59-9f97-bfcde036b4ca", 5, "Uma releitura que nunca envelhece."},
	{"jaxson@gmail.com", "86596503-369b-4614-bacf-11c9bb73e779", 4, "Divertido do começo ao fim."},
	{"brandon@gmail.com", "375948a7-bca3-4b59-9f97-bfcde036b4ca", 4, "Clássico obrigatório."},
	{"brandon@gmail.com", "e688c24f-b5ca-41c9-b76e-d5b3f17d0aa7", 5, "Mudou a forma como escrevo código."},
	{"lindsey@gmail.com", "375948a7-bca3-4b59-9f97-bfcde036b4ca", 4, "Aventura na medida certa."},
	{"lindsey@gmail.com", "d0d70b05-d48f-4d83-b1e8-0b4dd984c97d", 3, "Curto e afiado."},
	{"jaylon@gmail.com", "4bdcbbb6-6537-4a4e-8e43-3c5e1bff3e2e", 5, "Melhor introdução a algoritmos que já li."},
}

func seedData() {
	categories := make(map[string]models.Category)
	for name, uid := range categorySeeds {
		var category models.Category
		if err := db.Where("category_uid = ?", uid).First(&category).Error; err != nil {
			category = models.Category{CategoryUid: uid, Name: name}
			if err := db.Create(&category).Error; err != nil {
				logger.Warn(logger.EventDBError, "Failed to seed category", logger.Fields(
					"category", name,
					"error", err.Error(),
				))
				continue
			}
		}
		categories[name] = category
	}

	for _, seed := range bookSeeds {
		var book models.Book
		if err := db.Where("book_uid = ?", seed.uid).First(&book).Error; err == nil {
			continue
		}
		book = models.Book{
			BookUid:    seed.uid,
			Name:       seed.name,
			Author:     seed.author,
			Summary:    seed.summary,
			CoverURL:   seed.coverURL,
			TotalPages: seed.totalPages,
		}
		for _, name := range seed.categories {
			if category, ok := categories[name]; ok {
				book.Categories = append(book.Categories, category)
			}
		}
		if err := db.Create(&book).Error; err != nil {
			logger.Warn(logger.EventDBError, "Failed to seed book", logger.Fields(
				"book", seed.name,
				"error", err.Error(),
			))
		}
	}

	for _, seed := range userSeeds {
		var user models.User
		if err := db.Where("user_uid = ?", seed.uid).First(&user).Error; err == nil {
			continue
		}
		user = models.User{
			UserUid:   seed.uid,
			Name:      seed.name,
			Email:     seed.email,
			AvatarURL: seed.avatarURL,
		}
		if err := db.Create(&user).Error; err != nil {
			logger.Warn(logger.EventDBError, "Failed to seed user", logger.Fields(
				"user", seed.email,
				"error", err.Error(),
			))
		}
	}

	seedRatings()

	logger.Info(logger.EventGeneral, "Seed data loaded", nil)
}

func seedRatings() {
	for _, seed := range ratingSeeds {
		var user models.User
		if err := db.Where("email = ?", seed.userEmail).First(&user).Error; err != nil {
			continue
		}
		var book models.Book
		if err := db.Where("book_uid = ?", seed.bookUid).First(&book).Error; err != nil {
			continue
		}

		var existing models.Rating
		if err := db.Where("user_id = ? AND book_id = ?", user.ID, book.ID).First(&existing).Error; err == nil {
			continue
		}

		rating := models.Rating{
			RatingUid:   uuid.New().String(),
			UserID:      user.ID,
			BookID:      book.ID,
			Rate:        seed.rate,
			Description: seed.description,
		}
		if err := db.Create(&rating).Error; err != nil {
			logger.Warn(logger.EventDBError, "Failed to seed rating", logger.Fields(
				"user", seed.userEmail,
				"book", seed.bookUid,
				"error", err.Error(),
			))
		}
	}
}
