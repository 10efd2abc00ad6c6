package router

import (
	"net/http"

	storekv "pet-haven/internal/adapters/storage/kv"
	"pet-haven/internal/domain/appointments"
	"pet-haven/internal/domain/chats"
	"pet-haven/internal/domain/pets"
	"pet-haven/internal/domain/reminders"
	"pet-haven/internal/domain/sessions"
	"pet-haven/internal/domain/summary"
	"pet-haven/internal/domain/users"
	"pet-haven/internal/domain/usershttp"
	"pet-haven/internal/kvstore"
	"pet-haven/internal/middleware"
	"pet-haven/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Store es el backend clave-valor ya abierto (memory, sqlite o postgres).
	Store kvstore.KV

	// VetEmail es la dirección de la veterinaria para los hilos de chat.
	VetEmail string

	// Log puede ser nil (se usa Nop); los tests lo dejan vacío.
	Log *logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	// Repos sobre el almacén clave-valor
	usersRepo := storekv.NewUsersRepo(opts.Store)
	sessionsRepo := storekv.NewSessionsRepo(opts.Store)
	petsRepo := storekv.NewPetsRepo(opts.Store)
	apptsRepo := storekv.NewAppointmentsRepo(opts.Store)
	remindersRepo := storekv.NewRemindersRepo(opts.Store)
	chatsRepo := storekv.NewChatsRepo(opts.Store)

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	sessionsSvc := sessions.NewService(sessionsRepo)
	petsSvc := pets.NewService(petsRepo)
	apptsSvc := appointments.NewService(apptsRepo)
	remindersSvc := reminders.NewService(remindersRepo)
	chatsSvc := chats.NewService(chatsRepo, opts.VetEmail)
	summarySvc := summary.NewService(petsSvc, apptsSvc, remindersSvc)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogging(log))
	r.Use(middleware.SessionContext(sessionsSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Rutas por módulo
	usershttp.RegisterRoutes(r, usersSvc, sessionsSvc)
	pets.RegisterRoutes(r, petsSvc)
	appointments.RegisterRoutes(r, apptsSvc)
	reminders.RegisterRoutes(r, remindersSvc)
	chats.RegisterRoutes(r, chatsSvc)
	summary.RegisterRoutes(r, summarySvc)

	return r
}
