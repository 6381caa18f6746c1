// seed puebla los catálogos base del inventario (tipos y estados de equipo)
// y opcionalmente el usuario administrador. El esquema se aplica antes con
// los scripts de internal/infrastructure/postgres/migrations.
//
// Uso: go run ./cmd/seed
// El administrador se controla con SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD /
// SEED_ADMIN_NAME. Sin SEED_ADMIN_PASSWORD no se crea usuario.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hraei-ti/inventario-api/internal/domain/entity"
	"github.com/hraei-ti/inventario-api/internal/infrastructure/postgres"
	"github.com/hraei-ti/inventario-api/pkg/config"
	"github.com/hraei-ti/inventario-api/pkg/logger"
)

var equipmentTypes = []struct{ name, description string }{
	{"CPU", "Unidad de procesamiento (gabinete de escritorio)"},
	{"Monitor", "Pantalla de escritorio"},
	{"Laptop", "Equipo portátil"},
	{"Impresora", "Impresora o multifuncional"},
	{"Escáner", "Digitalizador de documentos"},
	{"No-break", "Respaldo de energía"},
	{"Teléfono IP", "Terminal de telefonía sobre IP"},
}

var equipmentStatuses = []struct{ name, description string }{
	{"Activo", "En operación"},
	{"Asignado", "Integrado a una estación de trabajo"},
	{"Disponible", "En almacén, listo para asignar"},
	{"En Reparación", "Fuera de servicio, en taller"},
	{"En Mantenimiento", "Mantenimiento preventivo programado"},
	{"De Baja", "Retirado del inventario"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	for _, t := range equipmentTypes {
		_, err := pool.Exec(ctx, `
			INSERT INTO equipment_types (id, name, description, created_at, updated_at)
			VALUES ($1, $2, $3, now(), now())
			ON CONFLICT (name) DO NOTHING`,
			uuid.New().String(), t.name, t.description)
		if err != nil {
			log.Fatal().Err(err).Str("tipo", t.name).Msg("sembrar tipo de equipo")
		}
	}
	log.Info().Int("tipos", len(equipmentTypes)).Msg("catálogo de tipos de equipo sembrado")

	for _, s := range equipmentStatuses {
		_, err := pool.Exec(ctx, `
			INSERT INTO equipment_status (id, name, description, created_at, updated_at)
			VALUES ($1, $2, $3, now(), now())
			ON CONFLICT (name) DO NOTHING`,
			uuid.New().String(), s.name, s.description)
		if err != nil {
			log.Fatal().Err(err).Str("estado", s.name).Msg("sembrar estado de equipo")
		}
	}
	log.Info().Int("estados", len(equipmentStatuses)).Msg("catálogo de estados de equipo sembrado")

	seedAdmin(postgres.NewUserRepository(pool), log)
}

// seedAdmin crea el usuario administrador si se proporcionó contraseña y el
// email no existe todavía.
func seedAdmin(users *postgres.UserRepo, log *logger.Logger) {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Info().Msg("SEED_ADMIN_PASSWORD no definido, se omite el usuario administrador")
		return
	}
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@hraei.gob.mx"
	}
	name := os.Getenv("SEED_ADMIN_NAME")
	if name == "" {
		name = "Administrador"
	}

	existing, err := users.FindByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar administrador existente")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("el administrador ya existe, no se toca")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña del administrador")
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	log.Info().Str("email", email).Msg("usuario administrador creado")
}
